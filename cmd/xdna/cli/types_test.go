package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/cmd/xdna/cli"
)

func TestParseContextID(t *testing.T) {
	tests := []struct {
		in      string
		want    xdna.ContextID
		wantErr bool
	}{
		{in: "7", want: 7},
		{in: " 12 ", want: 12},
		{in: "0x1f", want: 31},
		{in: "0X10", want: 16},
		{in: "", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "0x100000000", wantErr: true},
		{in: "ctx", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := cli.ParseContextID(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value)
		})
	}
}

func TestParseCUSpec(t *testing.T) {
	cu, err := cli.ParseCUSpec("3")
	require.NoError(t, err)
	assert.Equal(t, xdna.CUConfig{BO: 3}, cu.Value)

	cu, err = cli.ParseCUSpec("0x4:2")
	require.NoError(t, err)
	assert.Equal(t, xdna.CUConfig{BO: 4, Function: 2}, cu.Value)

	_, err = cli.ParseCUSpec("4:300")
	require.Error(t, err, "function index is a byte")

	_, err = cli.ParseCUSpec(":1")
	require.Error(t, err)
}
