// xdna manages hardware contexts and command submission on a simulated
// AIE device.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/frobware/go-xdna/cmd/xdna/cli"
)

func main() {
	c := cli.CLI{Out: os.Stdout}
	kctx := kong.Parse(&c, cli.KongOptions()...)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	kctx.BindTo(ctx, (*context.Context)(nil))

	kctx.FatalIfErrorf(kctx.Run(&c))
}
