package cli

import (
	"reflect"

	"github.com/alecthomas/kong"
)

// contextIDMapper creates a Kong mapper for ContextID.
func contextIDMapper() kong.MapperFunc {
	return func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("context-id", &s); err != nil {
			return err
		}
		id, err := ParseContextID(s)
		if err != nil {
			return err
		}
		target.Set(reflect.ValueOf(id))
		return nil
	}
}

// bufferHandleMapper creates a Kong mapper for BufferHandle.
func bufferHandleMapper() kong.MapperFunc {
	return func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("handle", &s); err != nil {
			return err
		}
		h, err := ParseBufferHandle(s)
		if err != nil {
			return err
		}
		target.Set(reflect.ValueOf(h))
		return nil
	}
}

// cuSpecMapper creates a Kong mapper for CUSpec.
func cuSpecMapper() kong.MapperFunc {
	return func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("cu", &s); err != nil {
			return err
		}
		cu, err := ParseCUSpec(s)
		if err != nil {
			return err
		}
		target.Set(reflect.ValueOf(cu))
		return nil
	}
}
