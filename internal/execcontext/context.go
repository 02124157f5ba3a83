package execcontext

import (
	"context"
	"fmt"
	"io"
)

// RunContext carries the context and standard streams a command works
// against, so tests can script input and capture output.
type RunContext struct {
	Context context.Context
	StdIn   io.Reader
	StdOut  io.Writer
	StdErr  io.Writer
}

func (rc RunContext) Write(p []byte) (n int, err error) {
	return rc.StdOut.Write(p)
}

func (rc RunContext) Printf(format string, v ...any) {
	fmt.Fprintf(rc.StdOut, format, v...)
}

// Cancelled reports whether the underlying context is done.
func (rc RunContext) Cancelled() bool {
	if rc.Context == nil {
		return false
	}
	select {
	case <-rc.Context.Done():
		return true
	default:
		return false
	}
}
