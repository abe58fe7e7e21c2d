// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ExitInterrupted is returned when the run was cancelled by a signal.
const ExitInterrupted = 130

// Main runs a command under a SIGINT/SIGTERM-aware context and exits with its code.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = ExitInterrupted
	}

	stop()
	os.Exit(code)
}
