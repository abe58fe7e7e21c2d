// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf prints a non-fatal diagnostic unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Errorf prints a fatal diagnostic; it is never suppressed.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "ERROR: "+format+"\n", a...)
}
