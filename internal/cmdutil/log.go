// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Tags render at call time so color.NoColor toggles take effect.
var (
	warnPaint = color.New(color.FgYellow)
	infoPaint = color.New(color.FgCyan)
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "%s "+format+"\n", append([]any{warnPaint.Sprint("WARN:")}, a...)...)
}

func Infof(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "%s "+format+"\n", append([]any{infoPaint.Sprint("INFO:")}, a...)...)
}
