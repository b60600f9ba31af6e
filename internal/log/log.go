// Package log provides the small "c "-prefixed progress logger used
// throughout the wcnf preprocessor, following the DIMACS comment-line
// convention ("c ...") that the original preprocessor used for its own
// diagnostics.
package log

import (
	"fmt"
	"io"
	"os"
)

// A Logger writes DIMACS-comment-style progress lines. The zero value
// is silent: no Writer means no output.
type Logger struct {
	Verbose bool
	Out     io.Writer
}

// New returns a Logger writing to w when verbose is true.
func New(w io.Writer, verbose bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{Verbose: verbose, Out: w}
}

// Printf writes a "c "-prefixed line if the logger is verbose.
func (l *Logger) Printf(format string, args ...interface{}) {
	if l == nil || !l.Verbose {
		return
	}
	fmt.Fprintf(l.Out, "c "+format+"\n", args...)
}

// Warnf writes a "c WARNING " line regardless of verbosity: warnings
// always surface since they flag a diagnostic error kind that the
// caller may need to notice even when not running verbosely.
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l == nil || l.Out == nil {
		return
	}
	fmt.Fprintf(l.Out, "c WARNING "+format+"\n", args...)
}
