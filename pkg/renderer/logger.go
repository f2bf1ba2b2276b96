package renderer

import (
	"fmt"
	"io"

	"github.com/plamenxpenchev/ray-tracing-primer/pkg/core"
)

// WriterLogger implements core.Logger by writing to an io.Writer
type WriterLogger struct {
	w io.Writer
}

// NewWriterLogger creates a logger that writes to w. The driver points it
// at stderr so progress output never mixes with the image stream on stdout.
func NewWriterLogger(w io.Writer) core.Logger {
	return &WriterLogger{w: w}
}

func (wl *WriterLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(wl.w, format, args...)
}

// SilentLogger implements core.Logger by discarding all output
type SilentLogger struct{}

func (sl *SilentLogger) Printf(format string, args ...interface{}) {}
