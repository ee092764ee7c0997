package render

import (
	"fmt"
	"io"
	"time"

	"github.com/lixenwraith/grade-unboxing/engine"
	"github.com/lixenwraith/grade-unboxing/reveal"
)

// NewLogSurface returns a headless surface printing one line per command to w
// Each line is stamped with the time elapsed since the surface was created
func NewLogSurface(w io.Writer, width int, clock engine.TimeProvider) *reveal.Recorder {
	start := clock.Now()
	rec := reveal.NewRecorder(width)
	rec.OnRecord = func(c reveal.Command) {
		elapsed := clock.Now().Sub(start).Round(time.Millisecond)
		fmt.Fprintf(w, "%8v  %s\n", elapsed, c)
	}
	return rec
}
