package display

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Terminal draws views as text frames. Draws above the redraw rate are
// coalesced and the newest pending view is drawn once the limiter allows it.
type Terminal struct {
	out     io.Writer
	labels  *Labels
	limiter *rate.Limiter

	mu        sync.Mutex
	last      string
	pending   View
	scheduled bool
}

func NewTerminal(out io.Writer, labels *Labels, redrawsPerSecond float64) *Terminal {
	return &Terminal{
		out:     out,
		labels:  labels,
		limiter: rate.NewLimiter(rate.Limit(redrawsPerSecond), 1),
	}
}

// Draw shows v now or schedules it for the next allowed redraw
func (t *Terminal) Draw(v View) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.scheduled {
		t.pending = v
		return
	}

	if delay := t.limiter.Reserve().Delay(); delay > 0 {
		t.pending = v
		t.scheduled = true
		time.AfterFunc(delay, t.flush)
		return
	}

	t.write(v)
}

func (t *Terminal) flush() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.scheduled = false
	t.write(t.pending)
}

func (t *Terminal) write(v View) {
	frame := strings.Join(v.Lines(t.labels), "\n")
	if frame == t.last {
		return
	}
	t.last = frame

	if _, err := fmt.Fprintf(t.out, "%s\n\n", frame); err != nil {
		t.last = ""
	}
}
