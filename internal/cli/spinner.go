package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner animates a one-line render status such as
//
//	⠹ Rendering 3 specs as tex, json (1/3)
//
// until it is stopped or its context ends.
type Spinner struct {
	w       io.Writer
	message string
	total   int

	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once

	mu       sync.Mutex
	started  bool
	finished int
	width    int // widest line drawn, for clearing
}

// newRenderSpinner returns a spinner for a batch of specs rendered in the
// given formats. It writes to w and stops when ctx is cancelled.
func newRenderSpinner(ctx context.Context, w io.Writer, specs int, formats []string) *Spinner {
	noun := "spec"
	if specs != 1 {
		noun = "specs"
	}
	msg := fmt.Sprintf("Rendering %d %s as %s", specs, noun, strings.Join(formats, ", "))
	return newSpinner(ctx, w, msg, specs)
}

func newSpinner(ctx context.Context, w io.Writer, message string, total int) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       w,
		message: message,
		total:   total,
		parent:  ctx,
		ctx:     spinnerCtx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// Start begins the animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// Advance records one finished spec. It is safe to call from the render
// workers.
func (s *Spinner) Advance() {
	s.mu.Lock()
	s.finished++
	s.mu.Unlock()
}

func (s *Spinner) line() string {
	if s.total > 1 {
		return fmt.Sprintf("%s (%d/%d)", s.message, s.finished, s.total)
	}
	return s.message
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := s.line()
	s.width = max(s.width, len(line)+2)
	fmt.Fprintf(s.w, "\r%s %s", styleSpinner.Render(frame), StyleDim.Render(line))
}

// Stop ends the animation and clears the line. Repeated calls are no-ops.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()
		if started {
			<-s.stopped
		}
	})
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width > 0 {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
	}
}

// Cancelled reports whether the spinner's parent context has ended, i.e. the
// render was interrupted rather than finished.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
