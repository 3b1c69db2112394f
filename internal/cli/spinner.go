package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner animates a one-line status message until stopped or until its
// context is cancelled. Nothing is written before the first tick, so fast
// operations leave no trace on the terminal.
type Spinner struct {
	w       io.Writer
	message string

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	started  atomic.Bool
	stopOnce sync.Once

	mu    sync.Mutex
	drawn int
}

// newSpinnerWithContext creates a spinner on stderr.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	return newSpinnerTo(ctx, os.Stderr, message)
}

func newSpinnerTo(ctx context.Context, w io.Writer, message string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       w,
		message: message,
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
}

// Start launches the animation. Calls after the first are no-ops.
func (s *Spinner) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go s.run()
}

func (s *Spinner) run() {
	defer close(s.done)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.erase()
			return
		case <-ticker.C:
			s.draw()
		}
	}
}

func (s *Spinner) draw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	frame := spinnerFrames[s.drawn%len(spinnerFrames)]
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
	s.drawn++
}

func (s *Spinner) erase() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drawn == 0 {
		return
	}
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}

// Stop halts the animation and clears its line. Stop may be called any number
// of times, with or without a preceding Start.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		if s.started.Load() {
			<-s.done
		}
	})
}

// StopWithError stops the spinner and prints message as a failure line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner has been stopped, either directly or
// through its parent context.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
