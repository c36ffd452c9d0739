package gesture

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// ErrNoSource means no hand tracker was configured or it could not be opened.
var ErrNoSource = errors.New("gesture: no source")

// Sink receives labels from a source. It may be called from the source's
// goroutine and must not block for long.
type Sink func(Label)

// Source produces gesture labels until ctx is cancelled or it fails.
type Source interface {
	Run(ctx context.Context, emit Sink) error
}

// Frame is one line of tracker output.
type Frame struct {
	Hands []Hand `json:"hands"`
}

// StreamSource reads JSON lines of Frames, typically piped from an
// external hand tracker, and classifies the first hand of each frame.
// Frames without hands are skipped.
type StreamSource struct {
	R io.Reader
}

// Run implements Source. It returns nil at end of stream.
func (s StreamSource) Run(ctx context.Context, emit Sink) error {
	if s.R == nil {
		return ErrNoSource
	}
	sc := bufio.NewScanner(s.R)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var f Frame
		if err := json.Unmarshal(sc.Bytes(), &f); err != nil {
			return fmt.Errorf("gesture stream line %d: %w", line, err)
		}
		if len(f.Hands) == 0 {
			continue
		}
		emit(Classify(f.Hands[0]))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("gesture stream: %w", err)
	}
	return nil
}

// FileSource opens a tracker output file or named pipe.
type FileSource struct {
	Path string
}

// Run implements Source.
func (s FileSource) Run(ctx context.Context, emit Sink) error {
	if s.Path == "" {
		return ErrNoSource
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoSource, err)
	}
	defer f.Close()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			f.Close()
		case <-done:
		}
	}()
	err = StreamSource{R: f}.Run(ctx, emit)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// DefaultInterval is the cadence of the synthetic generator.
const DefaultInterval = 300 * time.Millisecond

// Synthetic stands in for a hand tracker. It alternates between Steps
// open-palm labels and Steps fist labels at a fixed cadence, so the cloud
// breathes in and out.
type Synthetic struct {
	Interval time.Duration
	Steps    int
}

// NewSynthetic returns a generator with the default cadence.
func NewSynthetic() Synthetic {
	return Synthetic{Interval: DefaultInterval, Steps: 5}
}

// Label returns the label emitted on the n-th beat.
func (s Synthetic) Label(n int) Label {
	steps := s.Steps
	if steps < 1 {
		steps = 1
	}
	if (n/steps)%2 == 0 {
		return Open
	}
	return Fist
}

// Run implements Source. It only returns when ctx is done.
func (s Synthetic) Run(ctx context.Context, emit Sink) error {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for n := 0; ; n++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			emit(s.Label(n))
		}
	}
}

// RunWithFallback runs primary and switches to fallback if primary is nil
// or stops with an error. Acquisition failures are logged, never fatal.
func RunWithFallback(ctx context.Context, primary, fallback Source, emit Sink) error {
	if primary != nil {
		err := primary.Run(ctx, emit)
		if err == nil || ctx.Err() != nil {
			return nil
		}
		log.Printf("Gesture source failed, using synthetic gestures: %v", err)
	}
	if fallback == nil {
		return ErrNoSource
	}
	return fallback.Run(ctx, emit)
}
