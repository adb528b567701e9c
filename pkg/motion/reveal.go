// Package motion models one-shot entrance animations.
//
// An element starts offset and transparent. The first time its visible
// fraction is non-zero and reaches the threshold it moves to its resting
// state, and it never goes back. Elements marked OnMount reveal as soon as
// the page is shown instead of waiting for the viewport. The browser side
// lives in the embedded reveal.js; this package decides the markup it reads.
package motion

import (
	"fmt"
	"sync"
	"time"
)

// Spec describes the entrance of one element.
type Spec struct {
	Threshold float64
	Duration  time.Duration
	Delay     time.Duration
	OffsetY   int     // pixels below the resting position
	FromScale float64 // 0 means no scale transition
	OnMount   bool
}

// Card is the entrance used by feature cards.
var Card = Spec{Threshold: 0.3, Duration: 500 * time.Millisecond, OffsetY: 16}

// Block is the entrance used by larger section blocks.
var Block = Spec{Threshold: 0.1, Duration: 600 * time.Millisecond, OffsetY: 20}

// Zoom is the entrance used by illustrations.
var Zoom = Spec{Threshold: 0.1, Duration: 600 * time.Millisecond, FromScale: 0.98}

// Mount returns an entrance that plays on page load after delay.
func Mount(duration, delay time.Duration) Spec {
	return Spec{Duration: duration, Delay: delay, OffsetY: 20, OnMount: true}
}

// Validate rejects specs that could never reveal.
func (s Spec) Validate() error {
	if s.Threshold < 0 || s.Threshold > 1 {
		return fmt.Errorf("threshold %v outside [0,1]", s.Threshold)
	}
	if s.Duration < 0 || s.Delay < 0 {
		return fmt.Errorf("negative timing in %+v", s)
	}
	return nil
}

// InitialStyle is the inline style an element carries before it is revealed.
func (s Spec) InitialStyle() string {
	transform := fmt.Sprintf("translateY(%dpx)", s.OffsetY)
	if s.FromScale > 0 {
		transform = fmt.Sprintf("scale(%g)", s.FromScale)
	}
	return fmt.Sprintf("opacity:0;transform:%s;transition:opacity %dms ease-out %dms,transform %dms ease-out %dms",
		transform,
		s.Duration.Milliseconds(), s.Delay.Milliseconds(),
		s.Duration.Milliseconds(), s.Delay.Milliseconds())
}

// Tracker hands out element ids for one rendered page.
type Tracker struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewTracker returns a tracker whose ids start with prefix.
func NewTracker(prefix string) *Tracker {
	return &Tracker{prefix: prefix}
}

// Register validates spec and returns a fresh id for the element it
// animates. Invalid specs get no id.
func (t *Tracker) Register(spec Spec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.n++
	return fmt.Sprintf("%s-%d", t.prefix, t.n), nil
}
