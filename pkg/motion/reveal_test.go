package motion

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerIssuesSequentialIDs(t *testing.T) {
	tracker := NewTracker("reveal")

	first, err := tracker.Register(Card)
	require.NoError(t, err)
	second, err := tracker.Register(Mount(600*time.Millisecond, 0))
	require.NoError(t, err)

	assert.Equal(t, "reveal-1", first)
	assert.Equal(t, "reveal-2", second)
}

func TestTrackerRejectsInvalidSpec(t *testing.T) {
	tracker := NewTracker("reveal")

	id, err := tracker.Register(Spec{Threshold: 1.5})
	assert.Error(t, err)
	assert.Empty(t, id)

	// A rejected spec does not consume an id.
	id, err = tracker.Register(Block)
	require.NoError(t, err)
	assert.Equal(t, "reveal-1", id)
}

func TestTrackerConcurrentRegister(t *testing.T) {
	tracker := NewTracker("r")
	ids := make(chan string, 50)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := tracker.Register(Card)
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, 50)
}

func TestPresetsAreValid(t *testing.T) {
	for name, spec := range map[string]Spec{
		"card":  Card,
		"block": Block,
		"zoom":  Zoom,
		"mount": Mount(700*time.Millisecond, 100*time.Millisecond),
	} {
		assert.NoError(t, spec.Validate(), name)
	}
}

func TestSpecValidate(t *testing.T) {
	assert.Error(t, Spec{Threshold: -0.1}.Validate())
	assert.Error(t, Spec{Threshold: 1.5}.Validate())
	assert.Error(t, Spec{Duration: -time.Second}.Validate())
	assert.Error(t, Spec{Delay: -time.Millisecond}.Validate())
}

func TestSpecInitialStyle(t *testing.T) {
	assert.Equal(t,
		"opacity:0;transform:translateY(16px);transition:opacity 500ms ease-out 0ms,transform 500ms ease-out 0ms",
		Card.InitialStyle())
	assert.Equal(t,
		"opacity:0;transform:scale(0.98);transition:opacity 600ms ease-out 0ms,transform 600ms ease-out 0ms",
		Zoom.InitialStyle())
	assert.Contains(t, Mount(700*time.Millisecond, 100*time.Millisecond).InitialStyle(), "opacity 700ms ease-out 100ms")
}

func TestTrackerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("thresholds inside [0,1] are accepted and numbered in order", prop.ForAll(
		func(thresholds []float64) bool {
			tracker := NewTracker("reveal")
			for i, th := range thresholds {
				id, err := tracker.Register(Spec{Threshold: th})
				if err != nil || id != fmt.Sprintf("reveal-%d", i+1) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(0, 1)),
	))

	properties.Property("thresholds above 1 are rejected", prop.ForAll(
		func(th float64) bool {
			_, err := NewTracker("reveal").Register(Spec{Threshold: th})
			return err != nil
		},
		gen.Float64Range(1.0001, 100),
	))

	properties.TestingRun(t)
}
