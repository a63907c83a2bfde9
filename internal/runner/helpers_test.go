package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tide-runner/internal/config"
)

// scriptedRandom replays fixed values so spawns are predictable.
type scriptedRandom struct {
	ints   []int
	floats []float64
	i, f   int
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)]
	r.i++
	return v % n
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.f%len(r.floats)]
	r.f++
	return v
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// frameTime returns the wall time of the n-th frame at 60 fps.
func frameTime(n int) time.Time {
	return epoch.Add(time.Duration(n) * time.Second / 60)
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithRandom(&scriptedRandom{})}, opts...)
	e, err := New(config.DefaultRunnerConfig(), opts...)
	require.NoError(t, err)
	return e
}

func startedEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e := newTestEngine(t, opts...)
	require.True(t, e.RequestStart(epoch))
	return e
}
