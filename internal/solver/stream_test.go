package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/doku/internal/grid"
)

func TestStream_MatchesSynchronousSolve(t *testing.T) {
	bt := NewBacktracker()
	want, _, err := bt.Solve(context.Background(), grid.MustParse(demoPuzzle), 1)
	require.NoError(t, err)
	require.Len(t, want, 1)

	run := bt.Stream(context.Background(), grid.MustParse(demoPuzzle), 1)
	var steps []Step
	for st := range run.Steps() {
		steps = append(steps, st)
	}
	got, _, err := run.Wait()
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, want[0].Flat(), got[0].Flat(), "observation must not change the outcome")
	assert.NotEmpty(t, steps)
}

func TestStream_StepsReplayToSolution(t *testing.T) {
	g := grid.MustParse(demoPuzzle)
	run := NewBacktracker().Stream(context.Background(), g, 1)

	// Apply every step to an independent copy, the way an animator would.
	display := g.Clone()
	for st := range run.Steps() {
		if st.Value == 0 {
			require.NoError(t, display.Unset(st.Cell.Row, st.Cell.Col))
		} else {
			require.NoError(t, display.Set(st.Cell.Row, st.Cell.Col, st.Value))
		}
	}
	sols, _, err := run.Wait()
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assert.Equal(t, sols[0].Flat(), display.Flat(), "final frame is the solution")
}

func TestStream_NoSolutionClosesCleanly(t *testing.T) {
	run := NewBacktracker().Stream(context.Background(), grid.MustParse(deadPuzzle), 1)
	for range run.Steps() {
	}
	sols, _, err := run.Wait()
	require.NoError(t, err)
	assert.Empty(t, sols)
}

func TestStream_CancelAbandonsSearch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	empty, err := grid.New(make([]uint8, grid.Cells))
	require.NoError(t, err)

	// Unlimited enumeration of the empty grid would run effectively forever;
	// the consumer walks away after a few steps instead.
	run := NewBacktracker().Stream(ctx, empty, 0)
	for i := 0; i < 50; i++ {
		_, ok := <-run.Steps()
		require.True(t, ok)
	}
	cancel()
	for range run.Steps() {
		// drain until the producer observes cancellation and closes
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _, err := run.Wait()
		assert.ErrorIs(t, err, context.Canceled)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return after cancellation")
	}
}

func TestStream_SlowConsumerSameResult(t *testing.T) {
	run := NewBacktracker().Stream(context.Background(), grid.MustParse(classicPuzzle), 1)
	n := 0
	for range run.Steps() {
		if n < 10 {
			time.Sleep(time.Millisecond)
		}
		n++
	}
	sols, _, err := run.Wait()
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assert.True(t, sols[0].IsValid())
}
