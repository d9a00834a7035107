package aggregator_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspection-hub/go-backend/internal/aggregator"
	"inspection-hub/go-backend/internal/models"
	"inspection-hub/go-backend/internal/testutil"
)

var epoch = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func newWorker(store aggregator.Store, q *aggregator.Queue) (*aggregator.Worker, *testclock.Clock) {
	clk := testclock.NewClock(epoch)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return aggregator.NewWorker(q, store, clk, time.Second, logger), clk
}

func seededStore() *testutil.ExecutionStore {
	store := testutil.NewExecutionStore()
	store.AddExecution("exec-1", epoch.Add(-time.Hour))
	store.AddItemExecution("I1", "exec-1", "item-I1")
	store.AddItemExecution("I2", "exec-1", "item-I2")
	return store
}

func TestApplyCompletesExecution(t *testing.T) {
	store := seededStore()
	w, _ := newWorker(store, aggregator.NewQueue(4))
	ctx := context.Background()

	out, err := w.Apply(ctx, event("I1", models.JudgmentOK))
	require.NoError(t, err)
	assert.True(t, out.ItemFinalized)
	assert.False(t, out.ExecutionCompleted)

	out, err = w.Apply(ctx, event("I2", models.JudgmentNG))
	require.NoError(t, err)
	assert.True(t, out.ItemFinalized)
	assert.True(t, out.ExecutionCompleted)

	i1, _ := store.Item("I1")
	assert.Equal(t, models.ItemCompleted, i1.Status)
	assert.Equal(t, models.FinalOK, i1.FinalResult)
	require.NotNil(t, i1.CompletedAt)

	i2, _ := store.Item("I2")
	assert.Equal(t, models.ItemCompleted, i2.Status)
	assert.Equal(t, models.FinalNG, i2.FinalResult)
	require.NotNil(t, i2.AIResult)
	assert.Equal(t, "crit-I2", i2.AIResult.CriteriaID)

	exec, _ := store.Execution("exec-1")
	assert.Equal(t, models.ExecutionCompleted, exec.Status)
	require.NotNil(t, exec.CompletedAt)
}

func TestApplyIsIdempotent(t *testing.T) {
	store := seededStore()
	w, clk := newWorker(store, aggregator.NewQueue(4))
	ctx := context.Background()

	_, err := w.Apply(ctx, event("I1", models.JudgmentOK))
	require.NoError(t, err)
	_, err = w.Apply(ctx, event("I2", models.JudgmentNG))
	require.NoError(t, err)

	i1, _ := store.Item("I1")
	i2, _ := store.Item("I2")
	exec, _ := store.Execution("exec-1")

	clk.Advance(time.Minute)
	for _, ev := range []models.JudgmentEvent{event("I1", models.JudgmentOK), event("I2", models.JudgmentNG)} {
		out, err := w.Apply(ctx, ev)
		require.NoError(t, err)
		assert.False(t, out.ItemChanged)
		assert.False(t, out.ExecutionCompleted)
	}

	again1, _ := store.Item("I1")
	again2, _ := store.Item("I2")
	againExec, _ := store.Execution("exec-1")
	assert.Equal(t, i1, again1)
	assert.Equal(t, i2, again2)
	assert.Equal(t, exec, againExec)
}

func TestExecutionCompletesExactlyOnceAcrossOrders(t *testing.T) {
	evs := []models.JudgmentEvent{
		event("I1", models.JudgmentOK),
		event("I2", models.JudgmentNG),
		event("I1", models.JudgmentOK),
		event("I2", models.JudgmentPending),
	}
	orders := [][]int{
		{0, 1, 2, 3}, {1, 0, 3, 2}, {3, 2, 1, 0}, {2, 3, 0, 1}, {0, 2, 3, 1}, {3, 0, 2, 1},
	}

	for _, order := range orders {
		store := seededStore()
		w, clk := newWorker(store, aggregator.NewQueue(4))

		completions := 0
		for _, idx := range order {
			clk.Advance(time.Second)
			out, err := w.Apply(context.Background(), evs[idx])
			require.NoError(t, err)
			if out.ExecutionCompleted {
				completions++
			}
		}
		assert.Equal(t, 1, completions, "order %v", order)

		exec, _ := store.Execution("exec-1")
		assert.Equal(t, models.ExecutionCompleted, exec.Status, "order %v", order)
	}
}

func TestApplyPendingAdvancesToAICompleted(t *testing.T) {
	store := seededStore()
	w, _ := newWorker(store, aggregator.NewQueue(4))

	out, err := w.Apply(context.Background(), event("I1", models.JudgmentPending))
	require.NoError(t, err)
	assert.True(t, out.ItemChanged)
	assert.False(t, out.ItemFinalized)

	i1, _ := store.Item("I1")
	assert.Equal(t, models.ItemAICompleted, i1.Status)
	assert.Empty(t, i1.FinalResult)
	assert.Nil(t, i1.CompletedAt)
}

func TestApplyConflictingJudgmentKeepsFinalResult(t *testing.T) {
	store := seededStore()
	w, _ := newWorker(store, aggregator.NewQueue(4))
	ctx := context.Background()

	_, err := w.Apply(ctx, event("I1", models.JudgmentOK))
	require.NoError(t, err)
	out, err := w.Apply(ctx, event("I1", models.JudgmentNG))
	require.NoError(t, err)
	assert.True(t, out.ItemChanged)
	assert.False(t, out.ItemFinalized)

	i1, _ := store.Item("I1")
	assert.Equal(t, models.FinalOK, i1.FinalResult)
	assert.Equal(t, models.JudgmentNG, i1.AIResult.Judgment)
}

func TestApplyPendingAfterFinalKeepsAIResult(t *testing.T) {
	store := seededStore()
	w, clk := newWorker(store, aggregator.NewQueue(4))
	ctx := context.Background()

	_, err := w.Apply(ctx, event("I1", models.JudgmentOK))
	require.NoError(t, err)

	clk.Advance(6 * time.Minute)
	late := event("I1", models.JudgmentPending)
	late.CriteriaID = ""
	out, err := w.Apply(ctx, late)
	require.NoError(t, err)
	assert.False(t, out.ItemChanged)

	i1, _ := store.Item("I1")
	assert.Equal(t, models.ItemCompleted, i1.Status)
	assert.Equal(t, models.FinalOK, i1.FinalResult)
	require.NotNil(t, i1.AIResult)
	assert.Equal(t, models.JudgmentOK, i1.AIResult.Judgment)
	assert.Equal(t, "crit-I1", i1.AIResult.CriteriaID)
}

func TestApplyMissingItem(t *testing.T) {
	store := seededStore()
	w, _ := newWorker(store, aggregator.NewQueue(4))

	out, err := w.Apply(context.Background(), event("nope", models.JudgmentOK))
	require.NoError(t, err)
	assert.True(t, out.Missing)

	ev := event("I1", models.JudgmentOK)
	ev.ExecutionID = "other-exec"
	out, err = w.Apply(context.Background(), ev)
	require.NoError(t, err)
	assert.True(t, out.Missing)
}

func TestApplyRollsBackOnFailure(t *testing.T) {
	store := seededStore()
	w, _ := newWorker(store, aggregator.NewQueue(4))

	store.FailNext(errors.New("serialization failure"))
	_, err := w.Apply(context.Background(), event("I1", models.JudgmentOK))
	require.Error(t, err)

	i1, _ := store.Item("I1")
	assert.Equal(t, models.ItemPending, i1.Status)
	assert.Empty(t, i1.FinalResult)
}

func TestWorkerConsumesQueue(t *testing.T) {
	store := seededStore()
	q := aggregator.NewQueue(8)
	w, _ := newWorker(store, q)

	require.NoError(t, w.Start(context.Background()))

	require.True(t, q.Publish(event("I1", models.JudgmentOK)))
	require.True(t, q.Publish(event("missing", models.JudgmentOK)))
	require.True(t, q.Publish(event("I2", models.JudgmentNG)))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	w.Drain(ctx)

	stats := w.Stats()
	assert.EqualValues(t, 2, stats.Applied)
	assert.EqualValues(t, 1, stats.Missing)
	assert.EqualValues(t, 0, stats.Failed)

	exec, _ := store.Execution("exec-1")
	assert.Equal(t, models.ExecutionCompleted, exec.Status)
}

func TestWorkerSurvivesFailedTransaction(t *testing.T) {
	store := seededStore()
	q := aggregator.NewQueue(8)
	w, _ := newWorker(store, q)
	require.NoError(t, w.Start(context.Background()))

	store.FailNext(errors.New("deadlock detected"))
	q.Publish(event("I1", models.JudgmentOK))
	q.Publish(event("I2", models.JudgmentNG))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	w.Drain(ctx)

	stats := w.Stats()
	assert.EqualValues(t, 1, stats.Failed)
	assert.EqualValues(t, 1, stats.Applied)

	i1, _ := store.Item("I1")
	assert.Equal(t, models.ItemPending, i1.Status)
	i2, _ := store.Item("I2")
	assert.Equal(t, models.ItemCompleted, i2.Status)
}
