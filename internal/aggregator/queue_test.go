package aggregator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"inspection-hub/go-backend/internal/aggregator"
	"inspection-hub/go-backend/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func event(itemExecID string, j models.Judgment) models.JudgmentEvent {
	return models.JudgmentEvent{
		ExecutionID:     "exec-1",
		ItemExecutionID: itemExecID,
		Judgment:        j,
		CriteriaID:      "crit-" + itemExecID,
		ItemID:          "item-" + itemExecID,
		PipelineID:      "PL",
		Metrics:         map[string]string{"detected": "0"},
	}
}

func TestQueueFIFO(t *testing.T) {
	q := aggregator.NewQueue(8)
	events, err := q.Subscribe()
	require.NoError(t, err)

	for _, id := range []string{"a", "b", "c"} {
		require.True(t, q.Publish(event(id, models.JudgmentOK)))
	}
	q.Close()

	var got []string
	for ev := range events {
		got = append(got, ev.ItemExecutionID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestQueuePublishNeverBlocks(t *testing.T) {
	q := aggregator.NewQueue(1)

	done := make(chan struct{})
	go func() {
		q.Publish(event("a", models.JudgmentOK))
		q.Publish(event("b", models.JudgmentOK))
		q.Publish(event("c", models.JudgmentOK))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Publish blocked on a full queue")
	}

	stats := q.Stats()
	assert.EqualValues(t, 1, stats.Published)
	assert.EqualValues(t, 2, stats.Dropped)
	assert.Equal(t, 1, stats.Depth)
	assert.Equal(t, 1, stats.Capacity)
}

func TestQueueSingleConsumer(t *testing.T) {
	q := aggregator.NewQueue(1)
	_, err := q.Subscribe()
	require.NoError(t, err)
	_, err = q.Subscribe()
	assert.ErrorIs(t, err, aggregator.ErrAlreadySubscribed)
}

func TestQueuePublishAfterCloseDrops(t *testing.T) {
	q := aggregator.NewQueue(4)
	q.Close()
	q.Close()

	assert.False(t, q.Publish(event("a", models.JudgmentOK)))
	assert.EqualValues(t, 1, q.Stats().Dropped)

	_, err := q.Subscribe()
	assert.ErrorIs(t, err, aggregator.ErrQueueClosed)
}
