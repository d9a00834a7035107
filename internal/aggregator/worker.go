package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync/atomic"
	"time"

	"github.com/juju/clock"

	"inspection-hub/go-backend/internal/models"
)

// Store runs fn inside one database transaction, committing when fn
// returns nil and rolling back otherwise.
type Store interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the set of operations the aggregator performs per event.
type Tx interface {
	// LoadItemExecution returns nil, nil when the row does not exist.
	LoadItemExecution(ctx context.Context, id string) (*models.ItemExecution, error)
	SaveItemExecution(ctx context.Context, item *models.ItemExecution) error
	CountItemExecutions(ctx context.Context, executionID string) (done, total int, err error)
	// CompleteExecution marks the execution COMPLETED unless it already is,
	// and reports whether it changed the row.
	CompleteExecution(ctx context.Context, executionID string, at time.Time) (bool, error)
}

// Outcome describes what one event did to the store.
type Outcome struct {
	Missing            bool
	ItemChanged        bool
	ItemFinalized      bool
	ExecutionCompleted bool
}

// Worker is the single consumer of a Queue.
type Worker struct {
	queue     *Queue
	store     Store
	clock     clock.Clock
	txTimeout time.Duration
	logger    *slog.Logger

	done chan struct{}

	applied atomic.Uint64
	missing atomic.Uint64
	failed  atomic.Uint64
}

type WorkerStats struct {
	Applied uint64
	Missing uint64
	Failed  uint64
}

func NewWorker(queue *Queue, store Store, clk clock.Clock, txTimeout time.Duration, logger *slog.Logger) *Worker {
	if clk == nil {
		clk = clock.WallClock
	}
	if txTimeout <= 0 {
		txTimeout = 5 * time.Second
	}
	return &Worker{
		queue:     queue,
		store:     store,
		clock:     clk,
		txTimeout: txTimeout,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

// Start subscribes to the queue and consumes it in the background until
// the queue is closed or ctx is cancelled.
func (w *Worker) Start(ctx context.Context) error {
	events, err := w.queue.Subscribe()
	if err != nil {
		return err
	}
	go w.run(ctx, events)
	return nil
}

func (w *Worker) run(ctx context.Context, events <-chan models.JudgmentEvent) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			w.handle(ctx, ev)
		}
	}
}

func (w *Worker) handle(ctx context.Context, ev models.JudgmentEvent) {
	txCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.txTimeout)
	defer cancel()

	out, err := w.Apply(txCtx, ev)
	switch {
	case err != nil:
		w.failed.Add(1)
		w.logger.Error("aggregator: transaction failed, event dropped",
			"error", err,
			"execution_id", ev.ExecutionID,
			"item_execution_id", ev.ItemExecutionID,
		)
	case out.Missing:
		w.missing.Add(1)
		w.logger.Warn("aggregator: item execution not found, event dropped",
			"execution_id", ev.ExecutionID,
			"item_execution_id", ev.ItemExecutionID,
		)
	default:
		w.applied.Add(1)
		if out.ExecutionCompleted {
			w.logger.Info("aggregator: execution completed", "execution_id", ev.ExecutionID)
		}
	}
}

// Drain closes the queue, lets the worker apply what is still buffered and
// waits for it to stop, or for ctx to expire.
func (w *Worker) Drain(ctx context.Context) {
	w.queue.Close()
	select {
	case <-w.done:
	case <-ctx.Done():
		w.logger.Warn("aggregator: drain timed out", "pending", w.queue.Stats().Depth)
	}
}

func (w *Worker) Stats() WorkerStats {
	return WorkerStats{
		Applied: w.applied.Load(),
		Missing: w.missing.Load(),
		Failed:  w.failed.Load(),
	}
}

// Apply reflects one event into the store inside a single transaction.
// Applying the same event twice leaves the store unchanged.
func (w *Worker) Apply(ctx context.Context, ev models.JudgmentEvent) (Outcome, error) {
	var out Outcome
	err := w.store.InTx(ctx, func(tx Tx) error {
		out = Outcome{}

		item, err := tx.LoadItemExecution(ctx, ev.ItemExecutionID)
		if err != nil {
			return fmt.Errorf("load item execution: %w", err)
		}
		if item == nil || (ev.ExecutionID != "" && item.ExecutionID != ev.ExecutionID) {
			out.Missing = true
			return nil
		}

		now := w.clock.Now().UTC()
		out.ItemChanged, out.ItemFinalized = foldJudgment(item, ev, now)
		if out.ItemChanged {
			if err := tx.SaveItemExecution(ctx, item); err != nil {
				return fmt.Errorf("save item execution: %w", err)
			}
		}

		done, total, err := tx.CountItemExecutions(ctx, item.ExecutionID)
		if err != nil {
			return fmt.Errorf("count item executions: %w", err)
		}
		if total > 0 && done == total {
			completed, err := tx.CompleteExecution(ctx, item.ExecutionID, now)
			if err != nil {
				return fmt.Errorf("complete execution: %w", err)
			}
			out.ExecutionCompleted = completed
		}
		return nil
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("aggregator: apply event: %w", err)
	}
	return out, nil
}

// foldJudgment applies ev to item in memory. It reports whether the row
// changed and whether this event finalized it.
func foldJudgment(item *models.ItemExecution, ev models.JudgmentEvent, now time.Time) (changed, finalized bool) {
	result := ev.AIResult()
	// A settled ai_result is never replaced by a provisional one.
	keep := !ev.Judgment.Final() && item.AIResult != nil && item.AIResult.Judgment.Final()
	if !keep && !sameAIResult(item.AIResult, result) {
		item.AIResult = result
		changed = true
	}

	switch item.Status {
	case models.ItemPending, models.ItemInProgress, models.ItemFailed:
		item.Status = models.ItemAICompleted
		changed = true
	}

	if ev.Judgment.Final() && item.FinalResult == "" {
		item.FinalResult = models.FinalResult(ev.Judgment)
		item.Status = models.ItemCompleted
		at := now
		item.CompletedAt = &at
		changed = true
		finalized = true
	}
	return changed, finalized
}

func sameAIResult(a, b *models.AIResult) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Judgment == b.Judgment &&
		a.CriteriaID == b.CriteriaID &&
		a.ItemID == b.ItemID &&
		a.PipelineID == b.PipelineID &&
		maps.Equal(a.Metrics, b.Metrics)
}
