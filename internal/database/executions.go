package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"inspection-hub/go-backend/internal/aggregator"
	"inspection-hub/go-backend/internal/models"
)

const itemExecutionSQL = `
SELECT id, execution_id, item_id, status, final_result, ai_result, completed_at
FROM inspection_item_executions
WHERE id = $1`

// InTx implements aggregator.Store. fn runs in a READ COMMITTED transaction
// that is committed when fn returns nil.
func (db *DB) InTx(ctx context.Context, fn func(tx aggregator.Tx) error) error {
	tx, err := db.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("database: begin: %w", err)
	}
	defer func() {
		// No-op after a successful commit.
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	if err := fn(&aggregationTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("database: commit: %w", err)
	}
	return nil
}

// ItemExecution reads one item execution outside any transaction.
func (db *DB) ItemExecution(ctx context.Context, id string) (*models.ItemExecution, error) {
	return loadItemExecution(ctx, db.pool, itemExecutionSQL, id)
}

// Execution reads one execution.
func (db *DB) Execution(ctx context.Context, id string) (*models.Execution, error) {
	var (
		e      models.Execution
		status string
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, status, started_at, completed_at FROM inspection_executions WHERE id = $1`, id,
	).Scan(&e.ID, &status, &e.StartedAt, &e.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("database: execution %s: %w", id, err)
	}
	e.Status = models.ExecutionStatus(status)
	return &e, nil
}

type aggregationTx struct {
	tx pgx.Tx
}

func (t *aggregationTx) LoadItemExecution(ctx context.Context, id string) (*models.ItemExecution, error) {
	item, err := loadItemExecution(ctx, t.tx, itemExecutionSQL+" FOR UPDATE", id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return item, err
}

func (t *aggregationTx) SaveItemExecution(ctx context.Context, item *models.ItemExecution) error {
	var aiResult interface{}
	if item.AIResult != nil {
		raw, err := json.Marshal(item.AIResult)
		if err != nil {
			return fmt.Errorf("database: encode ai_result: %w", err)
		}
		aiResult = string(raw)
	}
	var finalResult interface{}
	if item.FinalResult != "" {
		finalResult = string(item.FinalResult)
	}

	_, err := t.tx.Exec(ctx, `
UPDATE inspection_item_executions
SET status = $2, final_result = $3, ai_result = $4::jsonb, completed_at = $5
WHERE id = $1`,
		item.ID, string(item.Status), finalResult, aiResult, item.CompletedAt)
	if err != nil {
		return fmt.Errorf("database: update item execution %s: %w", item.ID, err)
	}
	return nil
}

func (t *aggregationTx) CountItemExecutions(ctx context.Context, executionID string) (int, int, error) {
	var done, total int
	err := t.tx.QueryRow(ctx, `
SELECT count(*) FILTER (WHERE status = $2), count(*)
FROM inspection_item_executions
WHERE execution_id = $1`,
		executionID, string(models.ItemCompleted),
	).Scan(&done, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("database: count item executions for %s: %w", executionID, err)
	}
	return done, total, nil
}

func (t *aggregationTx) CompleteExecution(ctx context.Context, executionID string, at time.Time) (bool, error) {
	tag, err := t.tx.Exec(ctx, `
UPDATE inspection_executions
SET status = $2, completed_at = $3
WHERE id = $1 AND status <> $2`,
		executionID, string(models.ExecutionCompleted), at)
	if err != nil {
		return false, fmt.Errorf("database: complete execution %s: %w", executionID, err)
	}
	return tag.RowsAffected() == 1, nil
}

func loadItemExecution(ctx context.Context, q querier, query, id string) (*models.ItemExecution, error) {
	var (
		item        models.ItemExecution
		status      string
		finalResult *string
		aiResult    []byte
	)
	err := q.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.ExecutionID, &item.ItemID, &status, &finalResult, &aiResult, &item.CompletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("database: item execution %s: %w", id, err)
	}

	item.Status = models.ItemExecutionStatus(status)
	if finalResult != nil {
		item.FinalResult = models.FinalResult(*finalResult)
	}
	if len(aiResult) > 0 {
		var r models.AIResult
		if err := json.Unmarshal(aiResult, &r); err != nil {
			return nil, fmt.Errorf("database: decode ai_result of %s: %w", id, err)
		}
		item.AIResult = &r
	}
	return &item, nil
}
