package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4"

	"inspection-hub/go-backend/internal/models"
)

const criterionByItemSQL = `
SELECT c.id, i.id, i.pipeline_id, c.judgment_type, c.spec
FROM inspection_items i
JOIN inspection_criterias c ON c.id = i.criteria_id
WHERE i.id = $1`

// The newest target for any group the product belongs to wins.
const criterionByPipelineSQL = `
WITH target AS (
    SELECT t.id
    FROM inspection_targets t
    JOIN product_group_members m ON m.group_id = t.group_id
    WHERE m.product_code = $1 AND t.process_code = $2
    ORDER BY t.created_at DESC, t.id DESC
    LIMIT 1
)
SELECT c.id, i.id, i.pipeline_id, c.judgment_type, c.spec
FROM inspection_items i
JOIN target ON i.target_id = target.id
JOIN inspection_criterias c ON c.id = i.criteria_id
WHERE i.pipeline_id = $3
ORDER BY i.created_at DESC, i.id DESC
LIMIT 1`

// CriterionByItem implements judgment.CriteriaStore.
func (db *DB) CriterionByItem(ctx context.Context, itemID string) (*models.Criterion, error) {
	c, err := scanCriterion(db.pool.QueryRow(ctx, criterionByItemSQL, itemID))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("database: criterion for item %s: %w", itemID, err)
	}
	return c, nil
}

// CriterionByPipeline implements judgment.CriteriaStore.
func (db *DB) CriterionByPipeline(ctx context.Context, productCode, processCode, pipelineID string) (*models.Criterion, error) {
	c, err := scanCriterion(db.pool.QueryRow(ctx, criterionByPipelineSQL, productCode, processCode, pipelineID))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("database: criterion for %s/%s/%s: %w", productCode, processCode, pipelineID, err)
	}
	return c, nil
}

func scanCriterion(row pgx.Row) (*models.Criterion, error) {
	var (
		c    models.Criterion
		typ  string
		spec []byte
	)
	if err := row.Scan(&c.ID, &c.ItemID, &c.PipelineID, &typ, &spec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	c.Type = models.JudgmentType(strings.ToUpper(typ))
	c.Spec = models.ParseCriterionSpec(c.Type, spec)
	return &c, nil
}
