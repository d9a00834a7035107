package testutil

import (
	"context"
	"maps"
	"sync"
	"time"

	"inspection-hub/go-backend/internal/aggregator"
	"inspection-hub/go-backend/internal/models"
)

// ExecutionStore is an in-memory aggregator.Store. Transactions are
// serialized and work on a copy that is only committed when fn succeeds.
type ExecutionStore struct {
	mu         sync.Mutex
	items      map[string]models.ItemExecution
	executions map[string]models.Execution
	failNext   error
	commits    int
}

func NewExecutionStore() *ExecutionStore {
	return &ExecutionStore{
		items:      make(map[string]models.ItemExecution),
		executions: make(map[string]models.Execution),
	}
}

func (s *ExecutionStore) AddExecution(id string, startedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executions[id] = models.Execution{ID: id, Status: models.ExecutionInProgress, StartedAt: startedAt}
}

func (s *ExecutionStore) AddItemExecution(id, executionID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = models.ItemExecution{ID: id, ExecutionID: executionID, ItemID: itemID, Status: models.ItemPending}
}

// FailNext makes the next transaction fail with err after running fn.
func (s *ExecutionStore) FailNext(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = err
}

func (s *ExecutionStore) Item(id string) (models.ItemExecution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	return cloneItem(item), ok
}

func (s *ExecutionStore) Execution(id string) (models.Execution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.executions[id]
	return cloneExecution(e), ok
}

func (s *ExecutionStore) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func (s *ExecutionStore) InTx(ctx context.Context, fn func(tx aggregator.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{
		items:      make(map[string]models.ItemExecution, len(s.items)),
		executions: make(map[string]models.Execution, len(s.executions)),
	}
	for k, v := range s.items {
		tx.items[k] = cloneItem(v)
	}
	for k, v := range s.executions {
		tx.executions[k] = cloneExecution(v)
	}

	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return err
	}

	s.items = tx.items
	s.executions = tx.executions
	s.commits++
	return nil
}

type memTx struct {
	items      map[string]models.ItemExecution
	executions map[string]models.Execution
}

func (t *memTx) LoadItemExecution(_ context.Context, id string) (*models.ItemExecution, error) {
	item, ok := t.items[id]
	if !ok {
		return nil, nil
	}
	c := cloneItem(item)
	return &c, nil
}

func (t *memTx) SaveItemExecution(_ context.Context, item *models.ItemExecution) error {
	t.items[item.ID] = cloneItem(*item)
	return nil
}

func (t *memTx) CountItemExecutions(_ context.Context, executionID string) (int, int, error) {
	var done, total int
	for _, item := range t.items {
		if item.ExecutionID != executionID {
			continue
		}
		total++
		if item.Status == models.ItemCompleted {
			done++
		}
	}
	return done, total, nil
}

func (t *memTx) CompleteExecution(_ context.Context, executionID string, at time.Time) (bool, error) {
	e, ok := t.executions[executionID]
	if !ok || e.Status == models.ExecutionCompleted {
		return false, nil
	}
	e.Status = models.ExecutionCompleted
	e.CompletedAt = &at
	t.executions[executionID] = e
	return true, nil
}

func cloneItem(item models.ItemExecution) models.ItemExecution {
	if item.AIResult != nil {
		r := *item.AIResult
		r.Metrics = maps.Clone(r.Metrics)
		item.AIResult = &r
	}
	if item.CompletedAt != nil {
		t := *item.CompletedAt
		item.CompletedAt = &t
	}
	return item
}

func cloneExecution(e models.Execution) models.Execution {
	if e.CompletedAt != nil {
		t := *e.CompletedAt
		e.CompletedAt = &t
	}
	return e
}
