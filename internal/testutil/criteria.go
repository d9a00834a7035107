// Package testutil provides fakes shared by the package tests: an in-memory
// criteria store, an in-memory execution store, image workers served over
// bufconn, and token helpers.
package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"inspection-hub/go-backend/internal/models"
)

// CriteriaStore is an in-memory judgment.CriteriaStore.
type CriteriaStore struct {
	mu         sync.Mutex
	byItem     map[string]*models.Criterion
	byPipeline map[[3]string]*models.Criterion
	err        error

	itemCalls     atomic.Int64
	pipelineCalls atomic.Int64
}

func NewCriteriaStore() *CriteriaStore {
	return &CriteriaStore{
		byItem:     make(map[string]*models.Criterion),
		byPipeline: make(map[[3]string]*models.Criterion),
	}
}

func (s *CriteriaStore) AddItemCriterion(itemID string, c *models.Criterion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byItem[itemID] = c
}

// AddPipelineCriterion registers c for the triple and for its item id.
func (s *CriteriaStore) AddPipelineCriterion(productCode, processCode, pipelineID string, c *models.Criterion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byPipeline[[3]string{productCode, processCode, pipelineID}] = c
	if c.ItemID != "" {
		s.byItem[c.ItemID] = c
	}
}

// FailWith makes every lookup return err until called again with nil.
func (s *CriteriaStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *CriteriaStore) CriterionByItem(_ context.Context, itemID string) (*models.Criterion, error) {
	s.itemCalls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.byItem[itemID], nil
}

func (s *CriteriaStore) CriterionByPipeline(_ context.Context, productCode, processCode, pipelineID string) (*models.Criterion, error) {
	s.pipelineCalls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.byPipeline[[3]string{productCode, processCode, pipelineID}], nil
}

func (s *CriteriaStore) ItemCalls() int64     { return s.itemCalls.Load() }
func (s *CriteriaStore) PipelineCalls() int64 { return s.pipelineCalls.Load() }
