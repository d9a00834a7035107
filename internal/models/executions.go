package models

import "time"

type ItemExecutionStatus string

const (
	ItemPending     ItemExecutionStatus = "PENDING"
	ItemInProgress  ItemExecutionStatus = "IN_PROGRESS"
	ItemAICompleted ItemExecutionStatus = "AI_COMPLETED"
	ItemFailed      ItemExecutionStatus = "FAILED"
	ItemCompleted   ItemExecutionStatus = "COMPLETED"
)

type FinalResult string

const (
	FinalOK            FinalResult = "OK"
	FinalNG            FinalResult = "NG"
	FinalPendingReview FinalResult = "PENDING_REVIEW"
	FinalInconclusive  FinalResult = "INCONCLUSIVE"
)

type ExecutionStatus string

const (
	ExecutionInProgress ExecutionStatus = "IN_PROGRESS"
	ExecutionCompleted  ExecutionStatus = "COMPLETED"
)

// AIResult is stored in inspection_item_executions.ai_result.
type AIResult struct {
	Judgment   Judgment          `json:"judgment"`
	CriteriaID string            `json:"criteria_id,omitempty"`
	ItemID     string            `json:"item_id,omitempty"`
	PipelineID string            `json:"pipeline_id,omitempty"`
	Metrics    map[string]string `json:"metrics,omitempty"`
}

type ItemExecution struct {
	ID          string
	ExecutionID string
	ItemID      string
	Status      ItemExecutionStatus

	// FinalResult is empty until the item is finalized.
	FinalResult FinalResult
	AIResult    *AIResult
	CompletedAt *time.Time
}

type Execution struct {
	ID          string
	Status      ExecutionStatus
	StartedAt   time.Time
	CompletedAt *time.Time
}

// JudgmentEvent is published by the frame router for every judged frame that
// belongs to an item execution.
type JudgmentEvent struct {
	ID              string
	ExecutionID     string
	ItemExecutionID string
	SourceID        string
	Judgment        Judgment
	CriteriaID      string
	ItemID          string
	PipelineID      string
	Metrics         map[string]string
	ObservedAt      time.Time
}

// AIResult builds the ai_result payload carried by the event.
func (e JudgmentEvent) AIResult() *AIResult {
	return &AIResult{
		Judgment:   e.Judgment,
		CriteriaID: e.CriteriaID,
		ItemID:     e.ItemID,
		PipelineID: e.PipelineID,
		Metrics:    e.Metrics,
	}
}
