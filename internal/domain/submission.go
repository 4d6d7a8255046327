package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus represents the lifecycle state of a neologism submission.
type SubmissionStatus string

const (
	StatusPending   SubmissionStatus = "pending"
	StatusEvaluated SubmissionStatus = "evaluated"
	StatusConflict  SubmissionStatus = "conflict"
	StatusResolved  SubmissionStatus = "resolved"
	StatusLLMError  SubmissionStatus = "llm_error"
)

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusEvaluated, StatusConflict, StatusResolved, StatusLLMError:
		return true
	}
	return false
}

// IsTerminal reports whether no further automatic processing happens in this status.
// A conflict submission is not terminal: it waits on user resolution.
func (s SubmissionStatus) IsTerminal() bool {
	switch s {
	case StatusEvaluated, StatusResolved, StatusLLMError:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition s -> to is part of the
// submission lifecycle. Evaluation moves pending to evaluated, conflict or
// llm_error; user resolution moves conflict to resolved. Nothing else.
func (s SubmissionStatus) CanTransitionTo(to SubmissionStatus) bool {
	switch s {
	case StatusPending:
		return to == StatusEvaluated || to == StatusConflict || to == StatusLLMError
	case StatusConflict:
		return to == StatusResolved
	}
	return false
}

// Submission is a user-proposed neologism under evaluation.
// Mutated only through the evaluation pipeline and the resolution handler.
type Submission struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Word           string
	UserDefinition string
	Context        *string
	Status         SubmissionStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
