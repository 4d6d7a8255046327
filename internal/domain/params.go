package domain

import "github.com/google/uuid"

// SubmissionCreate holds the fields for a new submission.
type SubmissionCreate struct {
	UserID         uuid.UUID
	Word           string
	UserDefinition string
	Context        *string
}

// SubmissionFilter narrows submission listings.
type SubmissionFilter struct {
	Status *SubmissionStatus
	Limit  int
	Offset int
}

// EvaluationCreate holds the fields for a new evaluation.
type EvaluationCreate struct {
	SubmissionID uuid.UUID
	ResponseIDs  []uuid.UUID
	Conflict     bool
	Explanation  string
}
