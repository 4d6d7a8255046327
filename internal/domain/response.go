package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProviderResponse records one provider attempt for one submission.
// Rows are append-only: retries create new rows, never overwrites.
// Exactly one of Definition and FailureKind is set.
type ProviderResponse struct {
	ID            uuid.UUID
	SubmissionID  uuid.UUID
	Provider      string
	RawResponse   *string
	Definition    *StandardizedDefinition
	FailureKind   *string
	FailureDetail *string
	ReceivedAt    time.Time
}

// Succeeded reports whether this attempt produced a usable definition.
func (r ProviderResponse) Succeeded() bool {
	return r.Definition != nil && r.FailureKind == nil
}
