package domain

import (
	"time"

	"github.com/google/uuid"
)

// Verdict is the arbiter's structured answer to "do these definitions
// materially disagree". The boolean is the single source of truth for
// conflict detection; the pipeline never second-guesses it.
type Verdict struct {
	Conflict    bool   `json:"conflict"`
	Explanation string `json:"explanation"`
}

// Evaluation is the conflict-analysis record for one submission.
// At most one exists per submission per analysis pass; user resolution
// updates this row rather than creating a new one.
type Evaluation struct {
	ID                 uuid.UUID
	SubmissionID       uuid.UUID
	ResponseIDs        []uuid.UUID
	Conflict           bool
	Explanation        string
	ResolutionChoice   *string
	ResolutionFeedback *string
	CreatedAt          time.Time
}
