package neologism

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/neologe-backend/internal/domain"
)

const (
	maxWordLen       = 100
	maxDefinitionLen = 2000
	maxContextLen    = 2000
	maxFeedbackLen   = 2000
)

// SubmitInput holds the parameters for submitting a new word.
type SubmitInput struct {
	Word           string
	UserDefinition string
	Context        *string
}

// Validate checks all fields and collects all errors.
func (i *SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.Word == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if len(i.Word) > maxWordLen {
		errs = append(errs, domain.FieldError{Field: "word", Message: "max 100 characters"})
	}
	if i.UserDefinition == "" {
		errs = append(errs, domain.FieldError{Field: "user_definition", Message: "required"})
	}
	if len(i.UserDefinition) > maxDefinitionLen {
		errs = append(errs, domain.FieldError{Field: "user_definition", Message: "max 2000 characters"})
	}
	if i.Context != nil && len(*i.Context) > maxContextLen {
		errs = append(errs, domain.FieldError{Field: "context", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ResolveInput holds the parameters for resolving a conflicted submission.
// Choice names the definition the user sides with: a provider name, or
// "user" for their own original definition.
type ResolveInput struct {
	SubmissionID uuid.UUID
	Choice       string
	Feedback     *string
}

// Validate checks all fields and collects all errors.
func (i *ResolveInput) Validate() error {
	var errs []domain.FieldError

	if i.SubmissionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "submission_id", Message: "required"})
	}
	if i.Choice == "" {
		errs = append(errs, domain.FieldError{Field: "choice", Message: "required"})
	}
	if len(i.Choice) > 50 {
		errs = append(errs, domain.FieldError{Field: "choice", Message: "max 50 characters"})
	}
	if i.Feedback != nil && len(*i.Feedback) > maxFeedbackLen {
		errs = append(errs, domain.FieldError{Field: "feedback", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing a user's submissions.
type ListInput struct {
	Status *domain.SubmissionStatus
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
