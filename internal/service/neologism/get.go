package neologism

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/neologe-backend/internal/domain"
	"github.com/heartmarshall/neologe-backend/pkg/ctxutil"
)

// Get returns a submission with its provider responses and evaluation.
// Other users' submissions come back as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (SubmissionDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return SubmissionDetail{}, domain.ErrUnauthorized
	}

	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return SubmissionDetail{}, err
	}
	if sub.UserID != userID {
		return SubmissionDetail{}, fmt.Errorf("submission %s: %w", id, domain.ErrNotFound)
	}

	responses, err := s.responses.ListBySubmission(ctx, id)
	if err != nil {
		return SubmissionDetail{}, fmt.Errorf("list responses: %w", err)
	}

	detail := SubmissionDetail{
		Submission: sub,
		Responses:  responses,
	}

	ev, err := s.evaluations.GetBySubmission(ctx, id)
	switch {
	case err == nil:
		detail.Evaluation = &ev
	case errors.Is(err, domain.ErrNotFound):
		// No arbiter pass ran for this submission.
	default:
		return SubmissionDetail{}, fmt.Errorf("get evaluation: %w", err)
	}

	return detail, nil
}

// List returns the user's submissions, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Submission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	return s.submissions.ListByUser(ctx, userID, domain.SubmissionFilter{
		Status: input.Status,
		Limit:  limit,
		Offset: input.Offset,
	})
}
