package neologism

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/neologe-backend/internal/domain"
	"github.com/heartmarshall/neologe-backend/pkg/ctxutil"
)

// choiceUser is the resolution choice meaning "keep my own definition".
const choiceUser = "user"

// Resolve applies the user's decision to a conflicted submission.
// Only the submission's owner may resolve it, only from the conflict
// status, and only in favor of their own definition or a provider that
// actually produced one.
func (s *Service) Resolve(ctx context.Context, input ResolveInput) (domain.Submission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Submission{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Submission{}, err
	}

	sub, err := s.submissions.GetByID(ctx, input.SubmissionID)
	if err != nil {
		return domain.Submission{}, err
	}
	// Hide other users' submissions rather than admitting they exist.
	if sub.UserID != userID {
		return domain.Submission{}, fmt.Errorf("submission %s: %w", input.SubmissionID, domain.ErrNotFound)
	}

	if sub.Status != domain.StatusConflict {
		return domain.Submission{}, &domain.StateTransitionError{From: sub.Status, To: domain.StatusResolved}
	}

	if input.Choice != choiceUser {
		if err := s.checkProviderChoice(ctx, input); err != nil {
			return domain.Submission{}, err
		}
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.evaluations.SetResolution(ctx, sub.ID, input.Choice, input.Feedback); err != nil {
			return fmt.Errorf("set resolution: %w", err)
		}
		return s.submissions.UpdateStatus(ctx, sub.ID, domain.StatusConflict, domain.StatusResolved)
	})
	if err != nil {
		return domain.Submission{}, err
	}

	s.log.InfoContext(ctx, "submission resolved",
		slog.String("submission_id", sub.ID.String()), slog.String("choice", input.Choice))

	return s.submissions.GetByID(ctx, sub.ID)
}

// checkProviderChoice verifies that a provider-named choice points at a
// provider that returned a usable definition for this submission.
func (s *Service) checkProviderChoice(ctx context.Context, input ResolveInput) error {
	responses, err := s.responses.ListBySubmission(ctx, input.SubmissionID)
	if err != nil {
		return fmt.Errorf("list responses: %w", err)
	}

	for _, resp := range responses {
		if resp.Provider == input.Choice && resp.Succeeded() {
			return nil
		}
	}
	return domain.NewValidationError("choice", `must be "user" or a provider with a successful response`)
}
