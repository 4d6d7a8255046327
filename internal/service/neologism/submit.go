package neologism

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/neologe-backend/internal/domain"
	"github.com/heartmarshall/neologe-backend/pkg/ctxutil"
)

// Submit records a new word in the pending status and kicks off its
// evaluation in the background. The response returns immediately; the
// caller polls the submission to observe the outcome.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (domain.Submission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Submission{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Submission{}, err
	}

	sub, err := s.submissions.Create(ctx, domain.SubmissionCreate{
		UserID:         userID,
		Word:           input.Word,
		UserDefinition: input.UserDefinition,
		Context:        input.Context,
	})
	if err != nil {
		return domain.Submission{}, fmt.Errorf("create submission: %w", err)
	}

	s.log.InfoContext(ctx, "submission accepted",
		slog.String("submission_id", sub.ID.String()), slog.String("word", sub.Word))

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("evaluation panicked",
					slog.String("submission_id", sub.ID.String()), slog.Any("panic", r))
			}
		}()

		// Detach from the request context: the HTTP response has already
		// been sent, so request cancellation must not kill the pipeline.
		evalCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.EvaluationTimeout)
		defer cancel()

		s.runEvaluation(evalCtx, sub)
	}()

	return sub, nil
}
