package neologism

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/neologe-backend/internal/domain"
	"github.com/heartmarshall/neologe-backend/internal/llm"
)

// runEvaluation drives one submission through the full pipeline:
// fan out to every evaluator, record every attempt, then decide the
// terminal status.
//
//	0 usable definitions  -> llm_error
//	1 usable definition   -> evaluated (nothing to compare)
//	2+ usable definitions -> ask the arbiter; conflict -> conflict,
//	                         agreement -> evaluated, arbiter failure -> llm_error
//
// Status changes go through compare-and-set on the pending status, so a
// concurrent evaluation of the same submission resolves to exactly one
// winner and the losers back out without touching anything.
func (s *Service) runEvaluation(ctx context.Context, sub domain.Submission) {
	log := s.log.With(
		slog.String("submission_id", sub.ID.String()),
		slog.String("word", sub.Word),
	)

	results := s.fanOut(ctx, sub)

	var succeeded []domain.ProviderResponse
	for _, res := range results {
		created, err := s.responses.Create(ctx, res)
		if err != nil {
			log.ErrorContext(ctx, "record provider response",
				slog.String("provider", res.Provider), slog.Any("error", err))
			continue
		}
		if created.Succeeded() {
			succeeded = append(succeeded, created)
		}
	}

	log.InfoContext(ctx, "fan-out complete",
		slog.Int("providers", len(results)), slog.Int("succeeded", len(succeeded)))

	switch len(succeeded) {
	case 0:
		s.finalize(ctx, log, sub.ID, domain.StatusLLMError)
		return
	case 1:
		s.finalize(ctx, log, sub.ID, domain.StatusEvaluated)
		return
	}

	defs := make([]domain.StandardizedDefinition, len(succeeded))
	responseIDs := make([]uuid.UUID, len(succeeded))
	for i, resp := range succeeded {
		defs[i] = *resp.Definition
		responseIDs[i] = resp.ID
	}

	verdict, err := s.arbiter.Judge(ctx, sub.Word, defs)
	if err != nil {
		log.ErrorContext(ctx, "arbiter failed", slog.Any("error", err))
		s.finalize(ctx, log, sub.ID, domain.StatusLLMError)
		return
	}

	target := domain.StatusEvaluated
	if verdict.Conflict {
		target = domain.StatusConflict
	}

	// Evaluation insert and status change commit together: if the CAS
	// loses to a concurrent pass, the evaluation row rolls back too.
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.evaluations.Create(ctx, domain.EvaluationCreate{
			SubmissionID: sub.ID,
			ResponseIDs:  responseIDs,
			Conflict:     verdict.Conflict,
			Explanation:  verdict.Explanation,
		}); err != nil {
			return fmt.Errorf("create evaluation: %w", err)
		}
		return s.submissions.UpdateStatus(ctx, sub.ID, domain.StatusPending, target)
	})
	switch {
	case err == nil:
		log.InfoContext(ctx, "evaluation finished",
			slog.Bool("conflict", verdict.Conflict), slog.String("status", string(target)))
	case errors.Is(err, domain.ErrInvalidStateTransition), errors.Is(err, domain.ErrAlreadyExists):
		log.WarnContext(ctx, "submission already finalized by concurrent evaluation")
	default:
		log.ErrorContext(ctx, "persist evaluation", slog.Any("error", err))
	}
}

// fanOut calls every evaluator concurrently and returns one response per
// provider, successful or not, in evaluator order. Each call gets its own
// timeout so a slow provider cannot starve the others of budget.
func (s *Service) fanOut(ctx context.Context, sub domain.Submission) []domain.ProviderResponse {
	results := make([]domain.ProviderResponse, len(s.evaluators))

	var wg sync.WaitGroup
	for i, ev := range s.evaluators {
		wg.Add(1)
		go func() {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
			defer cancel()

			def, raw, err := ev.Evaluate(callCtx, sub.Word, sub.UserDefinition, sub.Context)

			resp := domain.ProviderResponse{
				SubmissionID: sub.ID,
				Provider:     ev.Name(),
			}
			if raw != "" {
				resp.RawResponse = &raw
			}

			if err != nil {
				kind := string(llm.FailureHTTPError)
				detail := err.Error()
				var pf *llm.ProviderFailure
				if errors.As(err, &pf) {
					kind = string(pf.Kind)
					detail = pf.Detail
				}
				resp.FailureKind = &kind
				resp.FailureDetail = &detail
			} else {
				resp.Definition = def
			}

			results[i] = resp
		}()
	}
	wg.Wait()

	return results
}

// finalize moves a pending submission to a terminal status without an
// evaluation row. A CAS miss means another pass got there first.
func (s *Service) finalize(ctx context.Context, log *slog.Logger, id uuid.UUID, to domain.SubmissionStatus) {
	err := s.submissions.UpdateStatus(ctx, id, domain.StatusPending, to)
	switch {
	case err == nil:
		log.InfoContext(ctx, "evaluation finished", slog.String("status", string(to)))
	case errors.Is(err, domain.ErrInvalidStateTransition):
		log.WarnContext(ctx, "submission already finalized by concurrent evaluation")
	default:
		log.ErrorContext(ctx, "update submission status", slog.Any("error", err))
	}
}
