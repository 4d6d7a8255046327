// Package neologism implements the submission lifecycle: accepting new
// words, fanning the definition request out to every configured language
// model, detecting disagreement between their answers, and applying the
// user's resolution when they disagree.
package neologism

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/neologe-backend/internal/config"
	"github.com/heartmarshall/neologe-backend/internal/domain"
	"github.com/heartmarshall/neologe-backend/internal/llm"
)

// submissionRepo defines the submission repository interface needed by the service.
type submissionRepo interface {
	Create(ctx context.Context, params domain.SubmissionCreate) (domain.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Submission, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter domain.SubmissionFilter) ([]domain.Submission, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.SubmissionStatus) error
}

// responseRepo defines the provider response repository interface needed by the service.
type responseRepo interface {
	Create(ctx context.Context, resp domain.ProviderResponse) (domain.ProviderResponse, error)
	ListBySubmission(ctx context.Context, submissionID uuid.UUID) ([]domain.ProviderResponse, error)
}

// evaluationRepo defines the evaluation repository interface needed by the service.
type evaluationRepo interface {
	Create(ctx context.Context, params domain.EvaluationCreate) (domain.Evaluation, error)
	GetBySubmission(ctx context.Context, submissionID uuid.UUID) (domain.Evaluation, error)
	SetResolution(ctx context.Context, submissionID uuid.UUID, choice string, feedback *string) error
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements neologism submission operations.
type Service struct {
	log         *slog.Logger
	submissions submissionRepo
	responses   responseRepo
	evaluations evaluationRepo
	tx          txManager
	evaluators  []llm.Evaluator
	arbiter     llm.Arbiter
	cfg         config.LLMConfig

	// inflight tracks background evaluation goroutines so shutdown can
	// wait for them instead of abandoning submissions mid-pipeline.
	inflight sync.WaitGroup
}

// NewService creates a new neologism service instance.
func NewService(
	logger *slog.Logger,
	submissions submissionRepo,
	responses responseRepo,
	evaluations evaluationRepo,
	tx txManager,
	evaluators []llm.Evaluator,
	arbiter llm.Arbiter,
	cfg config.LLMConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "neologism"),
		submissions: submissions,
		responses:   responses,
		evaluations: evaluations,
		tx:          tx,
		evaluators:  evaluators,
		arbiter:     arbiter,
		cfg:         cfg,
	}
}

// Wait blocks until all in-flight background evaluations finish.
func (s *Service) Wait() {
	s.inflight.Wait()
}
