package neologism

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/neologe-backend/internal/config"
	"github.com/heartmarshall/neologe-backend/internal/domain"
	"github.com/heartmarshall/neologe-backend/internal/llm"
	"github.com/heartmarshall/neologe-backend/pkg/ctxutil"
)

// testMocks bundles every dependency mock for one test.
type testMocks struct {
	submissions *submissionRepoMock
	responses   *responseRepoMock
	evaluations *evaluationRepoMock
	tx          *txManagerMock
	arbiter     *arbiterMock
}

// newTestService builds a Service around fresh mocks and the given evaluators.
func newTestService(evaluators []llm.Evaluator) (*Service, *testMocks) {
	mocks := &testMocks{
		submissions: &submissionRepoMock{},
		responses:   &responseRepoMock{},
		evaluations: &evaluationRepoMock{},
		tx:          &txManagerMock{},
		arbiter:     &arbiterMock{},
	}

	svc := NewService(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		mocks.submissions,
		mocks.responses,
		mocks.evaluations,
		mocks.tx,
		evaluators,
		mocks.arbiter,
		config.LLMConfig{
			CallTimeout:       time.Second,
			EvaluationTimeout: 5 * time.Second,
		},
	)
	return svc, mocks
}

// authedCtx returns a context carrying an authenticated user ID.
func authedCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

// okEvaluator returns an evaluator that always succeeds with the given definition.
func okEvaluator(name string, def domain.StandardizedDefinition) *evaluatorMock {
	return &evaluatorMock{
		NameFunc: func() string { return name },
		EvaluateFunc: func(ctx context.Context, word, userDefinition string, wordContext *string) (*domain.StandardizedDefinition, string, error) {
			d := def
			return &d, `{"raw": true}`, nil
		},
	}
}

// failEvaluator returns an evaluator that always fails with the given kind.
func failEvaluator(name string, kind llm.FailureKind) *evaluatorMock {
	return &evaluatorMock{
		NameFunc: func() string { return name },
		EvaluateFunc: func(ctx context.Context, word, userDefinition string, wordContext *string) (*domain.StandardizedDefinition, string, error) {
			return nil, "", &llm.ProviderFailure{Provider: name, Kind: kind, Detail: "induced failure"}
		},
	}
}

// testDefinition builds a valid definition with the given part of speech.
func testDefinition(word, pos string) domain.StandardizedDefinition {
	return domain.StandardizedDefinition{
		Word:         word,
		Definition:   "a definition of " + word,
		PartOfSpeech: pos,
		Confidence:   0.8,
	}
}

// pendingSubmission builds a pending submission owned by userID.
func pendingSubmission(userID uuid.UUID) domain.Submission {
	now := time.Now().UTC()
	return domain.Submission{
		ID:             uuid.New(),
		UserID:         userID,
		Word:           "doomscroll",
		UserDefinition: "to compulsively read bad news",
		Status:         domain.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// passthroughResponses wires the response mock to echo inserts back with
// fresh IDs, the way the real repository does.
func passthroughResponses(mocks *testMocks) {
	mocks.responses.CreateFunc = func(ctx context.Context, resp domain.ProviderResponse) (domain.ProviderResponse, error) {
		resp.ID = uuid.New()
		resp.ReceivedAt = time.Now().UTC()
		return resp, nil
	}
}
