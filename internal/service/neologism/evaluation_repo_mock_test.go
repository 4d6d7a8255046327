package neologism

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/neologe-backend/internal/domain"
)

var _ evaluationRepo = &evaluationRepoMock{}

type evaluationRepoMock struct {
	CreateFunc          func(ctx context.Context, params domain.EvaluationCreate) (domain.Evaluation, error)
	GetBySubmissionFunc func(ctx context.Context, submissionID uuid.UUID) (domain.Evaluation, error)
	SetResolutionFunc   func(ctx context.Context, submissionID uuid.UUID, choice string, feedback *string) error

	calls struct {
		Create []struct {
			Params domain.EvaluationCreate
		}
		GetBySubmission []struct {
			SubmissionID uuid.UUID
		}
		SetResolution []struct {
			SubmissionID uuid.UUID
			Choice       string
			Feedback     *string
		}
	}
	lockCreate          sync.RWMutex
	lockGetBySubmission sync.RWMutex
	lockSetResolution   sync.RWMutex
}

func (mock *evaluationRepoMock) Create(ctx context.Context, params domain.EvaluationCreate) (domain.Evaluation, error) {
	if mock.CreateFunc == nil {
		panic("evaluationRepoMock.CreateFunc: method is nil but evaluationRepo.Create was just called")
	}
	callInfo := struct {
		Params domain.EvaluationCreate
	}{Params: params}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, params)
}

func (mock *evaluationRepoMock) CreateCalls() []struct {
	Params domain.EvaluationCreate
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *evaluationRepoMock) GetBySubmission(ctx context.Context, submissionID uuid.UUID) (domain.Evaluation, error) {
	if mock.GetBySubmissionFunc == nil {
		panic("evaluationRepoMock.GetBySubmissionFunc: method is nil but evaluationRepo.GetBySubmission was just called")
	}
	callInfo := struct {
		SubmissionID uuid.UUID
	}{SubmissionID: submissionID}
	mock.lockGetBySubmission.Lock()
	mock.calls.GetBySubmission = append(mock.calls.GetBySubmission, callInfo)
	mock.lockGetBySubmission.Unlock()
	return mock.GetBySubmissionFunc(ctx, submissionID)
}

func (mock *evaluationRepoMock) GetBySubmissionCalls() []struct {
	SubmissionID uuid.UUID
} {
	mock.lockGetBySubmission.RLock()
	calls := mock.calls.GetBySubmission
	mock.lockGetBySubmission.RUnlock()
	return calls
}

func (mock *evaluationRepoMock) SetResolution(ctx context.Context, submissionID uuid.UUID, choice string, feedback *string) error {
	if mock.SetResolutionFunc == nil {
		panic("evaluationRepoMock.SetResolutionFunc: method is nil but evaluationRepo.SetResolution was just called")
	}
	callInfo := struct {
		SubmissionID uuid.UUID
		Choice       string
		Feedback     *string
	}{SubmissionID: submissionID, Choice: choice, Feedback: feedback}
	mock.lockSetResolution.Lock()
	mock.calls.SetResolution = append(mock.calls.SetResolution, callInfo)
	mock.lockSetResolution.Unlock()
	return mock.SetResolutionFunc(ctx, submissionID, choice, feedback)
}

func (mock *evaluationRepoMock) SetResolutionCalls() []struct {
	SubmissionID uuid.UUID
	Choice       string
	Feedback     *string
} {
	mock.lockSetResolution.RLock()
	calls := mock.calls.SetResolution
	mock.lockSetResolution.RUnlock()
	return calls
}
