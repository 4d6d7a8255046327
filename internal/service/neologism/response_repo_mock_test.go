package neologism

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/neologe-backend/internal/domain"
)

var _ responseRepo = &responseRepoMock{}

type responseRepoMock struct {
	CreateFunc           func(ctx context.Context, resp domain.ProviderResponse) (domain.ProviderResponse, error)
	ListBySubmissionFunc func(ctx context.Context, submissionID uuid.UUID) ([]domain.ProviderResponse, error)

	calls struct {
		Create []struct {
			Resp domain.ProviderResponse
		}
		ListBySubmission []struct {
			SubmissionID uuid.UUID
		}
	}
	lockCreate           sync.RWMutex
	lockListBySubmission sync.RWMutex
}

func (mock *responseRepoMock) Create(ctx context.Context, resp domain.ProviderResponse) (domain.ProviderResponse, error) {
	if mock.CreateFunc == nil {
		panic("responseRepoMock.CreateFunc: method is nil but responseRepo.Create was just called")
	}
	callInfo := struct {
		Resp domain.ProviderResponse
	}{Resp: resp}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, resp)
}

func (mock *responseRepoMock) CreateCalls() []struct {
	Resp domain.ProviderResponse
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *responseRepoMock) ListBySubmission(ctx context.Context, submissionID uuid.UUID) ([]domain.ProviderResponse, error) {
	if mock.ListBySubmissionFunc == nil {
		panic("responseRepoMock.ListBySubmissionFunc: method is nil but responseRepo.ListBySubmission was just called")
	}
	callInfo := struct {
		SubmissionID uuid.UUID
	}{SubmissionID: submissionID}
	mock.lockListBySubmission.Lock()
	mock.calls.ListBySubmission = append(mock.calls.ListBySubmission, callInfo)
	mock.lockListBySubmission.Unlock()
	return mock.ListBySubmissionFunc(ctx, submissionID)
}

func (mock *responseRepoMock) ListBySubmissionCalls() []struct {
	SubmissionID uuid.UUID
} {
	mock.lockListBySubmission.RLock()
	calls := mock.calls.ListBySubmission
	mock.lockListBySubmission.RUnlock()
	return calls
}
