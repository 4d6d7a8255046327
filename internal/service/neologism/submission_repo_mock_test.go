package neologism

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/neologe-backend/internal/domain"
)

var _ submissionRepo = &submissionRepoMock{}

type submissionRepoMock struct {
	CreateFunc       func(ctx context.Context, params domain.SubmissionCreate) (domain.Submission, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (domain.Submission, error)
	ListByUserFunc   func(ctx context.Context, userID uuid.UUID, filter domain.SubmissionFilter) ([]domain.Submission, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, from, to domain.SubmissionStatus) error

	calls struct {
		Create []struct {
			Params domain.SubmissionCreate
		}
		GetByID []struct {
			ID uuid.UUID
		}
		ListByUser []struct {
			UserID uuid.UUID
			Filter domain.SubmissionFilter
		}
		UpdateStatus []struct {
			ID   uuid.UUID
			From domain.SubmissionStatus
			To   domain.SubmissionStatus
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockListByUser   sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *submissionRepoMock) Create(ctx context.Context, params domain.SubmissionCreate) (domain.Submission, error) {
	if mock.CreateFunc == nil {
		panic("submissionRepoMock.CreateFunc: method is nil but submissionRepo.Create was just called")
	}
	callInfo := struct {
		Params domain.SubmissionCreate
	}{Params: params}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, params)
}

func (mock *submissionRepoMock) CreateCalls() []struct {
	Params domain.SubmissionCreate
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *submissionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Submission, error) {
	if mock.GetByIDFunc == nil {
		panic("submissionRepoMock.GetByIDFunc: method is nil but submissionRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *submissionRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *submissionRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.SubmissionFilter) ([]domain.Submission, error) {
	if mock.ListByUserFunc == nil {
		panic("submissionRepoMock.ListByUserFunc: method is nil but submissionRepo.ListByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Filter domain.SubmissionFilter
	}{UserID: userID, Filter: filter}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, filter)
}

func (mock *submissionRepoMock) ListByUserCalls() []struct {
	UserID uuid.UUID
	Filter domain.SubmissionFilter
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *submissionRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.SubmissionStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("submissionRepoMock.UpdateStatusFunc: method is nil but submissionRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		ID   uuid.UUID
		From domain.SubmissionStatus
		To   domain.SubmissionStatus
	}{ID: id, From: from, To: to}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, from, to)
}

func (mock *submissionRepoMock) UpdateStatusCalls() []struct {
	ID   uuid.UUID
	From domain.SubmissionStatus
	To   domain.SubmissionStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
