package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/neologe-backend/internal/domain"
	"github.com/heartmarshall/neologe-backend/internal/service/neologism"
)

// Ensure, that neologismServiceMock does implement neologismService.
var _ neologismService = &neologismServiceMock{}

// neologismServiceMock is a mock implementation of neologismService.
type neologismServiceMock struct {
	// SubmitFunc mocks the Submit method.
	SubmitFunc func(ctx context.Context, input neologism.SubmitInput) (domain.Submission, error)

	// GetFunc mocks the Get method.
	GetFunc func(ctx context.Context, id uuid.UUID) (neologism.SubmissionDetail, error)

	// ListFunc mocks the List method.
	ListFunc func(ctx context.Context, input neologism.ListInput) ([]domain.Submission, error)

	// ResolveFunc mocks the Resolve method.
	ResolveFunc func(ctx context.Context, input neologism.ResolveInput) (domain.Submission, error)

	// calls tracks calls to the methods.
	calls struct {
		Submit []struct {
			Ctx   context.Context
			Input neologism.SubmitInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input neologism.ListInput
		}
		Resolve []struct {
			Ctx   context.Context
			Input neologism.ResolveInput
		}
	}
	lockSubmit  sync.RWMutex
	lockGet     sync.RWMutex
	lockList    sync.RWMutex
	lockResolve sync.RWMutex
}

// Submit calls SubmitFunc.
func (mock *neologismServiceMock) Submit(ctx context.Context, input neologism.SubmitInput) (domain.Submission, error) {
	if mock.SubmitFunc == nil {
		panic("neologismServiceMock.SubmitFunc: method is nil but neologismService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input neologism.SubmitInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

// SubmitCalls gets all the calls that were made to Submit.
func (mock *neologismServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input neologism.SubmitInput
} {
	mock.lockSubmit.RLock()
	defer mock.lockSubmit.RUnlock()
	return mock.calls.Submit
}

// Get calls GetFunc.
func (mock *neologismServiceMock) Get(ctx context.Context, id uuid.UUID) (neologism.SubmissionDetail, error) {
	if mock.GetFunc == nil {
		panic("neologismServiceMock.GetFunc: method is nil but neologismService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

// GetCalls gets all the calls that were made to Get.
func (mock *neologismServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

// List calls ListFunc.
func (mock *neologismServiceMock) List(ctx context.Context, input neologism.ListInput) ([]domain.Submission, error) {
	if mock.ListFunc == nil {
		panic("neologismServiceMock.ListFunc: method is nil but neologismService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input neologism.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

// ListCalls gets all the calls that were made to List.
func (mock *neologismServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input neologism.ListInput
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

// Resolve calls ResolveFunc.
func (mock *neologismServiceMock) Resolve(ctx context.Context, input neologism.ResolveInput) (domain.Submission, error) {
	if mock.ResolveFunc == nil {
		panic("neologismServiceMock.ResolveFunc: method is nil but neologismService.Resolve was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input neologism.ResolveInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, input)
}

// ResolveCalls gets all the calls that were made to Resolve.
func (mock *neologismServiceMock) ResolveCalls() []struct {
	Ctx   context.Context
	Input neologism.ResolveInput
} {
	mock.lockResolve.RLock()
	defer mock.lockResolve.RUnlock()
	return mock.calls.Resolve
}
