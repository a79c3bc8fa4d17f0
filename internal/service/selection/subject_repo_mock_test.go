package selection

import (
	"context"
	"sync"

	"github.com/kikiarya/hsc-planner/internal/domain"
)

var _ subjectRepo = &subjectRepoMock{}

type subjectRepoMock struct {
	ListFunc      func(ctx context.Context, category *domain.SubjectCategory) ([]domain.Subject, error)
	GetByCodeFunc func(ctx context.Context, code string) (*domain.Subject, error)

	calls struct {
		List []struct {
			Ctx      context.Context
			Category *domain.SubjectCategory
		}
		GetByCode []struct {
			Ctx  context.Context
			Code string
		}
	}
	lockList      sync.RWMutex
	lockGetByCode sync.RWMutex
}

func (mock *subjectRepoMock) List(ctx context.Context, category *domain.SubjectCategory) ([]domain.Subject, error) {
	if mock.ListFunc == nil {
		panic("subjectRepoMock.ListFunc: method is nil but subjectRepo.List was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category *domain.SubjectCategory
	}{Ctx: ctx, Category: category}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, category)
}

func (mock *subjectRepoMock) ListCalls() []struct {
	Ctx      context.Context
	Category *domain.SubjectCategory
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *subjectRepoMock) GetByCode(ctx context.Context, code string) (*domain.Subject, error) {
	if mock.GetByCodeFunc == nil {
		panic("subjectRepoMock.GetByCodeFunc: method is nil but subjectRepo.GetByCode was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{Ctx: ctx, Code: code}
	mock.lockGetByCode.Lock()
	mock.calls.GetByCode = append(mock.calls.GetByCode, callInfo)
	mock.lockGetByCode.Unlock()
	return mock.GetByCodeFunc(ctx, code)
}

func (mock *subjectRepoMock) GetByCodeCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockGetByCode.RLock()
	calls := mock.calls.GetByCode
	mock.lockGetByCode.RUnlock()
	return calls
}
