package selection

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kikiarya/hsc-planner/internal/domain"
)

var _ selectionRepo = &selectionRepoMock{}

type selectionRepoMock struct {
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.Selection, error)
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	ExistsByKeyFunc func(ctx context.Context, userID uuid.UUID, code string, name string) (bool, error)
	LockUserFunc    func(ctx context.Context, userID uuid.UUID) error
	CreateFunc      func(ctx context.Context, sel domain.Selection) (*domain.Selection, error)
	DeleteFunc      func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CountByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ExistsByKey []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Code   string
			Name   string
		}
		LockUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			Sel domain.Selection
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockListByUser  sync.RWMutex
	lockCountByUser sync.RWMutex
	lockExistsByKey sync.RWMutex
	lockLockUser    sync.RWMutex
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *selectionRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Selection, error) {
	if mock.ListByUserFunc == nil {
		panic("selectionRepoMock.ListByUserFunc: method is nil but selectionRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *selectionRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *selectionRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("selectionRepoMock.CountByUserFunc: method is nil but selectionRepo.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *selectionRepoMock) CountByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountByUser.RLock()
	calls := mock.calls.CountByUser
	mock.lockCountByUser.RUnlock()
	return calls
}

func (mock *selectionRepoMock) ExistsByKey(ctx context.Context, userID uuid.UUID, code string, name string) (bool, error) {
	if mock.ExistsByKeyFunc == nil {
		panic("selectionRepoMock.ExistsByKeyFunc: method is nil but selectionRepo.ExistsByKey was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Code   string
		Name   string
	}{Ctx: ctx, UserID: userID, Code: code, Name: name}
	mock.lockExistsByKey.Lock()
	mock.calls.ExistsByKey = append(mock.calls.ExistsByKey, callInfo)
	mock.lockExistsByKey.Unlock()
	return mock.ExistsByKeyFunc(ctx, userID, code, name)
}

func (mock *selectionRepoMock) ExistsByKeyCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Code   string
	Name   string
} {
	mock.lockExistsByKey.RLock()
	calls := mock.calls.ExistsByKey
	mock.lockExistsByKey.RUnlock()
	return calls
}

func (mock *selectionRepoMock) LockUser(ctx context.Context, userID uuid.UUID) error {
	if mock.LockUserFunc == nil {
		panic("selectionRepoMock.LockUserFunc: method is nil but selectionRepo.LockUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockLockUser.Lock()
	mock.calls.LockUser = append(mock.calls.LockUser, callInfo)
	mock.lockLockUser.Unlock()
	return mock.LockUserFunc(ctx, userID)
}

func (mock *selectionRepoMock) LockUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockLockUser.RLock()
	calls := mock.calls.LockUser
	mock.lockLockUser.RUnlock()
	return calls
}

func (mock *selectionRepoMock) Create(ctx context.Context, sel domain.Selection) (*domain.Selection, error) {
	if mock.CreateFunc == nil {
		panic("selectionRepoMock.CreateFunc: method is nil but selectionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sel domain.Selection
	}{Ctx: ctx, Sel: sel}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, sel)
}

func (mock *selectionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Sel domain.Selection
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *selectionRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("selectionRepoMock.DeleteFunc: method is nil but selectionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *selectionRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
