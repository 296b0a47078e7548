package ticket

import (
	"context"
	"sync"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

var _ staffProfileRepo = &staffProfileRepoMock{}

type staffProfileRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID string) (*domain.StaffProfile, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockGetByUserID sync.RWMutex
}

func (mock *staffProfileRepoMock) GetByUserID(ctx context.Context, userID string) (*domain.StaffProfile, error) {
	if mock.GetByUserIDFunc == nil {
		panic("staffProfileRepoMock.GetByUserIDFunc: method is nil but staffProfileRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *staffProfileRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}
