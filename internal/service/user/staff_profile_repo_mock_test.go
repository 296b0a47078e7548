package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

var _ staffProfileRepo = &staffProfileRepoMock{}

type staffProfileRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID string) (*domain.StaffProfile, error)
	UpsertFunc      func(ctx context.Context, p *domain.StaffProfile) (*domain.StaffProfile, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID string
		}
		Upsert []struct {
			Ctx context.Context
			P   *domain.StaffProfile
		}
	}
	lockGetByUserID sync.RWMutex
	lockUpsert      sync.RWMutex
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

func (mock *staffProfileRepoMock) Upsert(ctx context.Context, p *domain.StaffProfile) (*domain.StaffProfile, error) {
	if mock.UpsertFunc == nil {
		panic("staffProfileRepoMock.UpsertFunc: method is nil but staffProfileRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.StaffProfile
	}{Ctx: ctx, P: p}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *staffProfileRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	P   *domain.StaffProfile
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
