package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/civicdesk-backend/internal/service/user"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetProfileFunc func(ctx context.Context) (*user.Profile, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
	}
	lockGetProfile sync.RWMutex
}

func (mock *profileServiceMock) GetProfile(ctx context.Context) (*user.Profile, error) {
	if mock.GetProfileFunc == nil {
		panic("profileServiceMock.GetProfileFunc: method is nil but profileService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *profileServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}
