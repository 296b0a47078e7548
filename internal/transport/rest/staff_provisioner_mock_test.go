package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/civicdesk-backend/internal/service/user"
)

var _ staffProvisioner = &staffProvisionerMock{}

type staffProvisionerMock struct {
	ProvisionFunc func(ctx context.Context, input user.ProvisionInput) (*user.Profile, error)

	calls struct {
		Provision []struct {
			Ctx   context.Context
			Input user.ProvisionInput
		}
	}
	lockProvision sync.RWMutex
}

func (mock *staffProvisionerMock) Provision(ctx context.Context, input user.ProvisionInput) (*user.Profile, error) {
	if mock.ProvisionFunc == nil {
		panic("staffProvisionerMock.ProvisionFunc: method is nil but staffProvisioner.Provision was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.ProvisionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockProvision.Lock()
	mock.calls.Provision = append(mock.calls.Provision, callInfo)
	mock.lockProvision.Unlock()
	return mock.ProvisionFunc(ctx, input)
}

func (mock *staffProvisionerMock) ProvisionCalls() []struct {
	Ctx   context.Context
	Input user.ProvisionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input user.ProvisionInput
	}
	mock.lockProvision.RLock()
	calls = mock.calls.Provision
	mock.lockProvision.RUnlock()
	return calls
}
