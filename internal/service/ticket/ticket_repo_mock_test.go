package ticket

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/civicdesk-backend/internal/access"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

var _ ticketRepo = &ticketRepoMock{}

type ticketRepoMock struct {
	CreateFunc              func(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
	GetScopedFunc           func(ctx context.Context, id string, filter access.Filter, forUpdate bool) (*domain.Ticket, error)
	UpdateFunc              func(ctx context.Context, id string, upd domain.TicketUpdate, updatedAt time.Time) (*domain.Ticket, error)
	ListByCreatorFunc       func(ctx context.Context, userID string) ([]domain.Ticket, error)
	ListByAssigneeFunc      func(ctx context.Context, userID string) ([]domain.Ticket, error)
	ListSupervisorQueueFunc func(ctx context.Context, supervisorID string) ([]domain.Ticket, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Ticket
		}
		GetScoped []struct {
			Ctx       context.Context
			Id        string
			Filter    access.Filter
			ForUpdate bool
		}
		Update []struct {
			Ctx       context.Context
			Id        string
			Upd       domain.TicketUpdate
			UpdatedAt time.Time
		}
		ListByCreator []struct {
			Ctx    context.Context
			UserID string
		}
		ListByAssignee []struct {
			Ctx    context.Context
			UserID string
		}
		ListSupervisorQueue []struct {
			Ctx          context.Context
			SupervisorID string
		}
	}
	lockCreate              sync.RWMutex
	lockGetScoped           sync.RWMutex
	lockUpdate              sync.RWMutex
	lockListByCreator       sync.RWMutex
	lockListByAssignee      sync.RWMutex
	lockListSupervisorQueue sync.RWMutex
}

func (mock *ticketRepoMock) Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	if mock.CreateFunc == nil {
		panic("ticketRepoMock.CreateFunc: method is nil but ticketRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Ticket
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *ticketRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Ticket
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *ticketRepoMock) GetScoped(ctx context.Context, id string, filter access.Filter, forUpdate bool) (*domain.Ticket, error) {
	if mock.GetScopedFunc == nil {
		panic("ticketRepoMock.GetScopedFunc: method is nil but ticketRepo.GetScoped was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Id        string
		Filter    access.Filter
		ForUpdate bool
	}{Ctx: ctx, Id: id, Filter: filter, ForUpdate: forUpdate}
	mock.lockGetScoped.Lock()
	mock.calls.GetScoped = append(mock.calls.GetScoped, callInfo)
	mock.lockGetScoped.Unlock()
	return mock.GetScopedFunc(ctx, id, filter, forUpdate)
}

func (mock *ticketRepoMock) GetScopedCalls() []struct {
	Ctx       context.Context
	Id        string
	Filter    access.Filter
	ForUpdate bool
} {
	mock.lockGetScoped.RLock()
	calls := mock.calls.GetScoped
	mock.lockGetScoped.RUnlock()
	return calls
}

func (mock *ticketRepoMock) Update(ctx context.Context, id string, upd domain.TicketUpdate, updatedAt time.Time) (*domain.Ticket, error) {
	if mock.UpdateFunc == nil {
		panic("ticketRepoMock.UpdateFunc: method is nil but ticketRepo.Update was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Id        string
		Upd       domain.TicketUpdate
		UpdatedAt time.Time
	}{Ctx: ctx, Id: id, Upd: upd, UpdatedAt: updatedAt}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, upd, updatedAt)
}

func (mock *ticketRepoMock) UpdateCalls() []struct {
	Ctx       context.Context
	Id        string
	Upd       domain.TicketUpdate
	UpdatedAt time.Time
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *ticketRepoMock) ListByCreator(ctx context.Context, userID string) ([]domain.Ticket, error) {
	if mock.ListByCreatorFunc == nil {
		panic("ticketRepoMock.ListByCreatorFunc: method is nil but ticketRepo.ListByCreator was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockListByCreator.Lock()
	mock.calls.ListByCreator = append(mock.calls.ListByCreator, callInfo)
	mock.lockListByCreator.Unlock()
	return mock.ListByCreatorFunc(ctx, userID)
}

func (mock *ticketRepoMock) ListByCreatorCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockListByCreator.RLock()
	calls := mock.calls.ListByCreator
	mock.lockListByCreator.RUnlock()
	return calls
}

func (mock *ticketRepoMock) ListByAssignee(ctx context.Context, userID string) ([]domain.Ticket, error) {
	if mock.ListByAssigneeFunc == nil {
		panic("ticketRepoMock.ListByAssigneeFunc: method is nil but ticketRepo.ListByAssignee was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockListByAssignee.Lock()
	mock.calls.ListByAssignee = append(mock.calls.ListByAssignee, callInfo)
	mock.lockListByAssignee.Unlock()
	return mock.ListByAssigneeFunc(ctx, userID)
}

func (mock *ticketRepoMock) ListByAssigneeCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockListByAssignee.RLock()
	calls := mock.calls.ListByAssignee
	mock.lockListByAssignee.RUnlock()
	return calls
}

func (mock *ticketRepoMock) ListSupervisorQueue(ctx context.Context, supervisorID string) ([]domain.Ticket, error) {
	if mock.ListSupervisorQueueFunc == nil {
		panic("ticketRepoMock.ListSupervisorQueueFunc: method is nil but ticketRepo.ListSupervisorQueue was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SupervisorID string
	}{Ctx: ctx, SupervisorID: supervisorID}
	mock.lockListSupervisorQueue.Lock()
	mock.calls.ListSupervisorQueue = append(mock.calls.ListSupervisorQueue, callInfo)
	mock.lockListSupervisorQueue.Unlock()
	return mock.ListSupervisorQueueFunc(ctx, supervisorID)
}

func (mock *ticketRepoMock) ListSupervisorQueueCalls() []struct {
	Ctx          context.Context
	SupervisorID string
} {
	mock.lockListSupervisorQueue.RLock()
	calls := mock.calls.ListSupervisorQueue
	mock.lockListSupervisorQueue.RUnlock()
	return calls
}
