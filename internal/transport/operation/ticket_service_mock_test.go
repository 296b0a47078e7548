package operation

import (
	"context"
	"sync"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
	"github.com/heartmarshall/civicdesk-backend/internal/service/ticket"
)

var _ ticketService = &ticketServiceMock{}

type ticketServiceMock struct {
	CreateTicketFunc         func(ctx context.Context, input ticket.CreateTicketInput) (*domain.Ticket, error)
	AssignTicketFunc         func(ctx context.Context, input ticket.AssignTicketInput) (*domain.Ticket, error)
	StartWorkFunc            func(ctx context.Context, input ticket.StartWorkInput) (*domain.Ticket, error)
	AddStaffUpdateFunc       func(ctx context.Context, input ticket.AddStaffUpdateInput) (*domain.Ticket, error)
	EscalateToSupervisorFunc func(ctx context.Context, input ticket.EscalateInput) (*domain.Ticket, error)
	MarkResolvedFunc         func(ctx context.Context, input ticket.MarkResolvedInput) (*domain.Ticket, error)
	CitizenCloseTicketFunc   func(ctx context.Context, input ticket.CitizenCloseInput) (*domain.Ticket, error)
	ReopenTicketFunc         func(ctx context.Context, input ticket.ReopenInput) (*domain.Ticket, error)
	MyTicketsFunc            func(ctx context.Context) ([]domain.Ticket, error)
	AssignedTicketsFunc      func(ctx context.Context) ([]domain.Ticket, error)
	SupervisorQueueFunc      func(ctx context.Context) ([]domain.Ticket, error)
	TicketDetailFunc         func(ctx context.Context, input ticket.TicketDetailInput) (*domain.TicketDetail, error)

	calls struct {
		CreateTicket []struct {
			Ctx   context.Context
			Input ticket.CreateTicketInput
		}
		AssignTicket []struct {
			Ctx   context.Context
			Input ticket.AssignTicketInput
		}
		StartWork []struct {
			Ctx   context.Context
			Input ticket.StartWorkInput
		}
		AddStaffUpdate []struct {
			Ctx   context.Context
			Input ticket.AddStaffUpdateInput
		}
		EscalateToSupervisor []struct {
			Ctx   context.Context
			Input ticket.EscalateInput
		}
		MarkResolved []struct {
			Ctx   context.Context
			Input ticket.MarkResolvedInput
		}
		CitizenCloseTicket []struct {
			Ctx   context.Context
			Input ticket.CitizenCloseInput
		}
		ReopenTicket []struct {
			Ctx   context.Context
			Input ticket.ReopenInput
		}
		MyTickets []struct {
			Ctx context.Context
		}
		AssignedTickets []struct {
			Ctx context.Context
		}
		SupervisorQueue []struct {
			Ctx context.Context
		}
		TicketDetail []struct {
			Ctx   context.Context
			Input ticket.TicketDetailInput
		}
	}
	lockCreateTicket         sync.RWMutex
	lockAssignTicket         sync.RWMutex
	lockStartWork            sync.RWMutex
	lockAddStaffUpdate       sync.RWMutex
	lockEscalateToSupervisor sync.RWMutex
	lockMarkResolved         sync.RWMutex
	lockCitizenCloseTicket   sync.RWMutex
	lockReopenTicket         sync.RWMutex
	lockMyTickets            sync.RWMutex
	lockAssignedTickets      sync.RWMutex
	lockSupervisorQueue      sync.RWMutex
	lockTicketDetail         sync.RWMutex
}

func (mock *ticketServiceMock) CreateTicket(ctx context.Context, input ticket.CreateTicketInput) (*domain.Ticket, error) {
	if mock.CreateTicketFunc == nil {
		panic("ticketServiceMock.CreateTicketFunc: method is nil but ticketService.CreateTicket was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ticket.CreateTicketInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTicket.Lock()
	mock.calls.CreateTicket = append(mock.calls.CreateTicket, callInfo)
	mock.lockCreateTicket.Unlock()
	return mock.CreateTicketFunc(ctx, input)
}

func (mock *ticketServiceMock) CreateTicketCalls() []struct {
	Ctx   context.Context
	Input ticket.CreateTicketInput
} {
	mock.lockCreateTicket.RLock()
	calls := mock.calls.CreateTicket
	mock.lockCreateTicket.RUnlock()
	return calls
}

func (mock *ticketServiceMock) AssignTicket(ctx context.Context, input ticket.AssignTicketInput) (*domain.Ticket, error) {
	if mock.AssignTicketFunc == nil {
		panic("ticketServiceMock.AssignTicketFunc: method is nil but ticketService.AssignTicket was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ticket.AssignTicketInput
	}{Ctx: ctx, Input: input}
	mock.lockAssignTicket.Lock()
	mock.calls.AssignTicket = append(mock.calls.AssignTicket, callInfo)
	mock.lockAssignTicket.Unlock()
	return mock.AssignTicketFunc(ctx, input)
}

func (mock *ticketServiceMock) AssignTicketCalls() []struct {
	Ctx   context.Context
	Input ticket.AssignTicketInput
} {
	mock.lockAssignTicket.RLock()
	calls := mock.calls.AssignTicket
	mock.lockAssignTicket.RUnlock()
	return calls
}

func (mock *ticketServiceMock) StartWork(ctx context.Context, input ticket.StartWorkInput) (*domain.Ticket, error) {
	if mock.StartWorkFunc == nil {
		panic("ticketServiceMock.StartWorkFunc: method is nil but ticketService.StartWork was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ticket.StartWorkInput
	}{Ctx: ctx, Input: input}
	mock.lockStartWork.Lock()
	mock.calls.StartWork = append(mock.calls.StartWork, callInfo)
	mock.lockStartWork.Unlock()
	return mock.StartWorkFunc(ctx, input)
}

func (mock *ticketServiceMock) StartWorkCalls() []struct {
	Ctx   context.Context
	Input ticket.StartWorkInput
} {
	mock.lockStartWork.RLock()
	calls := mock.calls.StartWork
	mock.lockStartWork.RUnlock()
	return calls
}

func (mock *ticketServiceMock) AddStaffUpdate(ctx context.Context, input ticket.AddStaffUpdateInput) (*domain.Ticket, error) {
	if mock.AddStaffUpdateFunc == nil {
		panic("ticketServiceMock.AddStaffUpdateFunc: method is nil but ticketService.AddStaffUpdate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ticket.AddStaffUpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockAddStaffUpdate.Lock()
	mock.calls.AddStaffUpdate = append(mock.calls.AddStaffUpdate, callInfo)
	mock.lockAddStaffUpdate.Unlock()
	return mock.AddStaffUpdateFunc(ctx, input)
}

func (mock *ticketServiceMock) AddStaffUpdateCalls() []struct {
	Ctx   context.Context
	Input ticket.AddStaffUpdateInput
} {
	mock.lockAddStaffUpdate.RLock()
	calls := mock.calls.AddStaffUpdate
	mock.lockAddStaffUpdate.RUnlock()
	return calls
}

func (mock *ticketServiceMock) EscalateToSupervisor(ctx context.Context, input ticket.EscalateInput) (*domain.Ticket, error) {
	if mock.EscalateToSupervisorFunc == nil {
		panic("ticketServiceMock.EscalateToSupervisorFunc: method is nil but ticketService.EscalateToSupervisor was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ticket.EscalateInput
	}{Ctx: ctx, Input: input}
	mock.lockEscalateToSupervisor.Lock()
	mock.calls.EscalateToSupervisor = append(mock.calls.EscalateToSupervisor, callInfo)
	mock.lockEscalateToSupervisor.Unlock()
	return mock.EscalateToSupervisorFunc(ctx, input)
}

func (mock *ticketServiceMock) EscalateToSupervisorCalls() []struct {
	Ctx   context.Context
	Input ticket.EscalateInput
} {
	mock.lockEscalateToSupervisor.RLock()
	calls := mock.calls.EscalateToSupervisor
	mock.lockEscalateToSupervisor.RUnlock()
	return calls
}

func (mock *ticketServiceMock) MarkResolved(ctx context.Context, input ticket.MarkResolvedInput) (*domain.Ticket, error) {
	if mock.MarkResolvedFunc == nil {
		panic("ticketServiceMock.MarkResolvedFunc: method is nil but ticketService.MarkResolved was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ticket.MarkResolvedInput
	}{Ctx: ctx, Input: input}
	mock.lockMarkResolved.Lock()
	mock.calls.MarkResolved = append(mock.calls.MarkResolved, callInfo)
	mock.lockMarkResolved.Unlock()
	return mock.MarkResolvedFunc(ctx, input)
}

func (mock *ticketServiceMock) MarkResolvedCalls() []struct {
	Ctx   context.Context
	Input ticket.MarkResolvedInput
} {
	mock.lockMarkResolved.RLock()
	calls := mock.calls.MarkResolved
	mock.lockMarkResolved.RUnlock()
	return calls
}

func (mock *ticketServiceMock) CitizenCloseTicket(ctx context.Context, input ticket.CitizenCloseInput) (*domain.Ticket, error) {
	if mock.CitizenCloseTicketFunc == nil {
		panic("ticketServiceMock.CitizenCloseTicketFunc: method is nil but ticketService.CitizenCloseTicket was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ticket.CitizenCloseInput
	}{Ctx: ctx, Input: input}
	mock.lockCitizenCloseTicket.Lock()
	mock.calls.CitizenCloseTicket = append(mock.calls.CitizenCloseTicket, callInfo)
	mock.lockCitizenCloseTicket.Unlock()
	return mock.CitizenCloseTicketFunc(ctx, input)
}

func (mock *ticketServiceMock) CitizenCloseTicketCalls() []struct {
	Ctx   context.Context
	Input ticket.CitizenCloseInput
} {
	mock.lockCitizenCloseTicket.RLock()
	calls := mock.calls.CitizenCloseTicket
	mock.lockCitizenCloseTicket.RUnlock()
	return calls
}

func (mock *ticketServiceMock) ReopenTicket(ctx context.Context, input ticket.ReopenInput) (*domain.Ticket, error) {
	if mock.ReopenTicketFunc == nil {
		panic("ticketServiceMock.ReopenTicketFunc: method is nil but ticketService.ReopenTicket was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ticket.ReopenInput
	}{Ctx: ctx, Input: input}
	mock.lockReopenTicket.Lock()
	mock.calls.ReopenTicket = append(mock.calls.ReopenTicket, callInfo)
	mock.lockReopenTicket.Unlock()
	return mock.ReopenTicketFunc(ctx, input)
}

func (mock *ticketServiceMock) ReopenTicketCalls() []struct {
	Ctx   context.Context
	Input ticket.ReopenInput
} {
	mock.lockReopenTicket.RLock()
	calls := mock.calls.ReopenTicket
	mock.lockReopenTicket.RUnlock()
	return calls
}

func (mock *ticketServiceMock) MyTickets(ctx context.Context) ([]domain.Ticket, error) {
	if mock.MyTicketsFunc == nil {
		panic("ticketServiceMock.MyTicketsFunc: method is nil but ticketService.MyTickets was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMyTickets.Lock()
	mock.calls.MyTickets = append(mock.calls.MyTickets, callInfo)
	mock.lockMyTickets.Unlock()
	return mock.MyTicketsFunc(ctx)
}

func (mock *ticketServiceMock) MyTicketsCalls() []struct {
	Ctx context.Context
} {
	mock.lockMyTickets.RLock()
	calls := mock.calls.MyTickets
	mock.lockMyTickets.RUnlock()
	return calls
}

func (mock *ticketServiceMock) AssignedTickets(ctx context.Context) ([]domain.Ticket, error) {
	if mock.AssignedTicketsFunc == nil {
		panic("ticketServiceMock.AssignedTicketsFunc: method is nil but ticketService.AssignedTickets was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockAssignedTickets.Lock()
	mock.calls.AssignedTickets = append(mock.calls.AssignedTickets, callInfo)
	mock.lockAssignedTickets.Unlock()
	return mock.AssignedTicketsFunc(ctx)
}

func (mock *ticketServiceMock) AssignedTicketsCalls() []struct {
	Ctx context.Context
} {
	mock.lockAssignedTickets.RLock()
	calls := mock.calls.AssignedTickets
	mock.lockAssignedTickets.RUnlock()
	return calls
}

func (mock *ticketServiceMock) SupervisorQueue(ctx context.Context) ([]domain.Ticket, error) {
	if mock.SupervisorQueueFunc == nil {
		panic("ticketServiceMock.SupervisorQueueFunc: method is nil but ticketService.SupervisorQueue was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSupervisorQueue.Lock()
	mock.calls.SupervisorQueue = append(mock.calls.SupervisorQueue, callInfo)
	mock.lockSupervisorQueue.Unlock()
	return mock.SupervisorQueueFunc(ctx)
}

func (mock *ticketServiceMock) SupervisorQueueCalls() []struct {
	Ctx context.Context
} {
	mock.lockSupervisorQueue.RLock()
	calls := mock.calls.SupervisorQueue
	mock.lockSupervisorQueue.RUnlock()
	return calls
}

func (mock *ticketServiceMock) TicketDetail(ctx context.Context, input ticket.TicketDetailInput) (*domain.TicketDetail, error) {
	if mock.TicketDetailFunc == nil {
		panic("ticketServiceMock.TicketDetailFunc: method is nil but ticketService.TicketDetail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ticket.TicketDetailInput
	}{Ctx: ctx, Input: input}
	mock.lockTicketDetail.Lock()
	mock.calls.TicketDetail = append(mock.calls.TicketDetail, callInfo)
	mock.lockTicketDetail.Unlock()
	return mock.TicketDetailFunc(ctx, input)
}

func (mock *ticketServiceMock) TicketDetailCalls() []struct {
	Ctx   context.Context
	Input ticket.TicketDetailInput
} {
	mock.lockTicketDetail.RLock()
	calls := mock.calls.TicketDetail
	mock.lockTicketDetail.RUnlock()
	return calls
}
