// Package operation is the name-to-operation table shared by the REST and
// sync adapters. Each entry declares a JSON Schema for its arguments, decodes
// them into the service input and shapes the result for the wire.
package operation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
	"github.com/heartmarshall/civicdesk-backend/internal/service/ticket"
)

// ErrUnknownOperation is returned when a name is not registered for the
// requested kind. It wraps domain.ErrValidation.
var ErrUnknownOperation = fmt.Errorf("unknown operation: %w", domain.ErrValidation)

type ticketService interface {
	CreateTicket(ctx context.Context, input ticket.CreateTicketInput) (*domain.Ticket, error)
	AssignTicket(ctx context.Context, input ticket.AssignTicketInput) (*domain.Ticket, error)
	StartWork(ctx context.Context, input ticket.StartWorkInput) (*domain.Ticket, error)
	AddStaffUpdate(ctx context.Context, input ticket.AddStaffUpdateInput) (*domain.Ticket, error)
	EscalateToSupervisor(ctx context.Context, input ticket.EscalateInput) (*domain.Ticket, error)
	MarkResolved(ctx context.Context, input ticket.MarkResolvedInput) (*domain.Ticket, error)
	CitizenCloseTicket(ctx context.Context, input ticket.CitizenCloseInput) (*domain.Ticket, error)
	ReopenTicket(ctx context.Context, input ticket.ReopenInput) (*domain.Ticket, error)

	MyTickets(ctx context.Context) ([]domain.Ticket, error)
	AssignedTickets(ctx context.Context) ([]domain.Ticket, error)
	SupervisorQueue(ctx context.Context) ([]domain.Ticket, error)
	TicketDetail(ctx context.Context, input ticket.TicketDetailInput) (*domain.TicketDetail, error)
}

// Kind separates state-changing operations from read-only ones.
type Kind string

const (
	KindMutator Kind = "mutator"
	KindQuery   Kind = "query"
)

type handler func(ctx context.Context, args json.RawMessage) (any, error)

// Operation is one registered mutator or query.
type Operation struct {
	Name   string
	Kind   Kind
	schema *gojsonschema.Schema
	raw    json.RawMessage
	handle handler
}

// Descriptor is the public description of a registered operation.
type Descriptor struct {
	Name   string          `json:"name"`
	Kind   Kind            `json:"kind"`
	Schema json.RawMessage `json:"schema"`
}

// Catalog holds every registered operation.
type Catalog struct {
	ops map[Kind]map[string]*Operation
}

// NewCatalog registers the ticket operations and compiles their schemas.
func NewCatalog(svc ticketService) (*Catalog, error) {
	c := &Catalog{ops: map[Kind]map[string]*Operation{
		KindMutator: {},
		KindQuery:   {},
	}}

	regs := []struct {
		kind   Kind
		name   string
		schema string
		handle handler
	}{
		{KindMutator, ticket.OpCreateTicket, createTicketSchema, mutate(svc.CreateTicket)},
		{KindMutator, ticket.OpAssignTicket, assignTicketSchema, mutate(svc.AssignTicket)},
		{KindMutator, ticket.OpStartWork, ticketIDSchema, mutate(svc.StartWork)},
		{KindMutator, ticket.OpAddStaffUpdate, addStaffUpdateSchema, mutate(svc.AddStaffUpdate)},
		{KindMutator, ticket.OpEscalateToSupervisor, escalateSchema, mutate(svc.EscalateToSupervisor)},
		{KindMutator, ticket.OpMarkResolved, markResolvedSchema, mutate(svc.MarkResolved)},
		{KindMutator, ticket.OpCitizenCloseTicket, citizenCloseSchema, mutate(svc.CitizenCloseTicket)},
		{KindMutator, ticket.OpReopenTicket, reopenSchema, mutate(svc.ReopenTicket)},

		{KindQuery, ticket.OpMyTickets, emptyArgsSchema, list(svc.MyTickets)},
		{KindQuery, ticket.OpAssignedTickets, emptyArgsSchema, list(svc.AssignedTickets)},
		{KindQuery, ticket.OpSupervisorQueue, emptyArgsSchema, list(svc.SupervisorQueue)},
		{KindQuery, ticket.OpTicketDetail, ticketIDSchema, detail(svc.TicketDetail)},
	}

	for _, r := range regs {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(r.schema))
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", r.name, err)
		}

		var compact bytes.Buffer
		if err := json.Compact(&compact, []byte(r.schema)); err != nil {
			return nil, fmt.Errorf("compact schema %s: %w", r.name, err)
		}

		c.ops[r.kind][r.name] = &Operation{
			Name:   r.name,
			Kind:   r.kind,
			schema: schema,
			raw:    compact.Bytes(),
			handle: r.handle,
		}
	}

	return c, nil
}

// Mutator looks up a registered mutator by name.
func (c *Catalog) Mutator(name string) (*Operation, error) {
	return c.lookup(KindMutator, name)
}

// Query looks up a registered query by name.
func (c *Catalog) Query(name string) (*Operation, error) {
	return c.lookup(KindQuery, name)
}

func (c *Catalog) lookup(kind Kind, name string) (*Operation, error) {
	op, ok := c.ops[kind][name]
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", kind, name, ErrUnknownOperation)
	}
	return op, nil
}

// Describe lists registered operations, mutators first, each group sorted by name.
func (c *Catalog) Describe() []Descriptor {
	var out []Descriptor
	for _, kind := range []Kind{KindMutator, KindQuery} {
		names := make([]string, 0, len(c.ops[kind]))
		for name := range c.ops[kind] {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			op := c.ops[kind][name]
			out = append(out, Descriptor{Name: op.Name, Kind: op.Kind, Schema: op.raw})
		}
	}
	return out
}

// Execute validates args against the operation's schema and runs it with
// the actor and transaction carried by ctx. Missing or null args count as {}.
func (o *Operation) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	args = bytes.TrimSpace(args)
	if len(args) == 0 || bytes.Equal(args, []byte("null")) {
		args = json.RawMessage("{}")
	}

	if err := o.validate(args); err != nil {
		return nil, err
	}

	return o.handle(ctx, args)
}

func (o *Operation) validate(args json.RawMessage) error {
	result, err := o.schema.Validate(gojsonschema.NewBytesLoader(args))
	if err != nil {
		return domain.NewValidationError("args", "must be a JSON object")
	}
	if result.Valid() {
		return nil
	}

	errs := make([]domain.FieldError, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		errs = append(errs, domain.FieldError{Field: fieldOf(re), Message: re.Description()})
	}
	return domain.NewValidationErrors(errs)
}

const rootField = "(root)"

// fieldOf names the offending property. Required and additional-property
// errors are reported on the parent object, so the property comes from details.
func fieldOf(re gojsonschema.ResultError) string {
	field := re.Field()
	prop, ok := re.Details()["property"].(string)
	if !ok {
		return field
	}
	switch re.Type() {
	case "required", "additional_property_not_allowed":
		if field == rootField {
			return prop
		}
		return field + "." + prop
	}
	return field
}

func decode[T any](args json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(args, &v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return v, domain.NewValidationError(typeErr.Field, "invalid type")
		}
		return v, domain.NewValidationError("args", "malformed JSON")
	}
	return v, nil
}

func mutate[T any](fn func(context.Context, T) (*domain.Ticket, error)) handler {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		input, err := decode[T](args)
		if err != nil {
			return nil, err
		}
		t, err := fn(ctx, input)
		if err != nil {
			return nil, err
		}
		return toTicket(t), nil
	}
}

func list(fn func(context.Context) ([]domain.Ticket, error)) handler {
	return func(ctx context.Context, _ json.RawMessage) (any, error) {
		ts, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return toTickets(ts), nil
	}
}

func detail(fn func(context.Context, ticket.TicketDetailInput) (*domain.TicketDetail, error)) handler {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		input, err := decode[ticket.TicketDetailInput](args)
		if err != nil {
			return nil, err
		}
		d, err := fn(ctx, input)
		if err != nil {
			return nil, err
		}
		return toDetail(d), nil
	}
}
