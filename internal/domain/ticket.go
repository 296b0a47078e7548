package domain

import "time"

// Ticket is a citizen-reported issue moving through the lifecycle.
type Ticket struct {
	ID                string
	CreatedBy         string
	Category          TicketCategory
	Title             *string
	Description       string
	AddressText       *string
	Lat               *float64
	Lng               *float64
	Status            TicketStatus
	AssignedTo        *string
	CurrentSupervisor *string
	CitizenRating     *int
	CitizenFeedback   *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ClosedAt          *time.Time
}

// TicketUpdate is a partial update applied to a ticket row.
// nil fields are left unchanged.
type TicketUpdate struct {
	Status            *TicketStatus
	AssignedTo        *string
	CurrentSupervisor *string
	CitizenRating     *int
	CitizenFeedback   *string
	ClosedAt          *time.Time
}

// TicketEvent is an immutable audit row for one transition or annotation.
type TicketEvent struct {
	ID         string
	TicketID   string
	ActorID    string
	Type       EventType
	FromStatus *TicketStatus
	ToStatus   *TicketStatus
	Message    *string
	CreatedAt  time.Time

	// ActorName is populated by detail queries only.
	ActorName string
}

// TicketAttachment references externally stored media linked to a ticket.
type TicketAttachment struct {
	ID         string
	TicketID   string
	UploadedBy string
	URL        string
	Kind       AttachmentKind
	MimeType   *string
	Caption    *string
	CreatedAt  time.Time

	// UploaderName is populated by detail queries only.
	UploaderName string
}

// TicketDetail is a ticket with its full event and attachment history.
type TicketDetail struct {
	Ticket      Ticket
	Events      []TicketEvent
	Attachments []TicketAttachment
}

// StatusPtr returns a pointer to s.
func StatusPtr(s TicketStatus) *TicketStatus {
	return &s
}
