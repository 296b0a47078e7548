package operation

import (
	"time"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// Ticket is the wire shape of a ticket row.
type Ticket struct {
	ID                string     `json:"id"`
	CreatedBy         string     `json:"createdBy"`
	Category          string     `json:"category"`
	Title             *string    `json:"title"`
	Description       string     `json:"description"`
	AddressText       *string    `json:"addressText"`
	Lat               *float64   `json:"lat"`
	Lng               *float64   `json:"lng"`
	Status            string     `json:"status"`
	AssignedTo        *string    `json:"assignedTo"`
	CurrentSupervisor *string    `json:"currentSupervisor"`
	CitizenRating     *int       `json:"citizenRating"`
	CitizenFeedback   *string    `json:"citizenFeedback"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	ClosedAt          *time.Time `json:"closedAt"`
}

// Event is the wire shape of a ticket audit event.
type Event struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actorId"`
	ActorName  string    `json:"actorName,omitempty"`
	Type       string    `json:"type"`
	FromStatus *string   `json:"fromStatus"`
	ToStatus   *string   `json:"toStatus"`
	Message    *string   `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Attachment is the wire shape of a ticket attachment.
type Attachment struct {
	ID           string    `json:"id"`
	UploadedBy   string    `json:"uploadedBy"`
	UploaderName string    `json:"uploaderName,omitempty"`
	URL          string    `json:"url"`
	Kind         string    `json:"kind"`
	MimeType     *string   `json:"mimeType"`
	Caption      *string   `json:"caption"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Detail is a ticket together with its history, oldest event first.
type Detail struct {
	Ticket
	Events      []Event      `json:"events"`
	Attachments []Attachment `json:"attachments"`
}

func toTicket(t *domain.Ticket) Ticket {
	return Ticket{
		ID:                t.ID,
		CreatedBy:         t.CreatedBy,
		Category:          t.Category.String(),
		Title:             t.Title,
		Description:       t.Description,
		AddressText:       t.AddressText,
		Lat:               t.Lat,
		Lng:               t.Lng,
		Status:            t.Status.String(),
		AssignedTo:        t.AssignedTo,
		CurrentSupervisor: t.CurrentSupervisor,
		CitizenRating:     t.CitizenRating,
		CitizenFeedback:   t.CitizenFeedback,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
		ClosedAt:          t.ClosedAt,
	}
}

func toTickets(ts []domain.Ticket) []Ticket {
	out := make([]Ticket, len(ts))
	for i := range ts {
		out[i] = toTicket(&ts[i])
	}
	return out
}

func toDetail(d *domain.TicketDetail) Detail {
	events := make([]Event, len(d.Events))
	for i, e := range d.Events {
		events[i] = Event{
			ID:         e.ID,
			ActorID:    e.ActorID,
			ActorName:  e.ActorName,
			Type:       e.Type.String(),
			FromStatus: statusString(e.FromStatus),
			ToStatus:   statusString(e.ToStatus),
			Message:    e.Message,
			CreatedAt:  e.CreatedAt,
		}
	}

	attachments := make([]Attachment, len(d.Attachments))
	for i, a := range d.Attachments {
		attachments[i] = Attachment{
			ID:           a.ID,
			UploadedBy:   a.UploadedBy,
			UploaderName: a.UploaderName,
			URL:          a.URL,
			Kind:         a.Kind.String(),
			MimeType:     a.MimeType,
			Caption:      a.Caption,
			CreatedAt:    a.CreatedAt,
		}
	}

	return Detail{
		Ticket:      toTicket(&d.Ticket),
		Events:      events,
		Attachments: attachments,
	}
}

func statusString(s *domain.TicketStatus) *string {
	if s == nil {
		return nil
	}
	v := s.String()
	return &v
}
