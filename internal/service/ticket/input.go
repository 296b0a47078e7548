package ticket

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/civicdesk-backend/internal/config"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

const (
	maxTitleLength    = 200
	maxFeedbackLength = 2000
	maxMessageLength  = 2000
	maxAddressLength  = 500
)

// CreateTicketInput holds the parameters for filing a ticket.
type CreateTicketInput struct {
	Category       domain.TicketCategory `json:"category"`
	Title          *string               `json:"title,omitempty"`
	Description    string                `json:"description"`
	AddressText    *string               `json:"addressText,omitempty"`
	Lat            *float64              `json:"lat,omitempty"`
	Lng            *float64              `json:"lng,omitempty"`
	AttachmentURLs []string              `json:"attachmentUrls,omitempty"`
}

// Validate checks all fields and collects all errors.
func (i CreateTicketInput) Validate(limits config.TicketConfig) error {
	var errs []domain.FieldError

	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of water, electricity, garbage, other"})
	}

	desc := strings.TrimSpace(i.Description)
	if desc == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if utf8.RuneCountInString(desc) > limits.MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", limits.MaxDescriptionLength)})
	}

	errs = checkLength(errs, "title", i.Title, maxTitleLength)
	errs = checkLength(errs, "addressText", i.AddressText, maxAddressLength)

	if i.Lat != nil && (*i.Lat < -90 || *i.Lat > 90) {
		errs = append(errs, domain.FieldError{Field: "lat", Message: "must be between -90 and 90"})
	}
	if i.Lng != nil && (*i.Lng < -180 || *i.Lng > 180) {
		errs = append(errs, domain.FieldError{Field: "lng", Message: "must be between -180 and 180"})
	}
	if (i.Lat == nil) != (i.Lng == nil) {
		errs = append(errs, domain.FieldError{Field: "lat", Message: "lat and lng must be provided together"})
	}

	errs = checkAttachmentURLs(errs, i.AttachmentURLs, limits.MaxAttachmentsPerCall)

	return toError(errs)
}

// AssignTicketInput holds the parameters for dispatching a ticket to a worker.
type AssignTicketInput struct {
	TicketID   string  `json:"ticketId"`
	AssigneeID string  `json:"assigneeId"`
	Note       *string `json:"note,omitempty"`
}

// Validate checks all fields and collects all errors.
func (i AssignTicketInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "ticketId", i.TicketID)
	errs = requireID(errs, "assigneeId", i.AssigneeID)
	errs = checkLength(errs, "note", i.Note, maxMessageLength)
	return toError(errs)
}

// StartWorkInput holds the parameters for starting work on a ticket.
type StartWorkInput struct {
	TicketID string `json:"ticketId"`
}

// Validate checks all fields and collects all errors.
func (i StartWorkInput) Validate() error {
	return toError(requireID(nil, "ticketId", i.TicketID))
}

// AddStaffUpdateInput holds a progress note from the assigned worker.
type AddStaffUpdateInput struct {
	TicketID       string   `json:"ticketId"`
	Message        string   `json:"message"`
	AttachmentURLs []string `json:"attachmentUrls,omitempty"`
}

// Validate checks all fields and collects all errors.
func (i AddStaffUpdateInput) Validate(limits config.TicketConfig) error {
	var errs []domain.FieldError
	errs = requireID(errs, "ticketId", i.TicketID)

	msg := strings.TrimSpace(i.Message)
	if msg == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	errs = checkLength(errs, "message", &msg, maxMessageLength)
	errs = checkAttachmentURLs(errs, i.AttachmentURLs, limits.MaxAttachmentsPerCall)

	return toError(errs)
}

// EscalateInput holds the parameters for handing a ticket to a supervisor.
// SupervisorID defaults to the worker's reports_to when omitted.
type EscalateInput struct {
	TicketID     string  `json:"ticketId"`
	SupervisorID *string `json:"supervisorId,omitempty"`
	Reason       *string `json:"reason,omitempty"`
}

// Validate checks all fields and collects all errors.
func (i EscalateInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "ticketId", i.TicketID)
	if i.SupervisorID != nil {
		errs = requireID(errs, "supervisorId", *i.SupervisorID)
	}
	errs = checkLength(errs, "reason", i.Reason, maxMessageLength)
	return toError(errs)
}

// MarkResolvedInput holds the parameters for resolving a ticket.
type MarkResolvedInput struct {
	TicketID       string   `json:"ticketId"`
	Note           *string  `json:"note,omitempty"`
	AttachmentURLs []string `json:"attachmentUrls,omitempty"`
}

// Validate checks all fields and collects all errors.
func (i MarkResolvedInput) Validate(limits config.TicketConfig) error {
	var errs []domain.FieldError
	errs = requireID(errs, "ticketId", i.TicketID)
	errs = checkLength(errs, "note", i.Note, maxMessageLength)
	errs = checkAttachmentURLs(errs, i.AttachmentURLs, limits.MaxAttachmentsPerCall)
	return toError(errs)
}

// CitizenCloseInput holds the citizen's confirmation and optional rating.
type CitizenCloseInput struct {
	TicketID string  `json:"ticketId"`
	Rating   *int    `json:"rating,omitempty"`
	Feedback *string `json:"feedback,omitempty"`
}

// Validate checks all fields and collects all errors.
func (i CitizenCloseInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "ticketId", i.TicketID)
	if i.Rating != nil && (*i.Rating < 1 || *i.Rating > 5) {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	errs = checkLength(errs, "feedback", i.Feedback, maxFeedbackLength)
	return toError(errs)
}

// ReopenInput holds the citizen's reason for reopening a closed ticket.
type ReopenInput struct {
	TicketID string `json:"ticketId"`
	Reason   string `json:"reason"`
}

// Validate checks all fields and collects all errors.
func (i ReopenInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "ticketId", i.TicketID)

	reason := strings.TrimSpace(i.Reason)
	if reason == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}
	errs = checkLength(errs, "reason", &reason, maxMessageLength)

	return toError(errs)
}

// TicketDetailInput identifies the ticket to load.
type TicketDetailInput struct {
	TicketID string `json:"ticketId"`
}

// Validate checks all fields and collects all errors.
func (i TicketDetailInput) Validate() error {
	return toError(requireID(nil, "ticketId", i.TicketID))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func toError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func requireID(errs []domain.FieldError, field, id string) []domain.FieldError {
	if strings.TrimSpace(id) == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	return errs
}

func checkLength(errs []domain.FieldError, field string, s *string, limit int) []domain.FieldError {
	if s != nil && utf8.RuneCountInString(strings.TrimSpace(*s)) > limit {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", limit)})
	}
	return errs
}

func checkAttachmentURLs(errs []domain.FieldError, urls []string, limit int) []domain.FieldError {
	if len(urls) > limit {
		errs = append(errs, domain.FieldError{Field: "attachmentUrls", Message: fmt.Sprintf("max %d per call", limit)})
	}
	for idx, raw := range urls {
		if !isHTTPURL(raw) {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("attachmentUrls[%d]", idx),
				Message: "must be an absolute http(s) URL",
			})
		}
	}
	return errs
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
