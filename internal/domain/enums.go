package domain

// UserRole represents the authorization level of a user. A user's role is
// fixed at creation.
type UserRole string

const (
	UserRoleCitizen    UserRole = "citizen"
	UserRoleStaff      UserRole = "staff"
	UserRoleSupervisor UserRole = "supervisor"
	UserRoleAdmin      UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCitizen, UserRoleStaff, UserRoleSupervisor, UserRoleAdmin:
		return true
	}
	return false
}

// IsStaffMember reports whether the role carries a staff profile.
func (r UserRole) IsStaffMember() bool {
	return r == UserRoleStaff || r == UserRoleSupervisor
}

// TicketCategory classifies the reported issue.
type TicketCategory string

const (
	TicketCategoryWater       TicketCategory = "water"
	TicketCategoryElectricity TicketCategory = "electricity"
	TicketCategoryGarbage     TicketCategory = "garbage"
	TicketCategoryOther       TicketCategory = "other"
)

func (c TicketCategory) String() string { return string(c) }

func (c TicketCategory) IsValid() bool {
	switch c {
	case TicketCategoryWater, TicketCategoryElectricity, TicketCategoryGarbage, TicketCategoryOther:
		return true
	}
	return false
}

// TicketStatus is the lifecycle state of a ticket.
type TicketStatus string

const (
	TicketStatusNew               TicketStatus = "new"
	TicketStatusAssigned          TicketStatus = "assigned"
	TicketStatusInProgress        TicketStatus = "in_progress"
	TicketStatusWaitingSupervisor TicketStatus = "waiting_supervisor"
	TicketStatusResolved          TicketStatus = "resolved"
	TicketStatusClosed            TicketStatus = "closed"
	TicketStatusReopened          TicketStatus = "reopened"
)

func (s TicketStatus) String() string { return string(s) }

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusNew, TicketStatusAssigned, TicketStatusInProgress,
		TicketStatusWaitingSupervisor, TicketStatusResolved, TicketStatusClosed,
		TicketStatusReopened:
		return true
	}
	return false
}

// EventType identifies the kind of ticket audit event.
type EventType string

const (
	EventTypeCreated       EventType = "created"
	EventTypeAssigned      EventType = "assigned"
	EventTypeStatusChanged EventType = "status_changed"
	EventTypeComment       EventType = "comment"
	EventTypeEscalated     EventType = "escalated"
	EventTypeResolved      EventType = "resolved"
	EventTypeClosed        EventType = "closed"
	EventTypeReopened      EventType = "reopened"
)

func (e EventType) String() string { return string(e) }

func (e EventType) IsValid() bool {
	switch e {
	case EventTypeCreated, EventTypeAssigned, EventTypeStatusChanged, EventTypeComment,
		EventTypeEscalated, EventTypeResolved, EventTypeClosed, EventTypeReopened:
		return true
	}
	return false
}

// AttachmentKind describes the media behind an attachment URL.
type AttachmentKind string

const (
	AttachmentKindImage    AttachmentKind = "image"
	AttachmentKindVideo    AttachmentKind = "video"
	AttachmentKindDocument AttachmentKind = "document"
)

func (k AttachmentKind) String() string { return string(k) }

func (k AttachmentKind) IsValid() bool {
	switch k {
	case AttachmentKindImage, AttachmentKindVideo, AttachmentKindDocument:
		return true
	}
	return false
}
