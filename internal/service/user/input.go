package user

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// ProvisionInput holds parameters for creating a municipal account.
// Citizens register themselves and cannot be provisioned.
type ProvisionInput struct {
	Role       domain.UserRole
	Name       string
	Phone      *string
	Email      *string
	Password   string
	Department *string
	Ward       *string
	ReportsTo  *string
}

// Validate validates the provision input.
func (i ProvisionInput) Validate() error {
	var errs []domain.FieldError

	if !i.Role.IsValid() || i.Role == domain.UserRoleCitizen {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be staff, supervisor or admin"})
	}

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if blank(i.Phone) && blank(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "phone or email is required"})
	}
	if !blank(i.Email) {
		if _, err := mail.ParseAddress(*i.Email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
		}
	}

	if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at most 72 bytes"})
	}

	if i.Role == domain.UserRoleAdmin && i.hasPlacement() {
		errs = append(errs, domain.FieldError{Field: "department", Message: "admins have no staff profile"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ProvisionInput) hasPlacement() bool {
	return !blank(i.Department) || !blank(i.Ward) || !blank(i.ReportsTo)
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func trimOrNil(s *string) *string {
	if blank(s) {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
