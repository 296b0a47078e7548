package auth

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// RegisterInput holds parameters for citizen self-registration.
// At least one of Phone and Email is required.
type RegisterInput struct {
	Name     string  `json:"name"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password string  `json:"password"`
}

// normalize trims the name, lower-cases the email and strips phone separators.
// Empty contacts become nil.
func (i *RegisterInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = normalizeEmail(i.Email)
	i.Phone = normalizePhone(i.Phone)
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Phone == nil && i.Email == nil {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "phone or email is required"})
	}
	if i.Phone != nil && !phonePattern.MatchString(*i.Phone) {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "invalid phone number"})
	}
	if i.Email != nil && !validEmail(*i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
	}

	errs = checkPassword(errs, i.Password)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login. Login is either a phone
// number or an email address.
type LoginInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Login) == "" {
		errs = append(errs, domain.FieldError{Field: "login", Message: "required"})
	} else if len(i.Login) > 254 {
		errs = append(errs, domain.FieldError{Field: "login", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkPassword(errs []domain.FieldError, password string) []domain.FieldError {
	switch {
	case password == "":
		return append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(password) < 8:
		return append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	case len(password) > 72:
		// bcrypt ignores bytes past 72.
		return append(errs, domain.FieldError{Field: "password", Message: "must be at most 72 bytes"})
	}
	return errs
}

func validEmail(s string) bool {
	if len(s) > 254 {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func normalizeEmail(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*s))
	if v == "" {
		return nil
	}
	return &v
}

func normalizePhone(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, *s)
	if v == "" {
		return nil
	}
	return &v
}
