package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
	"github.com/heartmarshall/civicdesk-backend/internal/service/auth"
	"github.com/heartmarshall/civicdesk-backend/internal/service/user"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
}

type profileService interface {
	GetProfile(ctx context.Context) (*user.Profile, error)
}

// AuthHandler serves registration, login and the current-user profile.
type AuthHandler struct {
	auth     authService
	profiles profileService
	log      *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth authService, profiles profileService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, profiles: profiles, log: logger.With("handler", "auth")}
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type staffProfileResponse struct {
	Department *string `json:"department"`
	Ward       *string `json:"ward"`
	ReportsTo  *string `json:"reportsTo"`
}

type profileResponse struct {
	User         userResponse          `json:"user"`
	StaffProfile *staffProfileResponse `json:"staffProfile"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input auth.RegisterInput
	if err := decodeBody(w, r, &input); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	result, err := h.auth.Register(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input auth.LoginInput
	if err := decodeBody(w, r, &input); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	result, err := h.auth.Login(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toAuthResponse(result))
}

// Me handles GET /api/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.GetProfile(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(profile *user.Profile) profileResponse {
	resp := profileResponse{User: toUserResponse(profile.User)}
	if p := profile.StaffProfile; p != nil {
		resp.StaffProfile = &staffProfileResponse{
			Department: p.Department,
			Ward:       p.Ward,
			ReportsTo:  p.ReportsTo,
		}
	}
	return resp
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken: result.AccessToken,
		User:        toUserResponse(result.User),
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Role:      u.Role.String(),
		Name:      u.Name,
		Phone:     u.Phone,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
