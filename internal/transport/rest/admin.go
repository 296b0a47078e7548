package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
	"github.com/heartmarshall/civicdesk-backend/internal/service/user"
)

type staffProvisioner interface {
	Provision(ctx context.Context, input user.ProvisionInput) (*user.Profile, error)
}

// AdminHandler serves admin-only account management. The router mounts it
// behind middleware.RequireAdmin.
type AdminHandler struct {
	staff staffProvisioner
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(staff staffProvisioner, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		staff: staff,
		log:   logger.With("handler", "admin"),
	}
}

type provisionRequest struct {
	Role       string  `json:"role"`
	Name       string  `json:"name"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Password   string  `json:"password"`
	Department *string `json:"department,omitempty"`
	Ward       *string `json:"ward,omitempty"`
	ReportsTo  *string `json:"reportsTo,omitempty"`
}

// ProvisionStaff creates a staff, supervisor or admin account.
// POST /api/admin/staff
func (h *AdminHandler) ProvisionStaff(w http.ResponseWriter, r *http.Request) {
	var req provisionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	profile, err := h.staff.Provision(r.Context(), user.ProvisionInput{
		Role:       domain.UserRole(req.Role),
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Password:   req.Password,
		Department: req.Department,
		Ward:       req.Ward,
		ReportsTo:  req.ReportsTo,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toProfileResponse(profile))
}
