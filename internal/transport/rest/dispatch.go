package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
	"github.com/heartmarshall/civicdesk-backend/internal/transport/operation"
)

// DispatchHandler serves the direct-dispatch endpoints: the request names
// an operation and carries its arguments in one JSON body.
type DispatchHandler struct {
	catalog *operation.Catalog
	log     *slog.Logger
}

// NewDispatchHandler creates a DispatchHandler.
func NewDispatchHandler(catalog *operation.Catalog, logger *slog.Logger) *DispatchHandler {
	return &DispatchHandler{catalog: catalog, log: logger.With("handler", "dispatch")}
}

type mutateRequest struct {
	MutatorName string          `json:"mutatorName"`
	Input       json.RawMessage `json:"input"`
}

type queryRequest struct {
	QueryName string          `json:"queryName"`
	Args      json.RawMessage `json:"args"`
}

// Mutate handles POST /api/mutate.
func (h *DispatchHandler) Mutate(w http.ResponseWriter, r *http.Request) {
	var req mutateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if req.MutatorName == "" {
		writeDomainError(w, r, h.log, domain.NewValidationError("mutatorName", "required"))
		return
	}

	op, err := h.catalog.Mutator(req.MutatorName)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	h.execute(w, r, op, req.Input)
}

// Query handles POST /api/query.
func (h *DispatchHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if req.QueryName == "" {
		writeDomainError(w, r, h.log, domain.NewValidationError("queryName", "required"))
		return
	}

	op, err := h.catalog.Query(req.QueryName)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	h.execute(w, r, op, req.Args)
}

func (h *DispatchHandler) execute(w http.ResponseWriter, r *http.Request, op *operation.Operation, args json.RawMessage) {
	result, err := op.Execute(r.Context(), args)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, result)
}
