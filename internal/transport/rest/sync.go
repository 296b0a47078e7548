package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/civicdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
	"github.com/heartmarshall/civicdesk-backend/internal/transport/operation"
)

// maxPushMutations bounds one push batch.
const maxPushMutations = 100

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// SyncHandler serves the sync-style endpoints. For pushed mutations the
// handler owns the transaction: each mutation runs in its own transaction,
// and a failure rolls back that mutation alone.
type SyncHandler struct {
	catalog *operation.Catalog
	tx      txBeginner
	log     *slog.Logger
}

// NewSyncHandler creates a SyncHandler.
func NewSyncHandler(catalog *operation.Catalog, tx txBeginner, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{catalog: catalog, tx: tx, log: logger.With("handler", "sync")}
}

type pushRequest struct {
	Mutations []pushMutation `json:"mutations"`
}

type pushMutation struct {
	ID   int64           `json:"id"`
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

type pushResult struct {
	ID     int64        `json:"id"`
	Data   any          `json:"data,omitempty"`
	Error  string       `json:"error,omitempty"`
	Status int          `json:"status,omitempty"`
	Fields []fieldError `json:"fields,omitempty"`
}

type pushResponse struct {
	Results []pushResult `json:"results"`
}

type syncQueryRequest struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// Push handles POST /api/sync/push. Mutations run in request order and
// processing continues after a failed mutation.
func (h *SyncHandler) Push(w http.ResponseWriter, r *http.Request) {
	var req pushRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if len(req.Mutations) > maxPushMutations {
		writeDomainError(w, r, h.log, domain.NewValidationError("mutations",
			fmt.Sprintf("at most %d mutations per push", maxPushMutations)))
		return
	}

	results := make([]pushResult, 0, len(req.Mutations))
	for _, m := range req.Mutations {
		data, err := h.apply(r.Context(), m)
		if err != nil {
			status, body := errorBody(err)
			if status == http.StatusInternalServerError {
				h.log.ErrorContext(r.Context(), "push mutation failed",
					slog.Int64("mutation_id", m.ID),
					slog.String("name", m.Name),
					slog.String("error", err.Error()),
				)
			}
			results = append(results, pushResult{ID: m.ID, Error: body.Error, Status: status, Fields: body.Fields})
			continue
		}
		results = append(results, pushResult{ID: m.ID, Data: data})
	}

	writeData(w, http.StatusOK, pushResponse{Results: results})
}

// apply runs one mutation in a transaction it owns. The registered mutator
// sees the transaction through ctx and joins it.
func (h *SyncHandler) apply(ctx context.Context, m pushMutation) (any, error) {
	op, err := h.catalog.Mutator(m.Name)
	if err != nil {
		return nil, err
	}

	tx, err := h.tx.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Rollback after Commit is a no-op.
	defer tx.Rollback(ctx) //nolint:errcheck

	data, err := op.Execute(postgres.WithTx(ctx, tx), m.Args)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit mutation %d: %w", m.ID, err)
	}
	return data, nil
}

// Query handles POST /api/sync/query.
func (h *SyncHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req syncQueryRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	op, err := h.catalog.Query(req.Name)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	result, err := op.Execute(r.Context(), req.Args)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, result)
}

// Schema handles GET /api/sync/schema.
func (h *SyncHandler) Schema(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.catalog.Describe())
}
