package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"nhicheck/internal/platform/middleware"
	"nhicheck/internal/transport/http/shared"
	"nhicheck/internal/validate"
	dErrors "nhicheck/pkg/domain-errors"
)

// maxBatchSize bounds a single batch request; anything larger should be
// split by the caller.
const maxBatchSize = 1000

// Handler is the thin HTTP layer over the validation service. It
// delegates to the service without embedding validation logic so
// transport concerns remain isolated.
type Handler struct {
	logger    *slog.Logger
	validator *validate.Service
}

// NewHandler creates the NHI validation handler.
func NewHandler(validator *validate.Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, validator: validator}
}

type validateRequest struct {
	NHI string `json:"nhi"`
}

type batchRequest struct {
	NHIs []string `json:"nhis"`
}

type batchResponse struct {
	Results []validate.Result `json:"results"`
}

// handleValidate checks a single candidate supplied in the body. The
// response is always 200: validity is part of the payload, not the
// status code.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid validate request",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	shared.WriteJSON(w, http.StatusOK, h.validator.Validate(r.Context(), req.NHI))
}

// handleValidateBatch checks up to maxBatchSize candidates in order.
func (h *Handler) handleValidateBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if len(req.NHIs) == 0 {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "nhis must not be empty"))
		return
	}
	if len(req.NHIs) > maxBatchSize {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "too many candidates in one batch"))
		return
	}

	results := h.validator.ValidateBatch(r.Context(), req.NHIs)
	shared.WriteJSON(w, http.StatusOK, batchResponse{Results: results})
}

// handleGet validates a candidate supplied as a path parameter, for
// quick curl-style checks.
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	candidate := chi.URLParam(r, "nhi")
	shared.WriteJSON(w, http.StatusOK, h.validator.Validate(r.Context(), candidate))
}
