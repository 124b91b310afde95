package http

import (
	"encoding/json"
	"net/http"

	"github.com/webkart/account-service/internal/logger"
	"github.com/webkart/account-service/models"
)

func (h *Handler) submitQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SubmitQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	savedQuery, err := h.services.Query.SubmitQuery(ctx, req)
	if err != nil {
		respondError(w, r, err, "error in sending query")
		return
	}

	writeResponse(w, models.Response{
		Success: true,
		Message: "query registered successfully",
		Query:   &savedQuery,
	}, http.StatusCreated)
}

func (h *Handler) listQueries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	queries, err := h.services.Query.ListQueries(ctx)
	if err != nil {
		respondError(w, r, err, "error while getting all query details")
		return
	}

	writeResponse(w, models.Response{
		Success:      true,
		Message:      "all query list",
		QueryDetails: queries,
	}, http.StatusOK)
}
