package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/webkart/account-service/internal/logger"
	"github.com/webkart/account-service/internal/store"
	"github.com/webkart/account-service/internal/utils"
	"github.com/webkart/account-service/models"
)

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.Account.UpdateProfile(ctx, userID, req)
	if err != nil {
		// The caller holds a valid token, so a missing record means the
		// account was removed after issuance, not a bad login email.
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Int64("id", userID).Msg("account no longer exists")
			writeFailure(w, "account no longer exists", http.StatusNotFound)
			return
		}
		respondError(w, r, err, "error while updating profile")
		return
	}

	publicUser := updatedUser.Public()
	writeResponse(w, models.Response{
		Success:    true,
		Message:    "profile updated successfully",
		UpdateUser: &publicUser,
	}, http.StatusOK)
}
