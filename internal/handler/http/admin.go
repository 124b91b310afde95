package http

import (
	"net/http"

	"github.com/webkart/account-service/models"
)

// listUsers returns every registered account. The admin middleware has
// already verified the caller's role; credential fields never appear in the
// projection.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.services.Account.ListUsers(ctx)
	if err != nil {
		respondError(w, r, err, "error while getting all user details")
		return
	}

	userDetails := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		userDetails = append(userDetails, user.Public())
	}

	writeResponse(w, models.Response{
		Success:     true,
		Message:     "all users list",
		UserDetails: userDetails,
	}, http.StatusOK)
}
