package http

import (
	"errors"
	"net/http"

	"github.com/webkart/account-service/internal/logger"
	"github.com/webkart/account-service/internal/store"
	"github.com/webkart/account-service/internal/utils"
	"github.com/webkart/account-service/models"
)

// adminOnly is an HTTP middleware that restricts a route to administrator
// accounts. It must run after [Handler.auth].
//
// Bearer tokens bind the user identity only — they carry no role claim — so
// the middleware reads the current user record and checks its role on every
// request. A role change therefore takes effect immediately, without waiting
// for tokens to expire.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		ctx := r.Context()
		userID, ok := utils.GetUserIDFromContext(ctx)
		if !ok {
			log.Error().Msg("no authenticated user in context")
			writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		user, err := h.services.Account.GetUser(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				log.Error().Int64("id", userID).Msg("account no longer exists")
				writeFailure(w, "account no longer exists", http.StatusNotFound)
				return
			}
			respondError(w, r, err, "error while checking authorization")
			return
		}

		if user.Role != models.RoleAdmin {
			log.Error().Int64("id", userID).Str("role", string(user.Role)).Msg("admin access denied")
			writeFailure(w, "access denied", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
