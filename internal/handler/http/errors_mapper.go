package http

import (
	"errors"
	"net/http"

	"github.com/webkart/account-service/internal/logger"
	"github.com/webkart/account-service/internal/service"
	"github.com/webkart/account-service/internal/store"
)

// respondError converts a service-layer error into a response envelope with
// the appropriate status code and message.
//
// Well-known errors get precise statuses; anything unrecognised (storage
// failures, hashing failures) is logged with full detail and surfaced to the
// caller only as the generic fallback message, so internals never leak over
// the wire.
func respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Error().Err(err).Msg("validation failed")
		writeFailure(w, validationErr.Error(), http.StatusBadRequest)

	case errors.Is(err, store.ErrEmailAlreadyExists):
		log.Error().Err(err).Msg("duplicate email")
		writeFailure(w, "already registered, please login", http.StatusConflict)

	case errors.Is(err, store.ErrNoUserWasFound):
		// reached from email-lookup flows (login); handlers acting on an
		// authenticated account intercept this error with their own message
		log.Error().Err(err).Msg("user not found")
		writeFailure(w, "email is not registered", http.StatusNotFound)

	case errors.Is(err, service.ErrWrongPassword):
		log.Error().Err(err).Msg("wrong password")
		writeFailure(w, "invalid password", http.StatusUnauthorized)

	case errors.Is(err, service.ErrWeakPassword):
		log.Error().Err(err).Msg("weak password")
		writeFailure(w, service.ErrWeakPassword.Error(), http.StatusBadRequest)

	case errors.Is(err, service.ErrVerificationFailed):
		log.Error().Err(err).Msg("reset verification failed")
		writeFailure(w, service.ErrVerificationFailed.Error(), http.StatusNotFound)

	case errors.Is(err, service.ErrTokenIsExpired):
		log.Error().Err(err).Msg("token expired")
		writeFailure(w, service.ErrTokenIsExpired.Error(), http.StatusUnauthorized)

	case errors.Is(err, service.ErrTokenIsInvalid):
		log.Error().Err(err).Msg("token invalid")
		writeFailure(w, service.ErrTokenIsInvalid.Error(), http.StatusUnauthorized)

	default:
		log.Err(err).Msg(fallback)
		writeFailure(w, fallback, http.StatusInternalServerError)
	}
}
