package http

import (
	"encoding/json"
	"net/http"

	"github.com/webkart/account-service/internal/logger"
	"github.com/webkart/account-service/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.Account.Register(ctx, req)
	if err != nil {
		respondError(w, r, err, "error in registration")
		return
	}

	publicUser := registeredUser.Public()
	writeResponse(w, models.Response{
		Success: true,
		Message: "user registered successfully",
		User:    &publicUser,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, token, err := h.services.Account.Login(ctx, req)
	if err != nil {
		respondError(w, r, err, "error in login")
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	publicUser := foundUser.Public()
	writeResponse(w, models.Response{
		Success: true,
		Message: "login successfully",
		User:    &publicUser,
		Token:   token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeFailure(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Account.ForgotPassword(ctx, req); err != nil {
		respondError(w, r, err, "something went wrong")
		return
	}

	writeResponse(w, models.Response{
		Success: true,
		Message: "password reset successfully",
	}, http.StatusOK)
}

// test is a minimal protected endpoint used to verify bearer tokens
// end to end.
func (h *Handler) test(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, models.Response{
		Success: true,
		Message: "protected route",
	}, http.StatusOK)
}
