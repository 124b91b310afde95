// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and the uniform response envelope
// for the REST API. Authentication, authorization, logging, and tracing
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"net/http"

	"github.com/webkart/account-service/internal/logger"
	"github.com/webkart/account-service/internal/service"
	"github.com/webkart/account-service/internal/utils"
	"github.com/webkart/account-service/models"
)

// Handler owns all HTTP endpoints and their middleware.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler on top of the service layer.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeResponse writes the given envelope with the given status code.
func writeResponse(w http.ResponseWriter, resp models.Response, statusCode int) {
	utils.WriteJSON(w, resp, statusCode) //nolint:errcheck // headers already sent
}

// writeFailure writes a success:false envelope carrying only a message.
func writeFailure(w http.ResponseWriter, message string, statusCode int) {
	writeResponse(w, models.Response{Success: false, Message: message}, statusCode)
}
