// Package service implements the business workflows of the account service:
// registration, login, password recovery, profile updates, user listing,
// and contact-query handling. Services depend on repository interfaces from
// the store package and are safe for concurrent use.
package service

import (
	"github.com/webkart/account-service/internal/config"
	"github.com/webkart/account-service/internal/logger"
	"github.com/webkart/account-service/internal/store"
)

// Services bundles all service implementations behind their interfaces for
// injection into the transport layer.
type Services struct {
	Account AccountService
	Query   QueryService
}

// NewServices constructs every service on top of the given repositories.
func NewServices(repos *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		Account: NewAccountService(repos.Users, cfg, logger),
		Query:   NewQueryService(repos.Queries, logger),
	}
}
