package cmd

import (
	"context"

	"github.com/aaearon/deskauth/internal/config"
	"github.com/aaearon/deskauth/internal/servicedesk"
	"github.com/go-logr/logr"
)

// authenticator logs in to the service desk
type authenticator interface {
	Login(ctx context.Context) (*servicedesk.Identity, error)
	BaseURL() string
}

// authenticatorFactory builds an authenticator bound to loaded settings
type authenticatorFactory func(settings config.Settings, logger logr.Logger) (authenticator, error)

func newServiceDeskAuthenticator(settings config.Settings, logger logr.Logger) (authenticator, error) {
	h, err := servicedesk.NewAuthHandler(settings, logger)
	if err != nil {
		return nil, err
	}
	return h, nil
}
