package cmd

import (
	"context"

	"github.com/aaearon/deskauth/internal/config"
	"github.com/aaearon/deskauth/internal/servicedesk"
	"github.com/go-logr/logr"
)

// mockAuthenticator implements the authenticator interface for testing
type mockAuthenticator struct {
	identity *servicedesk.Identity
	loginErr error
	baseURL  string

	settings config.Settings
	calls    int
}

func (m *mockAuthenticator) Login(ctx context.Context) (*servicedesk.Identity, error) {
	m.calls++
	return m.identity, m.loginErr
}

func (m *mockAuthenticator) BaseURL() string {
	return m.baseURL
}

// factory returns an authenticatorFactory handing out m and recording the
// settings it was built with.
func (m *mockAuthenticator) factory() authenticatorFactory {
	return func(settings config.Settings, logger logr.Logger) (authenticator, error) {
		m.settings = settings
		if m.baseURL == "" {
			m.baseURL = settings.ServiceDeskURL()
		}
		return m, nil
	}
}
