// Package servicedesk authenticates against the service desk API and
// exposes the identity of the logged-in user.
package servicedesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/aaearon/deskauth/internal/config"
	"github.com/go-logr/logr"
	"golang.org/x/net/publicsuffix"
)

const (
	// loginRoute is appended to the base URL verbatim; the API expects the
	// bare "user" query flag.
	loginRoute = "/api/v1/login?user"

	// Session cookies copied into Identity after login.
	sessionCookie    = "JSESSIONID"
	gocSessionCookie = "goc_session"
)

// AuthHandler logs in to the service desk and holds the resulting
// identity. It owns its cookie jar: use one handler per set of
// credentials and do not run logins on it concurrently.
type AuthHandler struct {
	baseURL  string
	loginURL *url.URL
	username string
	password string
	client   *http.Client
	logger   logr.Logger

	identity      Identity
	authenticated bool
}

// NewAuthHandler creates an unauthenticated handler for settings. The base
// URL is resolved from the configured environment here, once.
func NewAuthHandler(settings config.Settings, logger logr.Logger) (*AuthHandler, error) {
	return NewAuthHandlerWithTransport(settings, logger, nil)
}

// NewAuthHandlerWithTransport creates a handler sending requests through rt.
// A nil rt uses http.DefaultTransport.
func NewAuthHandlerWithTransport(settings config.Settings, logger logr.Logger, rt http.RoundTripper) (*AuthHandler, error) {
	baseURL := strings.TrimRight(settings.ServiceDeskURL(), "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid service desk URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid service desk URL %q: scheme and host required", baseURL)
	}
	loginURL, err := url.Parse(baseURL + loginRoute)
	if err != nil {
		return nil, fmt.Errorf("invalid service desk URL: %w", err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &AuthHandler{
		baseURL:  baseURL,
		loginURL: loginURL,
		username: settings.ServiceDesk.Username,
		password: settings.ServiceDesk.Password,
		client: &http.Client{
			Jar:       jar,
			Transport: newLoggingTransport(rt, logger),
		},
		logger: logger,
	}, nil
}

// BaseURL returns the resolved service desk base URL.
func (h *AuthHandler) BaseURL() string {
	return h.baseURL
}

// Authenticated reports whether Login has succeeded.
func (h *AuthHandler) Authenticated() bool {
	return h.authenticated
}

// Identity returns the identity of the last successful login, or the zero
// Identity before that.
func (h *AuthHandler) Identity() Identity {
	return h.identity
}

// Login posts the configured credentials and extracts the user's identity.
// The handler's identity is only updated when every step succeeds.
// POST /api/v1/login?user
func (h *AuthHandler) Login(ctx context.Context) (*Identity, error) {
	loginURL := h.loginURL.String()

	body, err := json.Marshal(loginPayload{UserName: h.username, Password: h.password})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	h.logger.Info("authenticating to service desk", "url", loginURL)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		details, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: reading error response: %w", ErrTransport, err)
		}
		return nil, &ResponseError{
			Kind:       ClassifyFailure(string(details)),
			StatusCode: resp.StatusCode,
			Body:       string(details),
		}
	}

	var result loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if result.User == nil || result.User.Info == nil {
		return nil, fmt.Errorf("%w: missing user info list", ErrDecode)
	}

	info := newUserInfo(result.User.Info)
	id := Identity{GroupID: info.groupID()}
	if id.GroupID == 0 {
		h.logger.Info("no user group in login response")
		return nil, fmt.Errorf("%w: no user group id", ErrUserInfoMissing)
	}
	id.Name = info.str("first_name", NameFallback)
	id.Email = info.str("email_address", EmailFallback)

	for _, c := range h.client.Jar.Cookies(h.loginURL) {
		switch c.Name {
		case sessionCookie:
			id.SessionID = c.Value
		case gocSessionCookie:
			id.GOCSession = c.Value
		}
	}

	h.identity = id
	h.authenticated = true
	h.logger.Info("login succeeded", "group_id", id.GroupID)

	out := id
	return &out, nil
}

// Get sends a GET for route on the handler's session, replaying any
// cookies the service desk has set. The caller closes the body.
func (h *AuthHandler) Get(ctx context.Context, route string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+route, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return resp, nil
}
