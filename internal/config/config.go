// Package config loads the deskauth application settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-playground/validator/v10"
)

// EnvironmentSandbox selects the service desk sandbox URL. Any other
// environment value selects the production URL.
const EnvironmentSandbox = "Sandbox"

var (
	// ErrRead is returned when the settings file is missing or unreadable.
	ErrRead = errors.New("failed to read config")
	// ErrParse is returned when the settings file is malformed or incomplete.
	ErrParse = errors.New("failed to parse config")
)

// ServiceDesk holds the service desk endpoints and credentials.
type ServiceDesk struct {
	SandboxURL    string `json:"SandboxUrl" validate:"required"`
	ProductionURL string `json:"ProductionUrl" validate:"required"`
	Username      string `json:"Username" validate:"required"`
	Password      string `json:"Password" validate:"required"`
	UserID        string `json:"UserID" validate:"required"`
}

// TopDesk holds the ticketing system endpoint. It is not called yet.
type TopDesk struct {
	BaseURL  string `json:"BaseUrl" validate:"required"`
	Username string `json:"Username" validate:"required"`
	Password string `json:"Password" validate:"required"`
}

// Settings is the content of appsettings.json.
type Settings struct {
	Environment string      `json:"Environment" validate:"required"`
	ServiceDesk ServiceDesk `json:"ServiceDesk"`
	TopDesk     TopDesk     `json:"TopDesk"`
}

// requiredKeys lists the exact key casing accepted for each JSON object.
// encoding/json matches keys case-insensitively, so these are checked first.
var requiredKeys = map[string][]string{
	"":            {"Environment", "ServiceDesk", "TopDesk"},
	"ServiceDesk": {"SandboxUrl", "ProductionUrl", "Username", "Password", "UserID"},
	"TopDesk":     {"BaseUrl", "Username", "Password"},
}

// Load reads the settings file at path. It never returns partial settings:
// a missing file wraps ErrRead, anything else wrong with the content wraps
// ErrParse.
func Load(path string, logger logr.Logger) (*Settings, error) {
	logger.Info("loading settings", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	settings, err := Parse(data)
	if err != nil {
		return nil, err
	}

	logger.Info("settings loaded", "environment", settings.Environment)
	return settings, nil
}

// Parse decodes and validates settings from raw JSON.
func Parse(data []byte) (*Settings, error) {
	if err := checkKeys(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if err := validator.New().Struct(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return &s, nil
}

func checkKeys(data []byte) error {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return err
	}
	if err := hasKeys(root, "", requiredKeys[""]); err != nil {
		return err
	}
	for _, group := range []string{"ServiceDesk", "TopDesk"} {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(root[group], &obj); err != nil {
			return fmt.Errorf("%s: %w", group, err)
		}
		if err := hasKeys(obj, group, requiredKeys[group]); err != nil {
			return err
		}
	}
	return nil
}

func hasKeys(obj map[string]json.RawMessage, prefix string, keys []string) error {
	if obj == nil {
		if prefix == "" {
			return errors.New("expected a settings object")
		}
		return fmt.Errorf("%s: expected an object", prefix)
	}
	for _, k := range keys {
		if _, ok := obj[k]; !ok {
			return fmt.Errorf("missing required key %q", qualify(prefix, k))
		}
		// A differently cased twin would be matched by encoding/json too and
		// could override the canonical value.
		for got := range obj {
			if got != k && strings.EqualFold(got, k) {
				return fmt.Errorf("key %q must be spelled %q", qualify(prefix, got), qualify(prefix, k))
			}
		}
	}
	return nil
}

func qualify(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// IsSandbox reports whether the sandbox environment is selected.
func (s *Settings) IsSandbox() bool {
	return s.Environment == EnvironmentSandbox
}

// ServiceDeskURL returns the service desk base URL for the selected
// environment.
func (s *Settings) ServiceDeskURL() string {
	if s.IsSandbox() {
		return s.ServiceDesk.SandboxURL
	}
	return s.ServiceDesk.ProductionURL
}

// Summary is a printable view of the settings without credentials.
type Summary struct {
	Environment    string `json:"environment" yaml:"environment"`
	ServiceDeskURL string `json:"serviceDeskUrl" yaml:"service_desk_url"`
	Username       string `json:"username" yaml:"username"`
	UserID         string `json:"userId" yaml:"user_id"`
	TopDeskURL     string `json:"topDeskUrl" yaml:"top_desk_url"`
}

// Summary returns the password-free summary of s.
func (s *Settings) Summary() Summary {
	return Summary{
		Environment:    s.Environment,
		ServiceDeskURL: s.ServiceDeskURL(),
		Username:       s.ServiceDesk.Username,
		UserID:         s.ServiceDesk.UserID,
		TopDeskURL:     s.TopDesk.BaseURL,
	}
}

// DefaultPath returns the settings path below the given working directory.
func DefaultPath(dir string) string {
	return filepath.Join(dir, "Data", "Configs", "appsettings.json")
}

// Path returns the settings file path, respecting the DESKAUTH_CONFIG env var.
func Path() (string, error) {
	if p := os.Getenv("DESKAUTH_CONFIG"); p != "" {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}
	return DefaultPath(wd), nil
}
