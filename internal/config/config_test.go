package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logr/logr"
)

const validSettings = `{
  "Environment": "Sandbox",
  "ServiceDesk": {
    "SandboxUrl": "https://sandbox.desk.example.com",
    "ProductionUrl": "https://desk.example.com",
    "Username": "ana.souza",
    "Password": "s3cret",
    "UserID": "1042"
  },
  "TopDesk": {
    "BaseUrl": "https://topdesk.example.com",
    "Username": "ana",
    "Password": "other"
  }
}`

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "appsettings.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestLoad_ValidJSON(t *testing.T) {
	path := writeSettings(t, validSettings)

	s, err := Load(path, logr.Discard())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	checks := []struct {
		field, got, want string
	}{
		{"Environment", s.Environment, "Sandbox"},
		{"ServiceDesk.SandboxUrl", s.ServiceDesk.SandboxURL, "https://sandbox.desk.example.com"},
		{"ServiceDesk.ProductionUrl", s.ServiceDesk.ProductionURL, "https://desk.example.com"},
		{"ServiceDesk.Username", s.ServiceDesk.Username, "ana.souza"},
		{"ServiceDesk.Password", s.ServiceDesk.Password, "s3cret"},
		{"ServiceDesk.UserID", s.ServiceDesk.UserID, "1042"},
		{"TopDesk.BaseUrl", s.TopDesk.BaseURL, "https://topdesk.example.com"},
		{"TopDesk.Username", s.TopDesk.Username, "ana"},
		{"TopDesk.Password", s.TopDesk.Password, "other"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "appsettings.json")

	s, err := Load(path, logr.Discard())
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if !errors.Is(err, ErrRead) {
		t.Errorf("error = %v, want ErrRead", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want it to wrap os.ErrNotExist", err)
	}
	if s != nil {
		t.Errorf("expected nil settings, got %+v", s)
	}
}

func TestLoad_PermissionError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root can read unreadable files")
	}
	path := writeSettings(t, validSettings)
	if err := os.Chmod(path, 0000); err != nil {
		t.Fatalf("failed to chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(path, 0644) })

	_, err := Load(path, logr.Discard())
	if !errors.Is(err, ErrRead) {
		t.Fatalf("error = %v, want ErrRead", err)
	}
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "malformed json",
			content: `{"Environment": "Sandbox",`,
		},
		{
			name:    "not an object",
			content: `[]`,
		},
		{
			name:    "null document",
			content: `null`,
			wantMsg: "expected a settings object",
		},
		{
			name:    "missing top desk",
			content: strings.Replace(validSettings, `"TopDesk"`, `"Other"`, 1),
			wantMsg: `missing required key "TopDesk"`,
		},
		{
			name:    "wrong key casing",
			content: strings.Replace(validSettings, `"SandboxUrl"`, `"sandboxUrl"`, 1),
			wantMsg: `missing required key "ServiceDesk.SandboxUrl"`,
		},
		{
			name:    "legacy user id casing",
			content: strings.Replace(validSettings, `"UserID"`, `"UserId"`, 1),
			wantMsg: `missing required key "ServiceDesk.UserID"`,
		},
		{
			name:    "lowercase environment alongside canonical",
			content: strings.Replace(validSettings, `"Environment": "Sandbox",`, `"Environment": "Sandbox", "environment": "Production",`, 1),
			wantMsg: `key "environment" must be spelled "Environment"`,
		},
		{
			name:    "lowercase username twin in service desk",
			content: strings.Replace(validSettings, `"Username": "ana.souza",`, `"Username": "ana.souza", "username": "other",`, 1),
			wantMsg: `key "ServiceDesk.username" must be spelled "ServiceDesk.Username"`,
		},
		{
			name:    "group is null",
			content: strings.Replace(validSettings, `"TopDesk": {`, `"TopDesk": null, "x": {`, 1),
			wantMsg: "TopDesk: expected an object",
		},
		{
			name:    "wrong value type",
			content: strings.Replace(validSettings, `"1042"`, `1042`, 1),
		},
		{
			name:    "empty password",
			content: strings.Replace(validSettings, `"s3cret"`, `""`, 1),
			wantMsg: "Password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, tt.content)

			s, err := Load(path, logr.Discard())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("error = %v, want ErrParse", err)
			}
			if errors.Is(err, ErrRead) {
				t.Errorf("error = %v, must not be ErrRead", err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
			if s != nil {
				t.Errorf("expected nil settings, got %+v", s)
			}
		})
	}
}

func TestServiceDeskURL(t *testing.T) {
	tests := []struct {
		environment string
		want        string
	}{
		{"Sandbox", "https://sandbox.desk.example.com"},
		{"Production", "https://desk.example.com"},
		{"sandbox", "https://desk.example.com"},
		{"", "https://desk.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			s := &Settings{
				Environment: tt.environment,
				ServiceDesk: ServiceDesk{
					SandboxURL:    "https://sandbox.desk.example.com",
					ProductionURL: "https://desk.example.com",
				},
			}
			if got := s.ServiceDeskURL(); got != tt.want {
				t.Errorf("ServiceDeskURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummary_OmitsPasswords(t *testing.T) {
	s, err := Parse([]byte(validSettings))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	sum := s.Summary()
	if sum.ServiceDeskURL != "https://sandbox.desk.example.com" {
		t.Errorf("ServiceDeskURL = %q", sum.ServiceDeskURL)
	}
	if sum.TopDeskURL != "https://topdesk.example.com" {
		t.Errorf("TopDeskURL = %q", sum.TopDeskURL)
	}
	if strings.Contains(strings.Join([]string{sum.Environment, sum.ServiceDeskURL, sum.Username, sum.UserID, sum.TopDeskURL}, " "), "s3cret") {
		t.Error("summary must not contain the password")
	}
}

func TestDefaultPath(t *testing.T) {
	got := DefaultPath("/srv/app")
	want := filepath.Join("/srv/app", "Data", "Configs", "appsettings.json")
	if got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestPath_Override(t *testing.T) {
	customPath := "/tmp/custom-deskauth/appsettings.json"
	t.Setenv("DESKAUTH_CONFIG", customPath)

	got, err := Path()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != customPath {
		t.Errorf("Path() = %q, want %q", got, customPath)
	}
}

func TestPath_Default(t *testing.T) {
	t.Setenv("DESKAUTH_CONFIG", "")
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	got, err := Path()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wd, _ := os.Getwd()
	if got != DefaultPath(wd) {
		t.Errorf("Path() = %q, want %q", got, DefaultPath(wd))
	}
}
