package cmd

import (
	"errors"
	"fmt"

	"github.com/aaearon/deskauth/internal/config"
	"github.com/aaearon/deskauth/internal/servicedesk"
	"github.com/spf13/cobra"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	return NewLoginCommandWithAuth(newServiceDeskAuthenticator)
}

// NewLoginCommandWithAuth creates a login command with a custom authenticator for testing
func NewLoginCommandWithAuth(newAuth authenticatorFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in to the service desk",
		Long: `Log in to the service desk with the credentials from appsettings.json and
print the identity of the authenticated user.

The sandbox URL is used when Environment is "Sandbox", the production URL otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, newAuth)
		},
	}
}

func runLogin(cmd *cobra.Command, newAuth authenticatorFactory) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	summary := settings.Summary()

	if !isStructuredOutput() {
		printSummary(cmd, summary)
	}

	auth, err := newAuth(*settings, log)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrParse, err)
	}

	identity, err := auth.Login(cmd.Context())
	if err != nil {
		if errors.Is(err, servicedesk.ErrManualLoginRequired) {
			return fmt.Errorf("the service desk requires a manual login: sign in once at %s in a browser, then run deskauth again: %w", auth.BaseURL(), err)
		}
		return fmt.Errorf("login failed: %w", err)
	}

	if isStructuredOutput() {
		return writeStructured(cmd.OutOrStdout(), loginOutput{
			Settings: summary,
			Identity: newIdentityOutput(identity),
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nLogged in as %s <%s>\n", identity.Name, identity.Email)
	fmt.Fprintf(cmd.OutOrStdout(), "  User group: %d\n", identity.GroupID)
	return nil
}

// loadSettings resolves the settings path from --config, DESKAUTH_CONFIG or
// the working directory, and loads it.
func loadSettings() (*config.Settings, error) {
	path := configFile
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", config.ErrRead, err)
		}
		path = p
	}
	return config.Load(path, log)
}
