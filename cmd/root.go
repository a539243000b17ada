package cmd

import (
	"fmt"
	"os"

	"github.com/aaearon/deskauth/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	logFormat  string
	configFile string
)

// newRootCommand creates the root cobra command with the given RunE function.
// All flag registration and PersistentPreRunE setup is centralized here.
func newRootCommand(runFn func(*cobra.Command, []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deskauth",
		Short: "Log in to the service desk and show who you are",
		Long: `Log in to the service desk API with the configured credentials and print
the user group, name and email address of the authenticated user.

Running deskauth with no subcommand performs the login.

Settings are read from Data/Configs/appsettings.json below the current
directory, from $DESKAUTH_CONFIG, or from --config.

Exit codes:
  0  logged in
  2  settings missing or invalid
  3  login failed
  4  a manual browser login is required first`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutputFormat(); err != nil {
				return err
			}
			cfg := logging.Config{Format: logFormat}
			if verbose {
				cfg.Verbosity = 1
			}
			logger, err := logging.New(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			log = logger
			return nil
		},
		RunE: runFn,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", string(logging.TextFormat), "log format: text or json")
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to appsettings.json")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format: text, json or yaml")

	return cmd
}

var rootCmd = newRootCommand(func(cmd *cobra.Command, args []string) error {
	return runLogin(cmd, newServiceDeskAuthenticator)
})

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if !verbose {
			fmt.Fprintln(os.Stderr, "Hint: re-run with --verbose for more details")
		}
		return exitCode(err)
	}
	return exitOK
}
