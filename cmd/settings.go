package cmd

import (
	"fmt"

	"github.com/aaearon/deskauth/internal/config"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the loaded settings",
		Long:  "Load appsettings.json and print a summary of it. Passwords are never shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			summary := settings.Summary()
			if isStructuredOutput() {
				return writeStructured(cmd.OutOrStdout(), summary)
			}
			printSummary(cmd, summary)
			return nil
		},
	}
}

func printSummary(cmd *cobra.Command, s config.Summary) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Environment:  %s\n", s.Environment)
	fmt.Fprintf(w, "Service desk: %s\n", s.ServiceDeskURL)
	fmt.Fprintf(w, "Username:     %s\n", s.Username)
	fmt.Fprintf(w, "User ID:      %s\n", s.UserID)
	fmt.Fprintf(w, "TopDesk:      %s\n", s.TopDeskURL)
}
