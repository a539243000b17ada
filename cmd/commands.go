package cmd

func init() {
	rootCmd.AddCommand(
		NewLoginCommand(),
		NewConfigCommand(),
		NewVersionCommand(),
	)
}
