package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "identity-api",
	Short: "Identity API serving candidate accounts, profiles and onboarding progress",
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(runCmd)
}
