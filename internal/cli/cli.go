// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli wires the localfix command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	appName    = "localfix"
	appVersion = "0.1.0-alpha"
)

// Execute runs the CLI application
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the app.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Report local issues to your council",
		Long: `localfix lets residents report local issues such as potholes or
broken street lights and follow their progress.

Running localfix without a command opens the app. Enable the touch bridge
in the config to drive edge swipes from a phone or tablet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), configPath)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newConfigCommand(&configPath))
	rootCmd.AddCommand(newPrefsCommand(&configPath))

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, appVersion)
		},
	}
}
