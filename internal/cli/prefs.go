// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/localfix/localfix/internal/config"
	"github.com/localfix/localfix/internal/storage"
)

func newPrefsCommand(configPath *string) *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect and change stored preferences",
	}
	prefsCmd.AddCommand(newPrefsShowCommand(configPath))
	prefsCmd.AddCommand(newPrefsSetCouncilCommand(configPath))
	prefsCmd.AddCommand(newPrefsSwipeCommand(configPath))
	prefsCmd.AddCommand(newPrefsLogoutCommand(configPath))
	return prefsCmd
}

// withStore loads config and opens the local store for the duration of fn
func withStore(ctx context.Context, configPath string, fn func(*config.AppConfig, *storage.Store) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	store, err := storage.Open(ctx, cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer store.Close()
	return fn(cfg, store)
}

func newPrefsShowCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), *configPath, func(_ *config.AppConfig, store *storage.Store) error {
				prefs, err := store.Prefs(cmd.Context())
				if err != nil {
					return err
				}
				if len(prefs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No preferences stored.")
					return nil
				}

				keys := lo.Keys(prefs)
				sort.Strings(keys)

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "KEY\tVALUE")
				for _, k := range keys {
					v := prefs[k]
					if k == storage.PrefAuthToken && v != "" {
						v = "********"
					}
					fmt.Fprintf(w, "%s\t%s\n", k, v)
				}
				return w.Flush()
			})
		},
	}
}

func newPrefsSetCouncilCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set-council <name>",
		Short: "Choose the council reports are sent to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			return withStore(cmd.Context(), *configPath, func(cfg *config.AppConfig, store *storage.Store) error {
				council, ok := lo.Find(cfg.Councils, func(c string) bool {
					return strings.EqualFold(c, name)
				})
				if !ok {
					return fmt.Errorf("unknown council %q (known: %s)", name, strings.Join(cfg.Councils, ", "))
				}
				if err := store.SetPref(cmd.Context(), storage.PrefCouncil, council); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Council set to %s\n", council)
				return nil
			})
		},
	}
}

func newPrefsSwipeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:       "swipe-back <on|off>",
		Short:     "Turn edge swipe back on or off",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			value := strings.ToLower(args[0])
			if value != "on" && value != "off" {
				return fmt.Errorf("swipe-back must be on or off, got %q", args[0])
			}
			return withStore(cmd.Context(), *configPath, func(_ *config.AppConfig, store *storage.Store) error {
				if err := store.SetPref(cmd.Context(), storage.PrefSwipeBack, value); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Swipe back %s\n", value)
				return nil
			})
		},
	}
}

func newPrefsLogoutCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), *configPath, func(_ *config.AppConfig, store *storage.Store) error {
				if err := store.Logout(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
				return nil
			})
		},
	}
}
