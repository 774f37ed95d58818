package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tupyy/achievement-tracker/internal/config"
)

func NewCredentialsCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credentials",
		Short: "Manage the API key and Steam ID",
	}

	var apiKey, steamID string
	set := &cobra.Command{
		Use:   "set",
		Short: "Store the API key and Steam ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			creds, err := a.credentials.Save(cmd.Context(), apiKey, steamID)
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "credentials saved for %s (key %s)\n", creds.SteamID, creds.MaskedKey())
			return nil
		},
	}
	set.Flags().StringVar(&apiKey, "api-key", "", "Game platform API key")
	set.Flags().StringVar(&steamID, "steam-id", "", "64-bit Steam ID")
	_ = set.MarkFlagRequired("api-key")
	_ = set.MarkFlagRequired("steam-id")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the stored Steam ID and masked API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			creds, err := a.credentials.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "steam id: %s\napi key:  %s\n", creds.SteamID, creds.MaskedKey())
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			return a.credentials.Delete(cmd.Context())
		},
	}

	cmd.AddCommand(set, show, clearCmd)
	return cmd
}
