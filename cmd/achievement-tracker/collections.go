package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tupyy/achievement-tracker/internal/config"
	"github.com/tupyy/achievement-tracker/internal/models"
	"github.com/tupyy/achievement-tracker/internal/services"
)

func NewCollectionsCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collections",
		Aliases: []string{"col"},
		Short:   "Manage collections of achievements",
	}

	// withApp runs fn with the services and closes them afterwards.
	withApp := func(fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			return fn(cmd, a, args)
		}
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List collections and their entries",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			collections, err := a.collections.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(collections) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no collections")
				return nil
			}
			for _, c := range collections {
				printCollection(cmd.OutOrStdout(), c)
			}
			return nil
		}),
	}

	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an empty collection",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			c, err := a.collections.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printCollection(cmd.OutOrStdout(), c)
			return nil
		}),
	}

	add := &cobra.Command{
		Use:   "add NAME APPID APINAME",
		Short: "Add an achievement of the library, creating the collection if needed",
		Args:  cobra.ExactArgs(3),
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			appID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid app id %q: %w", args[1], err)
			}
			creds, err := a.credentials.Get(cmd.Context())
			if err != nil {
				return err
			}
			game, merged, err := a.library.GameAchievements(cmd.Context(), creds, appID)
			if err != nil {
				return err
			}
			entry, err := services.EntryFor(game, merged, args[2])
			if err != nil {
				return err
			}
			c, err := a.collections.AddEntry(cmd.Context(), args[0], entry)
			if err != nil {
				return err
			}
			printCollection(cmd.OutOrStdout(), c)
			return nil
		}),
	}

	remove := &cobra.Command{
		Use:   "remove NAME INDEX",
		Short: "Remove the entry at INDEX",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			c, err := a.collections.RemoveEntry(cmd.Context(), args[0], index)
			if err != nil {
				return err
			}
			printCollection(cmd.OutOrStdout(), c)
			return nil
		}),
	}

	del := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a collection",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			return a.collections.Delete(cmd.Context(), args[0])
		}),
	}

	var output string
	export := &cobra.Command{
		Use:   "export",
		Short: "Export collections to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %q: %w", output, err)
			}
			if err := a.collections.Export(cmd.Context(), f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "collections exported to %s\n", output)
			return nil
		}),
	}
	export.Flags().StringVarP(&output, "output", "o", "collections.xlsx", "Workbook path")

	cmd.AddCommand(list, create, add, remove, del, export)
	return cmd
}

func printCollection(w io.Writer, c models.Collection) {
	color.New(color.Bold).Fprintf(w, "%s (%d)\n", c.Name, len(c.Entries))
	for i, e := range c.Entries {
		fmt.Fprintf(w, "  %3d  %-8d %-24s %s\n", i, e.AppID, truncateName(e.GameName, 24), e.DisplayName)
	}
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}
	return i, nil
}
