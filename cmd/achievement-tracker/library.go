package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tupyy/achievement-tracker/internal/config"
	"github.com/tupyy/achievement-tracker/internal/models"
	"github.com/tupyy/achievement-tracker/internal/util"
)

func NewLibraryCommand(cfg *config.Configuration) *cobra.Command {
	var (
		refresh bool
		game    int
	)

	cmd := &cobra.Command{
		Use:   "library",
		Short: "Show the games with achievements and their completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			creds, err := a.credentials.Get(ctx)
			if err != nil {
				return err
			}

			if game > 0 {
				g, merged, err := a.library.GameAchievements(ctx, creds, game)
				if err != nil {
					return err
				}
				printAchievements(cmd.OutOrStdout(), g, merged)
				return nil
			}

			snapshot, err := a.library.LoadLibrary(ctx, creds, models.CachePolicy{ForceRefresh: refresh})
			if err != nil {
				return err
			}
			printLibrary(cmd.OutOrStdout(), *snapshot)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Ignore the cached library and fetch it again")
	cmd.Flags().IntVar(&game, "game", 0, "Show the achievements of one game by app id")

	return cmd
}

func printLibrary(w io.Writer, snapshot models.LibrarySnapshot) {
	bold := color.New(color.Bold)
	bold.Fprintf(w, "%-8s %-40s %9s %8s\n", "APPID", "NAME", "UNLOCKED", "DONE")
	for _, sum := range snapshot.Summaries() {
		pct := util.Percent(sum.Unlocked, sum.Total)
		c := color.New(color.FgYellow)
		switch {
		case sum.Unlocked == sum.Total:
			c = color.New(color.FgGreen)
		case sum.Unlocked == 0:
			c = color.New(color.FgHiBlack)
		}
		c.Fprintf(w, "%-8d %-40s %4d/%-4d %7.2f%%\n", sum.Game.AppID, truncateName(sum.Game.Name, 40), sum.Unlocked, sum.Total, pct)
	}
	fmt.Fprintf(w, "\n%d games, fetched %s\n", len(snapshot.Games), snapshot.FetchedAt.Local().Format(time.DateTime))
}

func printAchievements(w io.Writer, game models.Game, merged []models.MergedAchievement) {
	color.New(color.Bold).Fprintf(w, "%s (%d)\n", game.Name, game.AppID)
	for _, m := range merged {
		mark, c := "[ ]", color.New(color.FgHiBlack)
		if m.Unlocked() {
			mark, c = "[x]", color.New(color.FgGreen)
		}
		unlocked := ""
		if t := util.UnixTime(m.UnlockTime); t != nil {
			unlocked = " " + t.Local().Format(time.DateOnly)
		}
		c.Fprintf(w, "%s %-32s %s%s\n", mark, m.APIName, m.DisplayName, unlocked)
	}
}

func truncateName(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
