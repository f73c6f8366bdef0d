package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit2048/internal/game"
	"github.com/vovakirdan/fruit2048/internal/platform/tui"
	"github.com/vovakirdan/fruit2048/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and finished games",
	Long: `Display the best score and the top 10 finished games.

Examples:
  fruit2048 scores
  fruit2048 scores --tui
  fruit2048 scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse all games in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete the best score and game history")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresReset {
		if err := store.ClearGames(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Scores cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	best, err := store.LoadBest()
	if err != nil {
		return err
	}
	games, err := store.TopGames(10)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Best: %d\n\n", best)

	if len(games) == 0 {
		fmt.Fprintln(out, "No games finished yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'fruit2048 play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-10s  %-6s  %s\n", "Rank", "Score", "Max", "Moves", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-10s  %-6s  %s\n", "----", "-----", "---", "-----", "----")
	for i, g := range games {
		maxTile := fmt.Sprintf("%d", g.MaxTile)
		if f, ok := game.FruitFor(g.MaxTile); ok {
			maxTile = fmt.Sprintf("%d %s", g.MaxTile, f.Name)
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-10s  %-6d  %s\n",
			i+1, g.Score, maxTile, g.Moves, g.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%d games, average score %.0f, biggest tile %d\n",
			stats.GamesCount, stats.AvgScore, stats.BestTile)
	}
	return nil
}
