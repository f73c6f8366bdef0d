package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit2048/internal/board"
	"github.com/vovakirdan/fruit2048/internal/game"
)

var simCmd = &cobra.Command{
	Use:   "sim <moves>",
	Short: "Replay a move list without the UI",
	Long: `Play a seeded game headlessly and print the board after every move.

Moves are separated by commas or spaces. Each is a direction name
(left, up, right, down) or its first letter. Nothing is written to the
scores database.

Examples:
  fruit2048 sim --seed 42 l,u,r,d
  fruit2048 sim --seed 7 "left left down right"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSim,
}

func runSim(cmd *cobra.Command, args []string) error {
	dirs, err := parseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dist, err := cfg.Distribution()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := game.NewSession(
		game.WithSeed(seed),
		game.WithDistribution(dist),
		game.WithHintThreshold(cfg.HintThreshold),
		game.WithLogger(logger),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "seed %d\n", seed)
	return simulate(cmd.OutOrStdout(), session, dirs)
}

var letterDirections = map[string]board.Direction{
	"l": board.Left, "u": board.Up, "r": board.Right, "d": board.Down,
}

// parseMoves splits a move list on commas and whitespace.
func parseMoves(s string) ([]board.Direction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, errors.New("no moves given")
	}

	dirs := make([]board.Direction, 0, len(fields))
	for i, f := range fields {
		if d, ok := letterDirections[strings.ToLower(f)]; ok {
			dirs = append(dirs, d)
			continue
		}
		d, err := board.ParseDirection(f)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// simulate applies dirs to session, printing each board. It stops early
// when the game ends.
func simulate(w io.Writer, session *game.Session, dirs []board.Direction) error {
	fmt.Fprintf(w, "start\n%s\n\n", session.Grid())

	for i, d := range dirs {
		res, err := session.Move(d)
		if errors.Is(err, game.ErrGameOver) {
			fmt.Fprintf(w, "move %d: %s ignored, game over\n", i+1, d)
			break
		}
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		// No playout to wait for.
		session.Settle()

		if !res.Changed {
			fmt.Fprintf(w, "move %d: %s changes nothing", i+1, d)
			if hint, ok := session.Hint(); ok {
				fmt.Fprintf(w, " (hint: %s)", hint)
			}
			fmt.Fprintln(w)
			continue
		}

		fmt.Fprintf(w, "move %d: %s +%d, score %d, spawned %d at (%d,%d)\n%s\n\n",
			i+1, d, res.ScoreGain, session.Score(),
			res.Spawned.Value, res.Spawned.Pos.Row, res.Spawned.Pos.Col, session.Grid())
	}

	snap := session.Snapshot()
	fmt.Fprintf(w, "session %s: %s, score %d, best %d, moves %d, max tile %d\n",
		snap.ID, snap.State, snap.Score, snap.Best, snap.Moves, snap.MaxTile)
	return nil
}
