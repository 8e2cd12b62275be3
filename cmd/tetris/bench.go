package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/session"
)

var (
	flagGames  int
	flagPieces int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the autopilot headless",
	Long: `Plays games with the autopilot and no display, as fast as the search
allows, then prints score, lines and search counters per game.

Each game uses the next seed after --seed, so a run is reproducible when
--seed is set.

Examples:
  tetris bench
  tetris bench --games 10 --pieces 1000 --seed 1
  tetris bench --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagGames, "games", 3, "Number of games to play")
	benchCmd.Flags().IntVar(&flagPieces, "pieces", 500, "Piece limit per game (0 = until game over)")
}

// benchResult is the outcome of one headless game.
type benchResult struct {
	Seed     int64
	Score    int
	Lines    int
	Pieces   int
	GameOver bool
	Elapsed  time.Duration
}

func runBench(_ *cobra.Command, _ []string) error {
	tcfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := runtimeConfig().ResolveSeed()

	fmt.Printf("  %-20s  %8s  %6s  %6s  %8s  %s\n", "Seed", "Score", "Lines", "Pieces", "Time", "End")
	var total benchResult
	for i := range flagGames {
		sess := session.New(session.Options{
			Config: tcfg,
			Seed:   seed + int64(i),
			Logger: logger.With("game", i+1),
		})
		res := benchGame(sess, seed+int64(i))

		end := "limit"
		if res.GameOver {
			end = "topped out"
		}
		fmt.Printf("  %-20d  %8d  %6d  %6d  %8s  %s\n",
			res.Seed, res.Score, res.Lines, res.Pieces, res.Elapsed.Round(time.Millisecond), end)

		stats := sess.Stats()
		logger.Info("game finished",
			"seed", res.Seed,
			"score", res.Score,
			"searches", stats.Searches,
			"candidates", stats.Candidates,
			"evaluations", stats.Evaluations,
		)

		total.Score += res.Score
		total.Lines += res.Lines
		total.Pieces += res.Pieces
		total.Elapsed += res.Elapsed
	}

	if flagGames > 0 {
		fmt.Println()
		fmt.Printf("  average score %.1f, lines %.1f, pieces %.1f\n",
			float64(total.Score)/float64(flagGames),
			float64(total.Lines)/float64(flagGames),
			float64(total.Pieces)/float64(flagGames))
	}
	return nil
}

// benchGame plans and commits pieces until the game ends or hits the piece
// limit.
func benchGame(sess *session.Session, seed int64) benchResult {
	start := time.Now()
	for {
		state := sess.State()
		if state.GameOver || (flagPieces > 0 && state.Pieces >= flagPieces) {
			return benchResult{
				Seed:     seed,
				Score:    state.Score,
				Lines:    state.Lines,
				Pieces:   state.Pieces,
				GameOver: state.GameOver,
				Elapsed:  time.Since(start),
			}
		}
		if sess.Plan() {
			sess.Commit()
		}
	}
}
