package main

import (
	"boxes/engine"
	"boxes/experiments"
	"boxes/game"
	"boxes/meta"
	"boxes/player"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := meta.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	flag.IntVar(&cfg.Width, "width", cfg.Width, "Number of columns")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Number of rows")
	flag.StringVar(&cfg.Player1, "player1", cfg.Player1, "Strategy of the first player (random, greedy)")
	flag.StringVar(&cfg.Player2, "player2", cfg.Player2, "Strategy of the second player (random, greedy)")
	flag.IntVar(&cfg.Games, "games", cfg.Games, "Number of games to play")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the move sources")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug prints the board after every move)")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directory for CSV records of a multi-game run")
	flag.Parse()

	setupLogging(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if cfg.Games > 1 {
		if _, err := experiments.Run("match", cfg); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	board, err := runGame(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
	if err := board.CheckConsistency(); err != nil {
		log.Fatal().Err(err).Msg("board is inconsistent")
	}
	fmt.Printf("My Board:\n%s\n", board)
}

// runGame plays a single game and returns the final board
func runGame(cfg meta.Config) (*game.Board, error) {
	board, err := game.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	p1, err := player.New(cfg.Player1, cfg.Seed)
	if err != nil {
		return nil, err
	}
	p2, err := player.New(cfg.Player2, cfg.Seed+1)
	if err != nil {
		return nil, err
	}

	e := engine.NewLocalEngine(board, []player.Player{p1, p2})
	if _, err := e.Run(); err != nil {
		return nil, err
	}
	return board, nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		log.Warn().Msgf("unknown log level %q, using info", level)
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
