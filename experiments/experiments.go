package experiments

import (
	"boxes/engine"
	"boxes/experiments/metrics"
	"boxes/game"
	"boxes/meta"
	"boxes/player"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Summary tallies the outcomes of a run.
type Summary struct {
	Player1Wins int
	Player2Wins int
	Ties        int
	Games       []metrics.GameRecord
	Moves       []metrics.MoveRecord
}

// Run plays cfg.Games games between the two configured strategies. Each game
// uses a fresh board and seeds derived from cfg.Seed. When cfg.OutputDir is
// set the records are stored as CSV under it.
func Run(name string, cfg meta.Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	match := metrics.MatchConfig{
		ID:      1,
		Player1: cfg.Player1,
		Player2: cfg.Player2,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Seed:    cfg.Seed,
	}

	log.Info().Msgf("starting %s experiment: %s vs %s on %dx%d, %d games",
		name, cfg.Player1, cfg.Player2, cfg.Width, cfg.Height, cfg.Games)

	var summary Summary
	for i := 0; i < cfg.Games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, cfg.Games)

		result, err := runGame(cfg, cfg.Seed+uint64(2*i))
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}
		switch result.Outcome {
		case game.PlayerAWins:
			summary.Player1Wins++
		case game.PlayerBWins:
			summary.Player2Wins++
		default:
			summary.Ties++
		}

		id := i + 1
		summary.Games = append(summary.Games, metrics.GameRecord{
			ID:         id,
			Match:      match.ID,
			GameMetric: result.Game,
		})
		for _, mm := range result.Moves {
			summary.Moves = append(summary.Moves, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d with winner: %s (%d to %d)", id, result.Outcome, result.Score.A, result.Score.B)
	}

	log.Info().
		Int("player1_wins", summary.Player1Wins).
		Int("player2_wins", summary.Player2Wins).
		Int("ties", summary.Ties).
		Msgf("completed %s experiment", name)

	if cfg.OutputDir == "" {
		return summary, nil
	}
	if err := store(cfg.OutputDir, name, match, summary); err != nil {
		return summary, err
	}
	return summary, nil
}

func runGame(cfg meta.Config, seed uint64) (engine.Result, error) {
	board, err := game.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return engine.Result{}, err
	}
	p1, err := player.New(cfg.Player1, seed)
	if err != nil {
		return engine.Result{}, err
	}
	p2, err := player.New(cfg.Player2, seed+1)
	if err != nil {
		return engine.Result{}, err
	}

	e := engine.NewLocalEngine(board, []player.Player{p1, p2}, engine.WithMetrics())
	return e.Run()
}

func store(root, name string, match metrics.MatchConfig, summary Summary) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteMatchConfigs([]metrics.MatchConfig{match}); err != nil {
		return fmt.Errorf("failed to store match configs: %w", err)
	}
	log.Info().Msg("stored match configs")

	if err := writer.WriteGameRecords(summary.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(summary.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}
