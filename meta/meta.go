// meta/meta.go
package meta

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// WIDTH defines the default number of columns.
const WIDTH = 10

// HEIGHT defines the default number of rows.
const HEIGHT = 10

// GAMES defines how many games a run plays.
const GAMES = 1

// Config controls a run. Every field can be set from the environment.
type Config struct {
	Width     int    `env:"BOXES_WIDTH"      envDefault:"10"`
	Height    int    `env:"BOXES_HEIGHT"     envDefault:"10"`
	Player1   string `env:"BOXES_PLAYER1"    envDefault:"random"`
	Player2   string `env:"BOXES_PLAYER2"    envDefault:"random"`
	Games     int    `env:"BOXES_GAMES"      envDefault:"1"`
	Seed      uint64 `env:"BOXES_SEED"`
	LogLevel  string `env:"BOXES_LOG_LEVEL"  envDefault:"info"`
	OutputDir string `env:"BOXES_OUTPUT_DIR"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Width:    WIDTH,
		Height:   HEIGHT,
		Player1:  "random",
		Player2:  "random",
		Games:    GAMES,
		LogLevel: "info",
	}
}

// Load reads an optional .env file from dotenvPath, then the process
// environment. Variables already set in the environment win over the file.
func Load(dotenvPath string) (Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	return nil
}
