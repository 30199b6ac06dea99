package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gamma/internal/board"
)

var ErrConfig = errors.New("invalid configuration")

type Config struct {
	Width   int
	Height  int
	Players int
	Areas   int

	LogLevel   string
	LogFile    string // empty disables logging
	Locale     string
	LocalesDir string
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// Load reads the defaults from the environment.
func Load() Config {
	return Config{
		Width:      getenvInt("GAMMA_WIDTH", 10),
		Height:     getenvInt("GAMMA_HEIGHT", 10),
		Players:    getenvInt("GAMMA_PLAYERS", 2),
		Areas:      getenvInt("GAMMA_AREAS", 3),
		LogLevel:   getenv("GAMMA_LOG_LEVEL", "info"),
		LogFile:    getenv("GAMMA_LOG_FILE", ""),
		Locale:     getenv("GAMMA_LOCALE", "en_US"),
		LocalesDir: getenv("GAMMA_LOCALES_DIR", "locales"),
	}
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: board %dx%d", ErrConfig, c.Width, c.Height)
	case c.Players <= 0 || c.Players > board.MaxPlayers:
		return fmt.Errorf("%w: %d players, want 1..%d", ErrConfig, c.Players, board.MaxPlayers)
	case c.Areas <= 0:
		return fmt.Errorf("%w: %d areas", ErrConfig, c.Areas)
	}
	return nil
}
