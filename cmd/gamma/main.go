package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/leonelquinteros/gotext"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"gamma/internal/board"
	"gamma/internal/config"
	"gamma/internal/console"
	"gamma/internal/events"
	"gamma/internal/logging"
	"gamma/internal/match"
	"gamma/internal/store"
	"gamma/internal/ui"
)

const (
	exitWrongInput = 1
	exitAllocation = 2
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitWrongInput)
	}
}

func newApp() *cli.App {
	cfg := config.Load()
	return &cli.App{
		Name:      "gamma",
		Usage:     "territory game for up to 35 players",
		ArgsUsage: "width height players areas",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "batch", Usage: "read \"x y\" moves from stdin instead of the full screen view"},
			&cli.BoolFlag{Name: "json", Usage: "print the final report as JSON (batch mode)"},
			&cli.BoolFlag{Name: "no-color", Usage: "plain results"},
			&cli.BoolFlag{Name: "verify", Usage: "recheck the game bookkeeping after every move"},
			&cli.StringFlag{Name: "events", Usage: "append match events as JSON lines to `FILE`"},
			&cli.StringFlag{Name: "log-file", Value: cfg.LogFile, EnvVars: []string{"GAMMA_LOG_FILE"}},
			&cli.StringFlag{Name: "log-level", Value: cfg.LogLevel, EnvVars: []string{"GAMMA_LOG_LEVEL"}},
			&cli.StringFlag{Name: "locale", Value: cfg.Locale, EnvVars: []string{"GAMMA_LOCALE"}},
			&cli.StringFlag{Name: "locales-dir", Value: cfg.LocalesDir, EnvVars: []string{"GAMMA_LOCALES_DIR"}},
		},
		Action: func(c *cli.Context) error {
			return run(c, cfg)
		},
	}
}

func run(c *cli.Context, cfg config.Config) error {
	if err := parseArgs(c.Args().Slice(), &cfg); err != nil {
		return cli.Exit(err, exitWrongInput)
	}
	cfg.LogFile = c.String("log-file")
	cfg.LogLevel = c.String("log-level")
	cfg.Locale = c.String("locale")
	cfg.LocalesDir = c.String("locales-dir")

	gotext.Configure(cfg.LocalesDir, cfg.Locale, "default")

	log, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return cli.Exit(err, exitWrongInput)
	}
	defer log.Sync()

	hub := events.NewHub(log)
	mg := match.NewManager(store.NewMemoryStore(), cfg, log, hub)
	mg.SetVerify(c.Bool("verify"))
	m, err := mg.Create()
	switch {
	case errors.Is(err, board.ErrAllocation):
		return cli.Exit(gotext.Get("Could not allocate the board: %v", err), exitAllocation)
	case err != nil:
		return cli.Exit(err, exitWrongInput)
	}

	if path := c.String("events"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return cli.Exit(err, exitWrongInput)
		}
		defer f.Close()
		hub.Subscribe(m.ID, f)
		defer hub.Unsubscribe(m.ID, f)
	}

	color := !c.Bool("no-color") && term.IsTerminal(int(os.Stdout.Fd()))
	if c.Bool("batch") {
		err = console.Run(m, os.Stdin, os.Stdout, console.Options{JSON: c.Bool("json"), Color: color})
	} else {
		err = ui.Run(m, os.Stdout, color)
	}
	if err != nil {
		log.Error("match failed", zap.String("match", m.ID), zap.Error(err))
		return cli.Exit(err, exitWrongInput)
	}
	return nil
}

// parseArgs overlays the positional width height players areas on cfg.
// Either all four are given or none.
func parseArgs(args []string, cfg *config.Config) error {
	switch len(args) {
	case 0:
		return cfg.Validate()
	case 4:
	default:
		return fmt.Errorf("%w: want width height players areas, got %d arguments", config.ErrConfig, len(args))
	}
	dst := []*int{&cfg.Width, &cfg.Height, &cfg.Players, &cfg.Areas}
	names := []string{"width", "height", "players", "areas"}
	for i, a := range args {
		n, err := strconv.ParseUint(a, 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("%w: bad %s %q", config.ErrConfig, names[i], a)
		}
		*dst[i] = int(n)
	}
	return cfg.Validate()
}
