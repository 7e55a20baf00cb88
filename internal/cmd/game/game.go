// Package game parses game command flags and initializes the world.
package game

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/louisbranch/gridworld/internal/game"
	entrypoint "github.com/louisbranch/gridworld/internal/platform/cmd"
	apperrors "github.com/louisbranch/gridworld/internal/platform/errors"
)

// Config holds game command configuration.
type Config struct {
	Width  int    `env:"WORLD_WIDTH" envDefault:"10"`
	Height int    `env:"WORLD_HEIGHT" envDefault:"5"`
	Locale string `env:"LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Width, "width", cfg.Width, "World width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "World height in cells")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Locale for error messages")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run initializes a world of the configured size and reports its dimensions
// to out.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGame, func(ctx context.Context) error {
		g := game.New(game.WithLogger(logger))
		if err := g.InitializeWorld(ctx, cfg.Width, cfg.Height); err != nil {
			return localize(err, cfg.Locale)
		}
		w := g.World()
		_, err := fmt.Fprintf(out, "World dimensions: %d x %d\n", w.Width(), w.Height())
		return err
	})
}

// ExitCode returns the process exit status for an error returned by Run.
// Domain errors exit with their gRPC status code number, so scripts can
// tell invalid input (3) from out-of-range coordinates (11); anything else
// exits with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	code := apperrors.CodeOf(err)
	if code == apperrors.CodeUnknown {
		return 1
	}
	return int(code.GRPCCode())
}

// localizedError shows a translated message while keeping the domain error
// reachable through errors.As.
type localizedError struct {
	message string
	err     error
}

func (e *localizedError) Error() string { return e.message }

func (e *localizedError) Unwrap() error { return e.err }

func localize(err error, locale string) error {
	var domainErr *apperrors.Error
	if !stderrors.As(err, &domainErr) {
		return err
	}
	return &localizedError{message: domainErr.Localize(locale), err: err}
}
