package game

import (
	"context"
	"log"
	"sync"

	"github.com/louisbranch/gridworld/internal/world"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/gridworld/internal/game"

// Game holds the active world. The zero value is ready to use and logs to
// log.Default with the global tracer provider.
type Game struct {
	logger *log.Logger
	tracer trace.Tracer

	mu    sync.RWMutex
	world *world.World
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used to report initialization failures.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithTracer sets the tracer used for world initialization spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(g *Game) {
		if tracer != nil {
			g.tracer = tracer
		}
	}
}

// New builds a Game with no world.
func New(opts ...Option) *Game {
	g := &Game{
		logger: log.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var shared = sync.OnceValue(func() *Game { return New() })

// Instance returns the process-wide Game, building it on first use.
func Instance() *Game {
	return shared()
}

// InitializeWorld replaces the held world with a new width x height world.
//
// On failure the error is logged and returned unchanged, and the previous
// world stays in place.
func (g *Game) InitializeWorld(ctx context.Context, width, height int) error {
	_, span := g.tracerOrDefault().Start(ctx, "game.InitializeWorld", trace.WithAttributes(
		attribute.Int("world.width", width),
		attribute.Int("world.height", height),
	))
	defer span.End()

	w, err := world.New(width, height)
	if err != nil {
		g.loggerOrDefault().Printf("initialize world: %v", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	g.mu.Lock()
	g.world = w
	g.mu.Unlock()
	return nil
}

// World returns the held world, or nil before the first successful
// InitializeWorld.
func (g *Game) World() *world.World {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.world
}

func (g *Game) loggerOrDefault() *log.Logger {
	if g.logger == nil {
		return log.Default()
	}
	return g.logger
}

func (g *Game) tracerOrDefault() trace.Tracer {
	if g.tracer == nil {
		return otel.Tracer(tracerName)
	}
	return g.tracer
}
