package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/gridworld/internal/platform/otel"
)

func TestConfigActive(t *testing.T) {
	tests := []struct {
		cfg  otel.Config
		want bool
	}{
		{otel.Config{}, false},
		{otel.Config{Enabled: true}, false},
		{otel.Config{Enabled: true, Endpoint: "   "}, false},
		{otel.Config{Enabled: false, Endpoint: "http://localhost:4318"}, false},
		{otel.Config{Enabled: true, Endpoint: "http://localhost:4318"}, true},
	}
	for _, tc := range tests {
		if got := tc.cfg.Active(); got != tc.want {
			t.Fatalf("%+v: expected %v, got %v", tc.cfg, tc.want, got)
		}
	}
}

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("GRIDWORLD_OTEL_ENDPOINT", "")
	t.Setenv("GRIDWORLD_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "gridworld-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("GRIDWORLD_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("GRIDWORLD_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "gridworld-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetup_RejectsMalformedEnabledFlag(t *testing.T) {
	t.Setenv("GRIDWORLD_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("GRIDWORLD_OTEL_ENABLED", "maybe")

	shutdown, err := otel.Setup(context.Background(), "gridworld-test")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetupWithConfig_CreatesProvider(t *testing.T) {
	// Non-routable address so no export happens.
	cfg := otel.Config{Endpoint: "http://192.0.2.1:4318", Enabled: true}

	shutdown, err := otel.SetupWithConfig(context.Background(), "gridworld-test", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
