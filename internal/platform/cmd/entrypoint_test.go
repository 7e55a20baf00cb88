package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Width int    `env:"CMD_TEST_WIDTH" envDefault:"10"`
	Mode  string `env:"CMD_TEST_MODE" envDefault:"demo"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("GRIDWORLD_CMD_TEST_WIDTH", "12")
	t.Setenv("GRIDWORLD_CMD_TEST_MODE", "env-mode")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.IntVar(&cfg.Width, "width", cfg.Width, "width")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")

	if err := ParseArgs(fs, []string{"-width", "3"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Width != 3 {
		t.Fatalf("expected flag value for width, got %d", cfg.Width)
	}
	if cfg.Mode != "env-mode" {
		t.Fatalf("expected env mode, got %q", cfg.Mode)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestParseArgsAcceptsNilArgs(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := ParseArgs(fs, nil); err != nil {
		t.Fatalf("parse nil args: %v", err)
	}
}

func TestLogPrefix(t *testing.T) {
	if got := LogPrefix(ServiceGame); got != "[GAME] " {
		t.Fatalf("expected [GAME] prefix, got %q", got)
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceGame, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("GRIDWORLD_OTEL_ENDPOINT", "")

	want := errors.New("run failed")
	called := false
	err := RunWithTelemetry(context.Background(), ServiceGame, func(context.Context) error {
		called = true
		return want
	})
	if !called {
		t.Fatal("expected run to be called")
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected run error, got %v", err)
	}
}
