package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	gamecmd "github.com/louisbranch/gridworld/internal/cmd/game"
	entrypoint "github.com/louisbranch/gridworld/internal/platform/cmd"
	"github.com/louisbranch/gridworld/internal/platform/config"
)

func main() {
	cfg, err := gamecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceGame))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := gamecmd.Run(ctx, cfg, os.Stdout, log.Default()); err != nil {
		stop()
		config.ExitWithCode(gamecmd.ExitCode(err), "%v", err)
	}
}
