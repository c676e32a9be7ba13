package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/meshgraph/meshgraph/config"
	"github.com/urfave/cli/v2"
)

var App = &cli.App{
	Name:     "meshgraph",
	Usage:    "pub/sub discovery graph cache",
	Version:  "0.0.1",
	Commands: []*cli.Command{},
}

var onlyOneSignalHandler = make(chan struct{})

// SetupSignalHandler registers for SIGTERM and SIGINT. A context is returned
// which is canceled on one of these signals. If a second signal is caught, the program
// is terminated with exit code 1.
func SetupSignalHandler() context.Context {
	close(onlyOneSignalHandler) // panics when called twice

	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, shutdownSignals...)
	go func() {
		<-c
		cancel()
		<-c
		os.Exit(1) // second signal. Exit directly.
	}()

	return ctx
}

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT}

func applyConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := &config.Config{}
	if ctx.String("config") != "" {
		loaded, err := config.Load(ctx.String("config"))
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Apply command line flags, overriding configuration file values
	listenAddr := ctx.String("listen")
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}

	httpAddr := ctx.String("http")
	if httpAddr != "" {
		cfg.HTTPAddr = httpAddr
	}

	logLevel := ctx.String("loglevel")
	if logLevel != "" {
		cfg.Loglevel = logLevel
	}

	implementationID := ctx.String("implementation-id")
	if implementationID != "" {
		cfg.ImplementationID = implementationID
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":6970"
	}
	if cfg.Loglevel == "" {
		cfg.Loglevel = "info"
	}

	return cfg, nil
}
