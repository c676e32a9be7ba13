package cmd

import (
	"github.com/meshgraph/meshgraph/pkg/feed"
	"github.com/meshgraph/meshgraph/pkg/graph"
	"github.com/meshgraph/meshgraph/pkg/listener"
	"github.com/meshgraph/meshgraph/pkg/log"
	"github.com/meshgraph/meshgraph/pkg/names"
	"github.com/meshgraph/meshgraph/pkg/server"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func init() {
	App.Commands = append(App.Commands, Server)
}

var Server = &cli.Command{
	Name:  "server",
	Usage: "run the discovery graph server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "config file path",
			Value:   "",
		},
		&cli.StringFlag{
			Name:    "loglevel",
			Aliases: []string{"ll"},
			Usage:   "log level (debug info warn error dpanic panic fatal)",
			Value:   "",
		},
		&cli.StringFlag{
			Name:  "listen",
			Usage: "gRPC listen address",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "http",
			Usage: "HTTP listen address for /metrics and /feed",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "implementation-id",
			Usage: "identifier node handles must carry",
			Value: "",
		},
	},
	Action: runServer,
}

func runServer(ctx *cli.Context) error {
	cfg, err := applyConfig(ctx)
	if err != nil {
		return err
	}

	logger, err := log.SetupLogger(cfg.Loglevel)
	if err != nil {
		return err
	}

	expander, err := names.NewExpander(cfg.Prefixes, cfg.ExpandCacheSize)
	if err != nil {
		return err
	}

	g := graph.New(logger.Named("graph"), cfg.ImplementationID, expander)
	lst := listener.New(logger.Named("listener"), g.WriterCache(), g.ReaderCache())

	var hub *feed.Hub
	if cfg.HTTPAddr != "" {
		var opts feed.Options
		if sink, ok := cfg.FindSink("websocket"); ok {
			if err := sink.LoadSinkConfig(&opts); err != nil {
				return err
			}
		}
		hub = feed.NewHub(logger.Named("feed"), opts)
		lst.OnEvent(func(ev listener.Event) {
			hub.Broadcast(feed.Frame{
				Op:          ev.Op.String(),
				Endpoint:    ev.Endpoint.String(),
				Participant: ev.Participant.String(),
				Topic:       ev.Topic,
				Type:        ev.Type,
			})
		})
	}

	srv := server.New(
		logger.With(zap.String("controller", "graph")),
		g,
		lst,
		hub,
		server.Options{ListenAddr: cfg.ListenAddr, HTTPAddr: cfg.HTTPAddr},
	)

	return srv.Start(ctx.Context)
}
