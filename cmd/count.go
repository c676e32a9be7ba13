package cmd

import (
	"fmt"

	"github.com/meshgraph/meshgraph/pkg/server"
	"github.com/urfave/cli/v2"
)

func init() {
	App.Commands = append(App.Commands, Count)
}

var Count = &cli.Command{
	Name:  "count",
	Usage: "count publishers or subscribers on a topic",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"srv"},
			Usage:   "graph server address",
			Value:   "127.0.0.1:6970",
		},
		&cli.StringFlag{
			Name:     "topic",
			Usage:    "topic name to look up",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "kind",
			Usage: "publishers or subscribers",
			Value: "publishers",
		},
		&cli.StringFlag{
			Name:  "node",
			Usage: "node name reported with the query",
			Value: "meshgraph-cli",
		},
		&cli.StringFlag{
			Name:  "implementation-id",
			Usage: "identifier the server expects on node handles",
			Value: "",
		},
	},
	Action: runCount,
}

func runCount(ctx *cli.Context) error {
	opts := []server.ClientOption{server.WithNodeName(ctx.String("node"))}
	if id := ctx.String("implementation-id"); id != "" {
		opts = append(opts, server.WithImplementationID(id))
	}

	client, err := server.NewClient(ctx.String("server"), opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	topic := ctx.String("topic")

	var count uint64
	switch kind := ctx.String("kind"); kind {
	case "publishers":
		count, err = client.CountPublishers(ctx.Context, topic)
	case "subscribers":
		count, err = client.CountSubscribers(ctx.Context, topic)
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s %s: %d\n", topic, ctx.String("kind"), count)
	return nil
}
