package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/meshgraph/meshgraph/pkg/server"
	"github.com/urfave/cli/v2"
)

func init() {
	App.Commands = append(App.Commands, Topics)
}

var Topics = &cli.Command{
	Name:  "topics",
	Usage: "list all known topics and their types",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"srv"},
			Usage:   "graph server address",
			Value:   "127.0.0.1:6970",
		},
	},
	Action: runTopics,
}

func runTopics(ctx *cli.Context) error {
	client, err := server.NewClient(ctx.String("server"))
	if err != nil {
		return err
	}
	defer client.Close()

	topics, err := client.ListTopics(ctx.Context)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(topics))
	for name := range topics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s: %s\n", name, strings.Join(topics[name], ","))
	}
	return nil
}
