package main

import (
	"log"
	"os"

	"github.com/meshgraph/meshgraph/cmd"
)

func main() {
	if err := cmd.App.RunContext(cmd.SetupSignalHandler(), os.Args); err != nil {
		log.Fatal(err)
	}
}
