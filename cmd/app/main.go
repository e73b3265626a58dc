// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"goaltracker/internal/config"
	"goaltracker/internal/server"
)

func main() {
	cmd := &cli.Command{
		Name:   "goaltracker",
		Usage:  "Self-hosted personal goal and productivity tracker",
		Flags:  config.Flags(),
		Action: server.Run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
