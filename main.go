package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/relscan/pkg/cli"
)

func main() {
	// Load .env if present, for SLACK_BOT_TOKEN / GITHUB_TOKEN in local runs
	_ = godotenv.Load()

	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
