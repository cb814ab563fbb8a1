package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/sourcepacker/sourcepacker/internal/cli"
	"github.com/sourcepacker/sourcepacker/internal/logging"
)

var version = "dev"

func main() {
	// A .env file can carry SOURCEPACKER_ROOT and similar overrides.
	_ = godotenv.Load()

	cli.SetVersion(version)

	err := cli.Execute()
	_ = logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
