package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/jobboard/cmd/jobctl/commands"
)

func main() {
	// .env is optional for the CLI
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
