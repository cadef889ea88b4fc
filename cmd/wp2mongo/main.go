package main

import (
	"fmt"
	"os"

	"wp2mongo/cmd/wp2mongo/cmd"
	"wp2mongo/internal/config"
)

func main() {
	cfg, envFile, err := config.InitializeConfig()
	if err != nil {
		// an unreadable .env is not fatal, the process environment still applies
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
		cfg = config.Load()
	}

	cmd.Execute(cfg, envFile)
}
