package main

import (
	"log/slog"

	"github.com/google/gops/agent"
	"github.com/inovacc/jotr/cmd"
)

func main() {
	startGops()
	cmd.Execute()
}

// startGops starts the gops diagnostics agent. The journal works fine
// without it, so failure is only logged.
func startGops() {
	if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
		slog.Warn("gops agent unavailable", "error", err)
	}
}
