// Package logging owns the process-wide slog setup: JSON records on
// stdout, a fan-out handler, an async Postgres sink for ERROR+ entries
// and the retention sweep over the system_logs table.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs a stdout JSON logger as the slog default. Once the
// database is confirmed reachable, main replaces it with a MultiHandler
// that adds the Postgres sink.
func Setup() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}
