// seed-user creates a user who can log in to the till back office, or
// resets the password and role of an existing one.
//
// Usage:
//
//	DATABASE_DSN=... go run ./cmd/seed-user --username alice --password secret --role editor
package main

import (
	"os"

	"till-backend/internal/config"
)

func main() {
	if err := newRootCommand(config.NewLogger("info")).Execute(); err != nil {
		os.Exit(1)
	}
}
