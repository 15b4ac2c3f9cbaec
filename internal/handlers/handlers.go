// Package handlers implements the /admin table endpoints. Each handler reads
// flat JSON, resolves display names to ids, writes through database.DB and
// answers with the flat row the admin UI renders.
package handlers

import (
	"io"
	"log/slog"

	"ia-admin/internal/logging"

	"golang.org/x/crypto/bcrypt"
)

var (
	lg = logging.New(logging.Config{Level: slog.LevelInfo, Output: io.Discard}).
		WithComponent(logging.ComponentAdmin)

	defaultPasswordHash []byte
)

// Setup installs the logger and hashes the password given to employees
// created through the API.
func Setup(l *logging.Logger, defaultPassword string) error {
	lg = l.WithComponent(logging.ComponentAdmin)

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	defaultPasswordHash = hash
	return nil
}
