package migrations

import (
	"fmt"

	"github.com/blacdimirr/traccarsavekid/shared"

	"github.com/mattes/migrate"
	_ "github.com/mattes/migrate/database/postgres"
	_ "github.com/mattes/migrate/source/file"
	"github.com/pkg/errors"
)

// Up brings the schema to the latest version and reports whether any
// migration was applied.
func Up(config *shared.AppConfig) (bool, error) {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", config.SqlMigrationsSourceDir),
		config.DatabaseURL(),
	)
	if err != nil {
		return false, errors.Wrap(err, "failed to open migration source")
	}

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to apply migrations")
	}

	return true, nil
}
