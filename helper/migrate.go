package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"

	"hms/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action, use up, down, drop or step-up")

// ConnectionString builds the migrate DSN for the write endpoint, honoring the
// database name prefix and the custom migrations table.
func ConnectionString(cfg *config.Config) string {
	pg := cfg.DB.Postgres
	write := pg.Write

	query := url.Values{}
	query.Set("sslmode", write.SSLMode)

	if pg.MigrationTable != "" {
		query.Set("x-migrations-table", pg.MigrationTable)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(write.Username, write.Password),
		Host:     net.JoinHostPort(write.Host, write.Port),
		Path:     "/" + pg.Prefix + write.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func apply(mig *migrate.Migrate, action string) error {
	switch action {
	case ActionUp:
		return mig.Up() //nolint:wrapcheck
	case ActionDown:
		return mig.Steps(-1) //nolint:wrapcheck
	case ActionStepUp:
		return mig.Steps(1) //nolint:wrapcheck
	case ActionDrop:
		return mig.Down() //nolint:wrapcheck
	}

	return ErrUnknownAction
}

func Runner(cfg *config.Config, action string) error {
	mig, err := migrate.New(migrationsSource, ConnectionString(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err = apply(mig, action); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, _ := mig.Version()

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations applied")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, ActionStepUp)
}

func Down(cfg *config.Config) error {
	return Runner(cfg, ActionDown)
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, ActionDrop)
}
