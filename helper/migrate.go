package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

var ErrUnknownDirection = errors.New("unknown migration direction")

// Direction is one of the supported migration commands.
type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStepUp Direction = "step-up"
	DirectionDrop   Direction = "drop"
)

var directions = map[Direction]struct {
	apply func(*migrate.Migrate) error
	done  string
}{
	DirectionUp:     {apply: (*migrate.Migrate).Up, done: "Database migrations completed successfully"},
	DirectionStepUp: {apply: func(m *migrate.Migrate) error { return m.Steps(1) }, done: "Database migrated one step up"},
	DirectionDown:   {apply: func(m *migrate.Migrate) error { return m.Steps(-1) }, done: "Database migrations rolled back one step"},
	DirectionDrop:   {apply: (*migrate.Migrate).Down, done: "Database schema rolled back completely"},
}

// connectionString targets the write node, which owns the schema and the
// booking procedures.
func connectionString(cfg *config.Config) string {
	options := url.Values{}

	if cfg.DB.Postgres.MigrationTable != "" {
		options.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	return postgres.WriteNode(cfg).DSN(options)
}

// Migrate applies direction against the configured database.
func Migrate(cfg *config.Config, direction Direction) error {
	action, ok := directions[direction]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	mig, err := migrate.New(migrationsSource, connectionString(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := action.apply(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", direction, err)
	}

	log.Info().Str("direction", string(direction)).Msg(action.done)

	return nil
}
