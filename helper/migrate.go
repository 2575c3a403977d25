package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/postgres"
	"hotel/migrations"
	"net"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	defaultMigrationTable = "schema_migrations"
)

type action struct {
	run  func(mig *migrate.Migrate) error
	done string
}

var actions = map[string]action{
	"up": {
		run:  func(mig *migrate.Migrate) error { return mig.Up() },
		done: "Database migrations completed successfully",
	},
	"step-up": {
		run:  func(mig *migrate.Migrate) error { return mig.Steps(1) },
		done: "Applied the next database migration",
	},
	"down": {
		run:  func(mig *migrate.Migrate) error { return mig.Steps(-1) },
		done: "Rolled back the last database migration",
	},
	"drop": {
		run:  func(mig *migrate.Migrate) error { return mig.Down() },
		done: "All database migrations rolled back",
	},
	"version": {
		run: func(mig *migrate.Migrate) error {
			version, dirty, err := mig.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				log.Info().Msg("No migration applied yet")

				return nil
			}

			if err != nil {
				return err //nolint:wrapcheck
			}

			log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current schema version")

			return nil
		},
	},
}

// databaseURL points golang-migrate at the write pool. Credentials are escaped.
func databaseURL(cfg *config.Config) string {
	write := cfg.DB.Postgres.Write

	table := cfg.DB.Postgres.MigrationTable
	if table == "" {
		table = defaultMigrationTable
	}

	query := url.Values{}
	query.Set("x-migrations-table", table)

	if write.SSLMode != "" {
		query.Set("sslmode", write.SSLMode)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(write.Username, write.Password),
		Host:     net.JoinHostPort(write.Host, write.Port),
		Path:     "/" + postgres.DBName(cfg, write.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, migrations.PostgresDir)
	if err != nil {
		return nil, fmt.Errorf("error reading embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, databaseURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies one of up, step-up, down, drop or version to the bookings schema.
func Runner(cfg *config.Config, name string) error {
	act, ok := actions[name]
	if !ok {
		return fmt.Errorf("unknown migration action %q", name)
	}

	mig, err := newMigrate(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	if err := act.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", name, err)
	}

	if act.done != "" {
		log.Info().Str("action", name).Msg(act.done)
	}

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, "up")
}
