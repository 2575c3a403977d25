package postgres

//nolint:revive
import (
	"fmt"
	"hotel/config"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection keeps separate pools so reads can be pointed at a replica.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
}

func (e endpoint) dsn() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		e.username,
		e.password,
		net.JoinHostPort(e.host, e.port),
		e.dbName,
		e.sslMode,
	)
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	write := endpoint{
		name:     "write",
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		dbName:   DBName(cfg, pg.Write.Name),
		sslMode:  pg.Write.SSLMode,
	}

	read := endpoint{
		name:     "read",
		username: pg.Read.Username,
		password: pg.Read.Password,
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		dbName:   DBName(cfg, pg.Read.Name),
		sslMode:  pg.Read.SSLMode,
	}

	// A single-node setup only configures the write side.
	if read.host == "" {
		read = write
		read.name = "read"
	}

	return &Connection{
		Read:  connect(read, pg.MaxRetry, pg.RetryWaitTime),
		Write: connect(write, pg.MaxRetry, pg.RetryWaitTime),
	}
}

// DBName returns the database name with prefix if configured
func DBName(cfg *config.Config, baseName string) string {
	if cfg.DB.Postgres.Prefix != "" {
		return cfg.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// Close releases both pools.
func (c *Connection) Close() {
	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed closing database connection")
		}
	}
}

func connect(e endpoint, maxRetry, waitTime int) *sqlx.DB {
	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", e.dsn())
		if err == nil {
			log.
				Info().
				Str("name", e.name).
				Str("host", e.host).
				Str("port", e.port).
				Str("dbName", e.dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", e.name).
			Str("host", e.host).
			Str("port", e.port).
			Str("dbName", e.dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Str("name", e.name).Msg("Giving up connecting to database")

	return nil
}
