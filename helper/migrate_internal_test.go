package helper

import (
	"hotel/config"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "hotel"
	cfg.DB.Postgres.Write.Password = "p@ss/word"
	cfg.DB.Postgres.Write.Name = "hotel"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	parsed, err := url.Parse(databaseURL(cfg))
	require.NoError(t, err)

	password, _ := parsed.User.Password()

	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "db:5432", parsed.Host)
	assert.Equal(t, "/test_hotel", parsed.Path)
	assert.Equal(t, "hotel", parsed.User.Username())
	assert.Equal(t, "p@ss/word", password)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, defaultMigrationTable, parsed.Query().Get("x-migrations-table"))
}

func TestDatabaseURL_CustomTable(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.MigrationTable = "hotel_migrations"
	cfg.DB.Postgres.Write.Host = "localhost"
	cfg.DB.Postgres.Write.Port = "5432"

	parsed, err := url.Parse(databaseURL(cfg))
	require.NoError(t, err)

	assert.Equal(t, "hotel_migrations", parsed.Query().Get("x-migrations-table"))
	assert.Empty(t, parsed.Query().Get("sslmode"))
}

func TestRunner_UnknownAction(t *testing.T) {
	err := Runner(&config.Config{}, "sideways")

	assert.EqualError(t, err, `unknown migration action "sideways"`)
}

func TestActions(t *testing.T) {
	for _, name := range []string{"up", "step-up", "down", "drop", "version"} {
		assert.Contains(t, actions, name)
	}
}
