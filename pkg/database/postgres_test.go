package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/tinta-academy-api/pkg/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:             "db",
		Port:             5432,
		User:             "tinta",
		Password:         "s3cret pass",
		Name:             "tinta_academy",
		SSLMode:          "disable",
		StatementTimeout: 3 * time.Second,
	})

	assert.Equal(t, "host=db port=5432 user=tinta password='s3cret pass' dbname=tinta_academy sslmode=disable "+
		"application_name=tinta-academy-api default_transaction_read_only=on statement_timeout=3000", dsn)
}

func TestDSNQuotesEmptyAndSpecialValues(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: `it's`, Name: "n", SSLMode: "require"})

	assert.Contains(t, dsn, `password='it\'s'`)
	assert.NotContains(t, dsn, "statement_timeout")
}
