package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, DataSourceFixtures, cfg.DataSource.Driver)
	assert.Equal(t, 40.0, cfg.Orders.UYUPerUSD)
	assert.Equal(t, 4, cfg.Dashboard.QuickAccessLimit)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, time.Second, cfg.Intents.RetryDelay)
	assert.Empty(t, cfg.Intents.AMQPURL)
	assert.Equal(t, "comma", cfg.Exports.CSVDelimiter)
	assert.Equal(t, 5*time.Second, cfg.Database.StatementTimeout)
	assert.Zero(t, cfg.Redis.DialTimeout)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("DATA_SOURCE", " Postgres ")
	v.Set("ORDERS_UYU_PER_USD", 42.5)
	v.Set("CACHE_TTL", "not-a-duration")
	v.Set("ALLOWED_ORIGINS", "https://tinta.uy, ,https://admin.tinta.uy")

	cfg := fromViper(v)

	assert.Equal(t, DataSourcePostgres, cfg.DataSource.Driver)
	assert.Equal(t, 42.5, cfg.Orders.UYUPerUSD)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, []string{"https://tinta.uy", "https://admin.tinta.uy"}, cfg.CORS.AllowedOrigins)
}

func TestFromViperRejectsNonPositiveRate(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("ORDERS_UYU_PER_USD", 0)

	cfg := fromViper(v)

	assert.Equal(t, 40.0, cfg.Orders.UYUPerUSD)
}

func TestFromViperUnknownDriverFallsBackToFixtures(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("DATA_SOURCE", "mongo")

	assert.Equal(t, DataSourceFixtures, fromViper(v).DataSource.Driver)
}
