package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "backoffice-api", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "billing", cfg.Mongo.Database)
	assert.Equal(t, 587, cfg.Mail.SMTPPort)
	assert.Equal(t, 3, cfg.Alert.StockThreshold)
	assert.Equal(t, "0 13 * * *", cfg.Alert.Schedule)
	assert.Equal(t, "./bills", cfg.Billing.ReceiptDir)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, 60, cfg.RateLimit.Duration)
}

func TestOverridesFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STOCK_ALERT_THRESHOLD", "5")
	t.Setenv("ALERT_EMAIL", "ops@example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 5, cfg.Alert.StockThreshold)
	assert.Equal(t, "ops@example.com", cfg.Alert.Recipient)
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5432",
		Name:     "backoffice",
		User:     "app",
		Password: "secret",
		SSLMode:  "disable",
		Timezone: "UTC",
	}

	dsn := db.DSN()

	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "dbname=backoffice")
	assert.Contains(t, dsn, "sslmode=disable")
}
