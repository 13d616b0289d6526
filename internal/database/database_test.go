package database_test

import (
	"testing"

	"github.com/charile1/golf-reservation/config"
	"github.com/charile1/golf-reservation/internal/database"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := config.LoadTestConfig()

	dsn := database.DSN(&cfg.Database)

	assert.Equal(t, "host=localhost port=5433 user=postgres password=postgres dbname=test_db sslmode=disable timezone=UTC", dsn)
}
