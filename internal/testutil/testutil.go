// Package testutil 連接整合測試用的 Postgres 與 Redis（見 config.LoadTestConfig）
package testutil

import (
	"context"
	"fmt"

	"github.com/charile1/golf-reservation/config"
	"github.com/charile1/golf-reservation/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// SetupDatabase 連線並套用 migrations；連不上時回傳錯誤，由呼叫端決定是否略過測試
func SetupDatabase() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	pool, err := database.InitDatabase(context.Background(), &cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	if err := database.Migrate(context.Background(), pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	return pool, pool.Close, nil
}

// SetupRedisOnly 僅初始化 Redis，用於只依賴 Redis 的測試（去重、佇列）
func SetupRedisOnly() (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()
	rdb, err := database.InitRedis(context.Background(), &cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	cleanup := func() { rdb.Close() }
	return rdb, cleanup, nil
}
