// File: internal/database/postgres.go
package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxpool 建構可於測試覆寫
var (
	pgxpoolNewWithConfig = pgxpool.NewWithConfig
	pgxpoolParseConfig   = pgxpool.ParseConfig
	poolPing             = func(ctx context.Context, pool *pgxpool.Pool) error { return pool.Ping(ctx) }
	poolClose            = func(pool *pgxpool.Pool) { pool.Close() }
)

const pingTimeout = 5 * time.Second

// NewPgxPool 建立有界連線池並以 Ping 驗證連線
// maxConns <= 0 時沿用 pgxpool 預設值
func NewPgxPool(ctx context.Context, url string, maxConns int32) (DB, error) {
	cfg, err := pgxpoolParseConfig(url)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpoolNewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := poolPing(pingCtx, pool); err != nil {
		poolClose(pool)
		return nil, err
	}
	return pool, nil
}
