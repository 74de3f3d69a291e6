// File: cmd/service/service.go
// @title        ShopLite API
// @version      1.0
// @description  這是 ShopLite 商品與會員後端 API 文件
// @host         localhost:3000
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"strings"

	"shoplite/internal/audit"
	"shoplite/internal/cache"
	"shoplite/internal/config"
	"shoplite/internal/database"
	"shoplite/internal/router"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "shoplite/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	configLoad      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newRecorder     = audit.NewRecorder
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
)

func run() error {
	cfg, err := configLoad()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %v", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL(), cfg.Database.PoolMax)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL()); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	recorder := newRecorder(db, cfg.Audit.Workers, cfg.Audit.QueueSize)
	defer recorder.Close()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     splitOrigins(cfg.HTTP.CORSOrigins),
		AllowCredentials: true,
	}))

	router.Setup(e, db, rdb, recorder, cfg.CategoryCacheTTL)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.Addr())
}

// splitOrigins 把逗號分隔的 origin 清單拆為 slice
func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
