// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"shoplite/internal/audit"
	"shoplite/internal/cache"
	"shoplite/internal/database"
	"shoplite/internal/handler"
	"shoplite/internal/handler/auth"
	"shoplite/internal/handler/items"
	"shoplite/internal/handler/users"
	"shoplite/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, recorder *audit.Recorder, categoryTTL time.Duration) {
	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db), middleware.RequireAuth)

	// 使用者登入
	api.POST("/login", auth.LoginHandler(db, recorder))

	// Users
	api.GET("/users", users.ListUsersHandler(db))
	api.POST("/users", users.CreateUserHandler(db))

	// 商品分類與商品
	api.GET("/item_category", items.ListCategoriesHandler(db, rdb, categoryTTL))
	api.GET("/item_list", items.ListItemsHandler(db))
	api.POST("/item_list", items.CreateItemHandler(db))
}
