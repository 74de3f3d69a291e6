// File: internal/handler/respond.go
package handler

import (
	"errors"
	"net/http"

	"shoplite/internal/api"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

// PostgreSQL SQLSTATE 錯誤碼
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ErrorStatus 將錯誤分類為唯一對應的 HTTP 狀態碼
// 400 請求格式錯誤、422 欄位驗證失敗、404 查無資料、
// 409 唯一性衝突、422 外鍵不存在、其餘一律 500
func ErrorStatus(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return http.StatusConflict
		case pgForeignKeyViolation:
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

// JSONError 統一輸出錯誤信封；5xx 不外洩驅動錯誤內文
func JSONError(c echo.Context, err error) error {
	status := ErrorStatus(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = "database query failed"
	}
	return c.JSON(status, api.ErrorResponse{Message: msg})
}
