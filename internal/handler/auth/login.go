// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"shoplite/internal/api"
	"shoplite/internal/audit"
	"shoplite/internal/database"
	"shoplite/internal/handler"
	"shoplite/internal/service"
	"shoplite/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	getUserByEmail   = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
)

// accessTokenTTL 存取令牌有效期
const accessTokenTTL = 24 * time.Hour

const invalidCredentialsMessage = "Invalid email or password"

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// 以 email 過濾單列後在行程內比對 bcrypt，不掃描整張資料表
// 每次嘗試（成功或失敗）都排入稽核佇列
// @Summary     Login
// @Description 使用 Email 與 Password 進行驗證，成功回傳存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     201  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse "請求格式錯誤"
// @Failure     401  {object} api.LoginResponse "帳號或密碼錯誤"
// @Failure     422  {object} api.ErrorResponse "欄位缺漏"
// @Failure     500  {object} api.ErrorResponse "伺服器錯誤"
// @Router      /login [post]
func LoginHandler(db database.DB, recorder *audit.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid JSON body"})
		}
		if err := c.Validate(&req); err != nil {
			return handler.JSONError(c, err)
		}

		req.Email = strings.ToLower(req.Email)

		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			// 查無此帳號才算登入失敗；後端故障不記稽核、直接回 5xx
			if !errors.Is(err, pgx.ErrNoRows) {
				return handler.JSONError(c, err)
			}
			recorder.Record(audit.Event{Email: req.Email, Succeeded: false})
			return c.JSON(http.StatusUnauthorized, api.LoginResponse{
				Success: false,
				Message: invalidCredentialsMessage,
			})
		}

		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			recorder.Record(audit.Event{Email: req.Email, Succeeded: false})
			return c.JSON(http.StatusUnauthorized, api.LoginResponse{
				Success: false,
				Message: invalidCredentialsMessage,
			})
		}

		token, err := issueAccessToken(*user, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		recorder.Record(audit.Event{Email: req.Email, Succeeded: true})
		return c.JSON(http.StatusCreated, api.LoginResponse{
			Success: true,
			Message: "Login successful",
			Token:   token,
		})
	}
}
