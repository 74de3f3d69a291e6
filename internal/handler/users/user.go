package users

import (
	"net/http"
	"strings"

	"shoplite/internal/api"
	"shoplite/internal/database"
	"shoplite/internal/handler"
	"shoplite/internal/model"
	"shoplite/internal/service"
	"shoplite/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
	listUsers    = store.ListUsers
)

// @Summary     List users
// @Description 回傳全部使用者，僅含 id 與 user_name，不含密碼哈希
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return handler.JSONError(c, err)
		}
		resp := make([]api.UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, api.UserResponse{ID: u.ID, UserName: u.Name})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a new user
// @Description 接收 JSON 建立新帳號，密碼以 bcrypt 哈希後存放 (Email 會自動轉小寫)
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "使用者資料"
// @Success     201  {object} api.CreateResponse
// @Failure     400  {object} api.ErrorResponse "請求格式錯誤"
// @Failure     409  {object} api.ErrorResponse "Email 已存在"
// @Failure     422  {object} api.ErrorResponse "欄位缺漏或不合法"
// @Failure     500  {object} api.ErrorResponse "伺服器錯誤"
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid JSON body"})
		}
		if err := c.Validate(&req); err != nil {
			return handler.JSONError(c, err)
		}

		req.Email = strings.ToLower(req.Email)

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Username,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if err != nil {
			return handler.JSONError(c, err)
		}

		return c.JSON(http.StatusCreated, api.CreateResponse{
			Success: true,
			Result:  api.InsertResult{InsertID: user.ID, AffectedRows: 1},
		})
	}
}
