package api

// UserResponse 使用者清單項目，僅投影非敏感欄位
// swagger:model api.UserResponse
type UserResponse struct {
	ID       int    `json:"id" example:"1"`
	UserName string `json:"user_name" example:"alice"`
}
