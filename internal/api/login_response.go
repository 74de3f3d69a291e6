package api

// swagger:model api.LoginResponse
type LoginResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token,omitempty"`
}
