package api

// ErrorResponse 全域錯誤響應信封
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"error"`
}
