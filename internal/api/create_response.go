package api

// InsertResult 建立操作的驅動結果
// swagger:model api.InsertResult
type InsertResult struct {
	InsertID     int   `json:"insert_id" example:"42"`
	AffectedRows int64 `json:"affected_rows" example:"1"`
}

// CreateResponse 建立成功的回應信封
// swagger:model api.CreateResponse
type CreateResponse struct {
	Success bool         `json:"success" example:"true"`
	Result  InsertResult `json:"result"`
}
