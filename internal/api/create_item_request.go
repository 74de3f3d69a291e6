package api

// swagger:model api.CreateItemRequest
// Active 與 Price 使用指標，否則 false/0 會被 required 誤判為缺漏
type CreateItemRequest struct {
	ItemName     string   `json:"item_name" validate:"required" example:"Keyboard"`
	ItemDetails  string   `json:"item_details" validate:"required" example:"87-key mechanical"`
	ItemCategory int      `json:"item_category" validate:"required" example:"1"`
	ItemPicture  string   `json:"item_picture" validate:"required" example:"keyboard.png"`
	ItemPrice    *float64 `json:"item_price" validate:"required,gte=0" example:"49.99"`
	Active       *bool    `json:"active" validate:"required" example:"true"`
	CreatedDate  string   `json:"created_date" validate:"required" example:"2025-05-01"`
	CreatedBy    string   `json:"created_by" validate:"required" example:"alice"`
}
