package api

import "shoplite/internal/model"

// ItemListResponse 商品清單信封 {data: rows}
// swagger:model api.ItemListResponse
type ItemListResponse struct {
	Data []model.ItemDetail `json:"data"`
}
