// File: internal/model/item.go
package model

import "time"

// ItemCategory 商品分類（唯讀資料表，無建立端點）
type ItemCategory struct {
	ID           int       `db:"id" json:"id"`
	CategoryName string    `db:"category_name" json:"category_name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ItemDetail 商品明細
type ItemDetail struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"item_name" json:"item_name"`
	Details     string    `db:"item_details" json:"item_details"`
	CategoryID  int       `db:"item_category" json:"item_category"`
	Picture     string    `db:"item_picture" json:"item_picture"`
	Price       float64   `db:"item_price" json:"item_price"`
	Active      bool      `db:"active" json:"active"`
	CreatedDate time.Time `db:"created_date" json:"created_date"`
	CreatedBy   string    `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// LoginEvent 登入稽核事件
type LoginEvent struct {
	ID          int64     `db:"id" json:"id"`
	Email       string    `db:"user_email" json:"user_email"`
	Succeeded   bool      `db:"succeeded" json:"succeeded"`
	AttemptedAt time.Time `db:"attempted_at" json:"attempted_at"`
}
