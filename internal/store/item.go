package store

import (
	"context"
	"fmt"

	"shoplite/internal/database"
	"shoplite/internal/model"
)

func ListCategories(ctx context.Context, db database.DB) ([]model.ItemCategory, error) {
	rows, err := db.Query(ctx,
		`SELECT id, category_name, created_at FROM item_categories ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	defer rows.Close()

	var cats []model.ItemCategory
	for rows.Next() {
		var c model.ItemCategory
		if err := rows.Scan(&c.ID, &c.CategoryName, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListCategories: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	return cats, nil
}

func ListItems(ctx context.Context, db database.DB) ([]model.ItemDetail, error) {
	rows, err := db.Query(ctx,
		`SELECT id, item_name, item_details, item_category, item_picture,
		        item_price, active, created_date, created_by, created_at
		 FROM item_details ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListItems: %w", err)
	}
	defer rows.Close()

	var items []model.ItemDetail
	for rows.Next() {
		var it model.ItemDetail
		if err := rows.Scan(
			&it.ID,
			&it.Name,
			&it.Details,
			&it.CategoryID,
			&it.Picture,
			&it.Price,
			&it.Active,
			&it.CreatedDate,
			&it.CreatedBy,
			&it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListItems: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListItems: %w", err)
	}
	return items, nil
}

func CreateItem(ctx context.Context, db database.DB, it *model.ItemDetail) (*model.ItemDetail, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO item_details
		   (item_name, item_details, item_category, item_picture,
		    item_price, active, created_date, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		it.Name,
		it.Details,
		it.CategoryID,
		it.Picture,
		it.Price,
		it.Active,
		it.CreatedDate,
		it.CreatedBy,
	)
	if err := row.Scan(&it.ID, &it.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateItem: %w", err)
	}
	return it, nil
}
