package store

import (
	"context"
	"fmt"

	"shoplite/internal/database"
)

// RecordLoginEvent 寫入登入稽核事件
func RecordLoginEvent(ctx context.Context, db database.DB, email string, succeeded bool) error {
	_, err := db.Exec(ctx,
		`INSERT INTO login_events (user_email, succeeded) VALUES ($1, $2)`,
		email,
		succeeded,
	)
	if err != nil {
		return fmt.Errorf("RecordLoginEvent: %w", err)
	}
	return nil
}
