package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/kland-web/internal/models"
)

// MessageRepository persists contact messages.
type MessageRepository struct {
	db *sqlx.DB
}

// NewMessageRepository constructs the repository.
func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create stores a message.
func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	const query = `INSERT INTO messages (name, phone, message) VALUES ($1, $2, $3) RETURNING id, created_at`
	if err := r.db.QueryRowxContext(ctx, query, msg.Name, msg.Phone, msg.Message).Scan(&msg.ID, &msg.CreatedAt); err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// List returns every message in insertion order.
func (r *MessageRepository) List(ctx context.Context) ([]models.Message, error) {
	const query = `SELECT id, name, phone, message, created_at FROM messages ORDER BY id`
	msgs := []models.Message{}
	if err := r.db.SelectContext(ctx, &msgs, query); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

// Delete removes a message.
func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return requireAffected(result, "delete message")
}
