package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/kland-web/internal/models"
)

const newsColumns = `id, title, content, image_url, created_at, is_published`

// NewsRepository provides persistence for news entries.
type NewsRepository struct {
	db *sqlx.DB
}

// NewNewsRepository creates the repository.
func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// List returns news newest first. publishedOnly restricts to published rows;
// limit <= 0 means no limit.
func (r *NewsRepository) List(ctx context.Context, publishedOnly bool, limit int) ([]models.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news`
	if publishedOnly {
		query += ` WHERE is_published = TRUE`
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	items := []models.News{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return items, nil
}

// FindByID returns a news entry by identifier.
func (r *NewsRepository) FindByID(ctx context.Context, id int64) (*models.News, error) {
	const query = `SELECT ` + newsColumns + ` FROM news WHERE id = $1`
	var item models.News
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find news: %w", err)
	}
	return &item, nil
}

// Create inserts a news entry.
func (r *NewsRepository) Create(ctx context.Context, item *models.News) error {
	const query = `INSERT INTO news (title, content, image_url, is_published) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	if err := r.db.QueryRowxContext(ctx, query, item.Title, item.Content, item.ImageURL, item.IsPublished).
		Scan(&item.ID, &item.CreatedAt); err != nil {
		return fmt.Errorf("create news: %w", err)
	}
	return nil
}

// Update replaces the editable fields of a news entry.
func (r *NewsRepository) Update(ctx context.Context, item *models.News) error {
	const query = `UPDATE news SET title = $2, content = $3, image_url = $4, is_published = $5 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, item.ID, item.Title, item.Content, item.ImageURL, item.IsPublished)
	if err != nil {
		return fmt.Errorf("update news: %w", err)
	}
	return requireAffected(result, "update news")
}

// Delete removes a news entry.
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	return requireAffected(result, "delete news")
}

// requireAffected turns a zero-row write into sql.ErrNoRows.
func requireAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
