package models

import "time"

// News is a feed entry shown on the public news page when published.
type News struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Content     string    `db:"content" json:"content"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	IsPublished bool      `db:"is_published" json:"is_published"`
}
