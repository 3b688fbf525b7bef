package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Teacher is a staff profile shown on the about page.
type Teacher struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Role      string    `db:"role" json:"role"`
	Photo     *string   `db:"photo" json:"photo"`
	RawTags   *string   `db:"tags" json:"-"`
	IsFounder bool      `db:"is_founder" json:"is_founder"`
	Order     int       `db:"sort_order" json:"order"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Tags splits the stored comma-joined tags into trimmed values.
func (t Teacher) Tags() []string {
	if t.RawTags == nil || *t.RawTags == "" {
		return []string{}
	}
	parts := strings.Split(*t.RawTags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tags = append(tags, strings.TrimSpace(part))
	}
	return tags
}

// MarshalJSON exposes tags as a list.
func (t Teacher) MarshalJSON() ([]byte, error) {
	type alias Teacher
	return json.Marshal(struct {
		alias
		Tags []string `json:"tags"`
	}{alias: alias(t), Tags: t.Tags()})
}
