package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/kland-web/internal/models"
)

const teacherColumns = `id, name, role, photo, tags, is_founder, sort_order, is_active, created_at`

// TeacherRepository manages persistence for teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns teachers by display order then name.
func (r *TeacherRepository) List(ctx context.Context, activeOnly bool) ([]models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order, name`
	teachers := []models.Teacher{}
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// FindByID returns a teacher by id.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	const query = `SELECT ` + teacherColumns + ` FROM teachers WHERE id = $1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find teacher: %w", err)
	}
	return &teacher, nil
}

// Create inserts a teacher.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	const query = `INSERT INTO teachers (name, role, photo, tags, is_founder, sort_order, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	if err := r.db.QueryRowxContext(ctx, query, teacher.Name, teacher.Role, teacher.Photo, teacher.RawTags, teacher.IsFounder, teacher.Order, teacher.IsActive).
		Scan(&teacher.ID, &teacher.CreatedAt); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

// Update replaces the editable fields of a teacher.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	const query = `UPDATE teachers SET name = $2, role = $3, photo = $4, tags = $5, is_founder = $6, sort_order = $7, is_active = $8 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, teacher.ID, teacher.Name, teacher.Role, teacher.Photo, teacher.RawTags, teacher.IsFounder, teacher.Order, teacher.IsActive)
	if err != nil {
		return fmt.Errorf("update teacher: %w", err)
	}
	return requireAffected(result, "update teacher")
}

// Delete removes a teacher. The photo file stays on disk.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete teacher: %w", err)
	}
	return requireAffected(result, "delete teacher")
}
