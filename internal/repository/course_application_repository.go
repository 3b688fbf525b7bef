package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/kland-web/internal/models"
)

const applicationColumns = `id, course_type, applicant_name, applicant_phone, status, created_at`

// CourseApplicationRepository persists course applications.
type CourseApplicationRepository struct {
	db *sqlx.DB
}

// NewCourseApplicationRepository constructs the repository.
func NewCourseApplicationRepository(db *sqlx.DB) *CourseApplicationRepository {
	return &CourseApplicationRepository{db: db}
}

// Create stores a new application; the status column defaults to new.
func (r *CourseApplicationRepository) Create(ctx context.Context, app *models.CourseApplication) error {
	const query = `INSERT INTO course_applications (course_type, applicant_name, applicant_phone, status)
VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	if app.Status == "" {
		app.Status = models.ApplicationStatusNew
	}
	if err := r.db.QueryRowxContext(ctx, query, app.CourseType, app.ApplicantName, app.ApplicantPhone, app.Status).
		Scan(&app.ID, &app.CreatedAt); err != nil {
		return fmt.Errorf("create course application: %w", err)
	}
	return nil
}

// List returns all applications, newest first.
func (r *CourseApplicationRepository) List(ctx context.Context) ([]models.CourseApplication, error) {
	const query = `SELECT ` + applicationColumns + ` FROM course_applications ORDER BY created_at DESC`
	apps := []models.CourseApplication{}
	if err := r.db.SelectContext(ctx, &apps, query); err != nil {
		return nil, fmt.Errorf("list course applications: %w", err)
	}
	return apps, nil
}

// UpdateStatus sets the status of one application inside a transaction. It
// returns sql.ErrNoRows when the id does not exist; nothing is committed then.
func (r *CourseApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin status update: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const query = `UPDATE course_applications SET status = $2 WHERE id = $1`
	result, err := tx.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit status update: %w", err)
	}
	return nil
}
