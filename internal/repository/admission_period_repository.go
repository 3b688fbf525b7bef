package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/kland-web/internal/models"
)

const periodColumns = `id, name, application_start, application_end, studies_start, is_active, created_at`

// AdmissionPeriodRepository persists admission periods.
type AdmissionPeriodRepository struct {
	db *sqlx.DB
}

// NewAdmissionPeriodRepository constructs the repository.
func NewAdmissionPeriodRepository(db *sqlx.DB) *AdmissionPeriodRepository {
	return &AdmissionPeriodRepository{db: db}
}

// List returns periods newest first, optionally only the active ones.
func (r *AdmissionPeriodRepository) List(ctx context.Context, activeOnly bool) ([]models.AdmissionPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM admission_periods`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY created_at DESC`
	periods := []models.AdmissionPeriod{}
	if err := r.db.SelectContext(ctx, &periods, query); err != nil {
		return nil, fmt.Errorf("list admission periods: %w", err)
	}
	return periods, nil
}

// FindByID returns a period by identifier.
func (r *AdmissionPeriodRepository) FindByID(ctx context.Context, id int64) (*models.AdmissionPeriod, error) {
	const query = `SELECT ` + periodColumns + ` FROM admission_periods WHERE id = $1`
	var period models.AdmissionPeriod
	if err := r.db.GetContext(ctx, &period, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find admission period: %w", err)
	}
	return &period, nil
}

// Create inserts a period.
func (r *AdmissionPeriodRepository) Create(ctx context.Context, period *models.AdmissionPeriod) error {
	const query = `INSERT INTO admission_periods (name, application_start, application_end, studies_start, is_active)
VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	if err := r.db.QueryRowxContext(ctx, query, period.Name, period.ApplicationStart, period.ApplicationEnd, period.StudiesStart, period.IsActive).
		Scan(&period.ID, &period.CreatedAt); err != nil {
		return fmt.Errorf("create admission period: %w", err)
	}
	return nil
}

// Update replaces the editable fields of a period.
func (r *AdmissionPeriodRepository) Update(ctx context.Context, period *models.AdmissionPeriod) error {
	const query = `UPDATE admission_periods SET name = $2, application_start = $3, application_end = $4, studies_start = $5, is_active = $6 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, period.ID, period.Name, period.ApplicationStart, period.ApplicationEnd, period.StudiesStart, period.IsActive)
	if err != nil {
		return fmt.Errorf("update admission period: %w", err)
	}
	return requireAffected(result, "update admission period")
}

// Delete removes a period.
func (r *AdmissionPeriodRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM admission_periods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete admission period: %w", err)
	}
	return requireAffected(result, "delete admission period")
}
