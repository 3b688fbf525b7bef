package models

import "time"

// AdmissionPeriod describes an intake window. Dates are free-form text as entered by admins.
type AdmissionPeriod struct {
	ID               int64     `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	ApplicationStart string    `db:"application_start" json:"application_start"`
	ApplicationEnd   string    `db:"application_end" json:"application_end"`
	StudiesStart     string    `db:"studies_start" json:"studies_start"`
	IsActive         bool      `db:"is_active" json:"is_active"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}
