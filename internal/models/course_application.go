package models

import "time"

// ApplicationStatus is the lifecycle state of a course application.
type ApplicationStatus string

const (
	ApplicationStatusNew       ApplicationStatus = "new"
	ApplicationStatusContacted ApplicationStatus = "contacted"
	ApplicationStatusApproved  ApplicationStatus = "approved"
)

// ApplicationStatuses lists every valid status in workflow order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusNew,
	ApplicationStatusContacted,
	ApplicationStatusApproved,
}

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusNew, ApplicationStatusContacted, ApplicationStatusApproved:
		return true
	}
	return false
}

// CourseKorean is the course type the site is built around; everything else is English.
const CourseKorean = "korean"

// CourseApplication is a public request to join a language course.
type CourseApplication struct {
	ID             int64             `db:"id" json:"id"`
	CourseType     string            `db:"course_type" json:"course_type"`
	ApplicantName  string            `db:"applicant_name" json:"applicant_name"`
	ApplicantPhone string            `db:"applicant_phone" json:"applicant_phone"`
	Status         ApplicationStatus `db:"status" json:"status"`
	CreatedAt      time.Time         `db:"created_at" json:"created_at"`
}
