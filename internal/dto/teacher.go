package dto

import "io"

// PhotoUpload is an uploaded image as received from the client.
type PhotoUpload struct {
	Filename string
	Content  io.Reader
}

// TeacherRequest creates or edits a teacher profile. Fields are filled by the
// handler because add and edit forms use different field names.
type TeacherRequest struct {
	Name      string `validate:"required,max=100"`
	Role      string `validate:"required,max=100"`
	Tags      string `validate:"max=300"`
	IsFounder bool
	Order     int
	// IsActive is nil when the form does not carry the field.
	IsActive *bool
	Photo    *PhotoUpload
}
