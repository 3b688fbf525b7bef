package dto

// ApplyCourseRequest is the public course application form.
type ApplyCourseRequest struct {
	CourseType string `form:"course_type" validate:"required,max=20"`
	Name       string `form:"name" validate:"required,max=100"`
	Phone      string `form:"phone" validate:"required,max=20"`
}

// UpdateStatusRequest moves an application to another status.
type UpdateStatusRequest struct {
	ApplicationID string `form:"application_id"`
	Status        string `form:"status"`
}
