package dto

// ContactRequest is the public contact form.
type ContactRequest struct {
	Name    string `form:"name" validate:"required,max=100"`
	Phone   string `form:"phone" validate:"required,max=20"`
	Message string `form:"message" validate:"required,max=800"`
}
