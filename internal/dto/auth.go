package dto

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	Name     string `form:"name" validate:"required,max=120"`
	Email    string `form:"email" validate:"required,max=120"`
	Password string `form:"password" validate:"required,min=6"`
	Confirm  string `form:"confirm" validate:"required,eqfield=Password"`
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}
