package dto

// NewsRequest creates or replaces a news entry.
type NewsRequest struct {
	Title       string `form:"title" validate:"required,max=200"`
	Content     string `form:"content" validate:"required"`
	ImageURL    string `form:"image_url" validate:"max=500"`
	IsPublished bool   `form:"-"`
}
