package dto

// AdmissionPeriodRequest creates or replaces an admission period.
type AdmissionPeriodRequest struct {
	Name             string `form:"name" validate:"required,max=100"`
	ApplicationStart string `form:"application_start" validate:"required,max=50"`
	ApplicationEnd   string `form:"application_end" validate:"required,max=50"`
	StudiesStart     string `form:"studies_start" validate:"required,max=50"`
	IsActive         bool   `form:"-"`
}
