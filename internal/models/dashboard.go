package models

// AdminDashboard is everything the back-office panel renders.
type AdminDashboard struct {
	ActiveTab        string              `json:"active_tab,omitempty"`
	Users            []User              `json:"users"`
	Applications     []CourseApplication `json:"applications"`
	News             []News              `json:"news"`
	AdmissionPeriods []AdmissionPeriod   `json:"admission_periods"`
	Messages         []Message           `json:"messages"`
	Teachers         []Teacher           `json:"teachers"`
}
