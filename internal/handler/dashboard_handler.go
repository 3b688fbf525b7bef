package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kland-web/pkg/response"
)

// DashboardHandler serves the admin panel.
type DashboardHandler struct {
	dashboard dashboardBuilder
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(dashboard dashboardBuilder) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Admin godoc
// @Summary Admin panel data
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin [get]
func (h *DashboardHandler) Admin(c *gin.Context) {
	dashboard, err := h.dashboard.Build(c.Request.Context(), "")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, dashboard)
}

