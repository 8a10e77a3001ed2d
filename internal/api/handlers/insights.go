package handlers

import (
	"net/http"

	"github.com/nwatkins/streamtracker/internal/api/middleware"
	"github.com/nwatkins/streamtracker/internal/domain/insights"
	"github.com/nwatkins/streamtracker/internal/pkg/utils"
)

// InsightsHandler serves the subscription insights report
type InsightsHandler struct {
	service insights.Service
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(service insights.Service) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// Get computes and returns the insights report
// @Summary Subscription insights
// @Description Score subscribed platforms and recommend keep/review/cancel
// @Tags Insights
// @Produce json
// @Success 200 {object} insights.Report "Insights report"
// @Security BearerAuth
// @Router /insights [get]
func (h *InsightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	report, err := h.service.Compute(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, report)
}
