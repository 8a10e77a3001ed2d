package handlers

import (
	"net/http"

	"github.com/nwatkins/streamtracker/internal/api/middleware"
	"github.com/nwatkins/streamtracker/internal/domain/discovery"
	"github.com/nwatkins/streamtracker/internal/pkg/utils"
)

// DiscoveryHandler serves the discovery dashboard
type DiscoveryHandler struct {
	service discovery.Service
}

// NewDiscoveryHandler creates a new discovery handler
func NewDiscoveryHandler(service discovery.Service) *DiscoveryHandler {
	return &DiscoveryHandler{service: service}
}

// Get returns the discovery dashboard
// @Summary Discovery dashboard
// @Description Watchlist sections, stats, and per-platform breakdown
// @Tags Discovery
// @Produce json
// @Success 200 {object} discovery.Overview "Dashboard"
// @Security BearerAuth
// @Router /discovery [get]
func (h *DiscoveryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	overview, err := h.service.Overview(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, overview)
}
