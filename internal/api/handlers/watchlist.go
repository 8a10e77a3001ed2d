package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nwatkins/streamtracker/internal/api/dto"
	"github.com/nwatkins/streamtracker/internal/api/middleware"
	"github.com/nwatkins/streamtracker/internal/domain/watchlist"
	"github.com/nwatkins/streamtracker/internal/pkg/errors"
	"github.com/nwatkins/streamtracker/internal/pkg/utils"
	"github.com/nwatkins/streamtracker/internal/pkg/validator"
)

// WatchlistHandler handles watchlist CRUD requests
type WatchlistHandler struct {
	service   watchlist.Service
	validator *validator.Validator
}

// NewWatchlistHandler creates a new watchlist handler
func NewWatchlistHandler(service watchlist.Service, val *validator.Validator) *WatchlistHandler {
	return &WatchlistHandler{service: service, validator: val}
}

// List returns the user's watchlist items
// @Summary List watchlist items
// @Description List the user's items newest first, optionally filtered by status
// @Tags Watchlist
// @Produce json
// @Param status query string false "Filter by status" Enums(want_to_watch, watching, watched)
// @Success 200 {array} watchlist.Item "Items"
// @Security BearerAuth
// @Router /watchlist [get]
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	items, err := h.service.List(r.Context(), userID, r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, items)
}

// Create adds a watchlist item
// @Summary Create watchlist item
// @Description Add a movie or show to the user's watchlist
// @Tags Watchlist
// @Accept json
// @Produce json
// @Param request body dto.CreateWatchlistItemRequest true "Item details"
// @Success 201 {object} watchlist.Item "Created item"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /watchlist [post]
func (h *WatchlistHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var req dto.CreateWatchlistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if verrs := h.validator.Validate(req); verrs != nil {
		utils.WriteError(w, errors.ValidationError("Validation failed", verrs))
		return
	}

	item := &watchlist.Item{
		Title:        req.Title,
		Type:         req.Type,
		Status:       req.Status,
		PlatformName: req.PlatformName,
		PosterURL:    req.PosterURL,
		Notes:        req.Notes,
	}

	created, err := h.service.Create(r.Context(), userID, item)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, created)
}

// Update applies a partial update to a watchlist item
// @Summary Update watchlist item
// @Description Update fields of an item owned by the user
// @Tags Watchlist
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body dto.UpdateWatchlistItemRequest true "Fields to update"
// @Success 200 {object} watchlist.Item "Updated item"
// @Failure 404 {object} utils.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /watchlist/{id} [patch]
func (h *WatchlistHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var req dto.UpdateWatchlistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if verrs := h.validator.Validate(req); verrs != nil {
		utils.WriteError(w, errors.ValidationError("Validation failed", verrs))
		return
	}

	updated, err := h.service.Update(r.Context(), userID, id, watchlist.Patch{
		Title:        req.Title,
		Type:         req.Type,
		Status:       req.Status,
		PlatformName: req.PlatformName,
		PosterURL:    req.PosterURL,
		Notes:        req.Notes,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, updated)
}

// Delete removes a watchlist item
// @Summary Delete watchlist item
// @Description Delete an item owned by the user
// @Tags Watchlist
// @Param id path int true "Item ID"
// @Success 204 "Deleted"
// @Failure 404 {object} utils.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /watchlist/{id} [delete]
func (h *WatchlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteNoContent(w)
}
