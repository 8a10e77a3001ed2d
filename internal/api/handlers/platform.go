package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nwatkins/streamtracker/internal/api/dto"
	"github.com/nwatkins/streamtracker/internal/api/middleware"
	"github.com/nwatkins/streamtracker/internal/domain/platform"
	"github.com/nwatkins/streamtracker/internal/pkg/errors"
	"github.com/nwatkins/streamtracker/internal/pkg/utils"
	"github.com/nwatkins/streamtracker/internal/pkg/validator"
)

// PlatformHandler handles platform CRUD requests
type PlatformHandler struct {
	service   platform.Service
	validator *validator.Validator
}

// NewPlatformHandler creates a new platform handler
func NewPlatformHandler(service platform.Service, val *validator.Validator) *PlatformHandler {
	return &PlatformHandler{service: service, validator: val}
}

// List returns the user's platforms
// @Summary List platforms
// @Description List the user's platforms ordered by name
// @Tags Platforms
// @Produce json
// @Success 200 {array} platform.Platform "Platforms"
// @Security BearerAuth
// @Router /platforms [get]
func (h *PlatformHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	platforms, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, platforms)
}

// Create adds a platform
// @Summary Create platform
// @Description Add a streaming platform for the user
// @Tags Platforms
// @Accept json
// @Produce json
// @Param request body dto.CreatePlatformRequest true "Platform details"
// @Success 201 {object} platform.Platform "Created platform"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 409 {object} utils.ErrorResponse "Duplicate name"
// @Security BearerAuth
// @Router /platforms [post]
func (h *PlatformHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var req dto.CreatePlatformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if verrs := h.validator.Validate(req); verrs != nil {
		utils.WriteError(w, errors.ValidationError("Validation failed", verrs))
		return
	}

	p := &platform.Platform{
		Name:        req.Name,
		Color:       req.Color,
		MonthlyCost: req.MonthlyCost,
	}
	if req.IsSubscribed != nil {
		p.IsSubscribed = *req.IsSubscribed
	}

	created, err := h.service.Create(r.Context(), userID, p)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, created)
}

// Update applies a partial update to a platform
// @Summary Update platform
// @Description Update fields of a platform owned by the user
// @Tags Platforms
// @Accept json
// @Produce json
// @Param id path int true "Platform ID"
// @Param request body dto.UpdatePlatformRequest true "Fields to update"
// @Success 200 {object} platform.Platform "Updated platform"
// @Failure 404 {object} utils.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /platforms/{id} [patch]
func (h *PlatformHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var req dto.UpdatePlatformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if verrs := h.validator.Validate(req); verrs != nil {
		utils.WriteError(w, errors.ValidationError("Validation failed", verrs))
		return
	}

	updated, err := h.service.Update(r.Context(), userID, id, platform.Patch{
		Name:         req.Name,
		Color:        req.Color,
		MonthlyCost:  req.MonthlyCost,
		IsSubscribed: req.IsSubscribed,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, updated)
}

// Delete removes a platform
// @Summary Delete platform
// @Description Delete a platform owned by the user
// @Tags Platforms
// @Param id path int true "Platform ID"
// @Success 204 "Deleted"
// @Failure 404 {object} utils.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /platforms/{id} [delete]
func (h *PlatformHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
