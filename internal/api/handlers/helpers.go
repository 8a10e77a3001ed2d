package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nwatkins/streamtracker/internal/pkg/errors"
	"github.com/nwatkins/streamtracker/internal/pkg/utils"
)

// writeServiceError writes err as a JSON error response, wrapping
// anything that is not already an AppError.
func writeServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		utils.WriteError(w, appErr)
		return
	}
	utils.WriteError(w, errors.Internal("Unexpected error", err))
}

// idParam parses the {id} URL parameter
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.BadRequest("Invalid ID")
	}
	return id, nil
}
