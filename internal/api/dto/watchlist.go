package dto

// CreateWatchlistItemRequest represents a watchlist item creation request
type CreateWatchlistItemRequest struct {
	Title        string  `json:"title" validate:"required,min=1,max=300"`
	Type         string  `json:"type" validate:"required,oneof=movie show"`
	Status       string  `json:"status" validate:"omitempty,oneof=want_to_watch watching watched"`
	PlatformName *string `json:"platform_name" validate:"omitempty,max=100"`
	PosterURL    *string `json:"poster_url" validate:"omitempty,max=500"`
	Notes        *string `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateWatchlistItemRequest represents a partial watchlist item
// update. Absent fields are left unchanged.
type UpdateWatchlistItemRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=300"`
	Type         *string `json:"type" validate:"omitempty,oneof=movie show"`
	Status       *string `json:"status" validate:"omitempty,oneof=want_to_watch watching watched"`
	PlatformName *string `json:"platform_name" validate:"omitempty,max=100"`
	PosterURL    *string `json:"poster_url" validate:"omitempty,max=500"`
	Notes        *string `json:"notes" validate:"omitempty,max=2000"`
}
