package client

import (
	"context"
	"fmt"
	"net/url"
)

// WatchlistService manages watchlist items
type WatchlistService struct {
	client *Client
}

// Watchlist returns the watchlist management service
func (c *Client) Watchlist() *WatchlistService {
	return &WatchlistService{client: c}
}

// CreateWatchlistItemRequest holds the fields for creating an item
type CreateWatchlistItemRequest struct {
	Title        string  `json:"title"`
	Type         string  `json:"type"`
	Status       string  `json:"status,omitempty"`
	PlatformName *string `json:"platform_name,omitempty"`
	PosterURL    *string `json:"poster_url,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// UpdateWatchlistItemRequest holds a partial item update
type UpdateWatchlistItemRequest struct {
	Title        *string `json:"title,omitempty"`
	Type         *string `json:"type,omitempty"`
	Status       *string `json:"status,omitempty"`
	PlatformName *string `json:"platform_name,omitempty"`
	PosterURL    *string `json:"poster_url,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// List retrieves the user's watchlist, optionally filtered by status
func (s *WatchlistService) List(ctx context.Context, status string) ([]WatchlistItem, error) {
	path := "/api/v1/watchlist"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	var items []WatchlistItem
	if err := s.client.doRequest(ctx, "GET", path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create adds a new watchlist item
func (s *WatchlistService) Create(ctx context.Context, req CreateWatchlistItemRequest) (*WatchlistItem, error) {
	var item WatchlistItem
	if err := s.client.doRequest(ctx, "POST", "/api/v1/watchlist", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies a partial update to a watchlist item
func (s *WatchlistService) Update(ctx context.Context, id int64, req UpdateWatchlistItemRequest) (*WatchlistItem, error) {
	var item WatchlistItem
	path := fmt.Sprintf("/api/v1/watchlist/%d", id)
	if err := s.client.doRequest(ctx, "PATCH", path, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a watchlist item
func (s *WatchlistService) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/v1/watchlist/%d", id)
	return s.client.doRequest(ctx, "DELETE", path, nil, nil)
}
