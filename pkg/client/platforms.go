package client

import (
	"context"
	"fmt"
)

// PlatformService manages streaming platforms
type PlatformService struct {
	client *Client
}

// Platforms returns the platform management service
func (c *Client) Platforms() *PlatformService {
	return &PlatformService{client: c}
}

// CreatePlatformRequest holds the fields for creating a platform
type CreatePlatformRequest struct {
	Name         string  `json:"name"`
	Color        string  `json:"color,omitempty"`
	MonthlyCost  float64 `json:"monthly_cost"`
	IsSubscribed *bool   `json:"is_subscribed,omitempty"`
}

// UpdatePlatformRequest holds a partial platform update
type UpdatePlatformRequest struct {
	Name         *string  `json:"name,omitempty"`
	Color        *string  `json:"color,omitempty"`
	MonthlyCost  *float64 `json:"monthly_cost,omitempty"`
	IsSubscribed *bool    `json:"is_subscribed,omitempty"`
}

// List retrieves the user's platforms
func (s *PlatformService) List(ctx context.Context) ([]Platform, error) {
	var platforms []Platform
	if err := s.client.doRequest(ctx, "GET", "/api/v1/platforms", nil, &platforms); err != nil {
		return nil, err
	}
	return platforms, nil
}

// Create adds a new platform
func (s *PlatformService) Create(ctx context.Context, req CreatePlatformRequest) (*Platform, error) {
	var p Platform
	if err := s.client.doRequest(ctx, "POST", "/api/v1/platforms", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies a partial update to a platform
func (s *PlatformService) Update(ctx context.Context, id int64, req UpdatePlatformRequest) (*Platform, error) {
	var p Platform
	path := fmt.Sprintf("/api/v1/platforms/%d", id)
	if err := s.client.doRequest(ctx, "PATCH", path, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a platform
func (s *PlatformService) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/v1/platforms/%d", id)
	return s.client.doRequest(ctx, "DELETE", path, nil, nil)
}
