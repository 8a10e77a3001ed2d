package dto

// CreatePlatformRequest represents a platform creation request
type CreatePlatformRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Color        string  `json:"color" validate:"omitempty,hexcolor"`
	MonthlyCost  float64 `json:"monthly_cost" validate:"gte=0"`
	IsSubscribed *bool   `json:"is_subscribed"`
}

// UpdatePlatformRequest represents a partial platform update. Absent
// fields are left unchanged.
type UpdatePlatformRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Color        *string  `json:"color" validate:"omitempty,hexcolor"`
	MonthlyCost  *float64 `json:"monthly_cost" validate:"omitempty,gte=0"`
	IsSubscribed *bool    `json:"is_subscribed"`
}
