package platform

import "time"

// DefaultColor is assigned to platforms created without a color tag.
const DefaultColor = "#6366f1"

// Platform represents a streaming service a user tracks. Watchlist
// items reference it by name, matched case-insensitively.
type Platform struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"-"`
	Name         string    `json:"name"`
	Color        string    `json:"color"`
	MonthlyCost  float64   `json:"monthly_cost"`
	IsSubscribed bool      `json:"is_subscribed"`
	CreatedAt    time.Time `json:"created_at"`
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	Name         *string
	Color        *string
	MonthlyCost  *float64
	IsSubscribed *bool
}

// Apply merges the patch onto the platform field by field.
func (p *Platform) Apply(patch Patch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Color != nil {
		p.Color = *patch.Color
	}
	if patch.MonthlyCost != nil {
		p.MonthlyCost = *patch.MonthlyCost
	}
	if patch.IsSubscribed != nil {
		p.IsSubscribed = *patch.IsSubscribed
	}
}
