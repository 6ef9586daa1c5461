package models

import "time"

type DiscountCode struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	StudioID uint `json:"studio_id"`

	Code    string  `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Percent float64 `json:"percent"`

	// all | products | services
	AppliesTo   string   `gorm:"size:20;default:'all'" json:"applies_to"`
	MinSubtotal *float64 `json:"min_subtotal"`

	Active    bool       `gorm:"default:true" json:"active"`
	ExpiresAt *time.Time `json:"expires_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
