package models

import "time"

// AvailabilityWindow is one weekly-recurring bookable range.
// A nil ServiceID means the window applies to every service of the studio.
type AvailabilityWindow struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	StudioID  uint  `json:"studio_id"`
	ServiceID *uint `gorm:"index" json:"service_id"`

	Weekday int `json:"weekday"` // 0 = Sunday

	StartTime string `gorm:"size:5" json:"start_time"` // HH:MM
	EndTime   string `gorm:"size:5" json:"end_time"`   // HH:MM
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
