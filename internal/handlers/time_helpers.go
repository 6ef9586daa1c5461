package handlers

import (
	"time"

	"github.com/LotusWellness01/spa-scheduler/internal/models"
	"github.com/LotusWellness01/spa-scheduler/internal/timezone"
)

// resolve the official timezone of the studio
func locationFromStudio(studio *models.Studio) *time.Location {
	if studio != nil && studio.Timezone != "" {
		if loc, err := time.LoadLocation(studio.Timezone); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(timezone.DefaultTimezone)
	return loc
}

func nowInStudio(studio *models.Studio) time.Time {
	return time.Now().In(locationFromStudio(studio))
}

func parseDateInStudio(studio *models.Studio, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromStudio(studio),
	)
}
