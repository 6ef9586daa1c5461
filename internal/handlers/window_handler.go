package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LotusWellness01/spa-scheduler/internal/domain/booking"
	"github.com/LotusWellness01/spa-scheduler/internal/middleware"
	"github.com/LotusWellness01/spa-scheduler/internal/models"
)

type WindowHandler struct {
	db *gorm.DB
}

func NewWindowHandler(db *gorm.DB) *WindowHandler {
	return &WindowHandler{db: db}
}

type WindowEntry struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	ServiceID *uint  `json:"service_id"`
	Active    *bool  `json:"active"`
}

type UpdateWindowsRequest struct {
	Windows []WindowEntry `json:"windows" binding:"required"`
}

func (h *WindowHandler) Get(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var windows []models.AvailabilityWindow
	if err := h.db.
		Where("studio_id = ?", studioID).
		Order("weekday ASC, start_time ASC").
		Find(&windows).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_windows"})
		return
	}

	c.JSON(http.StatusOK, windows)
}

// Update replaces the whole weekly schedule in a single transaction. The
// dashboard always submits the full grid, so a wipe-and-recreate keeps the
// rows consistent without diffing.
func (h *WindowHandler) Update(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var req UpdateWindowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, w := range req.Windows {
		if w.Weekday < 0 || w.Weekday > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_weekday"})
			return
		}
		start, err := time.Parse(booking.SlotLayout, w.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_start_time"})
			return
		}
		end, err := time.Parse(booking.SlotLayout, w.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_end_time"})
			return
		}
		if !start.Before(end) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_must_be_before_end"})
			return
		}
		if w.ServiceID != nil {
			var count int64
			h.db.Model(&models.Service{}).
				Where("id = ? AND studio_id = ?", *w.ServiceID, studioID).
				Count(&count)
			if count == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "service_not_found"})
				return
			}
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("studio_id = ?", studioID).
			Delete(&models.AvailabilityWindow{}).Error; err != nil {
			return err
		}

		for _, w := range req.Windows {
			active := true
			if w.Active != nil {
				active = *w.Active
			}

			window := models.AvailabilityWindow{
				StudioID:  studioID,
				ServiceID: w.ServiceID,
				Weekday:   w.Weekday,
				StartTime: w.StartTime,
				EndTime:   w.EndTime,
				Active:    active,
			}

			if err := tx.Create(&window).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_windows"})
		return
	}

	h.Get(c)
}
