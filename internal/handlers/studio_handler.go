package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LotusWellness01/spa-scheduler/internal/middleware"
	"github.com/LotusWellness01/spa-scheduler/internal/models"
	"github.com/LotusWellness01/spa-scheduler/internal/timezone"
)

type StudioHandler struct {
	db *gorm.DB
}

func NewStudioHandler(db *gorm.DB) *StudioHandler {
	return &StudioHandler{db: db}
}

type UpdateStudioRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	Timezone          *string `json:"timezone"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
	CalendarID        *string `json:"calendar_id"`
}

func (h *StudioHandler) GetMeStudio(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var studio models.Studio
	if err := h.db.First(&studio, studioID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "studio_not_found"})
		return
	}

	c.JSON(http.StatusOK, studio)
}

func (h *StudioHandler) UpdateMeStudio(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var req UpdateStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var studio models.Studio
	if err := h.db.First(&studio, studioID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "studio_not_found"})
		return
	}

	if req.Name != nil {
		studio.Name = *req.Name
	}
	if req.Phone != nil {
		studio.Phone = *req.Phone
	}
	if req.Address != nil {
		studio.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_timezone"})
			return
		}
		studio.Timezone = *req.Timezone
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_min_advance"})
			return
		}
		studio.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}
	if req.CalendarID != nil {
		studio.CalendarID = *req.CalendarID
	}

	if err := h.db.Save(&studio).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_studio"})
		return
	}

	c.JSON(http.StatusOK, studio)
}
