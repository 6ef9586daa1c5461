package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/LotusWellness01/spa-scheduler/internal/domain/booking"
	"github.com/LotusWellness01/spa-scheduler/internal/models"
	usecase "github.com/LotusWellness01/spa-scheduler/internal/usecase/booking"
)

// PublicHandler serves the unauthenticated booking page: studio profile,
// service catalog, slot availability and the booking submit itself.
type PublicHandler struct {
	db *gorm.DB

	availabilityUC *usecase.ResolveAvailability
	createUC       *usecase.CreateReservation
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *usecase.ResolveAvailability,
	createUC *usecase.CreateReservation,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
	}
}

func (h *PublicHandler) studioBySlug(c *gin.Context) (*models.Studio, bool) {
	slug := c.Param("slug")

	var studio models.Studio
	if err := h.db.Where("slug = ?", slug).First(&studio).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "studio_not_found"})
		return nil, false
	}

	return &studio, true
}

func (h *PublicHandler) GetStudio(c *gin.Context) {
	studio, ok := h.studioBySlug(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      studio.ID,
		"name":    studio.Name,
		"slug":    studio.Slug,
		"phone":   studio.Phone,
		"address": studio.Address,
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	studio, ok := h.studioBySlug(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("studio_id = ? AND active = true", studio.ID).
		Order("name ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// Availability returns the open 30-minute slots for one service on one date.
// The request_tag query param is echoed back unchanged so a client firing
// overlapping date changes can discard stale responses.
func (h *PublicHandler) Availability(c *gin.Context) {
	studio, ok := h.studioBySlug(c)
	if !ok {
		return
	}

	serviceID64, err := strconv.ParseUint(c.Query("service_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_service_id"})
		return
	}

	date, err := parseDateInStudio(studio, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	result, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		StudioID:   studio.ID,
		ServiceID:  uint(serviceID64),
		Date:       date,
		RequestTag: c.Query("request_tag"),
	})
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type PublicBookingRequest struct {
	ServiceID   uint   `json:"service_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

func (h *PublicHandler) CreateReservation(c *gin.Context) {
	studio, ok := h.studioBySlug(c)
	if !ok {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	rv, err := h.createUC.Execute(c.Request.Context(), usecase.CreateReservationInput{
		StudioID:    studio.ID,
		ServiceID:   req.ServiceID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        rv.ID,
		"date":      rv.Date.Format("2006-01-02"),
		"time_slot": rv.TimeSlot,
		"status":    rv.Status,
	})
}
