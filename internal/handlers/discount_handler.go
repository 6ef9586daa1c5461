package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LotusWellness01/spa-scheduler/internal/domain/checkout"
	"github.com/LotusWellness01/spa-scheduler/internal/middleware"
	"github.com/LotusWellness01/spa-scheduler/internal/models"
)

type DiscountHandler struct {
	db *gorm.DB
}

func NewDiscountHandler(db *gorm.DB) *DiscountHandler {
	return &DiscountHandler{db: db}
}

type CreateDiscountRequest struct {
	Code        string     `json:"code" binding:"required"`
	Percent     float64    `json:"percent" binding:"required,gt=0,lte=100"`
	AppliesTo   string     `json:"applies_to"`
	MinSubtotal *float64   `json:"min_subtotal"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type UpdateDiscountRequest struct {
	Percent     *float64   `json:"percent"`
	AppliesTo   *string    `json:"applies_to"`
	MinSubtotal *float64   `json:"min_subtotal"`
	ExpiresAt   *time.Time `json:"expires_at"`
	Active      *bool      `json:"active"`
}

func validAppliesTo(scope string) bool {
	switch scope {
	case checkout.AppliesAll, checkout.AppliesProducts, checkout.AppliesServices:
		return true
	}
	return false
}

func (h *DiscountHandler) List(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var codes []models.DiscountCode
	if err := h.db.
		Where("studio_id = ?", studioID).
		Order("created_at DESC").
		Find(&codes).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_discount_codes"})
		return
	}

	c.JSON(http.StatusOK, codes)
}

func (h *DiscountHandler) Create(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var req CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	scope := req.AppliesTo
	if scope == "" {
		scope = checkout.AppliesAll
	}
	if !validAppliesTo(scope) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_applies_to"})
		return
	}

	code := models.DiscountCode{
		StudioID:    studioID,
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Percent:     req.Percent,
		AppliesTo:   scope,
		MinSubtotal: req.MinSubtotal,
		ExpiresAt:   req.ExpiresAt,
		Active:      true,
	}

	if err := h.db.Create(&code).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code_already_exists"})
		return
	}

	c.JSON(http.StatusCreated, code)
}

func (h *DiscountHandler) Update(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	codeID := c.Param("id")

	var req UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var code models.DiscountCode
	if err := h.db.
		Where("id = ? AND studio_id = ?", codeID, studioID).
		First(&code).Error; err != nil {

		c.JSON(http.StatusNotFound, gin.H{"error": "discount_code_not_found"})
		return
	}

	if req.Percent != nil {
		if *req.Percent <= 0 || *req.Percent > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_percent"})
			return
		}
		code.Percent = *req.Percent
	}
	if req.AppliesTo != nil {
		if !validAppliesTo(*req.AppliesTo) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_applies_to"})
			return
		}
		code.AppliesTo = *req.AppliesTo
	}
	if req.MinSubtotal != nil {
		code.MinSubtotal = req.MinSubtotal
	}
	if req.ExpiresAt != nil {
		code.ExpiresAt = req.ExpiresAt
	}
	if req.Active != nil {
		code.Active = *req.Active
	}

	if err := h.db.Save(&code).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_discount_code"})
		return
	}

	c.JSON(http.StatusOK, code)
}
