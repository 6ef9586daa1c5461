package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LotusWellness01/spa-scheduler/internal/audit"
	"github.com/LotusWellness01/spa-scheduler/internal/domain/checkout"
	"github.com/LotusWellness01/spa-scheduler/internal/middleware"
	"github.com/LotusWellness01/spa-scheduler/internal/models"
)

type OrderHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewOrderHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *OrderHandler {
	return &OrderHandler{db: db, audit: dispatcher}
}

type OrderItemRequest struct {
	Kind     string `json:"kind" binding:"required"`
	RefID    uint   `json:"ref_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	ClientID     *uint              `json:"client_id"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1"`
	DiscountCode string             `json:"discount_code"`
}

func (h *OrderHandler) List(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var orders []models.Order
	if err := h.db.
		Preload("Items").
		Preload("Client").
		Where("studio_id = ?", studioID).
		Order("created_at DESC").
		Limit(100).
		Find(&orders).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Create prices the cart server-side. Unit prices always come from the
// catalog rows, never from the request body.
func (h *OrderHandler) Create(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	lines := make([]checkout.LineItem, 0, len(req.Items))

	for _, it := range req.Items {
		switch it.Kind {
		case checkout.KindProduct:
			var p models.Product
			if err := h.db.
				Where("id = ? AND studio_id = ? AND active = true", it.RefID, studioID).
				First(&p).Error; err != nil {

				c.JSON(http.StatusBadRequest, gin.H{"error": "product_not_found"})
				return
			}
			if p.Stock < it.Quantity {
				c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient_stock"})
				return
			}
			items = append(items, models.OrderItem{
				Kind:      checkout.KindProduct,
				RefID:     p.ID,
				Name:      p.Name,
				UnitPrice: p.Price,
				Quantity:  it.Quantity,
			})
			lines = append(lines, checkout.LineItem{
				Kind:      checkout.KindProduct,
				UnitPrice: p.Price,
				Quantity:  it.Quantity,
			})

		case checkout.KindService:
			var s models.Service
			if err := h.db.
				Where("id = ? AND studio_id = ? AND active = true", it.RefID, studioID).
				First(&s).Error; err != nil {

				c.JSON(http.StatusBadRequest, gin.H{"error": "service_not_found"})
				return
			}
			items = append(items, models.OrderItem{
				Kind:      checkout.KindService,
				RefID:     s.ID,
				Name:      s.Name,
				UnitPrice: s.Price,
				Quantity:  it.Quantity,
			})
			lines = append(lines, checkout.LineItem{
				Kind:      checkout.KindService,
				UnitPrice: s.Price,
				Quantity:  it.Quantity,
			})

		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_item_kind"})
			return
		}
	}

	if req.ClientID != nil {
		var count int64
		h.db.Model(&models.Client{}).
			Where("id = ? AND studio_id = ?", *req.ClientID, studioID).
			Count(&count)
		if count == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "client_not_found"})
			return
		}
	}

	subtotal := checkout.RoundCents(checkout.ScopedSubtotal(lines, checkout.AppliesAll))

	var discount float64
	var discountCodeID *uint

	if req.DiscountCode != "" {
		var code models.DiscountCode
		if err := h.db.
			Where("studio_id = ? AND code = ?", studioID, strings.ToUpper(strings.TrimSpace(req.DiscountCode))).
			First(&code).Error; err != nil {

			c.JSON(http.StatusBadRequest, gin.H{"error": "discount_invalid"})
			return
		}

		var studio models.Studio
		if err := h.db.First(&studio, studioID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
			return
		}

		amount, err := checkout.ComputeDiscount(lines, &code, nowInStudio(&studio))
		if err != nil {
			respondUseCaseError(c, err)
			return
		}

		discount = amount
		discountCodeID = &code.ID
	}

	order := models.Order{
		StudioID:       studioID,
		Number:         uuid.NewString(),
		ClientID:       req.ClientID,
		Subtotal:       subtotal,
		Discount:       discount,
		Total:          checkout.RoundCents(subtotal - discount),
		DiscountCodeID: discountCodeID,
		Status:         "open",
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}

			if items[i].Kind == checkout.KindProduct {
				if err := tx.Model(&models.Product{}).
					Where("id = ?", items[i].RefID).
					UpdateColumn("stock", gorm.Expr("stock - ?", items[i].Quantity)).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_order"})
		return
	}

	h.audit.Dispatch(audit.Event{
		StudioID: studioID,
		UserID:   &userID,
		Action:   "order_created",
		Entity:   "order",
		EntityID: &order.ID,
	})

	order.Items = items
	c.JSON(http.StatusCreated, order)
}
