package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LotusWellness01/spa-scheduler/internal/middleware"
	"github.com/LotusWellness01/spa-scheduler/internal/models"
	usecase "github.com/LotusWellness01/spa-scheduler/internal/usecase/booking"
)

type ReservationHandler struct {
	createUC   *usecase.CreateReservation
	confirmUC  *usecase.ConfirmReservation
	cancelUC   *usecase.CancelReservation
	completeUC *usecase.CompleteReservation
	byDateUC   *usecase.ListReservationsByDate
	byMonthUC  *usecase.ListReservationsByMonth
}

func NewReservationHandler(
	createUC *usecase.CreateReservation,
	confirmUC *usecase.ConfirmReservation,
	cancelUC *usecase.CancelReservation,
	completeUC *usecase.CompleteReservation,
	byDateUC *usecase.ListReservationsByDate,
	byMonthUC *usecase.ListReservationsByMonth,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:   createUC,
		confirmUC:  confirmUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		byDateUC:   byDateUC,
		byMonthUC:  byMonthUC,
	}
}

type CreateReservationRequest struct {
	ServiceID   uint   `json:"service_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

// Create books a slot on behalf of the studio (walk-ins, phone bookings).
func (h *ReservationHandler) Create(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	rv, err := h.createUC.Execute(c.Request.Context(), usecase.CreateReservationInput{
		StudioID:    studioID,
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

	c.JSON(http.StatusCreated, rv)
}

func (h *ReservationHandler) ListByDate(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	list, err := h.byDateUC.Execute(c.Request.Context(), studioID, date)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ReservationHandler) ListByMonth(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_year"})
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_month"})
		return
	}

	list, err := h.byMonthUC.Execute(c.Request.Context(), studioID, year, month)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.transition(c, "confirm")
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, "cancel")
}

func (h *ReservationHandler) Complete(c *gin.Context) {
	h.transition(c, "complete")
}

func (h *ReservationHandler) transition(c *gin.Context, action string) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_reservation_id"})
		return
	}
	reservationID := uint(id64)

	var rv *models.Reservation

	switch action {
	case "confirm":
		rv, err = h.confirmUC.Execute(c.Request.Context(), studioID, userID, reservationID)
	case "cancel":
		rv, err = h.cancelUC.Execute(c.Request.Context(), studioID, userID, reservationID)
	case "complete":
		rv, err = h.completeUC.Execute(c.Request.Context(), studioID, userID, reservationID)
	}

	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, rv)
}
