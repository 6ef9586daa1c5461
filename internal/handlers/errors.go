package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	domain "github.com/LotusWellness01/spa-scheduler/internal/domain/booking"
	"github.com/LotusWellness01/spa-scheduler/internal/httperr"
)

// respondUseCaseError maps use-case errors onto HTTP responses. Business
// errors carry their code to the client; anything unexpected stays a 500.
func respondUseCaseError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrSourceUnavailable) {
		httperr.BadGateway(c, "availability_source_unavailable",
			"A required scheduling source could not be reached. Try again shortly.")
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "service_not_found", "reservation_not_found", "studio_not_found":
			httperr.NotFound(c, be.Code, messageFor(be.Code))
		case "slot_conflict":
			httperr.Conflict(c, be.Code, messageFor(be.Code))
		default:
			httperr.BadRequest(c, be.Code, messageFor(be.Code))
		}
		return
	}

	httperr.Internal(c, "internal_error", "Something went wrong.")
}

func messageFor(code string) string {
	switch code {
	case "invalid_date":
		return "The date is missing or malformed."
	case "invalid_date_or_time":
		return "The date or time is malformed."
	case "off_grid_time":
		return "Bookings start on the hour or half hour."
	case "too_soon":
		return "This time is too close; pick a later slot."
	case "outside_schedule":
		return "The studio is not open at this time."
	case "slot_conflict":
		return "This slot was just taken. Pick another one."
	case "service_not_found":
		return "Service not found."
	case "reservation_not_found":
		return "Reservation not found."
	case "studio_not_found":
		return "Studio not found."
	case "invalid_state":
		return "The reservation cannot change to that status."
	case "discount_invalid":
		return "This discount code is not valid."
	case "discount_expired":
		return "This discount code has expired."
	case "discount_min_subtotal":
		return "The order does not reach the minimum for this code."
	default:
		return "The request could not be processed."
	}
}
