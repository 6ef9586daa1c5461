package checkout

import (
	"math"
	"time"

	"github.com/LotusWellness01/spa-scheduler/internal/httperr"
	"github.com/LotusWellness01/spa-scheduler/internal/models"
)

// Discount code scopes
const (
	AppliesAll      = "all"
	AppliesProducts = "products"
	AppliesServices = "services"
)

// Cart line item kinds, matching models.OrderItem.Kind
const (
	KindProduct = "product"
	KindService = "service"
)

type LineItem struct {
	Kind      string
	UnitPrice float64
	Quantity  int
}

// ScopedSubtotal sums the items a discount scope applies to.
func ScopedSubtotal(items []LineItem, appliesTo string) float64 {
	var sum float64
	for _, it := range items {
		switch appliesTo {
		case AppliesProducts:
			if it.Kind != KindProduct {
				continue
			}
		case AppliesServices:
			if it.Kind != KindService {
				continue
			}
		}
		sum += it.UnitPrice * float64(it.Quantity)
	}
	return sum
}

// ComputeDiscount applies a code to the cart and returns the discount
// amount, rounded half-up to cents. The min_subtotal threshold is evaluated
// against the subtotal of the scope the code applies to, not the grand
// total. Pure function.
func ComputeDiscount(
	items []LineItem,
	code *models.DiscountCode,
	now time.Time,
) (float64, error) {

	if code == nil || !code.Active {
		return 0, httperr.ErrBusiness("discount_invalid")
	}
	if code.ExpiresAt != nil && now.After(*code.ExpiresAt) {
		return 0, httperr.ErrBusiness("discount_expired")
	}
	if code.Percent <= 0 || code.Percent > 100 {
		return 0, httperr.ErrBusiness("discount_invalid")
	}

	scoped := ScopedSubtotal(items, code.AppliesTo)

	if code.MinSubtotal != nil && scoped < *code.MinSubtotal {
		return 0, httperr.ErrBusiness("discount_min_subtotal")
	}

	return RoundCents(scoped * code.Percent / 100), nil
}

// RoundCents rounds a monetary amount half-up to two decimals.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
