package checkout

import (
	"testing"
	"time"

	"github.com/LotusWellness01/spa-scheduler/internal/httperr"
	"github.com/LotusWellness01/spa-scheduler/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func cart() []LineItem {
	return []LineItem{
		{Kind: KindService, UnitPrice: 45.00, Quantity: 1},
		{Kind: KindProduct, UnitPrice: 12.50, Quantity: 2},
	}
}

func TestScopedSubtotal(t *testing.T) {
	items := cart()

	if got := ScopedSubtotal(items, AppliesAll); got != 70.00 {
		t.Fatalf("all = %v, want 70.00", got)
	}
	if got := ScopedSubtotal(items, AppliesProducts); got != 25.00 {
		t.Fatalf("products = %v, want 25.00", got)
	}
	if got := ScopedSubtotal(items, AppliesServices); got != 45.00 {
		t.Fatalf("services = %v, want 45.00", got)
	}
}

func TestComputeDiscount(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("percentage over full cart", func(t *testing.T) {
		code := &models.DiscountCode{Active: true, Percent: 10, AppliesTo: AppliesAll}

		got, err := ComputeDiscount(cart(), code, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 7.00 {
			t.Fatalf("discount = %v, want 7.00", got)
		}
	})

	t.Run("rounds half-up to cents", func(t *testing.T) {
		items := []LineItem{{Kind: KindService, UnitPrice: 19.995, Quantity: 1}}
		code := &models.DiscountCode{Active: true, Percent: 10, AppliesTo: AppliesAll}

		got, err := ComputeDiscount(items, code, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 2.00 {
			t.Fatalf("discount = %v, want 2.00", got)
		}
	})

	t.Run("scope restricts the base", func(t *testing.T) {
		code := &models.DiscountCode{Active: true, Percent: 20, AppliesTo: AppliesProducts}

		got, err := ComputeDiscount(cart(), code, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 5.00 {
			t.Fatalf("discount = %v, want 5.00 (20%% of 25.00)", got)
		}
	})

	t.Run("min subtotal checked against the scoped base", func(t *testing.T) {
		code := &models.DiscountCode{
			Active:      true,
			Percent:     20,
			AppliesTo:   AppliesProducts,
			MinSubtotal: floatPtr(30.00), // cart total is 70 but products are only 25
		}

		_, err := ComputeDiscount(cart(), code, now)
		if !httperr.IsBusiness(err, "discount_min_subtotal") {
			t.Fatalf("err = %v, want discount_min_subtotal", err)
		}
	})

	t.Run("expired code", func(t *testing.T) {
		past := now.Add(-time.Hour)
		code := &models.DiscountCode{Active: true, Percent: 10, AppliesTo: AppliesAll, ExpiresAt: &past}

		_, err := ComputeDiscount(cart(), code, now)
		if !httperr.IsBusiness(err, "discount_expired") {
			t.Fatalf("err = %v, want discount_expired", err)
		}
	})

	t.Run("inactive code", func(t *testing.T) {
		code := &models.DiscountCode{Active: false, Percent: 10, AppliesTo: AppliesAll}

		_, err := ComputeDiscount(cart(), code, now)
		if !httperr.IsBusiness(err, "discount_invalid") {
			t.Fatalf("err = %v, want discount_invalid", err)
		}
	})

	t.Run("nil code", func(t *testing.T) {
		_, err := ComputeDiscount(cart(), nil, now)
		if !httperr.IsBusiness(err, "discount_invalid") {
			t.Fatalf("err = %v, want discount_invalid", err)
		}
	})

	t.Run("percent out of range", func(t *testing.T) {
		for _, pct := range []float64{0, -5, 101} {
			code := &models.DiscountCode{Active: true, Percent: pct, AppliesTo: AppliesAll}
			if _, err := ComputeDiscount(cart(), code, now); !httperr.IsBusiness(err, "discount_invalid") {
				t.Fatalf("percent %v: err = %v, want discount_invalid", pct, err)
			}
		}
	})
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.994, 1.99},
		{1.9995, 2.00},
		{0, 0},
		{10.10, 10.10},
	}

	for _, tt := range tests {
		if got := RoundCents(tt.in); got != tt.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
