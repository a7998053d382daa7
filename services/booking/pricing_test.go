package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriceForPeakWindow(t *testing.T) {
	cat := NewCatalog(testSite())
	at := func(h int) time.Time {
		return time.Date(2026, time.March, 14, h, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 1500.0, cat.PriceFor("5A", at(17)))
	assert.Equal(t, 1800.0, cat.PriceFor("5A", at(18))) // peak start is inclusive
	assert.Equal(t, 3000.0, cat.PriceFor("7A", at(21)))
	assert.Equal(t, 2500.0, cat.PriceFor("7A", at(22))) // peak end is exclusive
}

func TestApplyCoupon(t *testing.T) {
	coupons := testSite().Coupons
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	t.Run("flat discount", func(t *testing.T) {
		res := ApplyCoupon(coupons, "FLAT200", 1500, now)
		assert.Equal(t, 1300.0, res.Amount)
		assert.Equal(t, 200.0, res.Discount)
		assert.Equal(t, "FLAT200", res.Coupon)
		assert.Empty(t, res.Reason)
	})

	t.Run("percent discount, case-insensitive match", func(t *testing.T) {
		res := ApplyCoupon(coupons, "off10", 2500, now)
		assert.Equal(t, 2250.0, res.Amount)
		assert.Equal(t, 250.0, res.Discount)
	})

	t.Run("below minimum amount", func(t *testing.T) {
		res := ApplyCoupon(coupons, "OFF10", 800, now)
		assert.Equal(t, 800.0, res.Amount)
		assert.Zero(t, res.Discount)
		assert.Equal(t, "amount below coupon minimum", res.Reason)
	})

	t.Run("expired", func(t *testing.T) {
		res := ApplyCoupon(coupons, "OLD", 1500, now)
		assert.Equal(t, 1500.0, res.Amount)
		assert.Equal(t, "coupon expired", res.Reason)
	})

	t.Run("unknown code", func(t *testing.T) {
		res := ApplyCoupon(coupons, "NOPE", 1500, now)
		assert.Equal(t, 1500.0, res.Amount)
		assert.Equal(t, "unknown coupon", res.Reason)
	})

	t.Run("no code is a no-op", func(t *testing.T) {
		res := ApplyCoupon(coupons, "", 1500, now)
		assert.Equal(t, 1500.0, res.Amount)
		assert.Empty(t, res.Reason)
	})

	t.Run("discount is capped at the amount", func(t *testing.T) {
		res := ApplyCoupon(coupons, "FLAT200", 150, now)
		assert.Equal(t, 0.0, res.Amount)
		assert.Equal(t, 150.0, res.Discount)
	})
}

func TestCatalogDefaults(t *testing.T) {
	cat := NewCatalog(nil)

	assert.Equal(t, "X1", cat.ResourceIDFor("X1"))
	assert.Equal(t, 1, cat.UnitsFor("X1"))
	assert.Equal(t, 1, cat.CapacityFor("X1"))
	assert.Equal(t, 60, cat.DurationFor("X1"))
	assert.Equal(t, 0.0, cat.AmountFor("X1"))
}
