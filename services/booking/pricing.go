package booking

import (
	"strings"
	"time"

	"turfbook/models"
)

// PricingResult is the outcome of applying an optional coupon to a base
// amount. When the coupon does not apply, Reason says why and Amount is the
// undiscounted base.
type PricingResult struct {
	Amount   float64 `json:"amount"`
	Discount float64 `json:"discount"`
	Coupon   string  `json:"coupon,omitempty"`
	Reason   string  `json:"reason,omitempty"`
}

// ApplyCoupon matches the code against the configured coupons
// (case-insensitive) and discounts the amount. Expired codes and amounts
// below the coupon minimum leave the price untouched.
func ApplyCoupon(coupons []models.Coupon, code string, amount float64, now time.Time) PricingResult {
	code = strings.TrimSpace(code)
	if code == "" {
		return PricingResult{Amount: amount}
	}
	var match *models.Coupon
	for i := range coupons {
		if strings.EqualFold(coupons[i].Code, code) {
			match = &coupons[i]
			break
		}
	}
	if match == nil {
		return PricingResult{Amount: amount, Reason: "unknown coupon"}
	}
	if match.Expires != "" {
		if exp, err := time.ParseInLocation("2006-01-02", match.Expires, time.UTC); err == nil {
			if now.After(exp.Add(24 * time.Hour)) {
				return PricingResult{Amount: amount, Reason: "coupon expired"}
			}
		}
	}
	if match.MinAmount > 0 && amount < match.MinAmount {
		return PricingResult{Amount: amount, Reason: "amount below coupon minimum"}
	}

	var discount float64
	switch strings.ToLower(match.Type) {
	case "percent":
		discount = roundHalfUp(amount * match.Value / 100)
	default: // flat
		discount = match.Value
	}
	if discount > amount {
		discount = amount
	}
	if discount <= 0 {
		return PricingResult{Amount: amount, Reason: "coupon has no value"}
	}
	return PricingResult{
		Amount:   amount - discount,
		Discount: discount,
		Coupon:   strings.ToUpper(match.Code),
	}
}
