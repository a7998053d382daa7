package booking

import (
	"strings"
	"time"

	"turfbook/models"
)

// Catalog answers resource, pricing and display questions for the courts
// in the active site configuration. Every lookup is total: unknown courts
// fall back to documented defaults rather than returning an error.
type Catalog struct {
	cfg *models.SiteConfig
}

func NewCatalog(cfg *models.SiteConfig) Catalog {
	if cfg == nil {
		cfg = &models.SiteConfig{}
	}
	return Catalog{cfg: cfg}
}

func (c Catalog) Config() *models.SiteConfig { return c.cfg }

// CourtByID returns the configured court, if any.
func (c Catalog) CourtByID(id string) (models.Court, bool) {
	for _, ct := range c.cfg.Courts {
		if ct.ID == id {
			return ct, true
		}
	}
	return models.Court{}, false
}

// ResourceIDFor maps a court onto the physical resource it occupies.
// Courts without an explicit resourceId are their own resource.
func (c Catalog) ResourceIDFor(courtID string) string {
	if ct, ok := c.CourtByID(courtID); ok && ct.ResourceID != "" {
		return ct.ResourceID
	}
	return courtID
}

// UnitsFor is the number of capacity units a booking on this court consumes.
func (c Catalog) UnitsFor(courtID string) int {
	if ct, ok := c.CourtByID(courtID); ok && ct.Units > 0 {
		return ct.Units
	}
	return 1
}

// CapacityFor is the total units a resource can carry at one time.
func (c Catalog) CapacityFor(resourceID string) int {
	if cap, ok := c.cfg.ResourceCapacity[resourceID]; ok && cap > 0 {
		return cap
	}
	return 1
}

// PriceFor computes the price of a slot starting at the given instant,
// applying the peak multiplier when the start hour falls inside
// [peakStart, peakEnd).
func (c Catalog) PriceFor(courtID string, at time.Time) float64 {
	base := c.AmountFor(courtID)
	p := c.cfg.PeakHours
	if p.Multiplier > 0 && p.End > p.Start {
		h := at.Hour()
		if h >= p.Start && h < p.End {
			return roundHalfUp(base * p.Multiplier)
		}
	}
	return base
}

// amountFallback prices the historical court codes. It is not configuration:
// it only covers bookings and waitlist entries written before courts carried
// a basePrice, so those records still resolve to a sensible amount.
var amountFallback = map[string]float64{
	"5A":      1500,
	"5B":      1500,
	"5A-B":    1500,
	"7A":      2500,
	"CRK":     2500,
	"CRICKET": 2500,
}

// AmountFor is the base price for a court, independent of peak hours.
func (c Catalog) AmountFor(courtID string) float64 {
	if ct, ok := c.CourtByID(courtID); ok && ct.BasePrice > 0 {
		return ct.BasePrice
	}
	if amt, ok := amountFallback[strings.ToUpper(courtID)]; ok {
		return amt
	}
	return 0
}

// labelOverride names the historical court codes found in old documents.
// Like amountFallback, it is a legacy-data shim, not configuration; courts
// in the site catalogue carry their own labels.
var labelOverride = map[string]string{
	"5A":      "Half Ground (Left Half)",
	"5B":      "Half Ground (Right Half)",
	"5A-B":    "Half Ground Football",
	"7A":      "Full Ground Football",
	"CRK":     "Full Ground (Cricket)",
	"CRICKET": "Full Ground (Cricket)",
}

// LabelFor resolves a human-readable court name. Configured labels win,
// then the well-known court codes, then a couple of shape heuristics,
// and finally the raw id.
func (c Catalog) LabelFor(courtID string) string {
	if ct, ok := c.CourtByID(courtID); ok && ct.Label != "" {
		return ct.Label
	}
	up := strings.ToUpper(courtID)
	if lbl, ok := labelOverride[up]; ok {
		return lbl
	}
	switch {
	case strings.Contains(up, "CRICK") || strings.Contains(up, "CRK"):
		return "Full Ground (Cricket)"
	case strings.HasPrefix(up, "7"):
		return "Full Ground Football"
	case strings.HasPrefix(up, "5"):
		return "Half Ground Football"
	}
	return courtID
}

// DurationFor is the slot length for a court in minutes.
func (c Catalog) DurationFor(courtID string) int {
	if ct, ok := c.CourtByID(courtID); ok && ct.DurationMins > 0 {
		return ct.DurationMins
	}
	return 60
}

func roundHalfUp(v float64) float64 {
	return float64(int64(v + 0.5))
}
