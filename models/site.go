package models

// Court is a bookable unit in the site catalogue. Several courts may draw
// capacity from the same physical resource (e.g. two half-grounds over one
// full ground).
type Court struct {
	ID           string  `mapstructure:"id" json:"id"`
	Label        string  `mapstructure:"label" json:"label"`
	ResourceID   string  `mapstructure:"resourceId" json:"resourceId,omitempty"` // defaults to ID
	Units        int     `mapstructure:"units" json:"units,omitempty"`           // defaults to 1
	BasePrice    float64 `mapstructure:"basePrice" json:"basePrice"`
	DurationMins int     `mapstructure:"durationMins" json:"durationMins"`
}

// Hours is the daily business window, whole hours on a 24h clock.
type Hours struct {
	Open  int `mapstructure:"open" json:"open"`
	Close int `mapstructure:"close" json:"close"`
}

// PeakHours marks the surcharge window [Start, End) by hour of day.
type PeakHours struct {
	Start      int     `mapstructure:"start" json:"start"`
	End        int     `mapstructure:"end" json:"end"`
	Multiplier float64 `mapstructure:"multiplier" json:"multiplier"`
}

// Coupon is a discount code from the site configuration.
type Coupon struct {
	Code      string  `mapstructure:"code" json:"code"`
	Type      string  `mapstructure:"type" json:"type"` // "flat" or "percent"
	Value     float64 `mapstructure:"value" json:"value"`
	Expires   string  `mapstructure:"expires" json:"expires,omitempty"` // "YYYY-MM-DD"
	MinAmount float64 `mapstructure:"minAmount" json:"minAmount,omitempty"`
}

// SiteConfig is the read-mostly business snapshot (site.json). It is loaded
// once, treated as immutable, and replaced wholesale on reload.
type SiteConfig struct {
	Name     string `mapstructure:"name" json:"name"`
	Address  string `mapstructure:"address" json:"address,omitempty"`
	Phone    string `mapstructure:"phone" json:"phone,omitempty"`
	WhatsApp string `mapstructure:"whatsapp" json:"whatsapp,omitempty"`

	Courts           []Court        `mapstructure:"courts" json:"courts"`
	ResourceCapacity map[string]int `mapstructure:"resourceCapacity" json:"resourceCapacity,omitempty"`
	Hours            Hours          `mapstructure:"hours" json:"hours"`
	BufferMins       int            `mapstructure:"bufferMins" json:"bufferMins"`
	PeakHours        PeakHours      `mapstructure:"peakHours" json:"peakHours"`
	Coupons          []Coupon       `mapstructure:"coupons" json:"coupons,omitempty"`
}
