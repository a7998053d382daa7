package models

// AnalyticsTotals are the headline numbers for the admin dashboard.
type AnalyticsTotals struct {
	TotalBookings int     `bson:"totalBookings" json:"totalBookings"`
	TotalRevenue  float64 `bson:"totalRevenue" json:"totalRevenue"`
	MonthBookings int     `bson:"monthBookings" json:"monthBookings"`
	MonthRevenue  float64 `bson:"monthRevenue" json:"monthRevenue"`
	WeekBookings  int     `bson:"weekBookings" json:"weekBookings"`
	WeekRevenue   float64 `bson:"weekRevenue" json:"weekRevenue"`
}

// DateRevenue is one point of the revenue-over-time series.
type DateRevenue struct {
	Date    string  `bson:"_id" json:"date"`
	Revenue float64 `bson:"revenue" json:"revenue"`
	Count   int     `bson:"count" json:"count"`
}

// CourtCount is the per-court share of bookings.
type CourtCount struct {
	Court string `bson:"_id" json:"court"`
	Count int    `bson:"count" json:"count"`
}

// HourCount is the hourly occupancy histogram (0-23 by start hour).
type HourCount struct {
	Hour  int `bson:"_id" json:"hour"`
	Count int `bson:"count" json:"count"`
}

// WeekdayCount is the weekday distribution (0=Sunday .. 6=Saturday).
type WeekdayCount struct {
	Weekday int `bson:"_id" json:"weekday"`
	Count   int `bson:"count" json:"count"`
}

// AnalyticsSummary bundles everything the analytics view renders.
type AnalyticsSummary struct {
	Totals    AnalyticsTotals `json:"totals"`
	ByDate    []DateRevenue   `json:"byDate"`
	ByCourt   []CourtCount    `json:"byCourt"`
	ByHour    []HourCount     `json:"byHour"`
	ByWeekday []WeekdayCount  `json:"byWeekday"`
}
