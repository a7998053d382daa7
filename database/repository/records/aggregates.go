package recordsRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"turfbook/models"
)

// Summary aggregates the archive between two dates (inclusive) using
// aggregation pipelines; week/month headline numbers are folded from the
// per-date series.
func (r *mongoRecordRepo) Summary(ctx context.Context, startISO, endISO string) (*models.AnalyticsSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	match := bson.D{{Key: "$match", Value: bson.M{
		"date": bson.M{"$gte": startISO, "$lte": endISO},
	}}}

	summary := &models.AnalyticsSummary{}

	byDate := mongo.Pipeline{
		match,
		{{Key: "$group", Value: bson.M{
			"_id":     "$date",
			"revenue": bson.M{"$sum": "$amount"},
			"count":   bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	if err := r.aggregate(ctx, byDate, &summary.ByDate); err != nil {
		return nil, fmt.Errorf("aggregate revenue by date: %w", err)
	}

	byCourt := mongo.Pipeline{
		match,
		{{Key: "$group", Value: bson.M{
			"_id":   "$court",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}
	if err := r.aggregate(ctx, byCourt, &summary.ByCourt); err != nil {
		return nil, fmt.Errorf("aggregate bookings by court: %w", err)
	}

	// Hour of day comes from the canonical start timestamp; records whose
	// start never parsed are left out rather than skewing bucket zero.
	byHour := mongo.Pipeline{
		match,
		{{Key: "$match", Value: bson.M{"start": bson.M{"$type": "date"}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$hour": "$start"},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	if err := r.aggregate(ctx, byHour, &summary.ByHour); err != nil {
		return nil, fmt.Errorf("aggregate bookings by hour: %w", err)
	}

	// $dayOfWeek is 1=Sunday..7=Saturday; shift to 0..6.
	byWeekday := mongo.Pipeline{
		match,
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$subtract": bson.A{
				bson.M{"$dayOfWeek": bson.M{"$toDate": "$date"}},
				1,
			}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	if err := r.aggregate(ctx, byWeekday, &summary.ByWeekday); err != nil {
		return nil, fmt.Errorf("aggregate bookings by weekday: %w", err)
	}

	summary.Totals = foldTotals(summary.ByDate, time.Now())
	return summary, nil
}

func (r *mongoRecordRepo) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

// foldTotals derives the headline totals from the per-date series. The week
// window is Monday through Sunday, matching the admin dashboard.
func foldTotals(byDate []models.DateRevenue, now time.Time) models.AnalyticsTotals {
	var t models.AnalyticsTotals

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
	weekEnd := weekStart.AddDate(0, 0, 6)

	for _, d := range byDate {
		day, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			continue
		}
		t.TotalBookings += d.Count
		t.TotalRevenue += d.Revenue
		if day.Year() == today.Year() && day.Month() == today.Month() {
			t.MonthBookings += d.Count
			t.MonthRevenue += d.Revenue
		}
		if !day.Before(weekStart) && !day.After(weekEnd) {
			t.WeekBookings += d.Count
			t.WeekRevenue += d.Revenue
		}
	}
	return t
}
