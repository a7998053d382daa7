package recordsRepo

import (
	"context"

	"turfbook/config"
	"turfbook/database"
	"turfbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRecordRepository is the analytics archive: settled bookings copied
// out of the live store so dashboard aggregations never scan it.
type BookingRecordRepository interface {
	// Archive upserts bookings into the archive, keyed by booking id.
	// Re-archiving the same booking is idempotent.
	Archive(ctx context.Context, bookings []models.Booking) (int, error)
	// Summary aggregates the archive between two dates (inclusive).
	Summary(ctx context.Context, startISO, endISO string) (*models.AnalyticsSummary, error)
	// LastArchivedDate returns the most recent archived date, "" when empty.
	LastArchivedDate(ctx context.Context) (string, error)
}

type mongoRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordRepo returns a BookingRecordRepository backed by MongoDB.
func NewMongoRecordRepo() BookingRecordRepository {
	db := database.MongoClient.Database(config.AppConfig.RecordsDB)
	return &mongoRecordRepo{
		coll: db.Collection("booking_records"),
	}
}
