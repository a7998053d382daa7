package recordsRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"turfbook/models"
)

// Archive upserts bookings keyed by id so the nightly job can be re-run
// over an overlapping window without duplicating records.
func (r *mongoRecordRepo) Archive(ctx context.Context, bookings []models.Booking) (int, error) {
	if len(bookings) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(bookings))
	for _, b := range bookings {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"id": b.ID}).
			SetReplacement(b).
			SetUpsert(true))
	}
	res, err := r.coll.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, fmt.Errorf("archive bookings: %w", err)
	}
	return int(res.UpsertedCount + res.ModifiedCount), nil
}

// LastArchivedDate returns the newest archived calendar date.
func (r *mongoRecordRepo) LastArchivedDate(ctx context.Context) (string, error) {
	opts := options.FindOne().SetSort(bson.M{"date": -1}).SetProjection(bson.M{"date": 1})
	var doc struct {
		Date string `bson:"date"`
	}
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read last archived date: %w", err)
	}
	return doc.Date, nil
}
