package bookingRepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"turfbook/database"
	"turfbook/database/repository"
	"turfbook/models"
	"turfbook/utils"
)

const bookingsColl = "bookings"

// FirestoreBookingRepo persists bookings in Firestore.
type FirestoreBookingRepo struct {
	client *firestore.Client
}

func NewFirestoreBookingRepo() *FirestoreBookingRepo {
	return &FirestoreBookingRepo{client: database.FirestoreClient}
}

func (repo *FirestoreBookingRepo) coll() *firestore.CollectionRef {
	return repo.client.Collection(bookingsColl)
}

func (repo *FirestoreBookingRepo) Query(ctx context.Context, f models.BookingFilter) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	q := repo.coll().Query
	if f.Date != "" {
		q = q.Where("date", "==", f.Date)
	}
	if f.Court != "" {
		q = q.Where("court", "==", f.Court)
	}
	if f.Status != "" {
		q = q.Where("status", "==", f.Status)
	}

	items, err := collectBookings(q.Documents(ctx))
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	sortBookings(items)
	return items, nil
}

func (repo *FirestoreBookingRepo) QueryRange(ctx context.Context, startISO, endISO, court string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	q := repo.coll().
		Where("date", ">=", startISO).
		Where("date", "<=", endISO)
	if court != "" {
		q = q.Where("court", "==", court)
	}

	items, err := collectBookings(q.Documents(ctx))
	if err != nil {
		return nil, fmt.Errorf("query bookings %s..%s: %w", startISO, endISO, err)
	}
	sortBookingsByDate(items)
	return items, nil
}

func (repo *FirestoreBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	snap, err := repo.coll().Doc(id).Get(ctx)
	if grpcstatus.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("booking %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", id, err)
	}
	b := utils.BookingFromDoc(snap.Ref.ID, snap.Data())
	return &b, nil
}

// CreateAtomic re-reads the day's bookings inside the transaction, runs the
// injected availability check against them and writes the new booking only
// when the check passes. Firestore retries the whole function when the read
// set is invalidated by a concurrent writer.
func (repo *FirestoreBookingRepo) CreateAtomic(ctx context.Context, b *models.Booking, check AvailabilityCheck) (string, error) {
	ref := repo.coll().NewDoc()
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		q := repo.coll().Where("date", "==", b.Date)
		docs, err := tx.Documents(q).GetAll()
		if err != nil {
			return fmt.Errorf("read bookings for %s: %w", b.Date, err)
		}
		existing := make([]models.Booking, 0, len(docs))
		for _, doc := range docs {
			existing = append(existing, utils.BookingFromDoc(doc.Ref.ID, doc.Data()))
		}
		if err := check(existing); err != nil {
			return err
		}
		return tx.Set(ref, b)
	})
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (repo *FirestoreBookingRepo) SetStatus(ctx context.Context, id, newStatus, actor string) error {
	updates := []firestore.Update{{Path: "status", Value: newStatus}}
	switch newStatus {
	case models.BookingStatusConfirmed:
		updates = append(updates,
			firestore.Update{Path: "confirmedAt", Value: firestore.ServerTimestamp},
			firestore.Update{Path: "confirmedBy", Value: actor})
	case models.BookingStatusCancelled:
		updates = append(updates,
			firestore.Update{Path: "cancelledAt", Value: firestore.ServerTimestamp},
			firestore.Update{Path: "cancelledBy", Value: actor})
	}

	_, err := repo.coll().Doc(id).Update(ctx, updates)
	if grpcstatus.Code(err) == codes.NotFound {
		return fmt.Errorf("booking %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update booking %s: %w", id, err)
	}
	return nil
}

func (repo *FirestoreBookingRepo) Delete(ctx context.Context, id string) error {
	if _, err := repo.coll().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete booking %s: %w", id, err)
	}
	return nil
}

// DeleteAllForDate batches unconditional deletes; this path is used for the
// operator's bulk cleanup and is deliberately not conflict-sensitive.
func (repo *FirestoreBookingRepo) DeleteAllForDate(ctx context.Context, date string) (int, error) {
	q := repo.coll().Query
	if date != "" {
		q = q.Where("date", "==", date)
	}
	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("query bookings for bulk delete: %w", err)
	}
	if len(docs) == 0 {
		return 0, nil
	}

	batch := repo.client.Batch()
	for _, doc := range docs {
		batch.Delete(doc.Ref)
	}
	if _, err := batch.Commit(ctx); err != nil {
		return 0, fmt.Errorf("bulk delete bookings: %w", err)
	}
	return len(docs), nil
}

func collectBookings(iter *firestore.DocumentIterator) ([]models.Booking, error) {
	defer iter.Stop()
	var items []models.Booking
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		items = append(items, utils.BookingFromDoc(doc.Ref.ID, doc.Data()))
	}
	return items, nil
}

func sortBookings(items []models.Booking) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].SlotID != items[j].SlotID {
			return items[i].SlotID < items[j].SlotID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

func sortBookingsByDate(items []models.Booking) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		if items[i].SlotID != items[j].SlotID {
			return items[i].SlotID < items[j].SlotID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}
