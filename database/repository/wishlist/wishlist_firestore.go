package wishlistRepo

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

const (
	wishlistsColl = "wishlists"
	bookingsColl  = "bookings"
)

// FirestoreWishlistRepo persists waitlist entries in Firestore.
type FirestoreWishlistRepo struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepo() *FirestoreWishlistRepo {
	return &FirestoreWishlistRepo{client: database.FirestoreClient}
}

func (repo *FirestoreWishlistRepo) coll() *firestore.CollectionRef {
	return repo.client.Collection(wishlistsColl)
}

func (repo *FirestoreWishlistRepo) Query(ctx context.Context, f models.WishlistFilter) ([]models.WishlistEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	q := repo.coll().Query
	if f.Date != "" {
		q = q.Where("date", "==", f.Date)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var items []models.WishlistEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query wishlists: %w", err)
		}
		items = append(items, utils.WishlistFromDoc(doc.Ref.ID, doc.Data()))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (repo *FirestoreWishlistRepo) GetByID(ctx context.Context, id string) (*models.WishlistEntry, error) {
	snap, err := repo.coll().Doc(id).Get(ctx)
	if grpcstatus.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("wishlist %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get wishlist %s: %w", id, err)
	}
	w := utils.WishlistFromDoc(snap.Ref.ID, snap.Data())
	return &w, nil
}

func (repo *FirestoreWishlistRepo) Create(ctx context.Context, w *models.WishlistEntry) (string, error) {
	w.Status = models.WishlistStatusOpen
	ref := repo.coll().NewDoc()
	if _, err := ref.Set(ctx, w); err != nil {
		return "", fmt.Errorf("create wishlist entry: %w", err)
	}
	return ref.ID, nil
}

func (repo *FirestoreWishlistRepo) Delete(ctx context.Context, id string) error {
	if _, err := repo.coll().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete wishlist %s: %w", id, err)
	}
	return nil
}

// Convert is the local transactional fallback for wishlist promotion. The
// conflict scan and both writes share one Firestore transaction, so at most
// one non-cancelled booking can ever be created for a (date, slotId) pair
// through this path; the server retries the function on contention.
func (repo *FirestoreWishlistRepo) Convert(ctx context.Context, wishlistID string, amountFor AmountFn, extra ConflictCheck) (string, error) {
	wlRef := repo.coll().Doc(wishlistID)
	var bookingID string

	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(wlRef)
		if grpcstatus.Code(err) == codes.NotFound {
			return fmt.Errorf("wishlist %s: %w", wishlistID, repository.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("read wishlist %s: %w", wishlistID, err)
		}
		wl := utils.WishlistFromDoc(snap.Ref.ID, snap.Data())
		if wl.Status == models.WishlistStatusConverted {
			return fmt.Errorf("wishlist %s already converted: %w", wishlistID, repository.ErrConflict)
		}

		dayQuery := repo.client.Collection(bookingsColl).Where("date", "==", wl.Date)
		docs, err := tx.Documents(dayQuery).GetAll()
		if err != nil {
			return fmt.Errorf("read bookings for %s: %w", wl.Date, err)
		}
		existing := make([]models.Booking, 0, len(docs))
		for _, doc := range docs {
			existing = append(existing, utils.BookingFromDoc(doc.Ref.ID, doc.Data()))
		}

		for _, b := range existing {
			if b.IsActive() && b.SlotID == wl.SlotID {
				return fmt.Errorf("slot %s on %s already booked: %w", wl.SlotID, wl.Date, repository.ErrConflict)
			}
		}
		if extra != nil {
			if err := extra(wl, existing); err != nil {
				return err
			}
		}

		amount := wl.Amount
		if amount <= 0 {
			amount = amountFor(wl)
		}

		bRef := repo.client.Collection(bookingsColl).NewDoc()
		booking := &models.Booking{
			UserName:              wl.UserName,
			Phone:                 wl.Phone,
			Notes:                 wl.Notes,
			Coupon:                wl.Coupon,
			Court:                 wl.Court,
			SlotID:                wl.SlotID,
			SlotLabel:             wl.SlotLabel,
			Date:                  wl.Date,
			Amount:                amount,
			Status:                models.BookingStatusPending,
			ConvertedFromWishlist: wishlistID,
		}
		if err := tx.Set(bRef, booking); err != nil {
			return err
		}
		if err := tx.Update(wlRef, []firestore.Update{
			{Path: "status", Value: models.WishlistStatusConverted},
			{Path: "convertedToBookingId", Value: bRef.ID},
			{Path: "convertedAt", Value: firestore.ServerTimestamp},
		}); err != nil {
			return err
		}
		bookingID = bRef.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return bookingID, nil
}
