package wishlistRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"turfbook/database/repository"
	bookingRepo "turfbook/database/repository/booking"
	"turfbook/models"
)

const (
	wishlistKeyPrefix = "wishlist:"
	wishlistDateIndex = "wishlists:date:"
	wishlistAllIndex  = "wishlists:all"
	convertAttempts   = 5
)

// RedisWishlistRepo persists waitlist entries in the local Redis store.
type RedisWishlistRepo struct {
	client *redis.Client
}

func NewRedisWishlistRepo(client *redis.Client) *RedisWishlistRepo {
	return &RedisWishlistRepo{client: client}
}

func wishlistKey(id string) string { return wishlistKeyPrefix + id }

func (repo *RedisWishlistRepo) Query(ctx context.Context, f models.WishlistFilter) ([]models.WishlistEntry, error) {
	indexKey := wishlistAllIndex
	if f.Date != "" {
		indexKey = wishlistDateIndex + f.Date
	}
	ids, err := repo.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", indexKey, err)
	}
	items := make([]models.WishlistEntry, 0, len(ids))
	for _, id := range ids {
		w, err := repo.get(ctx, repo.client, id)
		if err != nil {
			continue
		}
		items = append(items, *w)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (repo *RedisWishlistRepo) GetByID(ctx context.Context, id string) (*models.WishlistEntry, error) {
	return repo.get(ctx, repo.client, id)
}

func (repo *RedisWishlistRepo) get(ctx context.Context, c redis.Cmdable, id string) (*models.WishlistEntry, error) {
	raw, err := c.Get(ctx, wishlistKey(id)).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("wishlist %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get wishlist %s: %w", id, err)
	}
	var w models.WishlistEntry
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, fmt.Errorf("decode wishlist %s: %w", id, err)
	}
	w.ID = id
	return &w, nil
}

func (repo *RedisWishlistRepo) Create(ctx context.Context, w *models.WishlistEntry) (string, error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	w.Status = models.WishlistStatusOpen
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("encode wishlist entry: %w", err)
	}
	_, err = repo.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, wishlistKey(w.ID), payload, 0)
		pipe.SAdd(ctx, wishlistDateIndex+w.Date, w.ID)
		pipe.SAdd(ctx, wishlistAllIndex, w.ID)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("create wishlist entry: %w", err)
	}
	return w.ID, nil
}

func (repo *RedisWishlistRepo) Delete(ctx context.Context, id string) error {
	w, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	_, err = repo.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, wishlistKey(id))
		pipe.SRem(ctx, wishlistDateIndex+w.Date, id)
		pipe.SRem(ctx, wishlistAllIndex, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete wishlist %s: %w", id, err)
	}
	return nil
}

// Convert mirrors the Firestore transaction using WATCH on the entry and
// the day's booking index: a concurrent conversion or booking on the same
// day invalidates the optimistic transaction and the attempt is replayed.
func (repo *RedisWishlistRepo) Convert(ctx context.Context, wishlistID string, amountFor AmountFn, extra ConflictCheck) (string, error) {
	var bookingID string

	txFn := func(tx *redis.Tx) error {
		wl, err := repo.get(ctx, tx, wishlistID)
		if err != nil {
			return err
		}
		if wl.Status == models.WishlistStatusConverted {
			return fmt.Errorf("wishlist %s already converted: %w", wishlistID, repository.ErrConflict)
		}

		dateIndex := bookingRepo.BookingDateIndex(wl.Date)
		existing, err := loadBookings(ctx, tx, dateIndex)
		if err != nil {
			return err
		}
		for _, b := range existing {
			if b.IsActive() && b.SlotID == wl.SlotID {
				return fmt.Errorf("slot %s on %s already booked: %w", wl.SlotID, wl.Date, repository.ErrConflict)
			}
		}
		if extra != nil {
			if err := extra(*wl, existing); err != nil {
				return err
			}
		}

		amount := wl.Amount
		if amount <= 0 {
			amount = amountFor(*wl)
		}
		now := time.Now().UTC()
		booking := models.Booking{
			ID:                    uuid.New().String(),
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
			CreatedAt:             now,
			ConvertedFromWishlist: wishlistID,
		}
		bookingPayload, err := json.Marshal(&booking)
		if err != nil {
			return fmt.Errorf("encode booking: %w", err)
		}

		wl.Status = models.WishlistStatusConverted
		wl.ConvertedToBookingID = booking.ID
		wl.ConvertedAt = &now
		wlPayload, err := json.Marshal(wl)
		if err != nil {
			return fmt.Errorf("encode wishlist %s: %w", wishlistID, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, bookingRepo.BookingKey(booking.ID), bookingPayload, 0)
			pipe.SAdd(ctx, dateIndex, booking.ID)
			pipe.SAdd(ctx, bookingRepo.BookingAllIndex, booking.ID)
			pipe.Set(ctx, wishlistKey(wishlistID), wlPayload, 0)
			return nil
		})
		if err != nil {
			return err
		}
		bookingID = booking.ID
		return nil
	}

	for attempt := 0; attempt < convertAttempts; attempt++ {
		// The watched entry key covers concurrent conversions of the same
		// entry; the entry's date index covers concurrent bookings of the
		// slot. The date key is only known after the first read, so watch
		// conservatively re-reads it each attempt.
		wl, err := repo.GetByID(ctx, wishlistID)
		if err != nil {
			return "", err
		}
		err = repo.client.Watch(ctx, txFn, wishlistKey(wishlistID), bookingRepo.BookingDateIndex(wl.Date))
		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			return "", err
		}
		return bookingID, nil
	}
	return "", fmt.Errorf("convert wishlist %s: too many concurrent writers", wishlistID)
}

func loadBookings(ctx context.Context, c redis.Cmdable, indexKey string) ([]models.Booking, error) {
	ids, err := c.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", indexKey, err)
	}
	items := make([]models.Booking, 0, len(ids))
	for _, id := range ids {
		raw, err := c.Get(ctx, bookingRepo.BookingKey(id)).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read booking %s: %w", id, err)
		}
		var b models.Booking
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			continue
		}
		b.ID = id
		items = append(items, b)
	}
	return items, nil
}
