package bookingRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"turfbook/database/repository"
	"turfbook/models"
)

// Key layout for the local key-value variant: one JSON document per booking
// plus per-date index sets. The date index doubles as the optimistic lock
// for atomic creates.
const (
	bookingKeyPrefix  = "booking:"
	bookingDateIndex  = "bookings:date:"
	bookingAllIndex   = "bookings:all"
	redisConvAttempts = 5
)

// RedisBookingRepo persists bookings in a local Redis instance. It backs the
// standalone/demo deployment where no Firestore project is configured.
type RedisBookingRepo struct {
	client *redis.Client
}

func NewRedisBookingRepo(client *redis.Client) *RedisBookingRepo {
	return &RedisBookingRepo{client: client}
}

func bookingKey(id string) string { return bookingKeyPrefix + id }

// BookingKey and BookingDateIndex expose the key schema to the wishlist
// repository, whose conversion transaction writes bookings too.
func BookingKey(id string) string { return bookingKey(id) }

func BookingDateIndex(date string) string { return bookingDateIndex + date }

// BookingAllIndex is the index set of every booking id.
const BookingAllIndex = bookingAllIndex

func (repo *RedisBookingRepo) Query(ctx context.Context, f models.BookingFilter) ([]models.Booking, error) {
	indexKey := bookingAllIndex
	if f.Date != "" {
		indexKey = bookingDateIndex + f.Date
	}
	items, err := repo.loadIndex(ctx, repo.client, indexKey)
	if err != nil {
		return nil, err
	}
	filtered := items[:0]
	for _, b := range items {
		if f.Court != "" && b.Court != f.Court {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		filtered = append(filtered, b)
	}
	sortBookings(filtered)
	return filtered, nil
}

func (repo *RedisBookingRepo) QueryRange(ctx context.Context, startISO, endISO, court string) ([]models.Booking, error) {
	items, err := repo.loadIndex(ctx, repo.client, bookingAllIndex)
	if err != nil {
		return nil, err
	}
	filtered := items[:0]
	for _, b := range items {
		if b.Date < startISO || b.Date > endISO {
			continue
		}
		if court != "" && b.Court != court {
			continue
		}
		filtered = append(filtered, b)
	}
	sortBookingsByDate(filtered)
	return filtered, nil
}

func (repo *RedisBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	raw, err := repo.client.Get(ctx, bookingKey(id)).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("booking %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", id, err)
	}
	var b models.Booking
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return nil, fmt.Errorf("decode booking %s: %w", id, err)
	}
	b.ID = id
	return &b, nil
}

// CreateAtomic runs the availability check under WATCH on the date index:
// any concurrent write to the same day invalidates the transaction and the
// whole check-then-write is retried from scratch.
func (repo *RedisBookingRepo) CreateAtomic(ctx context.Context, b *models.Booking, check AvailabilityCheck) (string, error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	indexKey := bookingDateIndex + b.Date

	txFn := func(tx *redis.Tx) error {
		existing, err := repo.loadIndex(ctx, tx, indexKey)
		if err != nil {
			return err
		}
		if err := check(existing); err != nil {
			return err
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = time.Now().UTC()
		}
		payload, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("encode booking: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, bookingKey(b.ID), payload, 0)
			pipe.SAdd(ctx, indexKey, b.ID)
			pipe.SAdd(ctx, bookingAllIndex, b.ID)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < redisConvAttempts; attempt++ {
		err := repo.client.Watch(ctx, txFn, indexKey)
		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			return "", err
		}
		return b.ID, nil
	}
	return "", fmt.Errorf("create booking %s: too many concurrent writers", b.ID)
}

func (repo *RedisBookingRepo) SetStatus(ctx context.Context, id, newStatus, actor string) error {
	b, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	b.Status = newStatus
	switch newStatus {
	case models.BookingStatusConfirmed:
		b.ConfirmedAt = &now
		b.ConfirmedBy = actor
	case models.BookingStatusCancelled:
		b.CancelledAt = &now
		b.CancelledBy = actor
	}
	payload, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode booking %s: %w", id, err)
	}
	if err := repo.client.Set(ctx, bookingKey(id), payload, 0).Err(); err != nil {
		return fmt.Errorf("update booking %s: %w", id, err)
	}
	return nil
}

func (repo *RedisBookingRepo) Delete(ctx context.Context, id string) error {
	b, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	_, err = repo.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, bookingKey(id))
		pipe.SRem(ctx, bookingDateIndex+b.Date, id)
		pipe.SRem(ctx, bookingAllIndex, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete booking %s: %w", id, err)
	}
	return nil
}

func (repo *RedisBookingRepo) DeleteAllForDate(ctx context.Context, date string) (int, error) {
	indexKey := bookingAllIndex
	if date != "" {
		indexKey = bookingDateIndex + date
	}
	items, err := repo.loadIndex(ctx, repo.client, indexKey)
	if err != nil {
		return 0, err
	}
	_, err = repo.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, b := range items {
			pipe.Del(ctx, bookingKey(b.ID))
			pipe.SRem(ctx, bookingDateIndex+b.Date, b.ID)
			pipe.SRem(ctx, bookingAllIndex, b.ID)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("bulk delete bookings: %w", err)
	}
	return len(items), nil
}

// loadIndex resolves an index set to decoded bookings. Works against both
// the plain client and a WATCH transaction (redis.Cmdable covers both).
func (repo *RedisBookingRepo) loadIndex(ctx context.Context, c redis.Cmdable, indexKey string) ([]models.Booking, error) {
	ids, err := c.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", indexKey, err)
	}
	items := make([]models.Booking, 0, len(ids))
	for _, id := range ids {
		raw, err := c.Get(ctx, bookingKey(id)).Result()
		if err == redis.Nil {
			continue // index entry outlived the document
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
