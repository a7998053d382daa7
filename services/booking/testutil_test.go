package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"turfbook/database/repository"
	bookingRepo "turfbook/database/repository/booking"
	wishlistRepo "turfbook/database/repository/wishlist"
	"turfbook/models"
)

// testSite mirrors the production layout: two half-grounds drawing capacity
// from the same pitch as the full ground.
func testSite() *models.SiteConfig {
	return &models.SiteConfig{
		Name: "Test Turf",
		Courts: []models.Court{
			{ID: "5A", Label: "Half Ground (Left Half)", ResourceID: "main-pitch", Units: 1, BasePrice: 1500, DurationMins: 60},
			{ID: "5B", Label: "Half Ground (Right Half)", ResourceID: "main-pitch", Units: 1, BasePrice: 1500, DurationMins: 60},
			{ID: "7A", Label: "Full Ground Football", ResourceID: "main-pitch", Units: 2, BasePrice: 2500, DurationMins: 60},
		},
		ResourceCapacity: map[string]int{"main-pitch": 2},
		Hours:            models.Hours{Open: 6, Close: 23},
		PeakHours:        models.PeakHours{Start: 18, End: 22, Multiplier: 1.2},
		Coupons: []models.Coupon{
			{Code: "FLAT200", Type: "flat", Value: 200},
			{Code: "OFF10", Type: "percent", Value: 10, MinAmount: 1000},
			{Code: "OLD", Type: "flat", Value: 500, Expires: "2020-01-01"},
		},
	}
}

// exclusiveSite is a single court with no sharing, capacity 1.
func exclusiveSite() *models.SiteConfig {
	return &models.SiteConfig{
		Courts: []models.Court{
			{ID: "7A", Label: "Full Ground Football", BasePrice: 2500, DurationMins: 60},
		},
		Hours: models.Hours{Open: 6, Close: 23},
	}
}

func mustSlot(dateISO, slotID string) models.Slot {
	day, err := time.ParseInLocation("2006-01-02", dateISO, time.UTC)
	if err != nil {
		panic(err)
	}
	var sh, sm, eh, em int
	if _, err := fmt.Sscanf(slotID, "%02d%02d-%02d%02d", &sh, &sm, &eh, &em); err != nil {
		panic(err)
	}
	return models.Slot{
		Start: day.Add(time.Duration(sh)*time.Hour + time.Duration(sm)*time.Minute),
		End:   day.Add(time.Duration(eh)*time.Hour + time.Duration(em)*time.Minute),
	}
}

func activeBooking(court, dateISO, slotID string) models.Booking {
	slot := mustSlot(dateISO, slotID)
	return models.Booking{
		Court:  court,
		Date:   dateISO,
		SlotID: slotID,
		Start:  slot.Start,
		End:    slot.End,
		Status: models.BookingStatusConfirmed,
	}
}

// memBookingRepo is an in-memory BookingRepository. CreateAtomic serializes
// on the repo lock so the check-then-write is atomic, like the real stores.
type memBookingRepo struct {
	mu   sync.Mutex
	seq  int
	rows map[string]*models.Booking
}

var _ bookingRepo.BookingRepository = (*memBookingRepo)(nil)

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{rows: make(map[string]*models.Booking)}
}

func (r *memBookingRepo) forDateLocked(date string) []models.Booking {
	var out []models.Booking
	for _, b := range r.rows {
		if date == "" || b.Date == date {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *memBookingRepo) Query(_ context.Context, f models.BookingFilter) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.forDateLocked(f.Date) {
		if f.Court != "" && b.Court != f.Court {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *memBookingRepo) QueryRange(_ context.Context, startISO, endISO, court string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.forDateLocked("") {
		if b.Date < startISO || b.Date > endISO {
			continue
		}
		if court != "" && b.Court != court {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *memBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memBookingRepo) CreateAtomic(_ context.Context, b *models.Booking, check bookingRepo.AvailabilityCheck) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if check != nil {
		if err := check(r.forDateLocked(b.Date)); err != nil {
			return "", err
		}
	}
	r.seq++
	id := fmt.Sprintf("bk-%d", r.seq)
	cp := *b
	cp.ID = id
	cp.CreatedAt = time.Now().UTC()
	r.rows[id] = &cp
	return id, nil
}

func (r *memBookingRepo) SetStatus(_ context.Context, id, status, actor string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	now := time.Now().UTC()
	b.Status = status
	switch status {
	case models.BookingStatusConfirmed:
		b.ConfirmedAt, b.ConfirmedBy = &now, actor
	case models.BookingStatusCancelled:
		b.CancelledAt, b.CancelledBy = &now, actor
	}
	return nil
}

func (r *memBookingRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memBookingRepo) DeleteAllForDate(_ context.Context, date string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, b := range r.rows {
		if date == "" || b.Date == date {
			delete(r.rows, id)
			n++
		}
	}
	return n, nil
}

// memWishlistRepo pairs with a memBookingRepo so conversions land bookings
// in the same store, under one lock.
type memWishlistRepo struct {
	mu       sync.Mutex
	seq      int
	rows     map[string]*models.WishlistEntry
	bookings *memBookingRepo
}

var _ wishlistRepo.WishlistRepository = (*memWishlistRepo)(nil)

func newMemWishlistRepo(bookings *memBookingRepo) *memWishlistRepo {
	return &memWishlistRepo{rows: make(map[string]*models.WishlistEntry), bookings: bookings}
}

func (r *memWishlistRepo) Query(_ context.Context, f models.WishlistFilter) ([]models.WishlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.WishlistEntry
	for _, w := range r.rows {
		if f.Date != "" && w.Date != f.Date {
			continue
		}
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memWishlistRepo) GetByID(_ context.Context, id string) (*models.WishlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *memWishlistRepo) Create(_ context.Context, w *models.WishlistEntry) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := fmt.Sprintf("wl-%d", r.seq)
	cp := *w
	cp.ID = id
	cp.CreatedAt = time.Now().UTC()
	r.rows[id] = &cp
	return id, nil
}

func (r *memWishlistRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memWishlistRepo) Convert(ctx context.Context, wishlistID string, amountFor wishlistRepo.AmountFn, extra wishlistRepo.ConflictCheck) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.rows[wishlistID]
	if !ok {
		return "", repository.ErrNotFound
	}
	if w.Status == models.WishlistStatusConverted {
		return "", fmt.Errorf("entry already converted: %w", repository.ErrConflict)
	}

	r.bookings.mu.Lock()
	existing := r.bookings.forDateLocked(w.Date)
	for i := range existing {
		if existing[i].SlotID == w.SlotID && existing[i].IsActive() {
			r.bookings.mu.Unlock()
			return "", fmt.Errorf("slot already booked: %w", repository.ErrConflict)
		}
	}
	if extra != nil {
		if err := extra(*w, existing); err != nil {
			r.bookings.mu.Unlock()
			return "", err
		}
	}

	amount := w.Amount
	if amount == 0 && amountFor != nil {
		amount = amountFor(*w)
	}
	r.bookings.seq++
	bookingID := fmt.Sprintf("bk-%d", r.bookings.seq)
	now := time.Now().UTC()
	r.bookings.rows[bookingID] = &models.Booking{
		ID:                    bookingID,
		Court:                 w.Court,
		Date:                  w.Date,
		SlotID:                w.SlotID,
		SlotLabel:             w.SlotLabel,
		Amount:                amount,
		Status:                models.BookingStatusPending,
		UserName:              w.UserName,
		Phone:                 w.Phone,
		Notes:                 w.Notes,
		CreatedAt:             now,
		ConvertedFromWishlist: wishlistID,
	}
	r.bookings.mu.Unlock()

	w.Status = models.WishlistStatusConverted
	w.ConvertedToBookingID = bookingID
	w.ConvertedAt = &now
	return bookingID, nil
}

func newTestService(site *models.SiteConfig) (*DefaultBookingService, *memBookingRepo, *memWishlistRepo) {
	br := newMemBookingRepo()
	wr := newMemWishlistRepo(br)
	svc := &DefaultBookingService{
		Repo:     br,
		Wishlist: wr,
		Site:     func() *models.SiteConfig { return site },
		Now:      func() time.Time { return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC) },
	}
	return svc, br, wr
}
