package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"turfbook/config"
	bookingRepo "turfbook/database/repository/booking"
	wishlistRepo "turfbook/database/repository/wishlist"
	"turfbook/models"
	"turfbook/services/notification"
	"turfbook/utils"
)

const maxRepeatWeeks = 12

// DefaultBookingService implements BookingService on top of the booking and
// wishlist repositories. Site is the configuration snapshot provider and Now
// the clock; both default sensibly and exist so tests can pin them.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Wishlist wishlistRepo.WishlistRepository
	Remote   RemoteConverter
	Notifier notification.NotificationService
	Site     func() *models.SiteConfig
	Now      func() time.Time
}

func NewBookingService(
	repo bookingRepo.BookingRepository,
	wishlist wishlistRepo.WishlistRepository,
	remote RemoteConverter,
	notifier notification.NotificationService,
) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:     repo,
		Wishlist: wishlist,
		Remote:   remote,
		Notifier: notifier,
		Site:     config.Site,
		Now:      time.Now,
	}
}

func (s *DefaultBookingService) site() *models.SiteConfig {
	if s.Site != nil {
		return s.Site()
	}
	return config.Site()
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ListSlots generates the day's slot grid for a court and annotates each slot
// with its price and whether it can still be booked.
func (s *DefaultBookingService) ListSlots(ctx context.Context, dateISO, courtID string) ([]models.AnnotatedSlot, error) {
	cfg := s.site()
	cat := NewCatalog(cfg)
	if _, ok := cat.CourtByID(courtID); !ok && len(cfg.Courts) > 0 {
		return nil, NewNotFoundError(fmt.Sprintf("unknown court %q", courtID))
	}
	if _, err := time.ParseInLocation("2006-01-02", dateISO, time.UTC); err != nil {
		return nil, NewNotFoundError(fmt.Sprintf("invalid date %q", dateISO))
	}
	// A valid date can still yield an empty grid (duration longer than the
	// business window); that is an empty list, not an error.
	slots := GenerateSlots(dateISO, cfg.Hours, cat.DurationFor(courtID), cfg.BufferMins)
	if len(slots) == 0 {
		return []models.AnnotatedSlot{}, nil
	}

	existing, err := s.Repo.Query(ctx, models.BookingFilter{Date: dateISO})
	if err != nil {
		return nil, fromRepoError(err, "loading bookings for availability")
	}

	engine := NewAvailabilityEngine(cat)
	out := make([]models.AnnotatedSlot, 0, len(slots))
	for _, slot := range slots {
		out = append(out, models.AnnotatedSlot{
			Slot:     slot,
			SlotID:   slot.SlotID(),
			Bookable: engine.IsBookable(slot, courtID, existing),
			Price:    cat.PriceFor(courtID, slot.Start),
		})
	}
	return out, nil
}

// CreateBooking places a pending booking for the requested slot, and for the
// same slot on the following weeks when RepeatWeeks asks for it. The first
// occurrence must succeed; later occurrences that have since filled up are
// skipped with a warning and left out of the result.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) ([]models.Booking, error) {
	cfg := s.site()
	cat := NewCatalog(cfg)
	engine := NewAvailabilityEngine(cat)

	if _, ok := cat.CourtByID(req.Court); !ok && len(cfg.Courts) > 0 {
		return nil, NewNotFoundError(fmt.Sprintf("unknown court %q", req.Court))
	}
	firstDay, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return nil, NewNotFoundError(fmt.Sprintf("invalid date %q", req.Date))
	}

	weeks := req.RepeatWeeks
	if weeks < 1 {
		weeks = 1
	}
	if weeks > maxRepeatWeeks {
		weeks = maxRepeatWeeks
	}

	var created []models.Booking
	for i := 0; i < weeks; i++ {
		date := firstDay.AddDate(0, 0, 7*i).Format("2006-01-02")
		slots := GenerateSlots(date, cfg.Hours, cat.DurationFor(req.Court), cfg.BufferMins)
		slot, ok := SlotByID(slots, req.SlotID)
		if !ok {
			if i == 0 {
				return nil, NewNotFoundError(fmt.Sprintf("no slot %q on %s", req.SlotID, date))
			}
			continue
		}

		pricing := ApplyCoupon(cfg.Coupons, req.Coupon, cat.PriceFor(req.Court, slot.Start), s.now())
		b := &models.Booking{
			Court:     req.Court,
			Date:      date,
			SlotID:    slot.SlotID(),
			SlotLabel: utils.FormatRange12h(slot.Start, slot.End),
			Start:     slot.Start,
			End:       slot.End,
			Amount:    pricing.Amount,
			Discount:  pricing.Discount,
			Coupon:    pricing.Coupon,
			Status:    models.BookingStatusPending,
			UserName:  req.UserName,
			Phone:     req.Phone,
			Notes:     req.Notes,
		}

		id, err := s.Repo.CreateAtomic(ctx, b, engine.CheckBookable(slot, req.Court))
		if err != nil {
			if i == 0 {
				return nil, fromRepoError(err, "creating booking")
			}
			utils.GetLogger().Warn("repeat occurrence not booked",
				zap.String("date", date),
				zap.String("slotId", req.SlotID),
				zap.Error(err))
			continue
		}
		b.ID = id
		created = append(created, *b)
	}

	if s.Notifier != nil {
		for _, b := range created {
			s.Notifier.BookingPending(ctx, b)
		}
	}
	return created, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepoError(err, "loading booking")
	}
	return b, nil
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, f models.BookingFilter) ([]models.Booking, error) {
	out, err := s.Repo.Query(ctx, f)
	if err != nil {
		return nil, fromRepoError(err, "listing bookings")
	}
	return out, nil
}

func (s *DefaultBookingService) ListBookingsRange(ctx context.Context, startISO, endISO, court string) ([]models.Booking, error) {
	out, err := s.Repo.QueryRange(ctx, startISO, endISO, court)
	if err != nil {
		return nil, fromRepoError(err, "listing bookings in range")
	}
	return out, nil
}

// JoinWaitlist records an open waitlist entry for a slot, stamped with the
// catalogue price so a later conversion does not depend on the live config.
func (s *DefaultBookingService) JoinWaitlist(ctx context.Context, req WaitlistRequest) (*models.WishlistEntry, error) {
	cfg := s.site()
	cat := NewCatalog(cfg)
	if _, ok := cat.CourtByID(req.Court); !ok && len(cfg.Courts) > 0 {
		return nil, NewNotFoundError(fmt.Sprintf("unknown court %q", req.Court))
	}

	entry := &models.WishlistEntry{
		Court:     req.Court,
		Date:      req.Date,
		SlotID:    req.SlotID,
		SlotLabel: req.SlotLabel,
		UserName:  req.UserName,
		Phone:     req.Phone,
		Notes:     req.Notes,
		Status:    models.WishlistStatusOpen,
	}
	entry.Amount = cat.AmountFor(req.Court)
	if start, end, ok := utils.DeriveRangeFromSlotText(req.SlotID); ok {
		if anchored, _, ok := utils.AnchorRange(req.Date, start, end); ok {
			entry.Amount = cat.PriceFor(req.Court, anchored)
		}
	}

	id, err := s.Wishlist.Create(ctx, entry)
	if err != nil {
		return nil, fromRepoError(err, "creating waitlist entry")
	}
	entry.ID = id
	return entry, nil
}

func (s *DefaultBookingService) ListWaitlist(ctx context.Context, f models.WishlistFilter) ([]models.WishlistEntry, error) {
	out, err := s.Wishlist.Query(ctx, f)
	if err != nil {
		return nil, fromRepoError(err, "listing waitlist")
	}
	return out, nil
}

func (s *DefaultBookingService) DeleteWaitlistEntry(ctx context.Context, id string) error {
	if err := s.Wishlist.Delete(ctx, id); err != nil {
		return fromRepoError(err, "deleting waitlist entry")
	}
	return nil
}
