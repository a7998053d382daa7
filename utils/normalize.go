// File: turfbook/utils/normalize.go
// Normalization of heterogeneous persisted document shapes into the
// canonical model types. Historical bookings were written by several UI
// generations and disagree on field names (start vs startISO vs startAt,
// amount vs price, ...); everything funnels through here at the persistence
// boundary so the core only ever sees one shape.
package utils

import (
	"fmt"
	"time"

	"turfbook/models"
)

var bookingStartKeys = []string{"start", "startISO", "startAt", "start_time", "startTimestamp", "startAtISO"}
var bookingEndKeys = []string{"end", "endISO", "endAt", "end_time", "endTimestamp", "endAtISO"}

// BookingFromDoc builds a canonical Booking from a raw document.
func BookingFromDoc(id string, data map[string]interface{}) models.Booking {
	b := models.Booking{
		ID:        id,
		Court:     strField(data, "court", "courtId", "court_id"),
		Date:      strField(data, "date", "dateISO"),
		SlotID:    strField(data, "slotId", "slot", "slot_id", "slotIdString"),
		SlotLabel: strField(data, "slotLabel", "slot_label", "label"),
		Amount:    numField(data, "amount", "price"),
		Discount:  numField(data, "discount"),
		Coupon:    strField(data, "coupon"),
		Status:    strField(data, "status"),
		UserName:  strField(data, "userName", "name"),
		Phone:     strField(data, "phone"),
		Notes:     strField(data, "notes"),

		ConfirmedBy:           strField(data, "confirmedBy"),
		CancelledBy:           strField(data, "cancelledBy"),
		ConvertedFromWishlist: strField(data, "convertedFromWishlist"),
	}
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}
	if t := timeField(data, bookingStartKeys...); t != nil {
		b.Start = *t
	}
	if t := timeField(data, bookingEndKeys...); t != nil {
		b.End = *t
	}
	if t := timeField(data, "createdAt", "created_at"); t != nil {
		b.CreatedAt = *t
	}
	b.ConfirmedAt = timeField(data, "confirmedAt")
	b.CancelledAt = timeField(data, "cancelledAt")
	return b
}

// WishlistFromDoc builds a canonical WishlistEntry from a raw document.
func WishlistFromDoc(id string, data map[string]interface{}) models.WishlistEntry {
	w := models.WishlistEntry{
		ID:        id,
		Date:      strField(data, "date", "dateISO"),
		Court:     strField(data, "court", "courtId", "court_id"),
		SlotID:    strField(data, "slotId", "slot", "slot_id"),
		SlotLabel: strField(data, "slotLabel", "slot_label", "label"),
		UserName:  strField(data, "userName", "name"),
		Phone:     strField(data, "phone"),
		Notes:     strField(data, "notes"),
		Coupon:    strField(data, "coupon"),
		Amount:    numField(data, "amount", "price"),
		Status:    strField(data, "status"),

		ConvertedToBookingID: strField(data, "convertedToBookingId"),
	}
	if w.Status == "" {
		w.Status = models.WishlistStatusOpen
	}
	if t := timeField(data, "createdAt", "created_at"); t != nil {
		w.CreatedAt = *t
	}
	w.ConvertedAt = timeField(data, "convertedAt")
	return w
}

func strField(data map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		v, ok := data[k]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			if s != "" {
				return s
			}
		default:
			return fmt.Sprintf("%v", v)
		}
	}
	return ""
}

func numField(data map[string]interface{}, keys ...string) float64 {
	for _, k := range keys {
		v, ok := data[k]
		if !ok || v == nil {
			continue
		}
		if n, ok := numeric(v); ok {
			return n
		}
	}
	return 0
}

func timeField(data map[string]interface{}, keys ...string) *time.Time {
	for _, k := range keys {
		v, ok := data[k]
		if !ok || v == nil {
			continue
		}
		if t := ParseInstant(v); t != nil {
			return t
		}
	}
	return nil
}
