package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfbook/models"
	bookingSvc "turfbook/services/booking"
)

// stubBookingService returns canned results so the tests exercise only the
// HTTP mapping.
type stubBookingService struct {
	slots    []models.AnnotatedSlot
	bookings []models.Booking
	booking  *models.Booking
	entry    *models.WishlistEntry
	err      error
}

func (s *stubBookingService) ListSlots(context.Context, string, string) ([]models.AnnotatedSlot, error) {
	return s.slots, s.err
}
func (s *stubBookingService) CreateBooking(context.Context, bookingSvc.CreateBookingRequest) ([]models.Booking, error) {
	return s.bookings, s.err
}
func (s *stubBookingService) GetBooking(context.Context, string) (*models.Booking, error) {
	return s.booking, s.err
}
func (s *stubBookingService) ListBookings(context.Context, models.BookingFilter) ([]models.Booking, error) {
	return s.bookings, s.err
}
func (s *stubBookingService) ListBookingsRange(context.Context, string, string, string) ([]models.Booking, error) {
	return s.bookings, s.err
}
func (s *stubBookingService) ConfirmBooking(context.Context, string, string) (*models.Booking, error) {
	return s.booking, s.err
}
func (s *stubBookingService) CancelBooking(context.Context, string, string) (*models.Booking, error) {
	return s.booking, s.err
}
func (s *stubBookingService) DeleteBooking(context.Context, string) error { return s.err }
func (s *stubBookingService) DeleteAllBookings(context.Context, string) (int, error) {
	return len(s.bookings), s.err
}
func (s *stubBookingService) JoinWaitlist(context.Context, bookingSvc.WaitlistRequest) (*models.WishlistEntry, error) {
	return s.entry, s.err
}
func (s *stubBookingService) ListWaitlist(context.Context, models.WishlistFilter) ([]models.WishlistEntry, error) {
	return nil, s.err
}
func (s *stubBookingService) DeleteWaitlistEntry(context.Context, string) error { return s.err }
func (s *stubBookingService) ConvertWaitlistEntry(context.Context, string) (string, error) {
	return "bk-1", s.err
}

func perform(hb *HandlerBundle, method, path, body string, register func(*gin.Engine, *HandlerBundle)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r, hb)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		hb := &HandlerBundle{Bookings: &stubBookingService{
			bookings: []models.Booking{{ID: "bk-1", Court: "5A", Status: models.BookingStatusPending}},
		}}
		w := perform(hb, http.MethodPost, "/api/bookings",
			`{"court":"5A","date":"2026-03-14","slotId":"1800-1900","userName":"Asha"}`,
			func(r *gin.Engine, hb *HandlerBundle) { r.POST("/api/bookings", hb.CreateBookingHandler) })
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "bk-1")
	})

	t.Run("missing fields are a bad request", func(t *testing.T) {
		hb := &HandlerBundle{Bookings: &stubBookingService{}}
		w := perform(hb, http.MethodPost, "/api/bookings", `{"court":"5A"}`,
			func(r *gin.Engine, hb *HandlerBundle) { r.POST("/api/bookings", hb.CreateBookingHandler) })
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("conflict maps to 409", func(t *testing.T) {
		hb := &HandlerBundle{Bookings: &stubBookingService{err: bookingSvc.NewConflictError("slot is no longer available")}}
		w := perform(hb, http.MethodPost, "/api/bookings",
			`{"court":"5A","date":"2026-03-14","slotId":"1800-1900","userName":"Asha"}`,
			func(r *gin.Engine, hb *HandlerBundle) { r.POST("/api/bookings", hb.CreateBookingHandler) })
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestErrorMapping(t *testing.T) {
	register := func(r *gin.Engine, hb *HandlerBundle) {
		r.GET("/api/bookings/:id", hb.GetBookingHandler)
	}
	cases := []struct {
		err  error
		code int
	}{
		{bookingSvc.NewNotFoundError("no such booking"), http.StatusNotFound},
		{bookingSvc.NewConflictError("nope"), http.StatusConflict},
		{bookingSvc.NewServiceUnavailableError("endpoint down", nil), http.StatusServiceUnavailable},
		{bookingSvc.NewPersistenceError("store broke", nil), http.StatusBadGateway},
	}
	for _, tc := range cases {
		hb := &HandlerBundle{Bookings: &stubBookingService{err: tc.err}}
		w := perform(hb, http.MethodGet, "/api/bookings/bk-1", "", register)
		assert.Equal(t, tc.code, w.Code, "error %v", tc.err)
	}
}

func TestGetSlotsHandler(t *testing.T) {
	register := func(r *gin.Engine, hb *HandlerBundle) { r.GET("/api/slots", hb.GetSlotsHandler) }

	t.Run("court is required", func(t *testing.T) {
		hb := &HandlerBundle{Bookings: &stubBookingService{}}
		w := perform(hb, http.MethodGet, "/api/slots?date=2026-03-14", "", register)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("annotated slots come back", func(t *testing.T) {
		hb := &HandlerBundle{Bookings: &stubBookingService{
			slots: []models.AnnotatedSlot{{SlotID: "1800-1900", Bookable: true, Price: 1800}},
		}}
		w := perform(hb, http.MethodGet, "/api/slots?date=2026-03-14&court=5A", "", register)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "1800-1900")
	})
}

func TestConvertWaitlistEntryHandler(t *testing.T) {
	hb := &HandlerBundle{Bookings: &stubBookingService{}}
	w := perform(hb, http.MethodPost, "/api/waitlist/wl-1/convert", "", func(r *gin.Engine, hb *HandlerBundle) {
		r.POST("/api/waitlist/:id/convert", hb.ConvertWaitlistEntryHandler)
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bk-1")
}
