package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"turfbook/config"
	"turfbook/models"
	"turfbook/utils"
)

const (
	feedKey  = "admin:notifs"
	feedSize = 200
)

// NotificationService fans booking lifecycle events out to the operator:
// an entry in the redis-backed admin feed, plus an SMS to the customer when
// an outbound relay is configured.
type NotificationService interface {
	BookingPending(ctx context.Context, b models.Booking)
	BookingConfirmed(ctx context.Context, b models.Booking)
	BookingCancelled(ctx context.Context, b models.Booking)
	WishlistConverted(ctx context.Context, entry models.WishlistEntry, bookingID string)
	Feed(ctx context.Context, limit int) ([]models.AdminNotification, error)
}

type DefaultNotificationService struct {
	Redis      *redis.Client
	HTTPClient *http.Client
}

func NewNotificationService(client *redis.Client) *DefaultNotificationService {
	return &DefaultNotificationService{
		Redis:      client,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *DefaultNotificationService) BookingPending(ctx context.Context, b models.Booking) {
	rng := utils.DisplayRangeForBooking(b)
	s.push(ctx, models.AdminNotification{
		Type:      "booking-pending",
		Title:     "New booking request",
		Body:      fmt.Sprintf("%s booked %s on %s, %s", displayName(b), b.Court, b.Date, rng),
		BookingID: b.ID,
	})
	s.sendSMS(ctx, b.Phone, fmt.Sprintf(
		"Your booking for %s on %s (%s) was received and is awaiting confirmation.",
		b.Court, b.Date, rng))
}

func (s *DefaultNotificationService) BookingConfirmed(ctx context.Context, b models.Booking) {
	rng := utils.DisplayRangeForBooking(b)
	s.push(ctx, models.AdminNotification{
		Type:      "booking-confirmed",
		Title:     "Booking confirmed",
		Body:      fmt.Sprintf("%s, %s on %s, %s", displayName(b), b.Court, b.Date, rng),
		BookingID: b.ID,
	})
	s.sendSMS(ctx, b.Phone, fmt.Sprintf(
		"Your booking for %s on %s (%s) is confirmed. See you there!",
		b.Court, b.Date, rng))
}

func (s *DefaultNotificationService) BookingCancelled(ctx context.Context, b models.Booking) {
	s.push(ctx, models.AdminNotification{
		Type:      "booking-cancelled",
		Title:     "Booking cancelled",
		Body:      fmt.Sprintf("%s, %s on %s", displayName(b), b.Court, b.Date),
		BookingID: b.ID,
	})
	s.sendSMS(ctx, b.Phone, fmt.Sprintf(
		"Your booking for %s on %s has been cancelled.", b.Court, b.Date))
}

func (s *DefaultNotificationService) WishlistConverted(ctx context.Context, entry models.WishlistEntry, bookingID string) {
	s.push(ctx, models.AdminNotification{
		Type:      "wishlist-converted",
		Title:     "Waitlist entry converted",
		Body:      fmt.Sprintf("%s moved off the waitlist for %s on %s", entry.UserName, entry.Court, entry.Date),
		BookingID: bookingID,
	})
	s.sendSMS(ctx, entry.Phone, fmt.Sprintf(
		"Good news! A slot opened up: your waitlist request for %s on %s is now a booking.",
		entry.Court, entry.Date))
}

// Feed returns the newest notifications first.
func (s *DefaultNotificationService) Feed(ctx context.Context, limit int) ([]models.AdminNotification, error) {
	if s.Redis == nil {
		return nil, nil
	}
	if limit <= 0 || limit > feedSize {
		limit = feedSize
	}
	raw, err := s.Redis.LRange(ctx, feedKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("reading notification feed: %w", err)
	}
	out := make([]models.AdminNotification, 0, len(raw))
	for _, item := range raw {
		var n models.AdminNotification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func displayName(b models.Booking) string {
	if b.UserName != "" {
		return b.UserName
	}
	return "Guest"
}

func (s *DefaultNotificationService) push(ctx context.Context, n models.AdminNotification) {
	if s.Redis == nil {
		return
	}
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()
	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	pipe := s.Redis.TxPipeline()
	pipe.LPush(ctx, feedKey, payload)
	pipe.LTrim(ctx, feedKey, 0, feedSize-1)
	if _, err := pipe.Exec(ctx); err != nil {
		utils.GetLogger().Warn("failed to push admin notification", zap.Error(err))
	}
}

// sendSMS relays the message through the configured endpoint. When the relay
// is disabled or fails, the message lands in the admin feed instead so the
// operator can follow up manually.
func (s *DefaultNotificationService) sendSMS(ctx context.Context, phone, message string) {
	if phone == "" {
		return
	}
	cfg := config.AppConfig
	if !cfg.SMSEnabled || cfg.SMSEndpoint == "" {
		s.push(ctx, models.AdminNotification{
			Type:  "sms-mock",
			Title: "SMS (not sent)",
			Body:  fmt.Sprintf("To %s: %s", phone, message),
		})
		return
	}
	body, _ := json.Marshal(map[string]string{"to": phone, "message": message})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.SMSEndpoint, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.SMSAuthHeader != "" {
		req.Header.Set("Authorization", cfg.SMSAuthHeader)
	}
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		utils.GetLogger().Warn("sms relay unreachable", zap.String("to", phone), zap.Error(err))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		utils.GetLogger().Warn("sms relay rejected message",
			zap.String("to", phone), zap.Int("status", resp.StatusCode))
	}
}
