package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RemoteConverter promotes a waitlist entry through an external callable
// endpoint that owns the conversion transaction.
type RemoteConverter interface {
	Convert(ctx context.Context, wishlistID string) (string, error)
}

// CallableConverter speaks the HTTPS-callable envelope: a JSON POST of
// {"data": {...}} answered by {"result": {...}} on success or
// {"error": {"message": ...}} on failure.
type CallableConverter struct {
	URL    string
	Client *http.Client
}

func NewCallableConverter(url string) *CallableConverter {
	return &CallableConverter{
		URL:    url,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *CallableConverter) Convert(ctx context.Context, wishlistID string) (string, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"data": map[string]string{"wishlistId": wishlistID},
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", NewServiceUnavailableError("conversion endpoint unreachable", err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Result struct {
			BookingID string `json:"bookingId"`
		} `json:"result"`
		Error struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", NewServiceUnavailableError("conversion endpoint returned malformed response", err)
	}
	switch {
	case resp.StatusCode == http.StatusOK && envelope.Result.BookingID != "":
		return envelope.Result.BookingID, nil
	case resp.StatusCode == http.StatusConflict || envelope.Error.Status == "ALREADY_EXISTS":
		return "", NewConflictError(nonEmpty(envelope.Error.Message, "slot already taken"))
	case resp.StatusCode == http.StatusNotFound || envelope.Error.Status == "NOT_FOUND":
		return "", NewNotFoundError(nonEmpty(envelope.Error.Message, "wishlist entry not found"))
	default:
		return "", NewServiceUnavailableError(
			fmt.Sprintf("conversion endpoint failed with status %d", resp.StatusCode), nil)
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
