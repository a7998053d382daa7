package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfbook/models"
)

func clock(h, m int) time.Time {
	return time.Date(2000, time.January, 1, h, m, 0, 0, time.UTC)
}

func TestParseInstant(t *testing.T) {
	now := time.Date(2026, time.March, 14, 18, 0, 0, 0, time.UTC)

	t.Run("time value passes through", func(t *testing.T) {
		got := ParseInstant(now)
		require.NotNil(t, got)
		assert.True(t, got.Equal(now))
	})

	t.Run("seconds map", func(t *testing.T) {
		got := ParseInstant(map[string]interface{}{"seconds": float64(now.Unix()), "nanoseconds": float64(0)})
		require.NotNil(t, got)
		assert.True(t, got.Equal(now))
	})

	t.Run("epoch seconds vs milliseconds by digit count", func(t *testing.T) {
		secs := ParseInstant(float64(now.Unix()))
		require.NotNil(t, secs)
		assert.True(t, secs.Equal(now))

		millis := ParseInstant(float64(now.UnixMilli()))
		require.NotNil(t, millis)
		assert.True(t, millis.Equal(now))
	})

	t.Run("iso strings", func(t *testing.T) {
		for _, s := range []string{
			"2026-03-14T18:00:00Z",
			"2026-03-14T18:00:00",
			"2026-03-14 18:00",
		} {
			got := ParseInstant(s)
			require.NotNil(t, got, s)
			assert.True(t, got.Equal(now), s)
		}
	})

	t.Run("garbage yields nil", func(t *testing.T) {
		assert.Nil(t, ParseInstant(nil))
		assert.Nil(t, ParseInstant(""))
		assert.Nil(t, ParseInstant("next tuesday"))
		assert.Nil(t, ParseInstant(map[string]interface{}{"sec": 5}))
		assert.Nil(t, ParseInstant(-12))
	})
}

func TestNormalizeTimeToken(t *testing.T) {
	cases := map[string]string{
		"1800":    "18:00",
		"930":     "9:30",
		"6":       "06:00",
		"18":      "18:00",
		"6:00 PM": "6:00PM",
		"6pm":     "06PM",
		"09:30":   "09:30",
		"":        "",
		"court":   "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeTimeToken(in), "token %q", in)
	}
}

func TestDeriveRangeFromSlotText(t *testing.T) {
	cases := []struct {
		text       string
		start, end time.Time
	}{
		{"6:00 PM – 7:00 PM", clock(18, 0), clock(19, 0)},
		{"6:00 PM - 7:00 PM", clock(18, 0), clock(19, 0)},
		{"6pm to 7pm", clock(18, 0), clock(19, 0)},
		{"1800-1900", clock(18, 0), clock(19, 0)},
		{"0600_0700", clock(6, 0), clock(7, 0)},
		{"slot 0930 1030", clock(9, 30), clock(10, 30)},
		{"12:00 AM - 1:00 AM", clock(0, 0), clock(1, 0)},
	}
	for _, tc := range cases {
		start, end, ok := DeriveRangeFromSlotText(tc.text)
		require.True(t, ok, "text %q", tc.text)
		assert.True(t, start.Equal(tc.start), "start of %q: got %v", tc.text, start)
		assert.True(t, end.Equal(tc.end), "end of %q: got %v", tc.text, end)
	}

	_, _, ok := DeriveRangeFromSlotText("full ground")
	assert.False(t, ok)
	_, _, ok = DeriveRangeFromSlotText("")
	assert.False(t, ok)
}

func TestAnchorRange(t *testing.T) {
	start, end, ok := DeriveRangeFromSlotText("1800-1900")
	require.True(t, ok)

	s, e, ok := AnchorRange("2026-03-14", start, end)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.March, 14, 18, 0, 0, 0, time.UTC), s)
	assert.Equal(t, time.Date(2026, time.March, 14, 19, 0, 0, 0, time.UTC), e)

	_, _, ok = AnchorRange("14/03/2026", start, end)
	assert.False(t, ok)
}

func TestDisplayRangeForBooking(t *testing.T) {
	t.Run("canonical range wins", func(t *testing.T) {
		b := models.Booking{
			Start: time.Date(2026, time.March, 14, 18, 0, 0, 0, time.UTC),
			End:   time.Date(2026, time.March, 14, 19, 0, 0, 0, time.UTC),
		}
		assert.Equal(t, "6:00 PM – 7:00 PM", DisplayRangeForBooking(b))
	})

	t.Run("derived from slot id", func(t *testing.T) {
		b := models.Booking{SlotID: "1800-1900"}
		assert.Equal(t, "6:00 PM – 7:00 PM", DisplayRangeForBooking(b))
	})

	t.Run("slot label beats slot id", func(t *testing.T) {
		b := models.Booking{SlotLabel: "9:30 AM - 10:30 AM", SlotID: "1800-1900"}
		assert.Equal(t, "9:30 AM – 10:30 AM", DisplayRangeForBooking(b))
	})

	t.Run("placeholder when nothing parses", func(t *testing.T) {
		assert.Equal(t, "—", DisplayRangeForBooking(models.Booking{SlotID: "court-a"}))
	})
}
