// File: turfbook/utils/timeparse.go
// Tolerant parsing for the many timestamp and slot-label shapes that have
// accumulated in historical booking documents. Every function here is total:
// unparseable input yields a zero value, never an error or a panic.
package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"turfbook/models"
)

// rangeBase anchors clock-only parses on a fixed calendar day.
var rangeBase = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 3:04PM",
	"2006-01-02 3PM",
	"2006-01-02",
}

// ParseInstant converts any accepted timestamp representation into a
// canonical instant: time.Time values, {seconds, nanoseconds} maps, numeric
// epochs (seconds or milliseconds by digit count), and ISO-ish strings.
// Returns nil when the value cannot be interpreted.
func ParseInstant(v interface{}) *time.Time {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		if t.IsZero() {
			return nil
		}
		return &t
	case *time.Time:
		if t == nil || t.IsZero() {
			return nil
		}
		return t
	case map[string]interface{}:
		secs, ok := numeric(t["seconds"])
		if !ok {
			return nil
		}
		nanos, _ := numeric(t["nanoseconds"])
		out := time.Unix(int64(secs), int64(nanos)).UTC()
		return &out
	case float64:
		return epochToTime(t)
	case int:
		return epochToTime(float64(t))
	case int64:
		return epochToTime(float64(t))
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		for _, layout := range stringLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return &parsed
			}
		}
		// numeric string epochs show up in exports
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return epochToTime(f)
		}
		return nil
	default:
		return nil
	}
}

func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// epochToTime disambiguates seconds from milliseconds by digit count:
// up to 10 digits is seconds, anything longer is milliseconds.
func epochToTime(f float64) *time.Time {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	whole := int64(f)
	var out time.Time
	if len(strconv.FormatInt(whole, 10)) <= 10 {
		out = time.Unix(whole, 0).UTC()
	} else {
		out = time.UnixMilli(whole).UTC()
	}
	return &out
}

var (
	clockRe      = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(AM|PM)?$`)
	meridiemRe   = regexp.MustCompile(`(?i)\s*(am|pm)\s*`)
	hhmmRe       = regexp.MustCompile(`^\d{1,2}:\d{2}(AM|PM)?$`)
	fourDigitRe  = regexp.MustCompile(`^\d{4}$`)
	threeDigitRe = regexp.MustCompile(`^\d{3}$`)
	bareHourRe   = regexp.MustCompile(`^\d{1,2}$`)
	hourAmPmRe   = regexp.MustCompile(`^(\d{1,2})(AM|PM)$`)
	rangeSepRe   = regexp.MustCompile(`(?i)\s*(?:-|–|—|\bto\b)\s*`)
	timeTokenRe  = regexp.MustCompile(`\d{3,4}|\d{1,2}(?::\d{2})?\s?(?:AM|PM|am|pm)?`)
	digitsRe     = regexp.MustCompile(`\d{3,4}`)
)

// NormalizeTimeToken rewrites a raw time token into one of the canonical
// forms HH:MM, H:MM, HH:MM(AM|PM) or HH(AM|PM). Returns "" when the token
// is not time-like.
func NormalizeTimeToken(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	token = meridiemRe.ReplaceAllStringFunc(token, func(m string) string {
		return strings.ToUpper(strings.TrimSpace(m))
	})
	switch {
	case hhmmRe.MatchString(strings.ToUpper(token)):
		return strings.ToUpper(token)
	case fourDigitRe.MatchString(token):
		return token[:2] + ":" + token[2:]
	case threeDigitRe.MatchString(token):
		return token[:1] + ":" + token[1:]
	case bareHourRe.MatchString(token):
		if len(token) == 1 {
			token = "0" + token
		}
		return token + ":00"
	}
	if m := hourAmPmRe.FindStringSubmatch(strings.ToUpper(token)); m != nil {
		h := m[1]
		if len(h) == 1 {
			h = "0" + h
		}
		return h + m[2]
	}
	if strings.Contains(token, ":") {
		parts := strings.SplitN(token, ":", 3)
		h := onlyDigits(parts[0])
		mm := onlyDigits(parts[1])
		if h != "" && mm != "" {
			if len(h) == 1 {
				h = "0" + h
			}
			if len(mm) == 1 {
				mm = "0" + mm
			}
			return h + ":" + mm
		}
	}
	return ""
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseClock turns a normalized token into a clock time on the range base day.
func parseClock(token string) (time.Time, bool) {
	m := clockRe.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(token)))
	if m == nil {
		return time.Time{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	switch m[3] {
	case "PM":
		if hour > 12 {
			return time.Time{}, false
		}
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour > 12 {
			return time.Time{}, false
		}
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, false
	}
	return rangeBase.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), true
}

// ParseRangeFromLabel splits a labelled range such as "6:00 PM – 7:00 PM" or
// "1800-1900" on dash/en-dash/em-dash/"to" and normalizes each side.
func ParseRangeFromLabel(label string) (time.Time, time.Time, bool) {
	parts := rangeSepRe.Split(label, -1)
	if len(parts) < 2 {
		return time.Time{}, time.Time{}, false
	}
	ln := NormalizeTimeToken(parts[0])
	rn := NormalizeTimeToken(parts[1])
	if ln == "" || rn == "" {
		return time.Time{}, time.Time{}, false
	}
	start, okS := parseClock(ln)
	end, okE := parseClock(rn)
	if !okS || !okE {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// DeriveRangeFromSlotText extracts a start/end pair from free-form slot text
// such as "6:00 PM – 7:00 PM", "1800-1900" or "0600_0700". It tries the
// labelled-range parse first, then falls back to scanning for any two
// time-like substrings in left-to-right order.
func DeriveRangeFromSlotText(text string) (time.Time, time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, time.Time{}, false
	}

	if regexp.MustCompile(`(?i)[ap]m|:|\bto\b`).MatchString(s) {
		if start, end, ok := ParseRangeFromLabel(s); ok {
			return start, end, true
		}
	}

	for _, tok := range regexp.MustCompile(`[_\s|/]+`).Split(s, -1) {
		if !strings.Contains(tok, "-") {
			continue
		}
		halves := strings.SplitN(tok, "-", 2)
		ln := NormalizeTimeToken(halves[0])
		rn := NormalizeTimeToken(halves[1])
		if ln == "" || rn == "" {
			continue
		}
		start, okS := parseClock(ln)
		end, okE := parseClock(rn)
		if okS && okE {
			return start, end, true
		}
	}

	if found := timeTokenRe.FindAllString(s, -1); len(found) >= 2 {
		ln := NormalizeTimeToken(found[0])
		rn := NormalizeTimeToken(found[1])
		if ln != "" && rn != "" {
			start, okS := parseClock(ln)
			end, okE := parseClock(rn)
			if okS && okE {
				return start, end, true
			}
		}
	}

	if digs := digitsRe.FindAllString(s, -1); len(digs) >= 2 {
		ln := NormalizeTimeToken(digs[0])
		rn := NormalizeTimeToken(digs[1])
		if ln != "" && rn != "" {
			start, okS := parseClock(ln)
			end, okE := parseClock(rn)
			if okS && okE {
				return start, end, true
			}
		}
	}

	return time.Time{}, time.Time{}, false
}

// AnchorRange rebases a clock-only range onto the given calendar date.
func AnchorRange(dateISO string, start, end time.Time) (time.Time, time.Time, bool) {
	day, err := time.Parse("2006-01-02", dateISO)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	s := day.Add(start.Sub(rangeBase))
	e := day.Add(end.Sub(rangeBase))
	return s, e, true
}

// Format12Hour renders an instant on the 12-hour clock, e.g. "6:00 PM".
func Format12Hour(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatRange12h renders a range the way the admin console displays it.
func FormatRange12h(start, end time.Time) string {
	return Format12Hour(start) + " – " + Format12Hour(end)
}

// DisplayRangeForBooking renders the booking's time range for display:
// canonical start/end first, then whatever can be derived from the slot
// label or slot id. Falls back to an em-dash placeholder.
func DisplayRangeForBooking(b models.Booking) string {
	switch {
	case b.HasTimeRange():
		return FormatRange12h(b.Start, b.End)
	case !b.Start.IsZero():
		return Format12Hour(b.Start)
	case !b.End.IsZero():
		return Format12Hour(b.End)
	}

	for _, text := range []string{b.SlotLabel, b.SlotID} {
		if text == "" {
			continue
		}
		if start, end, ok := DeriveRangeFromSlotText(text); ok {
			return FormatRange12h(start, end)
		}
	}

	GetLogger().Warn("Time parse failed for booking",
		zap.String("id", b.ID),
		zap.String("slotId", b.SlotID),
		zap.String("slotLabel", b.SlotLabel))
	return "—"
}
