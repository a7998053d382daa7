package booking

import (
	"time"

	"turfbook/models"
)

// GenerateSlots walks the business day from the opening hour in strides of
// duration+buffer and emits every slot that ends at or before closing time.
// A slot whose end would spill past the close hour is dropped along with
// everything after it.
func GenerateSlots(dateISO string, hours models.Hours, durationMins, bufferMins int) []models.Slot {
	day, err := time.ParseInLocation("2006-01-02", dateISO, time.UTC)
	if err != nil {
		return nil
	}
	if durationMins <= 0 {
		durationMins = 60
	}
	if bufferMins < 0 {
		bufferMins = 0
	}
	open := day.Add(time.Duration(hours.Open) * time.Hour)
	closing := day.Add(time.Duration(hours.Close) * time.Hour)

	var slots []models.Slot
	dur := time.Duration(durationMins) * time.Minute
	stride := dur + time.Duration(bufferMins)*time.Minute
	for start := open; ; start = start.Add(stride) {
		end := start.Add(dur)
		if end.After(closing) {
			break
		}
		slots = append(slots, models.Slot{Start: start, End: end})
	}
	return slots
}

// SlotByID finds the generated slot whose id matches, e.g. "1800-1900".
func SlotByID(slots []models.Slot, slotID string) (models.Slot, bool) {
	for _, s := range slots {
		if s.SlotID() == slotID {
			return s, true
		}
	}
	return models.Slot{}, false
}
