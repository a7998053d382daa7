package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfbook/models"
)

func TestGenerateSlots(t *testing.T) {
	t.Run("full business day", func(t *testing.T) {
		slots := GenerateSlots("2026-03-14", models.Hours{Open: 6, Close: 23}, 60, 0)
		require.Len(t, slots, 17)
		assert.Equal(t, "0600-0700", slots[0].SlotID())
		assert.Equal(t, "2200-2300", slots[16].SlotID())
	})

	t.Run("buffer stretches the stride", func(t *testing.T) {
		slots := GenerateSlots("2026-03-14", models.Hours{Open: 6, Close: 9}, 60, 30)
		require.Len(t, slots, 2)
		assert.Equal(t, "0600-0700", slots[0].SlotID())
		assert.Equal(t, "0730-0830", slots[1].SlotID())
	})

	t.Run("slot spilling past close is dropped", func(t *testing.T) {
		// 09:00-10:00 fits; the next start would be 10:30 and end past 11:00.
		slots := GenerateSlots("2026-03-14", models.Hours{Open: 9, Close: 11}, 60, 30)
		require.Len(t, slots, 1)
		assert.Equal(t, "0900-1000", slots[0].SlotID())
	})

	t.Run("slot ending exactly at close is kept", func(t *testing.T) {
		slots := GenerateSlots("2026-03-14", models.Hours{Open: 21, Close: 23}, 60, 0)
		require.Len(t, slots, 2)
		assert.Equal(t, "2200-2300", slots[1].SlotID())
	})

	t.Run("invalid date yields nothing", func(t *testing.T) {
		assert.Nil(t, GenerateSlots("14-03-2026", models.Hours{Open: 6, Close: 23}, 60, 0))
	})
}

func TestSlotByID(t *testing.T) {
	slots := GenerateSlots("2026-03-14", models.Hours{Open: 6, Close: 23}, 60, 0)

	slot, ok := SlotByID(slots, "1800-1900")
	require.True(t, ok)
	assert.Equal(t, 18, slot.Start.Hour())

	_, ok = SlotByID(slots, "0530-0630")
	assert.False(t, ok)
}
