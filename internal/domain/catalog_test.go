package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerDayCatalog_GeneratesInclusiveHourSlots(t *testing.T) {
	c := NewPerDayCatalog([]DaySchedule{
		{Date: "2026-09-07", StartHour: 9, EndHour: 17},
	})

	slots := c.SlotsFor("2026-09-07")
	require.Len(t, slots, 9)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "10:00", slots[1])
	assert.Equal(t, "17:00", slots[8])
}

func TestNewPerDayCatalog_InvalidHoursFallBackToDefaults(t *testing.T) {
	c := NewPerDayCatalog([]DaySchedule{
		{Date: "2026-09-07", StartHour: -3, EndHour: 99},
	})

	slots := c.SlotsFor("2026-09-07")
	require.Len(t, slots, 9)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:00", slots[len(slots)-1])
}

func TestNewPerDayCatalog_SkipsMalformedDatesAndSortsDays(t *testing.T) {
	c := NewPerDayCatalog([]DaySchedule{
		{Date: "2026-09-09", StartHour: 10, EndHour: 12},
		{Date: "not-a-date", StartHour: 9, EndHour: 17},
		{Date: "2026-09-07", StartHour: 9, EndHour: 11},
	})

	assert.Equal(t, []string{"2026-09-07", "2026-09-09"}, c.DaysConfigured())
	assert.False(t, c.IsConfiguredDate("not-a-date"))

	minDate, maxDate := c.Bounds()
	assert.Equal(t, "2026-09-07", minDate)
	assert.Equal(t, "2026-09-09", maxDate)
}

func TestNewPerDayCatalog_EmptyConfigurationFailsSafe(t *testing.T) {
	c := NewPerDayCatalog(nil)

	// пустая конфигурация подменяется дефолтным окном, а не паникой
	require.NotEmpty(t, c.DaysConfigured())
	today := time.Now().Format(DateFormat)
	assert.True(t, c.IsConfiguredDate(today))
	assert.Len(t, c.SlotsFor(today), 9)
}

func TestNewWindowCatalog_SharesSlotListAcrossWindow(t *testing.T) {
	slots := []string{"10:00", "12:30", "15:00"}
	c, err := NewWindowCatalog("2026-09-07", "2026-09-09", slots)
	require.NoError(t, err)

	require.Len(t, c.DaysConfigured(), 3)
	for _, date := range c.DaysConfigured() {
		assert.Equal(t, slots, c.SlotsFor(date))
	}
	assert.Nil(t, c.SlotsFor("2026-09-10"))
}

func TestNewWindowCatalog_RejectsInvertedBounds(t *testing.T) {
	_, err := NewWindowCatalog("2026-09-09", "2026-09-07", nil)
	assert.Error(t, err)
}

func TestNewRollingWindowCatalog_BoundsFollowNow(t *testing.T) {
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	c := NewRollingWindowCatalog(now, 3, []string{"11:00"})

	minDate, maxDate := c.Bounds()
	assert.Equal(t, "2026-09-07", minDate)
	assert.Equal(t, "2026-09-10", maxDate)
}

func TestCatalogHolder_SwapReplacesCatalog(t *testing.T) {
	first := NewPerDayCatalog([]DaySchedule{{Date: "2026-09-07", StartHour: 9, EndHour: 10}})
	second := NewPerDayCatalog([]DaySchedule{{Date: "2026-10-01", StartHour: 9, EndHour: 10}})

	holder := NewCatalogHolder(first)
	assert.True(t, holder.Get().IsConfiguredDate("2026-09-07"))

	holder.Swap(second)
	assert.False(t, holder.Get().IsConfiguredDate("2026-09-07"))
	assert.True(t, holder.Get().IsConfiguredDate("2026-10-01"))
}

func TestBackfillDate_RestoresDateFromLegacyTimestamp(t *testing.T) {
	rec := &BookingRecord{
		ID:        "1",
		TimeSlot:  "10:00",
		Email:     "jan@example.com",
		Timestamp: "2026-09-07T08:30:00Z",
	}

	require.True(t, rec.BackfillDate())
	assert.Equal(t, "2026-09-07", rec.Date)

	// повторный вызов ничего не меняет
	assert.False(t, rec.BackfillDate())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane.doe@example.com", NormalizeEmail("  Jane.Doe@Example.com "))
}
