package timeline_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwestin/daytrip/internal/domain"
	"github.com/lwestin/daytrip/internal/timeline"
)

func stay(trip domain.Trip, checkInDay int, checkInHour float64, checkOutDay int, checkOutHour float64) domain.Accommodation {
	start := time.UnixMilli(trip.TimestampStart).In(trip.Location())
	return domain.Accommodation{
		ID:                uuid.New(),
		TripID:            trip.ID,
		Name:              "Hotel",
		TimestampCheckIn:  start.AddDate(0, 0, checkInDay).Add(time.Duration(checkInHour * float64(time.Hour))).UnixMilli(),
		TimestampCheckOut: start.AddDate(0, 0, checkOutDay).Add(time.Duration(checkOutHour * float64(time.Hour))).UnixMilli(),
	}
}

func TestAccommodationIndexes_MidTripStay(t *testing.T) {
	trip := tripUTC(5)
	acc := stay(trip, 1, 15, 3, 11) // check in day 2 15:00, check out day 4 11:00

	got := timeline.AccommodationIndexes(trip, []domain.Accommodation{acc})

	require.Len(t, got, 1)
	assert.Equal(t, timeline.SpanDays{Start: 2, End: 4, StartColumn: 2, EndColumn: 1}, got[0].Day)
	assert.Equal(t, acc.ID, got[0].Accommodation.ID)
}

func TestAccommodationIndexes_TripEdgeColumns(t *testing.T) {
	trip := tripUTC(2)
	acc := stay(trip, 0, 15, 1, 11) // first day through last day

	got := timeline.AccommodationIndexes(trip, []domain.Accommodation{acc})

	require.Len(t, got, 1)
	// First-day check-in starts at the lane edge; last-day check-out runs
	// to the lane edge.
	assert.Equal(t, timeline.SpanDays{Start: 1, End: 2, StartColumn: 1, EndColumn: 2}, got[0].Day)
}

func TestAccommodationIndexes_EmptyAndZeroDay(t *testing.T) {
	assert.Empty(t, timeline.AccommodationIndexes(tripUTC(2), nil))

	trip := tripUTC(1)
	trip.TimestampEnd = trip.TimestampStart
	assert.Empty(t, timeline.AccommodationIndexes(trip, []domain.Accommodation{stay(tripUTC(2), 0, 15, 1, 11)}))
}

func TestAccommodationIndexes_OutOfRangeClamped(t *testing.T) {
	trip := tripUTC(2)
	start := time.UnixMilli(trip.TimestampStart).In(trip.Location())
	acc := domain.Accommodation{
		ID:                uuid.New(),
		TimestampCheckIn:  start.AddDate(0, 0, -3).UnixMilli(),
		TimestampCheckOut: start.AddDate(0, 0, 9).UnixMilli(),
	}

	got := timeline.AccommodationIndexes(trip, []domain.Accommodation{acc})

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Day.Start)
	assert.Equal(t, 2, got[0].Day.End)
}

func TestMacroplanIndexes_ExclusiveEnd(t *testing.T) {
	trip := tripUTC(4)
	start := time.UnixMilli(trip.TimestampStart).In(trip.Location())
	m := domain.Macroplan{
		ID:             uuid.New(),
		TripID:         trip.ID,
		Name:           "Tokyo",
		TimestampStart: start.UnixMilli(),
		TimestampEnd:   start.AddDate(0, 0, 3).UnixMilli(), // exclusive: last day is day 3
	}

	got := timeline.MacroplanIndexes(trip, []domain.Macroplan{m})

	require.Len(t, got, 1)
	assert.Equal(t, timeline.SpanDays{Start: 1, End: 3, StartColumn: 1, EndColumn: 1}, got[0].Day)
}

func TestMacroplanIndexes_SingleDayPlan(t *testing.T) {
	trip := tripUTC(3)
	start := time.UnixMilli(trip.TimestampStart).In(trip.Location())
	m := domain.Macroplan{
		ID:             uuid.New(),
		TimestampStart: start.AddDate(0, 0, 1).UnixMilli(),
		TimestampEnd:   start.AddDate(0, 0, 2).UnixMilli(),
	}

	got := timeline.MacroplanIndexes(trip, []domain.Macroplan{m})

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Day.Start)
	assert.Equal(t, 2, got[0].Day.End)
}

func TestMacroplanIndexes_OverlappingPlansKeepOwnSpans(t *testing.T) {
	trip := tripUTC(3)
	start := time.UnixMilli(trip.TimestampStart).In(trip.Location())
	a := domain.Macroplan{
		ID:             uuid.New(),
		TimestampStart: start.UnixMilli(),
		TimestampEnd:   start.AddDate(0, 0, 2).UnixMilli(),
	}
	b := domain.Macroplan{
		ID:             uuid.New(),
		TimestampStart: start.AddDate(0, 0, 1).UnixMilli(),
		TimestampEnd:   start.AddDate(0, 0, 3).UnixMilli(),
	}

	got := timeline.MacroplanIndexes(trip, []domain.Macroplan{a, b})

	require.Len(t, got, 2)
	assert.Equal(t, []int{1, 2}, []int{got[0].Day.Start, got[0].Day.End})
	assert.Equal(t, []int{2, 3}, []int{got[1].Day.Start, got[1].Day.End})
}
