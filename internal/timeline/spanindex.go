package timeline

import (
	"time"

	"github.com/lwestin/daytrip/internal/domain"
)

const minuteMs = int64(time.Minute / time.Millisecond)

// SpanDays locates a multi-day record in a timetable header lane.
// Start and End are 1-based trip day indexes. StartColumn and EndColumn
// address the two half-day columns of the accommodation lane: an
// accommodation starting mid-trip begins in the second half of its check-in
// day (StartColumn 2) and ends in the first half of its check-out day
// (EndColumn 1), except at the trip edges where it runs to the lane border.
type SpanDays struct {
	Start       int `json:"start"`
	End         int `json:"end"`
	StartColumn int `json:"startColumn"`
	EndColumn   int `json:"endColumn"`
}

// AccommodationIndex is one accommodation's position in the header lane.
type AccommodationIndex struct {
	Accommodation domain.Accommodation `json:"accommodation"`
	Day           SpanDays             `json:"day"`
}

// MacroplanIndex is one macroplan's position in the macroplan lane.
type MacroplanIndex struct {
	Macroplan domain.Macroplan `json:"macroplan"`
	Day       SpanDays         `json:"day"`
}

// AccommodationIndexes computes, for each accommodation, the trip days its
// stay spans and the half-day columns it starts and ends in. Returns an
// empty slice for a zero-day trip.
func AccommodationIndexes(trip domain.Trip, accommodations []domain.Accommodation) []AccommodationIndex {
	days := DayCount(trip)
	if days <= 0 {
		return []AccommodationIndex{}
	}

	loc := trip.Location()
	out := make([]AccommodationIndex, 0, len(accommodations))
	for _, acc := range accommodations {
		span := SpanDays{
			Start:       dayIndexOf(trip, loc, days, acc.TimestampCheckIn),
			End:         dayIndexOf(trip, loc, days, acc.TimestampCheckOut),
			StartColumn: 2,
			EndColumn:   1,
		}
		if span.Start == 1 {
			span.StartColumn = 1
		}
		if span.End == days {
			span.EndColumn = 2
		}
		out = append(out, AccommodationIndex{Accommodation: acc, Day: span})
	}
	return out
}

// MacroplanIndexes computes each macroplan's start and end trip days. The
// macroplan lane has a single column per day, so both columns are constant.
// TimestampEnd is exclusive; the end day is taken one minute before it.
func MacroplanIndexes(trip domain.Trip, macroplans []domain.Macroplan) []MacroplanIndex {
	days := DayCount(trip)
	if days <= 0 {
		return []MacroplanIndex{}
	}

	loc := trip.Location()
	out := make([]MacroplanIndex, 0, len(macroplans))
	for _, m := range macroplans {
		span := SpanDays{
			Start:       dayIndexOf(trip, loc, days, m.TimestampStart),
			End:         dayIndexOf(trip, loc, days, m.TimestampEnd-minuteMs),
			StartColumn: 1,
			EndColumn:   1,
		}
		out = append(out, MacroplanIndex{Macroplan: m, Day: span})
	}
	return out
}

// dayIndexOf returns the 1-based trip day containing ts, clamped into
// [1, days] so out-of-range records still land on a real day.
func dayIndexOf(trip domain.Trip, loc *time.Location, days int, ts int64) int {
	for d := 0; d < days; d++ {
		if ts < dayStartAt(trip, loc, d+1).UnixMilli() {
			return d + 1
		}
	}
	return days
}
