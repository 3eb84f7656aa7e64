// Package timeline computes the day-based interval layout for a trip's
// timetable: which calendar day each activity, accommodation stay, and
// macroplan belongs to, and which column (track) each activity renders in
// when time ranges overlap within a day — the same problem a calendar UI's
// day view solves.
//
// Everything here is pure, synchronous computation over immutable input
// snapshots. Callers re-run it in full whenever the underlying records
// change; identical inputs always produce structurally identical output.
package timeline

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lwestin/daytrip/internal/domain"
)

// TrackSpan is the 1-based inclusive range of tracks an activity occupies
// within its day. Start is the track the assigner placed it on; End is
// widened rightward by the expansion pass when the neighbouring tracks are
// free for its whole time range.
type TrackSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// AccommodationDisplay is how a stay is presented on one day's row.
type AccommodationDisplay string

const (
	DisplayCheckIn  AccommodationDisplay = "check-in"
	DisplayMidStay  AccommodationDisplay = "mid-stay"
	DisplayCheckOut AccommodationDisplay = "check-out"
)

// DayAccommodation is an accommodation listed on a single day together with
// its display mode for that day.
type DayAccommodation struct {
	Accommodation domain.Accommodation `json:"accommodation"`
	Display       AccommodationDisplay `json:"display"`
}

// DayGroup is the derived record of everything touching one calendar day of
// the trip. It is recomputed from scratch on every call and never persisted.
type DayGroup struct {
	// Start is the zoned start of the day.
	Start time.Time `json:"startDateTime"`
	// Columns is the number of grid tracks the day needs: the maximum
	// number of simultaneously overlapping activities, floored at 1 so the
	// grid template stays well-formed on empty days.
	Columns int `json:"columns"`
	// Activities holds the day's activities sorted by (start, end)
	// ascending, so earlier and shorter events claim low tracks first.
	Activities []domain.Activity `json:"activities"`
	// ActivityTracks maps each activity to its track span.
	ActivityTracks map[uuid.UUID]TrackSpan `json:"activityColumnIndexMap"`
	// Accommodations lists stays touching the day with their display mode.
	Accommodations []DayAccommodation `json:"accommodations"`
	// Macroplans lists plans that cover the entire day.
	Macroplans []domain.Macroplan `json:"macroplans"`
}

// GroupActivitiesByDays partitions the trip's range into calendar days in
// the trip's time zone and buckets every record into the day(s) it touches.
// A trip spanning N whole days always yields exactly N groups; a zero or
// negative-length trip yields an empty slice.
//
// Activities are bucketed by full containment: an activity whose span
// crosses a day boundary is listed on no day at all. The write path rejects
// such activities, so this only matters for dirty pre-existing data.
func GroupActivitiesByDays(trip domain.Trip, activities []domain.Activity, macroplans []domain.Macroplan, accommodations []domain.Accommodation) []DayGroup {
	days := DayCount(trip)
	if days <= 0 {
		return []DayGroup{}
	}

	loc := trip.Location()
	groups := make([]DayGroup, 0, days)
	for d := 0; d < days; d++ {
		start := dayStartAt(trip, loc, d)
		from := start.UnixMilli()
		to := dayStartAt(trip, loc, d+1).UnixMilli()

		var acts []domain.Activity
		for _, a := range activities {
			if from <= a.TimestampStart && a.TimestampEnd <= to {
				acts = append(acts, a)
			}
		}
		sort.SliceStable(acts, func(i, j int) bool {
			if acts[i].TimestampStart != acts[j].TimestampStart {
				return acts[i].TimestampStart < acts[j].TimestampStart
			}
			return acts[i].TimestampEnd < acts[j].TimestampEnd
		})

		tracks, columns := assignTracks(acts)
		g := DayGroup{
			Start:          start,
			Columns:        columns,
			Activities:     acts,
			ActivityTracks: tracks,
		}

		for _, m := range macroplans {
			// A macroplan is listed only on days it covers completely.
			if m.TimestampStart <= from && to <= m.TimestampEnd {
				g.Macroplans = append(g.Macroplans, m)
			}
		}
		for _, acc := range accommodations {
			if display, ok := classifyStay(acc, from, to); ok {
				g.Accommodations = append(g.Accommodations, DayAccommodation{Accommodation: acc, Display: display})
			}
		}

		groups = append(groups, g)
	}
	return groups
}

// classifyStay decides how an accommodation relates to one day. The three
// cases are checked in order; check-in wins for a single-day stay that both
// checks in and out on the same day.
func classifyStay(acc domain.Accommodation, dayStart, dayEnd int64) (AccommodationDisplay, bool) {
	switch {
	case dayStart <= acc.TimestampCheckIn && acc.TimestampCheckIn <= dayEnd:
		return DisplayCheckIn, true
	case acc.TimestampCheckIn <= dayStart && acc.TimestampCheckOut >= dayEnd:
		return DisplayMidStay, true
	case dayStart <= acc.TimestampCheckOut && acc.TimestampCheckOut <= dayEnd:
		return DisplayCheckOut, true
	}
	return "", false
}
