package timeline

import (
	"time"

	"github.com/lwestin/daytrip/internal/domain"
)

// maxTripDays caps day iteration so a corrupt trip range cannot spin the
// bucketer. Real trips are at most a few weeks long.
const maxTripDays = 1000

// overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. An event ending exactly when another starts does
// not overlap it, so back-to-back scheduling never claims an extra track.
func overlaps(aStart, aEnd, bStart, bEnd int64) bool {
	return aStart < bEnd && bStart < aEnd
}

// dayStartAt returns the zoned start of trip day d (0-based). AddDate keeps
// the wall clock, so day boundaries stay at local midnight across DST
// transitions instead of drifting by an hour.
func dayStartAt(trip domain.Trip, loc *time.Location, d int) time.Time {
	return time.UnixMilli(trip.TimestampStart).In(loc).AddDate(0, 0, d)
}

// DayCount returns the number of whole calendar days the trip spans in its
// own time zone. A trailing partial day is dropped; a trip whose end is not
// after its start has zero days.
func DayCount(trip domain.Trip) int {
	loc := trip.Location()
	for d := 0; d < maxTripDays; d++ {
		if dayStartAt(trip, loc, d+1).UnixMilli() > trip.TimestampEnd {
			return d
		}
	}
	return maxTripDays
}

// WithinOneDay reports whether the half-open range [startMs, endMs) lies
// entirely inside a single calendar day of the trip. The write path uses
// this to reject activities the bucketer would otherwise drop.
func WithinOneDay(trip domain.Trip, startMs, endMs int64) bool {
	days := DayCount(trip)
	loc := trip.Location()
	for d := 0; d < days; d++ {
		from := dayStartAt(trip, loc, d).UnixMilli()
		to := dayStartAt(trip, loc, d+1).UnixMilli()
		if from <= startMs && endMs <= to {
			return true
		}
	}
	return false
}
