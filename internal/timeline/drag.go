package timeline

import (
	"strconv"
	"strings"
	"time"

	"github.com/lwestin/daytrip/internal/domain"
)

// CalculateNewTimestamps converts a drop position on the timetable grid back
// into absolute timestamps: the inverse of the grid line naming in grid.go.
// gridRow is a "time-HHMM" line name and gridColumn a "day-N" (or
// "day-N-col-K") line name. The activity keeps its original duration.
//
// Unparseable tokens fall back to day 1 at midnight instead of returning an
// error; the result is still a well-formed timestamp pair the caller can
// persist and the user can correct.
func CalculateNewTimestamps(gridRow, gridColumn string, activity domain.Activity, tripTimestampStart int64, tripTimeZone string) (timestampStart, timestampEnd int64) {
	hours, minutes := parseRowToken(gridRow)
	day := parseColumnToken(gridColumn)

	loc, err := time.LoadLocation(tripTimeZone)
	if err != nil {
		loc = time.UTC
	}

	dayStart := time.UnixMilli(tripTimestampStart).In(loc).AddDate(0, 0, day-1)
	timestampStart = dayStart.Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute).UnixMilli()
	timestampEnd = timestampStart + (activity.TimestampEnd - activity.TimestampStart)
	return timestampStart, timestampEnd
}

// parseRowToken extracts hours and minutes from a "time-HHMM" row line name.
// Anything malformed reads as midnight.
func parseRowToken(s string) (hours, minutes int) {
	tok, ok := strings.CutPrefix(s, "time-")
	if !ok || len(tok) != 4 {
		return 0, 0
	}
	h, errH := strconv.Atoi(tok[:2])
	m, errM := strconv.Atoi(tok[2:])
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0
	}
	return h, m
}

// parseColumnToken extracts the 1-based day index from a "day-N" or
// "day-N-col-K" column line name. Anything malformed reads as day 1.
func parseColumnToken(s string) int {
	tok, ok := strings.CutPrefix(s, "day-")
	if !ok {
		return 1
	}
	if i := strings.IndexByte(tok, '-'); i >= 0 {
		tok = tok[:i]
	}
	d, err := strconv.Atoi(tok)
	if err != nil || d < 1 {
		return 1
	}
	return d
}
