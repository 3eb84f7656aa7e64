package timeline

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lwestin/daytrip/internal/domain"
)

// Grid line naming, shared with CalculateNewTimestamps:
//
//   - column lines: "day-N" at each day boundary (1-based, so a D-day grid
//     ends at "day-D+1"), "day-N-col-K" before track K inside day N, and
//     "day-N-half" at the midpoint of day N in the accommodation lane.
//   - row lines: "time-HHMM" every 15 minutes, "time-0000" through
//     "time-2400", zero-padded.
//
// Adjacent days share their boundary line name, which is what keeps the
// grid contiguous across days.
const (
	// dayWidth is the nominal width of one day, split among its tracks.
	dayWidth = 360
	// minTrackPx is the pixel floor for one day, split among its tracks.
	minTrackPx = 120
	// rowStepMinutes is the row granularity of the timetable.
	rowStepMinutes = 15

	minutesPerDay = 24 * 60
)

// GridArea names the four grid lines bounding one rendered item.
type GridArea struct {
	RowStart    string `json:"rowStart"`
	RowEnd      string `json:"rowEnd"`
	ColumnStart string `json:"columnStart"`
	ColumnEnd   string `json:"columnEnd"`
}

// TimetableColumns returns the grid-template-columns value for the main
// activity grid. Each day contributes Columns tracks sized
// minmax(120/columns px, 360/columns fr): the day's nominal width is split
// evenly among its concurrent tracks with a per-track pixel floor.
func TimetableColumns(groups []DayGroup) string {
	var b strings.Builder
	for d, g := range groups {
		cols := g.Columns
		if cols < 1 {
			cols = 1
		}
		track := fmt.Sprintf("minmax(%gpx, %gfr)", float64(minTrackPx)/float64(cols), float64(dayWidth)/float64(cols))
		for k := 1; k <= cols; k++ {
			b.WriteString("[" + columnLine(d+1, k) + "] " + track + " ")
		}
	}
	fmt.Fprintf(&b, "[day-%d]", len(groups)+1)
	return b.String()
}

// AccommodationLaneColumns returns the template for the accommodation
// header lane: two half-day columns per day, named at the day boundary and
// the day midpoint.
func AccommodationLaneColumns(days int) string {
	var b strings.Builder
	half := fmt.Sprintf("%dfr", dayWidth/2)
	for d := 1; d <= days; d++ {
		fmt.Fprintf(&b, "[day-%d] %s [day-%d-half] %s ", d, half, d, half)
	}
	fmt.Fprintf(&b, "[day-%d]", days+1)
	return b.String()
}

// MacroplanLaneColumns returns the template for the macroplan lane: one
// column per day.
func MacroplanLaneColumns(days int) string {
	var b strings.Builder
	for d := 1; d <= days; d++ {
		fmt.Fprintf(&b, "[day-%d] %dfr ", d, dayWidth)
	}
	fmt.Fprintf(&b, "[day-%d]", days+1)
	return b.String()
}

// timetableRows is input-independent, so it is built once on first use
// rather than at package load.
var timetableRows = sync.OnceValue(func() string {
	var b strings.Builder
	for m := 0; m < minutesPerDay; m += rowStepMinutes {
		fmt.Fprintf(&b, "[time-%02d%02d] 1fr ", m/60, m%60)
	}
	b.WriteString("[time-2400]")
	return b.String()
})

// TimetableRows returns the grid-template-rows value for one day column:
// a 15-minute row between each pair of named time lines.
func TimetableRows() string {
	return timetableRows()
}

// ActivityGridArea returns the grid lines bounding one activity within its
// day (1-based dayIndex). The start row floors to the 15-minute line and
// the end row ceils, so areas always land on lines the row template
// declares. Activities unknown to the group's track map render on track 1.
func ActivityGridArea(g DayGroup, dayIndex int, a domain.Activity) GridArea {
	span, ok := g.ActivityTracks[a.ID]
	if !ok || span.Start < 1 {
		span = TrackSpan{Start: 1, End: 1}
	}

	startMin := minutesIntoDay(g.Start, a.TimestampStart)
	endMin := minutesIntoDay(g.Start, a.TimestampEnd)

	area := GridArea{
		RowStart:    timeLine(startMin / rowStepMinutes * rowStepMinutes),
		RowEnd:      timeLine((endMin + rowStepMinutes - 1) / rowStepMinutes * rowStepMinutes),
		ColumnStart: columnLine(dayIndex, span.Start),
	}
	if span.End >= g.Columns {
		area.ColumnEnd = fmt.Sprintf("day-%d", dayIndex+1)
	} else {
		area.ColumnEnd = columnLine(dayIndex, span.End+1)
	}
	return area
}

// AccommodationLaneArea returns the start and end column lines for an
// accommodation in the half-day header lane.
func AccommodationLaneArea(idx AccommodationIndex) (columnStart, columnEnd string) {
	columnStart = fmt.Sprintf("day-%d", idx.Day.Start)
	if idx.Day.StartColumn == 2 {
		columnStart = fmt.Sprintf("day-%d-half", idx.Day.Start)
	}
	columnEnd = fmt.Sprintf("day-%d-half", idx.Day.End)
	if idx.Day.EndColumn == 2 {
		columnEnd = fmt.Sprintf("day-%d", idx.Day.End+1)
	}
	return columnStart, columnEnd
}

// MacroplanLaneArea returns the start and end column lines for a macroplan
// in the single-column macroplan lane.
func MacroplanLaneArea(idx MacroplanIndex) (columnStart, columnEnd string) {
	return fmt.Sprintf("day-%d", idx.Day.Start), fmt.Sprintf("day-%d", idx.Day.End+1)
}

// columnLine names the line before track k of day d. Track 1 sits on the
// day boundary and shares its name with the previous day's end.
func columnLine(day, track int) string {
	if track <= 1 {
		return fmt.Sprintf("day-%d", day)
	}
	return fmt.Sprintf("day-%d-col-%d", day, track)
}

// timeLine names the row line m minutes after midnight, clamped to the day.
func timeLine(m int) string {
	if m < 0 {
		m = 0
	}
	if m > minutesPerDay {
		m = minutesPerDay
	}
	return fmt.Sprintf("time-%02d%02d", m/60, m%60)
}

// minutesIntoDay returns how many minutes after the zoned day start ts falls.
func minutesIntoDay(dayStart time.Time, ts int64) int {
	return int(time.UnixMilli(ts).Sub(dayStart) / time.Minute)
}
