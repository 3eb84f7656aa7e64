package timeline

import (
	"github.com/google/uuid"

	"github.com/lwestin/daytrip/internal/domain"
)

// assignTracks places one day's activities (pre-sorted by start, then end)
// onto the lowest-numbered free track, then widens each placement rightward
// through free tracks. Returns the span map (1-based) and the day's column
// count.
//
// Placement is first-fit: a track is free when the end of its last activity
// is at or before the new activity's start. Because the input is sorted by
// start, a new track is opened only at an instant where every existing
// track's latest activity is still running, so the number of tracks equals
// the day's maximum simultaneous overlap. Earlier and shorter events settle
// in low-numbered tracks, matching familiar calendar-view behaviour.
func assignTracks(sorted []domain.Activity) (map[uuid.UUID]TrackSpan, int) {
	spans := make(map[uuid.UUID]TrackSpan, len(sorted))
	var lastEnd []int64              // per track, end of the last-placed activity
	var byTrack [][]domain.Activity // per track, activities in placement order

	for _, a := range sorted {
		placed := -1
		for i, end := range lastEnd {
			if end <= a.TimestampStart {
				placed = i
				break
			}
		}
		if placed == -1 {
			lastEnd = append(lastEnd, 0)
			byTrack = append(byTrack, nil)
			placed = len(lastEnd) - 1
		}
		lastEnd[placed] = a.TimestampEnd
		byTrack[placed] = append(byTrack[placed], a)
		spans[a.ID] = TrackSpan{Start: placed + 1, End: placed + 1}
	}

	expandSpans(spans, byTrack)

	columns := len(lastEnd)
	if columns < 1 {
		columns = 1
	}
	return spans, columns
}

// expandSpans widens each activity's end track as far right as possible: the
// span grows through every subsequent track holding no time-overlapping
// activity and stops at the first track that does. A quadratic scan is fine
// at timetable scale (a handful of overlapping events per day).
func expandSpans(spans map[uuid.UUID]TrackSpan, byTrack [][]domain.Activity) {
	for ti, track := range byTrack {
		for _, a := range track {
			span := spans[a.ID]
			for tj := ti + 1; tj < len(byTrack); tj++ {
				if trackBlocks(byTrack[tj], a) {
					break
				}
				span.End = tj + 1
			}
			spans[a.ID] = span
		}
	}
}

// trackBlocks reports whether any activity on the track time-overlaps a.
func trackBlocks(track []domain.Activity, a domain.Activity) bool {
	for _, b := range track {
		if overlaps(a.TimestampStart, a.TimestampEnd, b.TimestampStart, b.TimestampEnd) {
			return true
		}
	}
	return false
}
