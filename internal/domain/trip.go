// Package domain contains the core data types for the Daytrip API.
// This package depends on nothing but uuid and is imported by every other
// internal package (timeline, repo, service, handler).
//
// All event timestamps are integer milliseconds since the Unix epoch, UTC
// based, interpreted through the IANA time zone carried by the trip. The
// client sync layer exchanges the same numeric form, so the API never
// converts them to wall-clock strings.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a single planned trip. A trip is the top-level aggregate;
// activities, accommodations, and macroplans belong to a trip.
//
// TimestampStart is the instant of the first day's start in TimeZone.
// TimestampEnd is the instant one day after the last full day (exclusive),
// so a two-day trip starting at local midnight ends exactly 48 zoned hours
// later.
type Trip struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	TimestampStart int64     `json:"timestampStart"`
	TimestampEnd   int64     `json:"timestampEnd"`
	TimeZone       string    `json:"timeZone"` // IANA name, e.g. "Asia/Tokyo"
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Location resolves the trip's IANA time zone, falling back to UTC when the
// name does not resolve. Validation rejects unknown zones at the write path,
// so the fallback only matters for rows that predate validation.
func (t Trip) Location() *time.Location {
	loc, err := time.LoadLocation(t.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
