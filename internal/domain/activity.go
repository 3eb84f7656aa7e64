package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity represents a single scheduled item on a trip's timetable, e.g.
// "Tsukiji market, 09:00–11:00". An activity has a non-negative duration and
// is expected to fall within one calendar day in the trip's time zone; the
// service layer enforces that at write time.
type Activity struct {
	ID             uuid.UUID `json:"id"`
	TripID         uuid.UUID `json:"trip_id"`
	Name           string    `json:"name"`
	TimestampStart int64     `json:"timestampStart"`
	TimestampEnd   int64     `json:"timestampEnd"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
