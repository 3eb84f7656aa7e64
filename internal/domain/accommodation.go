package domain

import (
	"time"

	"github.com/google/uuid"
)

// Accommodation represents a lodging stay on a trip. A stay may span
// multiple days; the timetable renders it in a half-day header lane with
// distinct check-in, mid-stay, and check-out presentations.
type Accommodation struct {
	ID                uuid.UUID `json:"id"`
	TripID            uuid.UUID `json:"trip_id"`
	Name              string    `json:"name"`
	TimestampCheckIn  int64     `json:"timestampCheckIn"`
	TimestampCheckOut int64     `json:"timestampCheckOut"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
