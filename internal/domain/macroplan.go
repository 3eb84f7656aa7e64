package domain

import (
	"time"

	"github.com/google/uuid"
)

// Macroplan is a coarse, possibly multi-day plan segment, e.g.
// "Day 1–3: Tokyo". Macroplans may overlap each other and are rendered in
// their own single-column lane above the day grid.
//
// TimestampEnd is exclusive: the start of the day after the plan's last day.
type Macroplan struct {
	ID             uuid.UUID `json:"id"`
	TripID         uuid.UUID `json:"trip_id"`
	Name           string    `json:"name"`
	TimestampStart int64     `json:"timestampStart"`
	TimestampEnd   int64     `json:"timestampEnd"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
