package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lwestin/daytrip/internal/domain"
	"github.com/lwestin/daytrip/internal/repo"
	"github.com/lwestin/daytrip/internal/timeline"
)

// Timetable is the full derived layout for one trip: day groups with track
// assignments, header-lane indexes, and the grid template strings the client
// renders with. It is recomputed from scratch on every request and never
// cached server-side.
type Timetable struct {
	Trip           domain.Trip                   `json:"trip"`
	Days           []timeline.DayGroup           `json:"days"`
	Accommodations []timeline.AccommodationIndex `json:"accommodationIndexes"`
	Macroplans     []timeline.MacroplanIndex     `json:"macroplanIndexes"`
	Grid           GridTemplates                 `json:"grid"`
}

// GridTemplates bundles the named-line grid template strings for each lane.
type GridTemplates struct {
	Columns           string `json:"columns"`
	Rows              string `json:"rows"`
	AccommodationLane string `json:"accommodationLane"`
	MacroplanLane     string `json:"macroplanLane"`
}

// TimetableService assembles the derived timetable for a trip.
type TimetableService struct {
	trips          repo.TripRepo
	activities     repo.ActivityRepo
	accommodations repo.AccommodationRepo
	macroplans     repo.MacroplanRepo
}

// NewTimetableService constructs a TimetableService backed by the provided repos.
func NewTimetableService(trips repo.TripRepo, activities repo.ActivityRepo, accommodations repo.AccommodationRepo, macroplans repo.MacroplanRepo) *TimetableService {
	return &TimetableService{
		trips:          trips,
		activities:     activities,
		accommodations: accommodations,
		macroplans:     macroplans,
	}
}

// Get loads the trip and everything it owns, then runs the layout engine.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TimetableService) Get(ctx context.Context, tripID uuid.UUID) (Timetable, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return Timetable{}, fmt.Errorf("service.TimetableService.Get: %w", err)
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return Timetable{}, fmt.Errorf("service.TimetableService.Get: %w", err)
	}
	accommodations, err := s.accommodations.ListByTripID(ctx, tripID)
	if err != nil {
		return Timetable{}, fmt.Errorf("service.TimetableService.Get: %w", err)
	}
	macroplans, err := s.macroplans.ListByTripID(ctx, tripID)
	if err != nil {
		return Timetable{}, fmt.Errorf("service.TimetableService.Get: %w", err)
	}

	days := timeline.GroupActivitiesByDays(trip, activities, macroplans, accommodations)

	return Timetable{
		Trip:           trip,
		Days:           days,
		Accommodations: timeline.AccommodationIndexes(trip, accommodations),
		Macroplans:     timeline.MacroplanIndexes(trip, macroplans),
		Grid: GridTemplates{
			Columns:           timeline.TimetableColumns(days),
			Rows:              timeline.TimetableRows(),
			AccommodationLane: timeline.AccommodationLaneColumns(len(days)),
			MacroplanLane:     timeline.MacroplanLaneColumns(len(days)),
		},
	}, nil
}
