package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/lwestin/daytrip/internal/repo"
)

// ExportService renders a trip as an iCalendar document so travellers can
// subscribe to their itinerary from a regular calendar app.
type ExportService struct {
	trips          repo.TripRepo
	activities     repo.ActivityRepo
	accommodations repo.AccommodationRepo
	macroplans     repo.MacroplanRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, activities repo.ActivityRepo, accommodations repo.AccommodationRepo, macroplans repo.MacroplanRepo) *ExportService {
	return &ExportService{
		trips:          trips,
		activities:     activities,
		accommodations: accommodations,
		macroplans:     macroplans,
	}
}

// ExportICS serializes the trip's activities, accommodations, and macroplans
// into a single VCALENDAR. Activities become timed events in the trip's
// zone, accommodations span check-in to check-out, and macroplans become
// all-day events across their (exclusive-end) day range.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ExportService) ExportICS(ctx context.Context, tripID uuid.UUID) (string, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return "", fmt.Errorf("service.ExportService.ExportICS: %w", err)
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return "", fmt.Errorf("service.ExportService.ExportICS: %w", err)
	}
	accommodations, err := s.accommodations.ListByTripID(ctx, tripID)
	if err != nil {
		return "", fmt.Errorf("service.ExportService.ExportICS: %w", err)
	}
	macroplans, err := s.macroplans.ListByTripID(ctx, tripID)
	if err != nil {
		return "", fmt.Errorf("service.ExportService.ExportICS: %w", err)
	}

	loc := trip.Location()
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//daytrip//trip calendar//EN")

	for _, a := range activities {
		e := cal.AddEvent(fmt.Sprintf("activity-%s@daytrip", a.ID))
		e.SetSummary(a.Name)
		e.SetStartAt(time.UnixMilli(a.TimestampStart).In(loc))
		e.SetEndAt(time.UnixMilli(a.TimestampEnd).In(loc))
		if a.Notes != "" {
			e.SetDescription(a.Notes)
		}
	}

	for _, acc := range accommodations {
		e := cal.AddEvent(fmt.Sprintf("accommodation-%s@daytrip", acc.ID))
		e.SetSummary(acc.Name)
		e.SetStartAt(time.UnixMilli(acc.TimestampCheckIn).In(loc))
		e.SetEndAt(time.UnixMilli(acc.TimestampCheckOut).In(loc))
		if acc.Notes != "" {
			e.SetDescription(acc.Notes)
		}
	}

	for _, m := range macroplans {
		e := cal.AddEvent(fmt.Sprintf("macroplan-%s@daytrip", m.ID))
		e.SetSummary(m.Name)
		// All-day events: DTEND is already exclusive in iCalendar, matching
		// the macroplan's exclusive TimestampEnd.
		e.SetAllDayStartAt(time.UnixMilli(m.TimestampStart).In(loc))
		e.SetAllDayEndAt(time.UnixMilli(m.TimestampEnd).In(loc))
		if m.Notes != "" {
			e.SetDescription(m.Notes)
		}
	}

	return cal.Serialize(), nil
}
