// Package handler implements the HTTP handlers for the Daytrip API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lwestin/daytrip/internal/domain"
	"github.com/lwestin/daytrip/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityServicer defines the business operations the activity handlers
// depend on. Retime is the drag-and-drop endpoint: it moves an activity to
// the timetable cell named by a pair of grid lines, preserving its duration.
type ActivityServicer interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, tripID, activityID uuid.UUID) error
	Retime(ctx context.Context, tripID, activityID uuid.UUID, gridRow, gridColumn string) (domain.Activity, error)
}

// AccommodationServicer defines the business operations the accommodation
// handlers depend on.
type AccommodationServicer interface {
	Create(ctx context.Context, acc domain.Accommodation) (domain.Accommodation, error)
	GetByID(ctx context.Context, tripID, accommodationID uuid.UUID) (domain.Accommodation, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Accommodation, error)
	Update(ctx context.Context, acc domain.Accommodation) (domain.Accommodation, error)
	Delete(ctx context.Context, tripID, accommodationID uuid.UUID) error
}

// MacroplanServicer defines the business operations the macroplan handlers
// depend on.
type MacroplanServicer interface {
	Create(ctx context.Context, m domain.Macroplan) (domain.Macroplan, error)
	GetByID(ctx context.Context, tripID, macroplanID uuid.UUID) (domain.Macroplan, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Macroplan, error)
	Update(ctx context.Context, m domain.Macroplan) (domain.Macroplan, error)
	Delete(ctx context.Context, tripID, macroplanID uuid.UUID) error
}

// TimetableServicer computes the derived day-by-day layout for a trip.
type TimetableServicer interface {
	Get(ctx context.Context, tripID uuid.UUID) (service.Timetable, error)
}

// ExportServicer renders a trip as an iCalendar document.
type ExportServicer interface {
	ExportICS(ctx context.Context, tripID uuid.UUID) (string, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips          TripServicer
	activities     ActivityServicer
	accommodations AccommodationServicer
	macroplans     MacroplanServicer
	timetables     TimetableServicer
	exports        ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, activities ActivityServicer, accommodations AccommodationServicer, macroplans MacroplanServicer, timetables TimetableServicer, exports ExportServicer) *Server {
	return &Server{
		trips:          trips,
		activities:     activities,
		accommodations: accommodations,
		macroplans:     macroplans,
		timetables:     timetables,
		exports:        exports,
	}
}

// Routes returns the chi router with every API endpoint mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Get("/timetable", s.GetTimetable)
			r.Get("/calendar.ics", s.ExportCalendar)

			r.Route("/activities", func(r chi.Router) {
				r.Post("/", s.CreateActivity)
				r.Get("/", s.ListActivities)
				r.Get("/{activityID}", s.GetActivity)
				r.Put("/{activityID}", s.UpdateActivity)
				r.Delete("/{activityID}", s.DeleteActivity)
				r.Post("/{activityID}/retime", s.RetimeActivity)
			})

			r.Route("/accommodations", func(r chi.Router) {
				r.Post("/", s.CreateAccommodation)
				r.Get("/", s.ListAccommodations)
				r.Get("/{accommodationID}", s.GetAccommodation)
				r.Put("/{accommodationID}", s.UpdateAccommodation)
				r.Delete("/{accommodationID}", s.DeleteAccommodation)
			})

			r.Route("/macroplans", func(r chi.Router) {
				r.Post("/", s.CreateMacroplan)
				r.Get("/", s.ListMacroplans)
				r.Get("/{macroplanID}", s.GetMacroplan)
				r.Put("/{macroplanID}", s.UpdateMacroplan)
				r.Delete("/{macroplanID}", s.DeleteMacroplan)
			})
		})
	})

	return r
}
