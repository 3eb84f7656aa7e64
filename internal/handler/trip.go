package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lwestin/daytrip/internal/domain"
)

// TripRequest is the body of POST /trips and PUT /trips/{tripID}.
type TripRequest struct {
	Name           string `json:"name"`
	TimestampStart int64  `json:"timestampStart"`
	TimestampEnd   int64  `json:"timestampEnd"`
	TimeZone       string `json:"timeZone"`
	Notes          string `json:"notes"`
}

// TripListResponse is the body of GET /trips.
type TripListResponse struct {
	Data       []domain.Trip `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// Pagination echoes the effective page parameters alongside the total count.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body TripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "request body is required")
		return
	}

	created, err := s.trips.Create(r.Context(), domain.Trip{
		Name:           body.Name,
		TimestampStart: body.TimestampStart,
		TimestampEnd:   body.TimestampEnd,
		TimeZone:       body.TimeZone,
		Notes:          body.Notes,
	})
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	trips, total, err := s.trips.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}
	if trips == nil {
		trips = []domain.Trip{}
	}

	writeJSON(w, http.StatusOK, TripListResponse{
		Data: trips,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	var body TripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "request body is required")
		return
	}

	updated, err := s.trips.Update(r.Context(), domain.Trip{
		ID:             id,
		Name:           body.Name,
		TimestampStart: body.TimestampStart,
		TimestampEnd:   body.TimestampEnd,
		TimeZone:       body.TimeZone,
		Notes:          body.Notes,
	})
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- request helpers --------------------------------------------------------

// pathUUID parses the named chi URL parameter as a UUID, writing a 404 and
// returning ok=false when it does not parse. A malformed ID can never name
// an existing resource, so 404 matches the lookup-by-valid-but-absent-ID case.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeNotFound(w, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter, returning nil when
// absent or malformed.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
