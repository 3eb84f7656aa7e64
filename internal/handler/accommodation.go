package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lwestin/daytrip/internal/domain"
)

// AccommodationRequest is the body of POST and PUT under
// /trips/{tripID}/accommodations.
type AccommodationRequest struct {
	Name              string `json:"name"`
	TimestampCheckIn  int64  `json:"timestampCheckIn"`
	TimestampCheckOut int64  `json:"timestampCheckOut"`
	Notes             string `json:"notes"`
}

// CreateAccommodation handles POST /trips/{tripID}/accommodations.
func (s *Server) CreateAccommodation(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	var body AccommodationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "request body is required")
		return
	}

	created, err := s.accommodations.Create(r.Context(), domain.Accommodation{
		TripID:            tripID,
		Name:              body.Name,
		TimestampCheckIn:  body.TimestampCheckIn,
		TimestampCheckOut: body.TimestampCheckOut,
		Notes:             body.Notes,
	})
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListAccommodations handles GET /trips/{tripID}/accommodations.
func (s *Server) ListAccommodations(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	accommodations, err := s.accommodations.ListByTripID(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}
	if accommodations == nil {
		accommodations = []domain.Accommodation{}
	}

	writeJSON(w, http.StatusOK, accommodations)
}

// GetAccommodation handles GET /trips/{tripID}/accommodations/{accommodationID}.
func (s *Server) GetAccommodation(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	accommodationID, ok := pathUUID(w, r, "accommodationID")
	if !ok {
		return
	}

	acc, err := s.accommodations.GetByID(r.Context(), tripID, accommodationID)
	if err != nil {
		writeServiceError(w, err, "accommodation not found")
		return
	}

	writeJSON(w, http.StatusOK, acc)
}

// UpdateAccommodation handles PUT /trips/{tripID}/accommodations/{accommodationID}.
func (s *Server) UpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	accommodationID, ok := pathUUID(w, r, "accommodationID")
	if !ok {
		return
	}
	var body AccommodationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "request body is required")
		return
	}

	updated, err := s.accommodations.Update(r.Context(), domain.Accommodation{
		ID:                accommodationID,
		TripID:            tripID,
		Name:              body.Name,
		TimestampCheckIn:  body.TimestampCheckIn,
		TimestampCheckOut: body.TimestampCheckOut,
		Notes:             body.Notes,
	})
	if err != nil {
		writeServiceError(w, err, "accommodation not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteAccommodation handles DELETE /trips/{tripID}/accommodations/{accommodationID}.
func (s *Server) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	accommodationID, ok := pathUUID(w, r, "accommodationID")
	if !ok {
		return
	}

	if err := s.accommodations.Delete(r.Context(), tripID, accommodationID); err != nil {
		writeServiceError(w, err, "accommodation not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
