package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lwestin/daytrip/internal/domain"
)

// MacroplanRequest is the body of POST and PUT under /trips/{tripID}/macroplans.
// TimestampEnd is exclusive: a one-day plan ends at the next day's midnight.
type MacroplanRequest struct {
	Name           string `json:"name"`
	TimestampStart int64  `json:"timestampStart"`
	TimestampEnd   int64  `json:"timestampEnd"`
	Notes          string `json:"notes"`
}

// CreateMacroplan handles POST /trips/{tripID}/macroplans.
func (s *Server) CreateMacroplan(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	var body MacroplanRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "request body is required")
		return
	}

	created, err := s.macroplans.Create(r.Context(), domain.Macroplan{
		TripID:         tripID,
		Name:           body.Name,
		TimestampStart: body.TimestampStart,
		TimestampEnd:   body.TimestampEnd,
		Notes:          body.Notes,
	})
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListMacroplans handles GET /trips/{tripID}/macroplans.
func (s *Server) ListMacroplans(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	macroplans, err := s.macroplans.ListByTripID(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}
	if macroplans == nil {
		macroplans = []domain.Macroplan{}
	}

	writeJSON(w, http.StatusOK, macroplans)
}

// GetMacroplan handles GET /trips/{tripID}/macroplans/{macroplanID}.
func (s *Server) GetMacroplan(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	macroplanID, ok := pathUUID(w, r, "macroplanID")
	if !ok {
		return
	}

	m, err := s.macroplans.GetByID(r.Context(), tripID, macroplanID)
	if err != nil {
		writeServiceError(w, err, "macroplan not found")
		return
	}

	writeJSON(w, http.StatusOK, m)
}

// UpdateMacroplan handles PUT /trips/{tripID}/macroplans/{macroplanID}.
func (s *Server) UpdateMacroplan(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	macroplanID, ok := pathUUID(w, r, "macroplanID")
	if !ok {
		return
	}
	var body MacroplanRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "request body is required")
		return
	}

	updated, err := s.macroplans.Update(r.Context(), domain.Macroplan{
		ID:             macroplanID,
		TripID:         tripID,
		Name:           body.Name,
		TimestampStart: body.TimestampStart,
		TimestampEnd:   body.TimestampEnd,
		Notes:          body.Notes,
	})
	if err != nil {
		writeServiceError(w, err, "macroplan not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteMacroplan handles DELETE /trips/{tripID}/macroplans/{macroplanID}.
func (s *Server) DeleteMacroplan(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	macroplanID, ok := pathUUID(w, r, "macroplanID")
	if !ok {
		return
	}

	if err := s.macroplans.Delete(r.Context(), tripID, macroplanID); err != nil {
		writeServiceError(w, err, "macroplan not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
