package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/lwestin/daytrip/internal/domain"
)

// ActivityRequest is the body of POST and PUT under /trips/{tripID}/activities.
type ActivityRequest struct {
	Name           string `json:"name"`
	TimestampStart int64  `json:"timestampStart"`
	TimestampEnd   int64  `json:"timestampEnd"`
	Notes          string `json:"notes"`
}

// RetimeRequest is the body of POST /trips/{tripID}/activities/{activityID}/retime.
// GridRow and GridColumn name the grid lines of the cell the activity was
// dropped on, e.g. "time-0930" and "day-2-col-1".
type RetimeRequest struct {
	GridRow    string `json:"gridRow"`
	GridColumn string `json:"gridColumn"`
}

// CreateActivity handles POST /trips/{tripID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	var body ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "request body is required")
		return
	}

	created, err := s.activities.Create(r.Context(), domain.Activity{
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

// ListActivities handles GET /trips/{tripID}/activities.
// Activities are ordered by start, then end.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	activities, err := s.activities.ListByTripID(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}
	if activities == nil {
		activities = []domain.Activity{}
	}

	writeJSON(w, http.StatusOK, activities)
}

// GetActivity handles GET /trips/{tripID}/activities/{activityID}.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	activityID, ok := pathUUID(w, r, "activityID")
	if !ok {
		return
	}

	activity, err := s.activities.GetByID(r.Context(), tripID, activityID)
	if err != nil {
		writeServiceError(w, err, "activity not found")
		return
	}

	writeJSON(w, http.StatusOK, activity)
}

// UpdateActivity handles PUT /trips/{tripID}/activities/{activityID}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	activityID, ok := pathUUID(w, r, "activityID")
	if !ok {
		return
	}
	var body ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "request body is required")
		return
	}

	updated, err := s.activities.Update(r.Context(), domain.Activity{
		ID:             activityID,
		TripID:         tripID,
		Name:           body.Name,
		TimestampStart: body.TimestampStart,
		TimestampEnd:   body.TimestampEnd,
		Notes:          body.Notes,
	})
	if err != nil {
		writeServiceError(w, err, "activity not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteActivity handles DELETE /trips/{tripID}/activities/{activityID}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	activityID, ok := pathUUID(w, r, "activityID")
	if !ok {
		return
	}

	if err := s.activities.Delete(r.Context(), tripID, activityID); err != nil {
		writeServiceError(w, err, "activity not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RetimeActivity handles POST /trips/{tripID}/activities/{activityID}/retime.
// It moves the activity to the dropped-on grid cell, keeping its duration.
func (s *Server) RetimeActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	activityID, ok := pathUUID(w, r, "activityID")
	if !ok {
		return
	}
	var body RetimeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "request body is required")
		return
	}
	if strings.TrimSpace(body.GridRow) == "" || strings.TrimSpace(body.GridColumn) == "" {
		writeBadRequest(w, "gridRow and gridColumn are required")
		return
	}

	moved, err := s.activities.Retime(r.Context(), tripID, activityID, body.GridRow, body.GridColumn)
	if err != nil {
		writeServiceError(w, err, "activity not found")
		return
	}

	writeJSON(w, http.StatusOK, moved)
}
