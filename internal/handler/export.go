// Package handler — export.go implements GET /trips/{tripID}/calendar.ics.
// Returns the trip's itinerary as an iCalendar document so travellers can
// subscribe from a regular calendar app.
package handler

import (
	"io"
	"log/slog"
	"net/http"
)

// ExportCalendar handles GET /trips/{tripID}/calendar.ics.
func (s *Server) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	cal, err := s.exports.ExportICS(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="trip.ics"`)
	if _, err := io.WriteString(w, cal); err != nil {
		slog.Error("write calendar response", "error", err)
	}
}
