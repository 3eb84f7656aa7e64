package handler

import "net/http"

// GetTimetable handles GET /trips/{tripID}/timetable.
// The response carries the trip, its day groups with track assignments, the
// accommodation and macroplan lane indexes, and the grid template strings.
func (s *Server) GetTimetable(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	timetable, err := s.timetables.Get(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, timetable)
}
