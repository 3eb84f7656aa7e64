package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwestin/daytrip/internal/domain"
	"github.com/lwestin/daytrip/internal/handler"
	"github.com/lwestin/daytrip/internal/service"
	"github.com/lwestin/daytrip/internal/timeline"
)

type mockTimetableServicer struct {
	get func(ctx context.Context, tripID uuid.UUID) (service.Timetable, error)
}

func (m *mockTimetableServicer) Get(ctx context.Context, tripID uuid.UUID) (service.Timetable, error) {
	return m.get(ctx, tripID)
}

type mockExportServicer struct {
	exportICS func(ctx context.Context, tripID uuid.UUID) (string, error)
}

func (m *mockExportServicer) ExportICS(ctx context.Context, tripID uuid.UUID) (string, error) {
	return m.exportICS(ctx, tripID)
}

var (
	_ handler.TimetableServicer = (*mockTimetableServicer)(nil)
	_ handler.ExportServicer    = (*mockExportServicer)(nil)
)

// ---- GET /healthz ----------------------------------------------------------

func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	h := handler.NewServer(nil, nil, nil, nil, nil, nil).Routes()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body["status"])
}

// ---- GET /trips/{tripID}/timetable -----------------------------------------

func TestGetTimetable_200(t *testing.T) {
	trip := tripFixture()
	fixture := service.Timetable{
		Trip: trip,
		Days: []timeline.DayGroup{
			{Start: time.UnixMilli(trip.TimestampStart), Columns: 2},
		},
		Grid: service.GridTemplates{
			Columns: "[day-1] minmax(60px, 180fr) [day-1-col-2] minmax(60px, 180fr) [day-2]",
			Rows:    "[time-0000] 1fr [time-0015] 1fr [time-2400]",
		},
	}
	svc := &mockTimetableServicer{
		get: func(_ context.Context, id uuid.UUID) (service.Timetable, error) {
			assert.Equal(t, trip.ID, id)
			return fixture, nil
		},
	}
	h := handler.NewServer(nil, nil, nil, nil, svc, nil).Routes()

	req := httptest.NewRequest(http.MethodGet, "/trips/"+trip.ID.String()+"/timetable", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp service.Timetable
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, trip.ID, resp.Trip.ID)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, 2, resp.Days[0].Columns)
	assert.True(t, strings.HasPrefix(resp.Grid.Columns, "[day-1]"))
}

func TestGetTimetable_404(t *testing.T) {
	svc := &mockTimetableServicer{
		get: func(_ context.Context, _ uuid.UUID) (service.Timetable, error) {
			return service.Timetable{}, domain.ErrNotFound
		},
	}
	h := handler.NewServer(nil, nil, nil, nil, svc, nil).Routes()

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString()+"/timetable", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))
}

// ---- GET /trips/{tripID}/calendar.ics --------------------------------------

func TestExportCalendar_200(t *testing.T) {
	svc := &mockExportServicer{
		exportICS: func(_ context.Context, _ uuid.UUID) (string, error) {
			return "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", nil
		},
	}
	h := handler.NewServer(nil, nil, nil, nil, nil, svc).Routes()

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString()+"/calendar.ics", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "BEGIN:VCALENDAR"))
}

func TestExportCalendar_404(t *testing.T) {
	svc := &mockExportServicer{
		exportICS: func(_ context.Context, _ uuid.UUID) (string, error) {
			return "", domain.ErrNotFound
		},
	}
	h := handler.NewServer(nil, nil, nil, nil, nil, svc).Routes()

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString()+"/calendar.ics", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
