package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwestin/daytrip/internal/domain"
	"github.com/lwestin/daytrip/internal/repo"
	"github.com/lwestin/daytrip/internal/service"
)

// ---- mock repos ------------------------------------------------------------

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Set only the method fields your test needs.
type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.list(ctx, p)
}
func (m *mockTripRepo) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// ---- helpers ---------------------------------------------------------------

// validTrip returns a two-day Tokyo trip starting 2024-09-23 local midnight.
func validTrip() domain.Trip {
	loc, _ := time.LoadLocation("Asia/Tokyo")
	start := time.Date(2024, 9, 23, 0, 0, 0, 0, loc)
	return domain.Trip{
		Name:           "Tokyo Weekend",
		TimestampStart: start.UnixMilli(),
		TimestampEnd:   start.AddDate(0, 0, 2).UnixMilli(),
		TimeZone:       "Asia/Tokyo",
	}
}

// ---- Create ----------------------------------------------------------------

func TestTripService_Create_OK(t *testing.T) {
	input := validTrip()
	stored := input
	stored.ID = uuid.New()

	svc := service.NewTripService(&mockTripRepo{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return stored, nil
		},
	})

	got, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
}

func TestTripService_Create_NameRequired(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{})

	input := validTrip()
	input.Name = "   "
	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_EndBeforeStart(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{})

	input := validTrip()
	input.TimestampEnd = input.TimestampStart
	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_UnknownTimeZone(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{})

	input := validTrip()
	input.TimeZone = "Mars/Olympus"
	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- List ------------------------------------------------------------------

func TestTripService_List_NilBecomesEmptySlice(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{
		list: func(_ context.Context, _ domain.PaginationParams) ([]domain.Trip, int64, error) {
			return nil, 0, nil
		},
	})

	trips, total, err := svc.List(context.Background(), domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.NotNil(t, trips)
	assert.Empty(t, trips)
	assert.Zero(t, total)
}

// ---- Update ----------------------------------------------------------------

func TestTripService_Update_NotFound(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{
		update: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	})

	input := validTrip()
	input.ID = uuid.New()
	_, err := svc.Update(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Delete ----------------------------------------------------------------

func TestTripService_Delete_OK(t *testing.T) {
	var deleted uuid.UUID
	svc := service.NewTripService(&mockTripRepo{
		delete: func(_ context.Context, id uuid.UUID) error {
			deleted = id
			return nil
		},
	})

	id := uuid.New()
	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Equal(t, id, deleted)
}
