package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/lwestin/daytrip/internal/domain"
)

// ActivityRepo defines the persistence operations for Activities.
// All write and single-read operations are scoped by tripID to enforce ownership.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// GetByID retrieves a single activity by its UUID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error)

	// ListByTripID returns all activities for a trip ordered by
	// timestamp_start ascending, then timestamp_end ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)

	// Update overwrites the mutable fields of an activity, scoped to the given tripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// Delete removes an activity by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	Delete(ctx context.Context, tripID, activityID uuid.UUID) error
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

func (r *pgActivityRepo) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities (trip_id, name, timestamp_start, timestamp_end, notes)
		VALUES (@trip_id, @name, @timestamp_start, @timestamp_end, @notes)
		RETURNING id, trip_id, name, timestamp_start, timestamp_end, notes, created_at, updated_at`

	args := pgx.NamedArgs{
		"trip_id":         activity.TripID,
		"name":            activity.Name,
		"timestamp_start": activity.TimestampStart,
		"timestamp_end":   activity.TimestampEnd,
		"notes":           activity.Notes,
	}

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error) {
	const q = `
		SELECT id, trip_id, name, timestamp_start, timestamp_end, notes, created_at, updated_at
		FROM activities
		WHERE id = @id AND trip_id = @trip_id`

	result, err := scanActivity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": activityID, "trip_id": tripID}))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT id, trip_id, name, timestamp_start, timestamp_end, notes, created_at, updated_at
		FROM activities
		WHERE trip_id = @trip_id
		ORDER BY timestamp_start, timestamp_end`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: rows: %w", err)
	}

	return activities, nil
}

func (r *pgActivityRepo) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET name            = @name,
		    timestamp_start = @timestamp_start,
		    timestamp_end   = @timestamp_end,
		    notes           = @notes,
		    updated_at      = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING id, trip_id, name, timestamp_start, timestamp_end, notes, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":              activity.ID,
		"trip_id":         activity.TripID,
		"name":            activity.Name,
		"timestamp_start": activity.TimestampStart,
		"timestamp_end":   activity.TimestampEnd,
		"notes":           activity.Notes,
	}

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	const q = `DELETE FROM activities WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": activityID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanActivity maps a single database row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a      domain.Activity
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &a.Name, &a.TimestampStart, &a.TimestampEnd, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.TripID = uuid.UUID(tripID.Bytes)
	return a, nil
}
