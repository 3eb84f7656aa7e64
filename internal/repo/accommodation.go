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

// AccommodationRepo defines the persistence operations for Accommodations.
type AccommodationRepo interface {
	Create(ctx context.Context, accommodation domain.Accommodation) (domain.Accommodation, error)

	// GetByID is scoped to the given tripID.
	// Returns domain.ErrNotFound if no row exists under that trip.
	GetByID(ctx context.Context, tripID, accommodationID uuid.UUID) (domain.Accommodation, error)

	// ListByTripID returns all accommodations for a trip ordered by
	// timestamp_check_in ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Accommodation, error)

	Update(ctx context.Context, accommodation domain.Accommodation) (domain.Accommodation, error)

	Delete(ctx context.Context, tripID, accommodationID uuid.UUID) error
}

// pgAccommodationRepo is the Postgres implementation of AccommodationRepo.
type pgAccommodationRepo struct {
	db db
}

// NewAccommodationRepo constructs an AccommodationRepo backed by the provided db connection.
func NewAccommodationRepo(db db) AccommodationRepo {
	return &pgAccommodationRepo{db: db}
}

func (r *pgAccommodationRepo) Create(ctx context.Context, acc domain.Accommodation) (domain.Accommodation, error) {
	const q = `
		INSERT INTO accommodations (trip_id, name, timestamp_check_in, timestamp_check_out, notes)
		VALUES (@trip_id, @name, @timestamp_check_in, @timestamp_check_out, @notes)
		RETURNING id, trip_id, name, timestamp_check_in, timestamp_check_out, notes, created_at, updated_at`

	args := pgx.NamedArgs{
		"trip_id":             acc.TripID,
		"name":                acc.Name,
		"timestamp_check_in":  acc.TimestampCheckIn,
		"timestamp_check_out": acc.TimestampCheckOut,
		"notes":               acc.Notes,
	}

	result, err := scanAccommodation(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("repo.AccommodationRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgAccommodationRepo) GetByID(ctx context.Context, tripID, accommodationID uuid.UUID) (domain.Accommodation, error) {
	const q = `
		SELECT id, trip_id, name, timestamp_check_in, timestamp_check_out, notes, created_at, updated_at
		FROM accommodations
		WHERE id = @id AND trip_id = @trip_id`

	result, err := scanAccommodation(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": accommodationID, "trip_id": tripID}))
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("repo.AccommodationRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgAccommodationRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Accommodation, error) {
	const q = `
		SELECT id, trip_id, name, timestamp_check_in, timestamp_check_out, notes, created_at, updated_at
		FROM accommodations
		WHERE trip_id = @trip_id
		ORDER BY timestamp_check_in`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.AccommodationRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var accommodations []domain.Accommodation
	for rows.Next() {
		a, err := scanAccommodation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.AccommodationRepo.ListByTripID: scan: %w", err)
		}
		accommodations = append(accommodations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.AccommodationRepo.ListByTripID: rows: %w", err)
	}

	return accommodations, nil
}

func (r *pgAccommodationRepo) Update(ctx context.Context, acc domain.Accommodation) (domain.Accommodation, error) {
	const q = `
		UPDATE accommodations
		SET name                = @name,
		    timestamp_check_in  = @timestamp_check_in,
		    timestamp_check_out = @timestamp_check_out,
		    notes               = @notes,
		    updated_at          = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING id, trip_id, name, timestamp_check_in, timestamp_check_out, notes, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":                  acc.ID,
		"trip_id":             acc.TripID,
		"name":                acc.Name,
		"timestamp_check_in":  acc.TimestampCheckIn,
		"timestamp_check_out": acc.TimestampCheckOut,
		"notes":               acc.Notes,
	}

	result, err := scanAccommodation(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("repo.AccommodationRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgAccommodationRepo) Delete(ctx context.Context, tripID, accommodationID uuid.UUID) error {
	const q = `DELETE FROM accommodations WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": accommodationID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.AccommodationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.AccommodationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanAccommodation maps a single database row into a domain.Accommodation.
func scanAccommodation(s scanner) (domain.Accommodation, error) {
	var (
		a      domain.Accommodation
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &a.Name, &a.TimestampCheckIn, &a.TimestampCheckOut, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Accommodation{}, domain.ErrNotFound
		}
		return domain.Accommodation{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.TripID = uuid.UUID(tripID.Bytes)
	return a, nil
}
