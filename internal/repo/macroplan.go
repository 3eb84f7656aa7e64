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

// MacroplanRepo defines the persistence operations for Macroplans.
type MacroplanRepo interface {
	Create(ctx context.Context, macroplan domain.Macroplan) (domain.Macroplan, error)

	// GetByID is scoped to the given tripID.
	// Returns domain.ErrNotFound if no row exists under that trip.
	GetByID(ctx context.Context, tripID, macroplanID uuid.UUID) (domain.Macroplan, error)

	// ListByTripID returns all macroplans for a trip ordered by
	// timestamp_start ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Macroplan, error)

	Update(ctx context.Context, macroplan domain.Macroplan) (domain.Macroplan, error)

	Delete(ctx context.Context, tripID, macroplanID uuid.UUID) error
}

// pgMacroplanRepo is the Postgres implementation of MacroplanRepo.
type pgMacroplanRepo struct {
	db db
}

// NewMacroplanRepo constructs a MacroplanRepo backed by the provided db connection.
func NewMacroplanRepo(db db) MacroplanRepo {
	return &pgMacroplanRepo{db: db}
}

func (r *pgMacroplanRepo) Create(ctx context.Context, m domain.Macroplan) (domain.Macroplan, error) {
	const q = `
		INSERT INTO macroplans (trip_id, name, timestamp_start, timestamp_end, notes)
		VALUES (@trip_id, @name, @timestamp_start, @timestamp_end, @notes)
		RETURNING id, trip_id, name, timestamp_start, timestamp_end, notes, created_at, updated_at`

	args := pgx.NamedArgs{
		"trip_id":         m.TripID,
		"name":            m.Name,
		"timestamp_start": m.TimestampStart,
		"timestamp_end":   m.TimestampEnd,
		"notes":           m.Notes,
	}

	result, err := scanMacroplan(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Macroplan{}, fmt.Errorf("repo.MacroplanRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgMacroplanRepo) GetByID(ctx context.Context, tripID, macroplanID uuid.UUID) (domain.Macroplan, error) {
	const q = `
		SELECT id, trip_id, name, timestamp_start, timestamp_end, notes, created_at, updated_at
		FROM macroplans
		WHERE id = @id AND trip_id = @trip_id`

	result, err := scanMacroplan(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": macroplanID, "trip_id": tripID}))
	if err != nil {
		return domain.Macroplan{}, fmt.Errorf("repo.MacroplanRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgMacroplanRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Macroplan, error) {
	const q = `
		SELECT id, trip_id, name, timestamp_start, timestamp_end, notes, created_at, updated_at
		FROM macroplans
		WHERE trip_id = @trip_id
		ORDER BY timestamp_start`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.MacroplanRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var macroplans []domain.Macroplan
	for rows.Next() {
		m, err := scanMacroplan(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.MacroplanRepo.ListByTripID: scan: %w", err)
		}
		macroplans = append(macroplans, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.MacroplanRepo.ListByTripID: rows: %w", err)
	}

	return macroplans, nil
}

func (r *pgMacroplanRepo) Update(ctx context.Context, m domain.Macroplan) (domain.Macroplan, error) {
	const q = `
		UPDATE macroplans
		SET name            = @name,
		    timestamp_start = @timestamp_start,
		    timestamp_end   = @timestamp_end,
		    notes           = @notes,
		    updated_at      = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING id, trip_id, name, timestamp_start, timestamp_end, notes, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":              m.ID,
		"trip_id":         m.TripID,
		"name":            m.Name,
		"timestamp_start": m.TimestampStart,
		"timestamp_end":   m.TimestampEnd,
		"notes":           m.Notes,
	}

	result, err := scanMacroplan(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Macroplan{}, fmt.Errorf("repo.MacroplanRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgMacroplanRepo) Delete(ctx context.Context, tripID, macroplanID uuid.UUID) error {
	const q = `DELETE FROM macroplans WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": macroplanID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.MacroplanRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.MacroplanRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanMacroplan maps a single database row into a domain.Macroplan.
func scanMacroplan(s scanner) (domain.Macroplan, error) {
	var (
		m      domain.Macroplan
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &m.Name, &m.TimestampStart, &m.TimestampEnd, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Macroplan{}, domain.ErrNotFound
		}
		return domain.Macroplan{}, err
	}

	m.ID = uuid.UUID(id.Bytes)
	m.TripID = uuid.UUID(tripID.Bytes)
	return m, nil
}
