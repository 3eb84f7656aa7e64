package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lwestin/daytrip/internal/domain"
	"github.com/lwestin/daytrip/internal/repo"
)

// MacroplanService implements business logic for Macroplan operations.
type MacroplanService struct {
	trips      repo.TripRepo
	macroplans repo.MacroplanRepo
}

// NewMacroplanService constructs a MacroplanService backed by the provided repos.
func NewMacroplanService(trips repo.TripRepo, macroplans repo.MacroplanRepo) *MacroplanService {
	return &MacroplanService{trips: trips, macroplans: macroplans}
}

// Create validates the macroplan, verifies the parent trip exists, then persists.
func (s *MacroplanService) Create(ctx context.Context, m domain.Macroplan) (domain.Macroplan, error) {
	if _, err := s.trips.GetByID(ctx, m.TripID); err != nil {
		return domain.Macroplan{}, fmt.Errorf("service.MacroplanService.Create: %w", err)
	}
	if err := validateMacroplan(m); err != nil {
		return domain.Macroplan{}, err
	}
	result, err := s.macroplans.Create(ctx, m)
	if err != nil {
		return domain.Macroplan{}, fmt.Errorf("service.MacroplanService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single macroplan by ID, scoped to the given tripID.
func (s *MacroplanService) GetByID(ctx context.Context, tripID, macroplanID uuid.UUID) (domain.Macroplan, error) {
	result, err := s.macroplans.GetByID(ctx, tripID, macroplanID)
	if err != nil {
		return domain.Macroplan{}, fmt.Errorf("service.MacroplanService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns all macroplans for a trip ordered by start time.
// Always returns a non-nil slice so callers can safely range over it.
func (s *MacroplanService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Macroplan, error) {
	macroplans, err := s.macroplans.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.MacroplanService.ListByTripID: %w", err)
	}
	if macroplans == nil {
		return []domain.Macroplan{}, nil
	}
	return macroplans, nil
}

// Update validates and persists changes to an existing macroplan.
func (s *MacroplanService) Update(ctx context.Context, m domain.Macroplan) (domain.Macroplan, error) {
	if err := validateMacroplan(m); err != nil {
		return domain.Macroplan{}, err
	}
	result, err := s.macroplans.Update(ctx, m)
	if err != nil {
		return domain.Macroplan{}, fmt.Errorf("service.MacroplanService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a macroplan by ID, scoped to the given tripID.
func (s *MacroplanService) Delete(ctx context.Context, tripID, macroplanID uuid.UUID) error {
	if err := s.macroplans.Delete(ctx, tripID, macroplanID); err != nil {
		return fmt.Errorf("service.MacroplanService.Delete: %w", err)
	}
	return nil
}

// validateMacroplan enforces business rules common to Create and Update.
// Macroplans may overlap each other, so no cross-record checks happen here.
func validateMacroplan(m domain.Macroplan) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if m.TimestampEnd <= m.TimestampStart {
		return fmt.Errorf("%w: timestampEnd must be after timestampStart", domain.ErrValidation)
	}
	return nil
}
