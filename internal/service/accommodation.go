package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lwestin/daytrip/internal/domain"
	"github.com/lwestin/daytrip/internal/repo"
)

// AccommodationService implements business logic for Accommodation operations.
type AccommodationService struct {
	trips          repo.TripRepo
	accommodations repo.AccommodationRepo
}

// NewAccommodationService constructs an AccommodationService backed by the provided repos.
func NewAccommodationService(trips repo.TripRepo, accommodations repo.AccommodationRepo) *AccommodationService {
	return &AccommodationService{trips: trips, accommodations: accommodations}
}

// Create validates the accommodation, verifies the parent trip exists, then persists.
func (s *AccommodationService) Create(ctx context.Context, acc domain.Accommodation) (domain.Accommodation, error) {
	if _, err := s.trips.GetByID(ctx, acc.TripID); err != nil {
		return domain.Accommodation{}, fmt.Errorf("service.AccommodationService.Create: %w", err)
	}
	if err := validateAccommodation(acc); err != nil {
		return domain.Accommodation{}, err
	}
	result, err := s.accommodations.Create(ctx, acc)
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("service.AccommodationService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single accommodation by ID, scoped to the given tripID.
func (s *AccommodationService) GetByID(ctx context.Context, tripID, accommodationID uuid.UUID) (domain.Accommodation, error) {
	result, err := s.accommodations.GetByID(ctx, tripID, accommodationID)
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("service.AccommodationService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns all accommodations for a trip ordered by check-in.
// Always returns a non-nil slice so callers can safely range over it.
func (s *AccommodationService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Accommodation, error) {
	accommodations, err := s.accommodations.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.AccommodationService.ListByTripID: %w", err)
	}
	if accommodations == nil {
		return []domain.Accommodation{}, nil
	}
	return accommodations, nil
}

// Update validates and persists changes to an existing accommodation.
func (s *AccommodationService) Update(ctx context.Context, acc domain.Accommodation) (domain.Accommodation, error) {
	if err := validateAccommodation(acc); err != nil {
		return domain.Accommodation{}, err
	}
	result, err := s.accommodations.Update(ctx, acc)
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("service.AccommodationService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an accommodation by ID, scoped to the given tripID.
func (s *AccommodationService) Delete(ctx context.Context, tripID, accommodationID uuid.UUID) error {
	if err := s.accommodations.Delete(ctx, tripID, accommodationID); err != nil {
		return fmt.Errorf("service.AccommodationService.Delete: %w", err)
	}
	return nil
}

// validateAccommodation enforces business rules common to Create and Update.
// A stay may extend beyond the trip range (late checkout after the last trip
// day is common), so only internal consistency is checked here.
func validateAccommodation(acc domain.Accommodation) error {
	if strings.TrimSpace(acc.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if acc.TimestampCheckOut < acc.TimestampCheckIn {
		return fmt.Errorf("%w: timestampCheckOut must not be before timestampCheckIn", domain.ErrValidation)
	}
	return nil
}
