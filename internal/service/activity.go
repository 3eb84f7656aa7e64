package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lwestin/daytrip/internal/domain"
	"github.com/lwestin/daytrip/internal/repo"
	"github.com/lwestin/daytrip/internal/timeline"
)

// ActivityService implements business logic for Activity operations.
// It holds the trip repo as well because every write must verify the parent
// trip exists and validate the activity against the trip's day windows.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create validates the activity against its parent trip, then persists it.
// Returns domain.ErrNotFound if the parent trip does not exist and
// domain.ErrValidation if input violates business rules.
func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, activity.TripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if err := validateActivity(trip, activity); err != nil {
		return domain.Activity{}, err
	}
	result, err := s.activities.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single activity by ID, scoped to the given tripID.
func (s *ActivityService) GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error) {
	result, err := s.activities.GetByID(ctx, tripID, activityID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns all activities for a trip ordered by start time.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}
	if activities == nil {
		return []domain.Activity{}, nil
	}
	return activities, nil
}

// Update validates and persists changes to an existing activity.
func (s *ActivityService) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, activity.TripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	if err := validateActivity(trip, activity); err != nil {
		return domain.Activity{}, err
	}
	result, err := s.activities.Update(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an activity by ID, scoped to the given tripID.
func (s *ActivityService) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	if err := s.activities.Delete(ctx, tripID, activityID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

// Retime moves an activity to a dropped grid position, preserving its
// duration, and persists the new timestamps. gridRow and gridColumn are the
// grid line names the client dropped onto.
func (s *ActivityService) Retime(ctx context.Context, tripID, activityID uuid.UUID, gridRow, gridColumn string) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Retime: %w", err)
	}
	activity, err := s.activities.GetByID(ctx, tripID, activityID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Retime: %w", err)
	}

	activity.TimestampStart, activity.TimestampEnd = timeline.CalculateNewTimestamps(
		gridRow, gridColumn, activity, trip.TimestampStart, trip.TimeZone)

	if err := validateActivity(trip, activity); err != nil {
		return domain.Activity{}, err
	}
	result, err := s.activities.Update(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Retime: %w", err)
	}
	return result, nil
}

// validateActivity enforces business rules common to Create, Update, and Retime.
//   - Name must be non-empty.
//   - Duration must be non-negative.
//   - The activity must lie inside the trip's range and within a single
//     calendar day in the trip's time zone; the layout engine drops
//     cross-day activities, so they are rejected here instead.
func validateActivity(trip domain.Trip, activity domain.Activity) error {
	if strings.TrimSpace(activity.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if activity.TimestampEnd < activity.TimestampStart {
		return fmt.Errorf("%w: timestampEnd must not be before timestampStart", domain.ErrValidation)
	}
	if activity.TimestampStart < trip.TimestampStart || activity.TimestampEnd > trip.TimestampEnd {
		return fmt.Errorf("%w: activity must lie within the trip's date range", domain.ErrValidation)
	}
	if !timeline.WithinOneDay(trip, activity.TimestampStart, activity.TimestampEnd) {
		return fmt.Errorf("%w: activity must not cross a day boundary", domain.ErrValidation)
	}
	return nil
}
