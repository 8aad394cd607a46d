package barber

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	barberRepo "barberbook/database/repository/barber"
	"barberbook/models"
	"barberbook/utils"

	"go.uber.org/zap"
)

// Availability documents are read on every public slot listing, so they are
// cached with a short TTL and invalidated on write.
const availabilityCacheTTL = 5 * time.Minute

const minutesPerDay = 24 * 60

func availabilityCacheKey(barberID string) string {
	return fmt.Sprintf("availability:%s", barberID)
}

// SetAvailability validates and persists the weekly schedule, then drops the
// cached copy so the next read sees the new schedule.
func (s *DefaultBarberService) SetAvailability(ctx context.Context, id string, avail models.Availability) error {
	if err := validateAvailability(avail); err != nil {
		return err
	}
	if err := s.Repo.SetAvailability(ctx, id, avail); err != nil {
		if errors.Is(err, barberRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save availability: %w", err)
	}
	invalidateAvailabilityCache(ctx, id)
	return nil
}

// GetAvailability serves from cache when possible and falls back to the
// store. Cache failures degrade to a store read, never to an error.
func (s *DefaultBarberService) GetAvailability(ctx context.Context, id string) (*models.Availability, error) {
	cache := utils.GetCacheClient()
	key := availabilityCacheKey(id)

	if raw, err := cache.Get(ctx, key).Result(); err == nil {
		var avail models.Availability
		if err := json.Unmarshal([]byte(raw), &avail); err == nil {
			return &avail, nil
		}
		cache.Del(ctx, key)
	}

	avail, err := s.Repo.GetAvailability(ctx, id)
	if err != nil {
		if errors.Is(err, barberRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}

	if raw, err := json.Marshal(avail); err == nil {
		if err := cache.Set(ctx, key, raw, availabilityCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache availability",
				zap.String("barberID", id), zap.Error(err))
		}
	}
	return avail, nil
}

func invalidateAvailabilityCache(ctx context.Context, barberID string) {
	if err := utils.GetCacheClient().Del(ctx, availabilityCacheKey(barberID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("barberID", barberID), zap.Error(err))
	}
}

// validateAvailability enforces the schedule invariants: a positive slot
// interval and, for every active day, an open-before-close window inside a
// single calendar day.
func validateAvailability(avail models.Availability) error {
	if avail.SlotInterval < 0 {
		return fmt.Errorf("slot interval must not be negative")
	}
	for d, day := range avail.Days {
		if !day.Active {
			continue
		}
		weekday := time.Weekday(d)
		if day.Open < 0 || day.Close > minutesPerDay {
			return fmt.Errorf("%s: schedule must fall within the day", weekday)
		}
		if day.Open >= day.Close {
			return fmt.Errorf("%s: opening time must be before closing time", weekday)
		}
	}
	return nil
}
