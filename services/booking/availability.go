package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// GetWeeklySlots returns the horizon's candidate slots for a doctor, one list
// per day. The booked-slots snapshot is read through a short-TTL Redis cache;
// staleness is acceptable because Reserve re-validates authoritatively.
func (svc *DefaultBookingService) GetWeeklySlots(doctorID string) ([]models.DaySlots, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	doctor, err := svc.DoctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, NewNotFoundError("doctor not found")
		}
		return nil, err
	}

	snapshot, err := svc.bookedSnapshot(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	return BuildSlotWindow(svc.scheduleOf(doctor), svc.now(), snapshot, svc.horizonDays()), nil
}

// bookedSnapshot fetches the availability index copy, via the cache when one
// is wired. Cache failures degrade to a repository read.
func (svc *DefaultBookingService) bookedSnapshot(ctx context.Context, doctorID string) (map[string][]string, error) {
	logger := utils.GetLogger()
	key := utils.AvailabilityCachePrefix + doctorID

	if svc.Cache != nil {
		cached, err := svc.Cache.Get(ctx, key).Result()
		if err == nil {
			var snapshot map[string][]string
			if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
				return snapshot, nil
			}
			logger.Warn("corrupt availability snapshot in cache, refetching",
				zap.String("doctorID", doctorID))
		} else if err != redis.Nil {
			logger.Warn("availability cache read failed",
				zap.String("doctorID", doctorID), zap.Error(err))
		}
	}

	snapshot, err := svc.DoctorRepo.GetBookedSlots(ctx, doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, NewNotFoundError("doctor not found")
		}
		return nil, err
	}

	if svc.Cache != nil {
		if data, err := json.Marshal(snapshot); err == nil {
			if err := svc.Cache.Set(ctx, key, data, utils.AvailabilityCacheTTL).Err(); err != nil {
				logger.Warn("availability cache write failed",
					zap.String("doctorID", doctorID), zap.Error(err))
			}
		}
	}
	return snapshot, nil
}

// dropSnapshot invalidates the cached availability snapshot after a write.
func (svc *DefaultBookingService) dropSnapshot(ctx context.Context, doctorID string) {
	if svc.Cache == nil {
		return
	}
	key := utils.AvailabilityCachePrefix + doctorID
	if err := svc.Cache.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed",
			zap.String("doctorID", doctorID), zap.Error(err))
	}
}
