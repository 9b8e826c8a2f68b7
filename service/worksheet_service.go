package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"fxba/domain"
	"fxba/repository"
)

// roundTo rounds half away from zero to places decimals. Non-finite values
// pass through unchanged.
func roundTo(value float64, places int32) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	f, _ := decimal.NewFromFloat(value).Round(places).Float64()
	return f
}

func roundMoney(value float64) float64 { return roundTo(value, moneyPlaces) }

func roundRate(value float64) float64 { return roundTo(value, ratePlaces) }

// cacheKey hashes the operation name and the JSON form of input.
func cacheKey(operation string, input any) (string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	h := xxhash.New()
	_, _ = h.WriteString(operation)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(payload)
	return fmt.Sprintf("%s:%016x", operation, h.Sum64()), nil
}

// WorksheetService runs the worksheet engines for the API. Every result is
// cached by request and recorded in the history.
type WorksheetService struct {
	history repository.HistoryRepository
	cache   repository.CacheRepository
	log     *logrus.Logger
}

// NewWorksheetService creates a new WorksheetService with the given repositories.
func NewWorksheetService(
	history repository.HistoryRepository,
	cache repository.CacheRepository,
	logger *logrus.Logger,
) *WorksheetService {
	return &WorksheetService{history: history, cache: cache, log: logger}
}

// serve answers from the cache when it can, otherwise it runs compute and
// stores the result. Either way the call is recorded.
func serve[T any](
	ctx context.Context,
	s *WorksheetService,
	operation string,
	input any,
	compute func() (T, error),
) (T, error) {
	var zero T

	key, keyErr := cacheKey(operation, input)
	if keyErr != nil {
		s.log.WithError(keyErr).Warn("failed to build cache key")
	} else if raw, ok := s.cache.Get(ctx, key); ok {
		var hit T
		if err := json.Unmarshal([]byte(raw), &hit); err == nil {
			s.log.WithFields(logrus.Fields{
				"operation": operation,
				"key":       key,
			}).Debug("cache hit")
			s.record(operation, input, json.RawMessage(raw))
			return hit, nil
		}
	}

	result, err := compute()
	if err != nil {
		return zero, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return zero, fmt.Errorf("%s: result is not representable: %w", operation, domain.ErrOverflow)
	}

	if keyErr == nil {
		// not critical if it fails
		if err := s.cache.Set(ctx, key, string(payload)); err != nil {
			s.log.WithError(err).WithField("operation", operation).Warn("failed to cache result")
		}
	}
	s.record(operation, input, payload)

	return result, nil
}

func (s *WorksheetService) record(operation string, input any, result json.RawMessage) {
	in, err := json.Marshal(input)
	if err != nil {
		s.log.WithError(err).Warn("failed to encode history input")
		return
	}
	_, err = s.history.Save(domain.HistoryRecord{
		Operation: operation,
		Input:     in,
		Result:    result,
	})
	if err != nil {
		s.log.WithError(err).WithField("operation", operation).Warn("failed to save calculation")
	}
}

// History returns the latest calculations, newest first.
func (s *WorksheetService) History(limit int) ([]domain.HistoryRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return nil, fmt.Errorf("limit exceeds the maximum of %d", MaxHistoryLimit)
	}
	return s.history.List(limit)
}
