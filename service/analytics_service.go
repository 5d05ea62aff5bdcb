package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/client"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/model"
)

// AnalyticsService reads the dashboard's aggregate views. The endpoints are
// read-only and change at most once per recorded transaction, so responses
// are cached for a short TTL to keep repeated renders cheap.
type AnalyticsService struct {
	api   IRequester
	cache ICache
	ttl   time.Duration
}

func NewAnalyticsService(api IRequester, cache ICache, ttl time.Duration) *AnalyticsService {
	return &AnalyticsService{api: api, cache: cache, ttl: ttl}
}

// cachedGet serves endpoint+params from the cache when possible, otherwise
// fetches and stores the raw body.
func (s *AnalyticsService) cachedGet(ctx context.Context, key, endpoint string, params ...client.Param) (json.RawMessage, error) {
	if s.cache != nil {
		if raw, ok := s.cache.Get(key); ok {
			return raw, nil
		}
	}
	resp, err := s.api.Get(ctx, endpoint, params...)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(key, resp.Data, s.ttl)
	}
	return resp.Data, nil
}

func decodeCached[T any](raw json.RawMessage) (*T, error) {
	var env model.Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &env.Data, nil
}

func (s *AnalyticsService) Summary(ctx context.Context) (*model.Summary, error) {
	raw, err := s.cachedGet(ctx, "summary", "/summary/")
	if err != nil {
		return nil, err
	}
	return decodeCached[model.Summary](raw)
}

func (s *AnalyticsService) Monthly(ctx context.Context, month, year int) (*model.MonthlyAnalytics, error) {
	key := fmt.Sprintf("monthly:%d-%02d", year, month)
	raw, err := s.cachedGet(ctx, key, "/monthly/analytics",
		client.Param{Key: "month", Value: month},
		client.Param{Key: "year", Value: year},
	)
	if err != nil {
		return nil, err
	}
	return decodeCached[model.MonthlyAnalytics](raw)
}

func (s *AnalyticsService) Yearly(ctx context.Context, year int) (*model.YearlyAnalytics, error) {
	key := fmt.Sprintf("yearly:%d", year)
	raw, err := s.cachedGet(ctx, key, "/yearly/analytics",
		client.Param{Key: "year", Value: year},
	)
	if err != nil {
		return nil, err
	}
	return decodeCached[model.YearlyAnalytics](raw)
}

func (s *AnalyticsService) EmergencyFund(ctx context.Context, year int) (*model.EmergencyFund, error) {
	key := fmt.Sprintf("emergency-fund:%d", year)
	raw, err := s.cachedGet(ctx, key, "/yearly/emergency-fund",
		client.Param{Key: "year", Value: year},
	)
	if err != nil {
		return nil, err
	}
	return decodeCached[model.EmergencyFund](raw)
}

// Invalidate drops all cached analytics. Callers that mutate transactions
// can use it to force fresh aggregates on the next read.
func (s *AnalyticsService) Invalidate(month, year int) {
	if s.cache == nil {
		return
	}
	s.cache.Delete("summary")
	s.cache.Delete(fmt.Sprintf("monthly:%d-%02d", year, month))
	s.cache.Delete(fmt.Sprintf("yearly:%d", year))
	s.cache.Delete(fmt.Sprintf("emergency-fund:%d", year))
}
