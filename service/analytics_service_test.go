package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/client"
)

func TestAnalyticsService_SummaryIsCached(t *testing.T) {
	api := new(mockRequester)
	api.On("Get", mock.Anything, "/summary/", []client.Param(nil)).
		Return(respWith(t, map[string]any{
			"data": map[string]any{"total_income": 1500.0, "total_expenses": 900.0},
		}), nil).Once()

	svc := NewAnalyticsService(api, NewTTLCache(), time.Minute)

	first, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1500.0, first.TotalIncome)

	// second read is served from the cache; the mock would fail on a
	// second network call
	second, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	api.AssertExpectations(t)
}

func TestAnalyticsService_MonthlyKeyedByPeriod(t *testing.T) {
	api := new(mockRequester)
	api.On("Get", mock.Anything, "/monthly/analytics", []client.Param{
		{Key: "month", Value: 4},
		{Key: "year", Value: 2025},
	}).Return(respWith(t, map[string]any{
		"data": map[string]any{"month": 4, "year": 2025, "income": 100.0},
	}), nil).Once()
	api.On("Get", mock.Anything, "/monthly/analytics", []client.Param{
		{Key: "month", Value: 5},
		{Key: "year", Value: 2025},
	}).Return(respWith(t, map[string]any{
		"data": map[string]any{"month": 5, "year": 2025, "income": 200.0},
	}), nil).Once()

	svc := NewAnalyticsService(api, NewTTLCache(), time.Minute)

	april, err := svc.Monthly(context.Background(), 4, 2025)
	require.NoError(t, err)
	may, err := svc.Monthly(context.Background(), 5, 2025)
	require.NoError(t, err)

	assert.Equal(t, 100.0, april.Income)
	assert.Equal(t, 200.0, may.Income)

	// cached per period
	aprilAgain, err := svc.Monthly(context.Background(), 4, 2025)
	require.NoError(t, err)
	assert.Equal(t, april, aprilAgain)
	api.AssertExpectations(t)
}

func TestAnalyticsService_InvalidateForcesRefetch(t *testing.T) {
	api := new(mockRequester)
	api.On("Get", mock.Anything, "/summary/", []client.Param(nil)).
		Return(respWith(t, map[string]any{"data": map[string]any{"total_income": 1.0}}), nil).Twice()

	svc := NewAnalyticsService(api, NewTTLCache(), time.Minute)

	_, err := svc.Summary(context.Background())
	require.NoError(t, err)

	svc.Invalidate(5, 2025)

	_, err = svc.Summary(context.Background())
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestAnalyticsService_NilCache(t *testing.T) {
	api := new(mockRequester)
	api.On("Get", mock.Anything, "/yearly/analytics", []client.Param{
		{Key: "year", Value: 2025},
	}).Return(respWith(t, map[string]any{
		"data": map[string]any{"year": 2025, "total_income": 10.0},
	}), nil).Twice()

	svc := NewAnalyticsService(api, nil, time.Minute)

	for i := 0; i < 2; i++ {
		yearly, err := svc.Yearly(context.Background(), 2025)
		require.NoError(t, err)
		assert.Equal(t, 2025, yearly.Year)
	}
	api.AssertExpectations(t)
}
