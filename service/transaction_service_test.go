package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/client"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/common"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/model"
)

type mockRequester struct{ mock.Mock }

func (m *mockRequester) Get(ctx context.Context, endpoint string, params ...client.Param) (*client.Response, error) {
	args := m.Called(ctx, endpoint, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Response), args.Error(1)
}

func (m *mockRequester) Post(ctx context.Context, endpoint string, body any) (*client.Response, error) {
	args := m.Called(ctx, endpoint, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Response), args.Error(1)
}

func (m *mockRequester) Put(ctx context.Context, endpoint string, body any) (*client.Response, error) {
	args := m.Called(ctx, endpoint, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Response), args.Error(1)
}

func (m *mockRequester) Delete(ctx context.Context, endpoint string) (*client.Response, error) {
	args := m.Called(ctx, endpoint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Response), args.Error(1)
}

func respWith(t *testing.T, v any) *client.Response {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return &client.Response{Data: raw, Status: 200}
}

func TestTransactionService_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := new(mockRequester)
		api.On("Get", mock.Anything, "/transactions/", []client.Param{
			{Key: "month", Value: 5},
			{Key: "year", Value: 2025},
		}).Return(respWith(t, map[string]any{
			"data": []map[string]any{
				{"id": "t1", "amount": -42.5},
				{"id": "t2", "amount": 1200.0},
			},
			"count": 2,
		}), nil).Once()

		svc := NewTransactionService(api)
		txs, err := svc.List(context.Background(), TransactionFilter{Month: 5, Year: 2025})

		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Equal(t, "t1", txs[0].ID)
		assert.Equal(t, -42.5, txs[0].Amount)
		api.AssertExpectations(t)
	})

	t.Run("empty filter sends no params", func(t *testing.T) {
		api := new(mockRequester)
		api.On("Get", mock.Anything, "/transactions/", []client.Param(nil)).
			Return(respWith(t, map[string]any{"data": []any{}}), nil).Once()

		svc := NewTransactionService(api)
		txs, err := svc.List(context.Background(), TransactionFilter{})

		require.NoError(t, err)
		assert.Empty(t, txs)
		api.AssertExpectations(t)
	})

	t.Run("client error passes through", func(t *testing.T) {
		api := new(mockRequester)
		expected := errors.New("connection refused")
		api.On("Get", mock.Anything, "/transactions/", []client.Param(nil)).
			Return(nil, expected).Once()

		svc := NewTransactionService(api)
		_, err := svc.List(context.Background(), TransactionFilter{})

		assert.ErrorIs(t, err, expected)
	})
}

func TestTransactionService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := new(mockRequester)
		req := model.CreateTransactionRequest{
			AccountID:  "a1",
			CategoryID: "c1",
			Amount:     -12.3,
			Date:       "2025-05-01",
		}
		api.On("Post", mock.Anything, "/transactions/", req).
			Return(respWith(t, map[string]any{"data": map[string]any{"id": "t9", "amount": -12.3}}), nil).Once()

		svc := NewTransactionService(api)
		tx, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "t9", tx.ID)
		api.AssertExpectations(t)
	})

	t.Run("invalid payload never reaches the API", func(t *testing.T) {
		api := new(mockRequester)
		svc := NewTransactionService(api)

		_, err := svc.Create(context.Background(), model.CreateTransactionRequest{Amount: 5})

		var apiErr *common.APIError
		require.ErrorAs(t, err, &apiErr)
		api.AssertNotCalled(t, "Post")
	})
}

func TestTransactionService_Delete(t *testing.T) {
	api := new(mockRequester)
	api.On("Delete", mock.Anything, "/transactions/t1").
		Return(&client.Response{Status: 204}, nil).Once()

	svc := NewTransactionService(api)
	require.NoError(t, svc.Delete(context.Background(), "t1"))
	api.AssertExpectations(t)

	t.Run("missing id", func(t *testing.T) {
		err := svc.Delete(context.Background(), "")
		assert.Error(t, err)
		api.AssertNumberOfCalls(t, "Delete", 1)
	})
}
