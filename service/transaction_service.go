package service

import (
	"context"
	"fmt"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/client"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/common"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/model"
)

// TransactionFilter narrows a transaction listing. Zero values are omitted
// from the query string.
type TransactionFilter struct {
	Month      int
	Year       int
	AccountID  string
	CategoryID string
	Limit      int
	Offset     int
}

func (f TransactionFilter) params() []client.Param {
	var params []client.Param
	if f.Month != 0 {
		params = append(params, client.Param{Key: "month", Value: f.Month})
	}
	if f.Year != 0 {
		params = append(params, client.Param{Key: "year", Value: f.Year})
	}
	if f.AccountID != "" {
		params = append(params, client.Param{Key: "account_id", Value: f.AccountID})
	}
	if f.CategoryID != "" {
		params = append(params, client.Param{Key: "category_id", Value: f.CategoryID})
	}
	if f.Limit != 0 {
		params = append(params, client.Param{Key: "limit", Value: f.Limit})
	}
	if f.Offset != 0 {
		params = append(params, client.Param{Key: "offset", Value: f.Offset})
	}
	return params
}

type TransactionService struct {
	api IRequester
}

func NewTransactionService(api IRequester) *TransactionService {
	return &TransactionService{api: api}
}

func (s *TransactionService) List(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error) {
	resp, err := s.api.Get(ctx, "/transactions/", filter.params()...)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[[]model.Transaction](resp)
}

func (s *TransactionService) Get(ctx context.Context, id string) (*model.Transaction, error) {
	resp, err := s.api.Get(ctx, "/transactions/"+id)
	if err != nil {
		return nil, err
	}
	tx, err := decodeEnvelope[model.Transaction](resp)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *TransactionService) Create(ctx context.Context, req model.CreateTransactionRequest) (*model.Transaction, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}
	resp, err := s.api.Post(ctx, "/transactions/", req)
	if err != nil {
		return nil, err
	}
	tx, err := decodeEnvelope[model.Transaction](resp)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *TransactionService) Update(ctx context.Context, id string, req model.UpdateTransactionRequest) (*model.Transaction, error) {
	if id == "" {
		return nil, fmt.Errorf("transaction id required")
	}
	resp, err := s.api.Put(ctx, "/transactions/"+id, req)
	if err != nil {
		return nil, err
	}
	tx, err := decodeEnvelope[model.Transaction](resp)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *TransactionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("transaction id required")
	}
	_, err := s.api.Delete(ctx, "/transactions/"+id)
	return err
}
