package service

import (
	"context"
	"fmt"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/client"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/common"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/model"
)

type BudgetService struct {
	api IRequester
}

func NewBudgetService(api IRequester) *BudgetService {
	return &BudgetService{api: api}
}

// List returns the budgets for one month; month and year of zero mean the
// server's current period.
func (s *BudgetService) List(ctx context.Context, month, year int) ([]model.Budget, error) {
	var params []client.Param
	if month != 0 {
		params = append(params, client.Param{Key: "month", Value: month})
	}
	if year != 0 {
		params = append(params, client.Param{Key: "year", Value: year})
	}
	resp, err := s.api.Get(ctx, "/budgets/", params...)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[[]model.Budget](resp)
}

// Set creates or replaces the budget for a category and month.
func (s *BudgetService) Set(ctx context.Context, req model.SetBudgetRequest) (*model.Budget, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}
	resp, err := s.api.Post(ctx, "/budgets/", req)
	if err != nil {
		return nil, err
	}
	budget, err := decodeEnvelope[model.Budget](resp)
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

func (s *BudgetService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("budget id required")
	}
	_, err := s.api.Delete(ctx, "/budgets/"+id)
	return err
}
