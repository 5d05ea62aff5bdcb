package service

import (
	"context"
	"fmt"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/client"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/common"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/model"
)

type CategoryService struct {
	api IRequester
}

func NewCategoryService(api IRequester) *CategoryService {
	return &CategoryService{api: api}
}

// List returns the user's categories, optionally filtered by type
// (income, expense or saving).
func (s *CategoryService) List(ctx context.Context, categoryType string) ([]model.Category, error) {
	var params []client.Param
	if categoryType != "" {
		params = append(params, client.Param{Key: "type", Value: categoryType})
	}
	resp, err := s.api.Get(ctx, "/categories/", params...)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[[]model.Category](resp)
}

func (s *CategoryService) Create(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}
	resp, err := s.api.Post(ctx, "/categories/", req)
	if err != nil {
		return nil, err
	}
	category, err := decodeEnvelope[model.Category](resp)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("category id required")
	}
	_, err := s.api.Delete(ctx, "/categories/"+id)
	return err
}
