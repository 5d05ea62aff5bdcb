package service

import (
	"context"
	"fmt"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/common"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/model"
)

type FundService struct {
	api IRequester
}

func NewFundService(api IRequester) *FundService {
	return &FundService{api: api}
}

func (s *FundService) List(ctx context.Context) ([]model.Fund, error) {
	resp, err := s.api.Get(ctx, "/funds/")
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[[]model.Fund](resp)
}

func (s *FundService) Create(ctx context.Context, req model.CreateFundRequest) (*model.Fund, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}
	resp, err := s.api.Post(ctx, "/funds/", req)
	if err != nil {
		return nil, err
	}
	fund, err := decodeEnvelope[model.Fund](resp)
	if err != nil {
		return nil, err
	}
	return &fund, nil
}

func (s *FundService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("fund id required")
	}
	_, err := s.api.Delete(ctx, "/funds/"+id)
	return err
}
