package service

import (
	"context"
	"fmt"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/common"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/model"
)

type AccountService struct {
	api IRequester
}

func NewAccountService(api IRequester) *AccountService {
	return &AccountService{api: api}
}

func (s *AccountService) List(ctx context.Context) ([]model.Account, error) {
	resp, err := s.api.Get(ctx, "/accounts/")
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[[]model.Account](resp)
}

func (s *AccountService) Get(ctx context.Context, id string) (*model.Account, error) {
	resp, err := s.api.Get(ctx, "/accounts/"+id)
	if err != nil {
		return nil, err
	}
	account, err := decodeEnvelope[model.Account](resp)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *AccountService) Create(ctx context.Context, req model.CreateAccountRequest) (*model.Account, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}
	resp, err := s.api.Post(ctx, "/accounts/", req)
	if err != nil {
		return nil, err
	}
	account, err := decodeEnvelope[model.Account](resp)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *AccountService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("account id required")
	}
	_, err := s.api.Delete(ctx, "/accounts/"+id)
	return err
}
