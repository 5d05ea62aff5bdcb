package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/model"
)

type ProfileService struct {
	api IRequester
}

func NewProfileService(api IRequester) *ProfileService {
	return &ProfileService{api: api}
}

// Me returns the authenticated user's profile.
func (s *ProfileService) Me(ctx context.Context) (*model.Profile, error) {
	resp, err := s.api.Get(ctx, "/profile/me")
	if err != nil {
		return nil, err
	}
	profile, err := decodeEnvelope[model.Profile](resp)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Health checks the API's health endpoint. It is a public endpoint, works
// without stored credentials, and is the one response the API does not
// wrap in the data envelope.
func (s *ProfileService) Health(ctx context.Context) (*model.Health, error) {
	resp, err := s.api.Get(ctx, "/health")
	if err != nil {
		return nil, err
	}
	var health model.Health
	if err := json.Unmarshal(resp.Data, &health); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &health, nil
}
