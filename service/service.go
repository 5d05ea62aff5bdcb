package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/client"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/model"
)

// IRequester is the slice of the API client the resource services depend
// on. The concrete client satisfies it; tests substitute a mock.
type IRequester interface {
	Get(ctx context.Context, endpoint string, params ...client.Param) (*client.Response, error)
	Post(ctx context.Context, endpoint string, body any) (*client.Response, error)
	Put(ctx context.Context, endpoint string, body any) (*client.Response, error)
	Delete(ctx context.Context, endpoint string) (*client.Response, error)
}

// decodeEnvelope unwraps the API's {"data": ...} wrapper into a typed
// value.
func decodeEnvelope[T any](resp *client.Response) (T, error) {
	var env model.Envelope[T]
	if err := json.Unmarshal(resp.Data, &env); err != nil {
		var zero T
		return zero, fmt.Errorf("decode response: %w", err)
	}
	return env.Data, nil
}
