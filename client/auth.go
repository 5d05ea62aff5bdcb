// file: client/auth.go

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/common"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/logger"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/model"
)

// ErrNotAuthenticated is returned by operations that need a stored access
// token when none is present.
var ErrNotAuthenticated = errors.New("not authenticated")

// Login posts the credentials to the login endpoint and persists the
// returned triple. The call bypasses the bearer-token path because it
// establishes the session rather than using one.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Session, error) {
	req := model.LoginRequest{Email: email, Password: password}
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}

	session, err := c.authenticate(ctx, "/auth/login", req)
	if err != nil {
		return nil, err
	}
	logger.Log.WithField("user_id", session.UserID).Info("Logged in")
	return session, nil
}

// Register creates a new user and persists the returned session, exactly
// like Login. The display name is optional.
func (c *Client) Register(ctx context.Context, email, password, fullName string) (*model.Session, error) {
	req := model.RegisterRequest{Email: email, Password: password, FullName: fullName}
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}

	session, err := c.authenticate(ctx, "/auth/register", req)
	if err != nil {
		return nil, err
	}
	logger.Log.WithField("user_id", session.UserID).Info("Registered")
	return session, nil
}

func (c *Client) authenticate(ctx context.Context, endpoint string, payload any) (*model.Session, error) {
	raw, err := marshalBody(payload)
	if err != nil {
		return nil, err
	}
	resp, err := c.Request(ctx, endpoint, RequestOptions{Method: http.MethodPost, Body: raw}, false)
	if err != nil {
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(resp.Data, &session); err != nil {
		return nil, fmt.Errorf("decode session response: %w", err)
	}
	if err := c.store.SetTokens(session.AccessToken, session.RefreshToken, session.UserID); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return &session, nil
}

// Logout clears the stored credentials. It is purely local and never
// contacts the server, so it cannot fail for reachability reasons.
func (c *Client) Logout() error {
	if err := c.store.ClearTokens(); err != nil {
		return err
	}
	logger.Log.Info("Logged out")
	return nil
}

// TokenInfo decodes the stored access token's claims for display purposes.
// The token is parsed without signature verification: the client has no key
// material and never uses these fields for authorization.
func (c *Client) TokenInfo() (*model.AccessTokenInfo, error) {
	raw := c.store.GetAccessToken()
	if raw == "" {
		return nil, ErrNotAuthenticated
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}

	info := &model.AccessTokenInfo{UserID: c.store.GetUserID()}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
