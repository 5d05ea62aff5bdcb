// file: client/refresh.go

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/logger"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/model"
)

// ErrNoRefreshToken is returned when a refresh is attempted without a
// stored refresh token. No network call is made in that case.
var ErrNoRefreshToken = errors.New("no refresh token stored")

// refreshSession exchanges the stored refresh token for a new credential
// pair. Concurrent callers join the in-flight attempt instead of issuing a
// second network call: refresh tokens are single-use server-side, so two
// near-simultaneous expiry events must consume the token exactly once.
// The in-flight slot clears when the attempt settles, so the next expiry
// event starts fresh.
func (c *Client) refreshSession(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		return nil, c.doRefresh(ctx)
	})
	return err
}

func (c *Client) doRefresh(ctx context.Context) error {
	refreshToken := c.store.GetRefreshToken()
	if refreshToken == "" {
		return ErrNoRefreshToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/refresh/", nil)
	if err != nil {
		return fmt.Errorf("build refresh request: %w", err)
	}
	// No bearer token on this call; the refresh token travels in its own
	// header.
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerRefreshToken, refreshToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.settleFailedRefresh(refreshToken, fmt.Errorf("refresh request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.settleFailedRefresh(refreshToken, fmt.Errorf("refresh rejected with status %d", resp.StatusCode))
	}

	var body model.RefreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode refresh response: %w", err)
	}
	if err := c.store.SetTokens(body.Data.AccessToken, body.Data.RefreshToken, body.Data.ID); err != nil {
		return fmt.Errorf("persist refreshed tokens: %w", err)
	}

	logger.Log.Debug("Session refreshed")
	return nil
}

// settleFailedRefresh decides what a failed refresh attempt means. If the
// stored refresh token changed while the attempt was in flight, another
// actor (typically a second browser tab or process) already completed a
// refresh and consumed the token we sent; the rejection is expected and the
// attempt counts as a success. Otherwise the session is gone: clear all
// credentials and report the failure.
func (c *Client) settleFailedRefresh(startedWith string, cause error) error {
	if current := c.store.GetRefreshToken(); current != "" && current != startedWith {
		logger.Log.Info("Refresh lost a race to another session holder, keeping its credentials")
		return nil
	}
	if clearErr := c.store.ClearTokens(); clearErr != nil {
		logger.Log.WithError(clearErr).Warn("Failed to clear credentials after refresh failure")
	}
	return cause
}
