// file: model/token.go

package model

import "time"

// Session holds the credential triple returned by the login and register
// endpoints.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
}

// RefreshResponse mirrors the session-renewal endpoint's body, which nests
// the new credential triple under "data" and names the user id "id".
type RefreshResponse struct {
	Data struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ID           string `json:"id"`
	} `json:"data"`
}

// AccessTokenInfo is the decoded, display-only view of the stored access
// token. The client never trusts these fields for authorization decisions.
type AccessTokenInfo struct {
	UserID    string
	Subject   string
	ExpiresAt time.Time
}
