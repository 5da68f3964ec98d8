package youtube

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

var oauthScopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/youtube.readonly",
	"https://www.googleapis.com/auth/yt-analytics.readonly",
	"https://www.googleapis.com/auth/yt-analytics-monetary.readonly",
}

// AuthCodeURL builds the consent page URL. Offline access with forced consent
// so google returns a refresh token on every connect.
func (c *Client) AuthCodeURL(state string) string {
	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("redirect_uri", c.redirectURL)
	params.Set("response_type", "code")
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	params.Set("scope", strings.Join(oauthScopes, " "))
	params.Set("state", state)

	return oauthAuthURL + "?" + params.Encode()
}

// ExchangeCode trades the callback code for tokens.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	var token Token
	var apiErr errorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"client_id":     c.clientID,
			"client_secret": c.clientSecret,
			"code":          code,
			"grant_type":    "authorization_code",
			"redirect_uri":  c.redirectURL,
		}).
		SetResult(&token).
		SetError(&apiErr).
		Post(oauthTokenURL)
	if err != nil {
		return nil, fmt.Errorf("code exchange: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("code exchange: status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("code exchange: empty access token")
	}

	return &token, nil
}

// RefreshToken obtains a fresh access token for a stored refresh credential.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*Token, error) {
	var token Token
	var apiErr errorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"client_id":     c.clientID,
			"client_secret": c.clientSecret,
			"refresh_token": refreshToken,
			"grant_type":    "refresh_token",
		}).
		SetResult(&token).
		SetError(&apiErr).
		Post(oauthTokenURL)
	if err != nil {
		return nil, fmt.Errorf("token refresh: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("token refresh: status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("token refresh: empty access token")
	}

	return &token, nil
}
