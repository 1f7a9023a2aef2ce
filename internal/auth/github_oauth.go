package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// ErrNotAllowed is returned for GitHub users outside the admin allowlist.
var ErrNotAllowed = errors.New("github user is not an administrator")

// GitHub endpoints
const (
	GitHubAuthorizeURL = "https://github.com/login/oauth/authorize"
	GitHubTokenURL     = "https://github.com/login/oauth/access_token"
	GitHubAPIURL       = "https://api.github.com"
)

// GitHubOAuth handles signing admins in with GitHub.
type GitHubOAuth struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	Scopes       []string

	// Endpoints, overridable for tests.
	AuthorizeEndpoint string
	TokenEndpoint     string
	APIEndpoint       string
	HTTPClient        *http.Client

	allowed map[string]bool
}

// GitHubUser represents a GitHub user profile.
type GitHubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
}

// GitHubTokenResponse represents the token exchange response.
type GitHubTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	Error       string `json:"error"`
	ErrorDesc   string `json:"error_description"`
}

// NewGitHubOAuth creates a new GitHub OAuth client admitting only the given
// logins (case-insensitive).
func NewGitHubOAuth(clientID, clientSecret, callbackURL string, adminLogins []string) *GitHubOAuth {
	allowed := make(map[string]bool, len(adminLogins))
	for _, login := range adminLogins {
		allowed[strings.ToLower(login)] = true
	}
	return &GitHubOAuth{
		ClientID:          clientID,
		ClientSecret:      clientSecret,
		CallbackURL:       callbackURL,
		Scopes:            []string{"read:user", "user:email"},
		AuthorizeEndpoint: GitHubAuthorizeURL,
		TokenEndpoint:     GitHubTokenURL,
		APIEndpoint:       GitHubAPIURL,
		HTTPClient:        http.DefaultClient,
		allowed:           allowed,
	}
}

// Allowed reports whether login may sign in.
func (g *GitHubOAuth) Allowed(login string) bool {
	return g.allowed[strings.ToLower(login)]
}

// AuthorizeURL returns the GitHub OAuth authorization URL.
func (g *GitHubOAuth) AuthorizeURL(state string) string {
	params := url.Values{
		"client_id":    {g.ClientID},
		"redirect_uri": {g.CallbackURL},
		"scope":        {strings.Join(g.Scopes, " ")},
		"state":        {state},
	}
	return g.AuthorizeEndpoint + "?" + params.Encode()
}

// ExchangeCode exchanges the authorization code for an access token.
func (g *GitHubOAuth) ExchangeCode(ctx context.Context, code string) (string, error) {
	data := url.Values{
		"client_id":     {g.ClientID},
		"client_secret": {g.ClientSecret},
		"code":          {code},
		"redirect_uri":  {g.CallbackURL},
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.TokenEndpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var token GitHubTokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", err
	}

	if token.Error != "" {
		return "", fmt.Errorf("github oauth error: %s - %s", token.Error, token.ErrorDesc)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("github oauth error: empty access token")
	}

	return token.AccessToken, nil
}

// GetUser fetches the authenticated user's profile.
func (g *GitHubOAuth) GetUser(ctx context.Context, accessToken string) (*GitHubUser, error) {
	resp, err := g.apiGet(ctx, accessToken, "/user")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("github api error: %s", string(body))
	}

	var user GitHubUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}

	// Fetch primary email if not public
	if user.Email == "" {
		email, err := g.getPrimaryEmail(ctx, accessToken)
		if err == nil {
			user.Email = email
		}
	}

	return &user, nil
}

// Admit converts an allowlisted GitHub user into an admin account.
func (g *GitHubOAuth) Admit(user *GitHubUser) (*Account, error) {
	if user == nil || !g.Allowed(user.Login) {
		return nil, ErrNotAllowed
	}
	name := user.Name
	if name == "" {
		name = user.Login
	}
	return &Account{
		ID:    uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/"+strings.ToLower(user.Login))),
		Email: NormalizeEmail(user.Email),
		Name:  name,
	}, nil
}

// getPrimaryEmail fetches the user's primary verified email.
func (g *GitHubOAuth) getPrimaryEmail(ctx context.Context, accessToken string) (string, error) {
	resp, err := g.apiGet(ctx, accessToken, "/user/emails")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&emails); err != nil {
		return "", err
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}

	return "", fmt.Errorf("no primary verified email found")
}

func (g *GitHubOAuth) apiGet(ctx context.Context, accessToken, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", g.APIEndpoint+path, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	return g.HTTPClient.Do(req)
}
