// Package auth handles OAuth2 login against a configurable provider.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/rewindhq/rewind/internal/config"
)

var (
	// ErrStateMismatch is returned when the OAuth state parameter doesn't match.
	ErrStateMismatch = errors.New("OAuth state mismatch")

	// ErrDisabled is returned when login is attempted without OAuth configured.
	ErrDisabled = errors.New("login is not configured")
)

// Identity is the authenticated user as reported by the provider.
type Identity struct {
	ID          string
	DisplayName string
}

// Provider runs the OAuth2 authorization code flow and resolves the
// resulting token to a user identity via the provider's userinfo
// endpoint.
type Provider struct {
	oauth       *oauth2.Config
	userinfoURL string
	client      *http.Client
}

// Option configures a Provider.
type Option func(*Provider)

// WithHTTPClient overrides the HTTP client used for userinfo lookups.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) { p.client = c }
}

// New builds a Provider from cfg. Returns nil when login is not
// configured; callers treat a nil provider as login disabled.
func New(cfg *config.Config, opts ...Option) *Provider {
	if !cfg.LoginEnabled() {
		return nil
	}
	p := &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       []string{"openid", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuthAuthURL,
				TokenURL: cfg.OAuthTokenURL,
			},
		},
		userinfoURL: cfg.OAuthUserinfoURL,
		client:      http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AuthURL returns the provider consent page URL for the given state.
func (p *Provider) AuthURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// Exchange trades an authorization code for the user's identity.
func (p *Provider) Exchange(ctx context.Context, code string) (*Identity, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging code for token: %w", err)
	}
	return p.userinfo(ctx, token)
}

func (p *Provider) userinfo(ctx context.Context, token *oauth2.Token) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userinfoURL, nil)
	if err != nil {
		return nil, err
	}
	token.SetAuthHeader(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("userinfo returned %d: %s", resp.StatusCode, body)
	}

	var info struct {
		Sub   string `json:"sub"`
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decoding userinfo: %w", err)
	}

	id := info.Sub
	if id == "" {
		id = info.ID
	}
	if id == "" {
		return nil, errors.New("userinfo response has no subject id")
	}
	name := info.Name
	if name == "" {
		name = info.Email
	}
	return &Identity{ID: id, DisplayName: name}, nil
}

// GenerateState creates a random state string for OAuth.
func GenerateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
