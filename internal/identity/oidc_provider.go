package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/soundvault/soundvault/internal/usecase"
)

// Config points at the OIDC realm this service authenticates against.
type Config struct {
	ServerURL    string
	Realm        string
	ClientID     string
	ClientSecret string
}

// implements usecase.IdentityProvider
type OIDCProvider struct {
	cfg    Config
	oauth  oauth2.Config
	admin  clientcredentials.Config
	jwks   *keyfunc.JWKS
	client *http.Client
}

func NewOIDCProvider(cfg Config) (*OIDCProvider, error) {
	base := fmt.Sprintf("%s/realms/%s", cfg.ServerURL, cfg.Realm)
	tokenURL := base + "/protocol/openid-connect/token"

	jwks, err := keyfunc.Get(base+"/protocol/openid-connect/certs", keyfunc.Options{
		RefreshInterval:   time.Hour,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load provider JWKS: %w", err)
	}

	return &OIDCProvider{
		cfg: cfg,
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
		},
		admin: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
		},
		jwks:   jwks,
		client: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Login performs the resource-owner password grant and returns the
// access token.
func (p *OIDCProvider) Login(ctx context.Context, email, password string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)
	tok, err := p.oauth.PasswordCredentialsToken(ctx, email, password)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	return tok.AccessToken, nil
}

// CreateUser registers the user through the provider's admin API and
// returns the created subject id from the Location header.
func (p *OIDCProvider) CreateUser(ctx context.Context, rc usecase.RegisterCustomer) (string, error) {
	body, err := json.Marshal(map[string]any{
		"username":      rc.Email,
		"email":         rc.Email,
		"firstName":     rc.Name,
		"enabled":       true,
		"emailVerified": false,
		"credentials": []map[string]any{{
			"type":      "password",
			"value":     rc.Password,
			"temporary": false,
		}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/admin/realms/%s/users", p.cfg.ServerURL, p.cfg.Realm)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)
	resp, err := p.admin.Client(ctx).Do(req)
	if err != nil {
		return "", fmt.Errorf("user creation failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("user creation failed: status %d", resp.StatusCode)
	}

	// Location: .../users/<id>
	uid := path.Base(resp.Header.Get("Location"))
	if uid == "" || uid == "." {
		return "", fmt.Errorf("user creation response missing location")
	}
	return uid, nil
}

// VerifyToken validates the bearer token signature against the realm
// JWKS and returns its subject.
func (p *OIDCProvider) VerifyToken(_ context.Context, raw string) (string, error) {
	claims := jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, &claims, p.jwks.Keyfunc)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if !tok.Valid {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Subject, nil
}

func (p *OIDCProvider) Close() {
	p.jwks.EndBackground()
}
