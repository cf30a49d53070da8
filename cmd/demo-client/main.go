// The demo client plays the part of a third-party application integrating
// with TrueNamePath. It logs a user in, walks the OAuth authorization-code
// flow against the server, and asks for the contextual name its bearer token
// entitles it to see.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// envelope mirrors the server's response wrapper with the payload left raw
// so each call site can decode its own data type.
type envelope struct {
	Success   bool             `json:"success"`
	Data      json.RawMessage  `json:"data,omitempty"`
	Error     *models.APIError `json:"error,omitempty"`
	RequestID string           `json:"request_id"`
}

type authorizeResponse struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

type demoConfig struct {
	serverURL    string
	email        string
	password     string
	clientID     string
	clientSecret string
	redirectURI  string
	contextName  string
}

func main() {
	printBuildInfo()

	log := logger.NewLogger("truenamepath-demo")
	cfg := getDemoConfig()

	ctx := context.Background()
	rest := resty.New().SetBaseURL(cfg.serverURL)

	sessionToken, err := login(rest, cfg.email, cfg.password)
	if err != nil {
		log.Fatal().Err(err).Msg("login failed")
	}
	log.Info().Str("email", cfg.email).Msg("logged in")

	code, err := authorize(rest, sessionToken, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("authorization failed")
	}
	log.Info().Str("client_id", cfg.clientID).Msg("authorization code granted")

	oauthCfg := oauth2.Config{
		ClientID:     cfg.clientID,
		ClientSecret: cfg.clientSecret,
		RedirectURL:  cfg.redirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:   cfg.serverURL + "/api/oauth/authorize",
			TokenURL:  cfg.serverURL + "/api/oauth/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	bearer, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		log.Fatal().Err(err).Msg("code exchange failed")
	}
	log.Info().Time("expires", bearer.Expiry).Msg("bearer token issued")

	result, err := resolve(rest, bearer.AccessToken, cfg.contextName)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve failed")
	}

	fmt.Printf("Disclosed name: %q (source: %s)\n", result.Name, result.Source)
}

func getDemoConfig() demoConfig {
	var cfg demoConfig

	flag.StringVar(&cfg.serverURL, "server", envOr("TRUENAMEPATH_URL", "http://localhost:8080"), "TrueNamePath server base URL")
	flag.StringVar(&cfg.email, "email", os.Getenv("DEMO_USER_EMAIL"), "user email for the consent login")
	flag.StringVar(&cfg.password, "password", os.Getenv("DEMO_USER_PASSWORD"), "user password for the consent login")
	flag.StringVar(&cfg.clientID, "client-id", envOr("DEMO_CLIENT_ID", "truenamepath-demo"), "registered OAuth client id")
	flag.StringVar(&cfg.clientSecret, "client-secret", os.Getenv("DEMO_CLIENT_SECRET"), "registered OAuth client secret")
	flag.StringVar(&cfg.redirectURI, "redirect-uri", envOr("DEMO_REDIRECT_URI", "http://localhost:9094/callback"), "redirect URI registered for the client")
	flag.StringVar(&cfg.contextName, "context", "", "context to resolve (empty uses the client's pinned context)")
	flag.Parse()

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// login trades user credentials for a dashboard session token. The session
// stands in for the consent screen a browser flow would show.
func login(rest *resty.Client, email, password string) (string, error) {
	var env envelope

	resp, err := rest.R().
		SetBody(models.User{Email: email, Password: password}).
		SetResult(&env).
		SetError(&env).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("calling login: %w", err)
	}
	if resp.IsError() {
		return "", apiError(resp, env)
	}

	var token models.TokenResponse
	if err = json.Unmarshal(env.Data, &token); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}

	return token.AccessToken, nil
}

// authorize asks the server for a single-use authorization code on behalf of
// the logged-in user.
func authorize(rest *resty.Client, sessionToken string, cfg demoConfig) (string, error) {
	var env envelope

	resp, err := rest.R().
		SetAuthToken(sessionToken).
		SetBody(map[string]string{
			"client_id":    cfg.clientID,
			"redirect_uri": cfg.redirectURI,
		}).
		SetResult(&env).
		SetError(&env).
		Post("/api/oauth/authorize")
	if err != nil {
		return "", fmt.Errorf("calling authorize: %w", err)
	}
	if resp.IsError() {
		return "", apiError(resp, env)
	}

	var grant authorizeResponse
	if err = json.Unmarshal(env.Data, &grant); err != nil {
		return "", fmt.Errorf("decoding authorize response: %w", err)
	}

	return grant.Code, nil
}

// resolve calls the protected disclosure endpoint with the OAuth bearer
// token. An empty context name defers to the context the client is pinned to.
func resolve(rest *resty.Client, accessToken, contextName string) (models.ResolveResponse, error) {
	var env envelope

	req := rest.R().
		SetAuthToken(accessToken).
		SetResult(&env).
		SetError(&env)
	if contextName != "" {
		req.SetBody(models.ResolveRequest{ContextName: contextName})
	}

	resp, err := req.Post("/api/oauth/resolve")
	if err != nil {
		return models.ResolveResponse{}, fmt.Errorf("calling resolve: %w", err)
	}
	if resp.IsError() {
		return models.ResolveResponse{}, apiError(resp, env)
	}

	var result models.ResolveResponse
	if err = json.Unmarshal(env.Data, &result); err != nil {
		return models.ResolveResponse{}, fmt.Errorf("decoding resolve response: %w", err)
	}

	return result, nil
}

func apiError(resp *resty.Response, env envelope) error {
	if env.Error != nil {
		return fmt.Errorf("server returned %s: %s (%s)", resp.Status(), env.Error.Message, env.Error.Code)
	}
	return fmt.Errorf("server returned %s", resp.Status())
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
