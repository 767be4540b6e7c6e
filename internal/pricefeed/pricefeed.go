package pricefeed

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"budget-meal-planner/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// PriceEntry is a single item price returned by the feed.
type PriceEntry struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Store     string  `json:"store"`
	UpdatedAt string  `json:"updated_at"`
}

// lookupResponse is the top-level structure of a feed lookup.
type lookupResponse struct {
	Prices []PriceEntry `json:"prices"`
}

// Client is an interface for a hosted grocery price feed.
type Client interface {
	Lookup(ctx context.Context, name, zipCode string) (float64, string, error)
}

type feedClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient creates a new price feed client.
func NewClient(cfg *config.Config) Client {
	return &feedClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		config:     cfg,
	}
}

// Lookup fetches the current price for an item near a ZIP code.
func (c *feedClient) Lookup(ctx context.Context, name, zipCode string) (float64, string, error) {
	token, err := c.createToken()
	if err != nil {
		return 0, "", fmt.Errorf("failed to create feed token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/prices?item=%s&zip=%s",
		c.config.PriceFeedURL, url.QueryEscape(name), url.QueryEscape(zipCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, "", fmt.Errorf("price feed error: status %d", resp.StatusCode)
	}

	var response lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return 0, "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(response.Prices) == 0 {
		return 0, "", fmt.Errorf("no price returned for %q", name)
	}

	entry := response.Prices[0]
	return entry.Price, entry.Store, nil
}

// createToken generates a short-lived JWT for the feed API. The configured
// secret has the form id:secrethex.
func (c *feedClient) createToken() (string, error) {
	keyParts := strings.Split(c.config.PriceFeedSecret, ":")
	if len(keyParts) != 2 {
		return "", fmt.Errorf("invalid feed key format: expected id:secret")
	}

	id := keyParts[0]
	secret, err := hex.DecodeString(keyParts[1])
	if err != nil {
		return "", fmt.Errorf("failed to decode secret hex: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(5 * time.Minute).Unix(),
		"aud": "/v1/prices/",
	})
	token.Header["kid"] = id

	return token.SignedString(secret)
}
