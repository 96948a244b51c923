package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/brightops/campaign-backend/internal/cache"
)

// UnknownCountry is returned whenever the lookup cannot resolve a country.
const UnknownCountry = "Unknown"

// Client resolves the country for an IP address against an ip-api style
// endpoint. Lookup failures never propagate; callers always get a usable
// country string.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      cache.Cache
}

// NewClient creates a new geolocation client. The cache is optional.
func NewClient(baseURL string, c cache.Cache) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		cache: c,
	}
}

// Country returns the country for the given IP, or "Unknown"
func (c *Client) Country(ctx context.Context, ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() {
		return UnknownCountry
	}

	cacheKey := "geoip:" + ip
	if c.cache != nil {
		if val, err := c.cache.Get(ctx, cacheKey); err == nil && val != "" {
			return val
		}
	}

	url := fmt.Sprintf("%s/json/%s?fields=country", c.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return UnknownCountry
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UnknownCountry
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return UnknownCountry
	}

	var body struct {
		Country string `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Country == "" {
		return UnknownCountry
	}

	if c.cache != nil {
		_ = c.cache.Set(ctx, cacheKey, body.Country)
	}
	return body.Country
}
