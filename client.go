package rainviewer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultMapsURL   = "https://api.rainviewer.com/public/weather-maps.json"
	defaultUserAgent = "rain-viewer-go/1.0"
)

// Client represents a client for the RainViewer weather maps API
type Client struct {
	httpClient *http.Client
	mapsURL    string
	userAgent  string
	logger     zerolog.Logger
}

// NewClient creates a new client for the RainViewer weather maps API
func NewClient(userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		mapsURL:   defaultMapsURL,
		userAgent: userAgent,
		logger:    zerolog.Nop(),
	}
}

// NewClientWithHTTPClient creates a new client with a custom HTTP client
func NewClientWithHTTPClient(httpClient *http.Client, userAgent string) *Client {
	return &Client{
		httpClient: httpClient,
		mapsURL:    defaultMapsURL,
		userAgent:  userAgent,
		logger:     zerolog.Nop(),
	}
}

// SetMapsURL sets the discovery endpoint URL (useful for testing)
func (c *Client) SetMapsURL(mapsURL string) {
	c.mapsURL = mapsURL
}

// SetLogger sets the logger used for request logging. The client is
// silent by default.
func (c *Client) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// DefaultClient is the client used by the package-level Available and
// GetTile functions.
var DefaultClient = NewClient(defaultUserAgent)

// Available queries the RainViewer API for the radar and satellite frames
// that are currently published. It is the entry point for obtaining the
// path and time information GetTile needs.
//
// Every call issues a fresh request; the listing is not cached.
func (c *Client) Available(ctx context.Context) (*WeatherMaps, error) {
	body, err := c.get(ctx, c.mapsURL, "application/json")
	if err != nil {
		return nil, err
	}

	var raw rawWeatherMaps
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if raw.Host == "" {
		return nil, &DecodeError{Err: errors.New("response is missing the tile host")}
	}

	return &WeatherMaps{
		Version:           raw.Version,
		Generated:         raw.Generated,
		Host:              raw.Host,
		PastRadar:         raw.Radar.Past,
		NowcastRadar:      raw.Radar.Nowcast,
		InfraredSatellite: raw.Satellite.Infrared,
	}, nil
}

// GetTile fetches a single PNG tile for the given frame.
//
// maps must be the WeatherMaps the frame came from, so the request hits
// the tile host the service assigned. The response body is returned
// verbatim; it is expected to be PNG data but the bytes are not inspected.
func (c *Client) GetTile(ctx context.Context, maps *WeatherMaps, frame *Frame, args *RequestArguments) ([]byte, error) {
	tileURL := buildTileURL(maps.Host, frame, args)
	return c.get(ctx, tileURL, "image/png")
}

// get performs a single GET request and returns the body on HTTP 200
func (c *Client) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)

	c.logger.Debug().Str("url", url).Msg("requesting")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Operation: "GET " + url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Operation: "GET " + url, Err: err}
	}

	return body, nil
}

// Available queries the RainViewer API using DefaultClient
func Available(ctx context.Context) (*WeatherMaps, error) {
	return DefaultClient.Available(ctx)
}

// GetTile fetches a single PNG tile using DefaultClient
func GetTile(ctx context.Context, maps *WeatherMaps, frame *Frame, args *RequestArguments) ([]byte, error) {
	return DefaultClient.GetTile(ctx, maps, frame, args)
}
