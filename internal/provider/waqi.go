// Package provider talks to the World Air Quality Index (WAQI) API. The
// client is kept behind a narrow interface so the pollutant remapping and
// suggestion truncation can be tested without live network access.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"airqual/internal/aqi"
)

// Reading is a normalized current-conditions record from the provider.
type Reading struct {
	AQI               float64            `json:"aqi"`
	Pollutants        map[string]float64 `json:"pollutants"`
	Location          string             `json:"location"`
	Timestamp         string             `json:"timestamp"` // ISO 8601
	DominantPollutant string             `json:"dominant_pollutant,omitempty"`
	Raw               json.RawMessage    `json:"-"` // full provider payload
}

// Client is the narrow surface the rest of the application depends on.
type Client interface {
	// FetchByCity returns the current reading for a city name. When the
	// provider reports an unknown city, the error is a *CityNotFoundError
	// carrying up to 5 alternative location-name suggestions.
	FetchByCity(ctx context.Context, city string) (*Reading, error)

	// SearchByKeyword returns station-name suggestions for a keyword.
	SearchByKeyword(ctx context.Context, keyword string) ([]string, error)
}

// CityNotFoundError is returned when the provider does not know the requested
// city. Suggestions come from the provider's search endpoint.
type CityNotFoundError struct {
	City        string
	Suggestions []string
}

func (e *CityNotFoundError) Error() string {
	return fmt.Sprintf("city %q not found", e.City)
}

const (
	defaultBaseURL = "https://api.waqi.info"

	// DemoToken is the shared token the provider accepts for evaluation use.
	// Used when no API token is configured.
	DemoToken = "demo"

	maxSuggestions = 5
)

// pollutantNames remaps provider parameter keys to display names. Keys the
// provider reports outside this table are dropped.
var pollutantNames = map[string]string{
	"pm25": "PM2.5",
	"pm10": "PM10",
	"o3":   "O3",
	"no2":  "NO2",
	"so2":  "SO2",
	"co":   "CO",
}

var citySanitizer = regexp.MustCompile(`[^\w ]`)

// WAQIClient implements Client against the WAQI HTTP API.
// No retry, no backoff, no caching: each call is a fresh outbound request.
type WAQIClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewWAQIClient creates a client for the given API token. An empty token
// falls back to the shared demo token.
func NewWAQIClient(token string) *WAQIClient {
	if token == "" {
		token = DemoToken
	}
	return &WAQIClient{
		baseURL: defaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewWAQIClientWithBaseURL is used by tests to point the client at a stub server.
func NewWAQIClientWithBaseURL(baseURL, token string) *WAQIClient {
	c := NewWAQIClient(token)
	c.baseURL = baseURL
	return c
}

// Wire types for the provider's JSON responses.

type feedEnvelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type feedData struct {
	// Raw because the provider reports stations with no current index as
	// "aqi":"-" rather than a number.
	AQI  json.RawMessage `json:"aqi"`
	IAQI map[string]struct {
		V float64 `json:"v"`
	} `json:"iaqi"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	Dominentpol string `json:"dominentpol"` // provider's spelling
	Time        struct {
		ISO string `json:"iso"`
	} `json:"time"`
}

type searchEnvelope struct {
	Status string `json:"status"`
	Data   []struct {
		Station struct {
			Name string `json:"name"`
		} `json:"station"`
	} `json:"data"`
}

// FetchByCity fetches the current reading for a city.
func (c *WAQIClient) FetchByCity(ctx context.Context, city string) (*Reading, error) {
	sanitized := sanitizeCity(city)

	endpoint := fmt.Sprintf("%s/feed/%s/?token=%s", c.baseURL, url.PathEscape(sanitized), url.QueryEscape(c.token))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var envelope feedEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode feed response: %w", err)
	}

	if envelope.Status != "ok" {
		// Error envelopes carry the message in the data field. Only the
		// unknown-station message means the city does not exist; anything
		// else (bad token, quota) is a plain provider failure.
		var message string
		_ = json.Unmarshal(envelope.Data, &message)
		if !strings.EqualFold(message, "unknown station") {
			if message == "" {
				message = envelope.Status
			}
			return nil, fmt.Errorf("provider error: %s", message)
		}

		// Ask the search endpoint for spelling suggestions before giving up.
		suggestions, searchErr := c.SearchByKeyword(ctx, sanitized)
		if searchErr != nil {
			suggestions = nil
		}
		return nil, &CityNotFoundError{City: city, Suggestions: suggestions}
	}

	var data feedData
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, fmt.Errorf("decode feed data: %w", err)
	}

	raw := make(map[string]float64, len(data.IAQI))
	pollutants := make(map[string]float64, len(data.IAQI))
	for key, v := range data.IAQI {
		raw[key] = v.V
		if name, ok := pollutantNames[key]; ok {
			pollutants[name] = v.V
		}
	}

	// The aqi field is occasionally "-" for stations with no current index;
	// fall back to computing one from the pollutant sub-readings.
	value, ok := parseAQIValue(data.AQI)
	if !ok {
		value = float64(aqi.Compute(raw))
	}

	location := data.City.Name
	if location == "" {
		location = city
	}

	timestamp := data.Time.ISO
	if timestamp == "" {
		timestamp = time.Now().Format(time.RFC3339)
	}

	return &Reading{
		AQI:               value,
		Pollutants:        pollutants,
		Location:          location,
		Timestamp:         timestamp,
		DominantPollutant: data.Dominentpol,
		Raw:               body,
	}, nil
}

// SearchByKeyword returns up to 5 station-name suggestions for a keyword.
func (c *WAQIClient) SearchByKeyword(ctx context.Context, keyword string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/search/?token=%s&keyword=%s", c.baseURL, url.QueryEscape(c.token), url.QueryEscape(keyword))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var envelope searchEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	suggestions := make([]string, 0, maxSuggestions)
	for _, result := range envelope.Data {
		if result.Station.Name == "" {
			continue
		}
		suggestions = append(suggestions, result.Station.Name)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions, nil
}

func (c *WAQIClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider error: status=%d body=%s", resp.StatusCode, string(body))
	}
	return body, nil
}

// parseAQIValue extracts a numeric index from the raw aqi field, accepting
// either a JSON number or a numeric string. "-", null, and a missing field
// all report false.
func parseAQIValue(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return number, true
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if number, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			return number, true
		}
	}
	return 0, false
}

// sanitizeCity strips everything outside the word/space set before the name
// is placed in a request path.
func sanitizeCity(city string) string {
	return strings.TrimSpace(citySanitizer.ReplaceAllString(city, ""))
}
