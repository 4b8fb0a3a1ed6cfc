// Package weather talks to the OpenWeatherMap API and turns its responses
// into display-ready conditions and forecasts.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// ErrCityNotFound is returned when the API does not know the queried city.
var ErrCityNotFound = errors.New("city not found")

// Client is an OpenWeatherMap API client. Responses stay in the API's SI
// units (Kelvin, m/s); conversion for display is the Units type's job.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Current holds current conditions for a city.
type Current struct {
	City        string
	Temp        float64 // Kelvin
	FeelsLike   float64 // Kelvin
	Humidity    int     // percent
	Wind        float64 // m/s
	Description string
	ConditionID int
}

type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"weather"`
}

// Current fetches current conditions for a city.
func (c *Client) Current(ctx context.Context, city string) (*Current, error) {
	var body currentResponse
	if err := c.get(ctx, "/weather", city, &body); err != nil {
		return nil, err
	}

	cur := &Current{
		City:      body.Name,
		Temp:      body.Main.Temp,
		FeelsLike: body.Main.FeelsLike,
		Humidity:  body.Main.Humidity,
		Wind:      body.Wind.Speed,
	}
	if len(body.Weather) > 0 {
		cur.Description = body.Weather[0].Description
		cur.ConditionID = body.Weather[0].ID
	}
	return cur, nil
}

// Slot is one 3-hour forecast interval.
type Slot struct {
	Time        time.Time
	Temp        float64 // Kelvin
	Description string
	ConditionID int
}

type forecastResponse struct {
	List []struct {
		DT   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			ID          int    `json:"id"`
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// Forecast fetches the 5-day / 3-hour forecast for a city, in feed order.
func (c *Client) Forecast(ctx context.Context, city string) ([]Slot, error) {
	var body forecastResponse
	if err := c.get(ctx, "/forecast", city, &body); err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, len(body.List))
	for _, e := range body.List {
		s := Slot{Time: time.Unix(e.DT, 0).UTC(), Temp: e.Main.Temp}
		if len(e.Weather) > 0 {
			s.Description = e.Weather[0].Description
			s.ConditionID = e.Weather[0].ID
		}
		slots = append(slots, s)
	}
	return slots, nil
}

func (c *Client) get(ctx context.Context, path, city string, out interface{}) error {
	v := url.Values{}
	v.Set("q", city)
	v.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+v.Encode(), nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetching weather for %q: %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%q: %w", city, ErrCityNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("weather API %d: %s", resp.StatusCode, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding weather response: %w", err)
	}
	return nil
}
