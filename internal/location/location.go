// Package location resolves the user's city from their public IP. Used only
// as a fallback when no city is given or configured.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultEndpoint = "http://ip-api.com/json/"

// Detector is an IP-geolocation client.
type Detector struct {
	Endpoint string
	Client   *http.Client
}

func NewDetector() *Detector {
	return &Detector{Endpoint: defaultEndpoint, Client: http.DefaultClient}
}

type response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	City    string `json:"city"`
}

// Detect returns the current city. Best effort with a short timeout; any
// failure is an error the caller falls back from.
func (d *Detector) Detect(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.Endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("building location request: %w", err)
	}

	resp, err := d.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("detecting location: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("location service returned %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding location response: %w", err)
	}
	if body.Status != "success" || body.City == "" {
		return "", fmt.Errorf("could not detect location: %s", body.Message)
	}
	return body.City, nil
}
