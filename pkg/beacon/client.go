// Package beacon fetches pulses from a public randomness beacon. A BEACON
// draw derives its seed from a published pulse, so anyone holding the round
// number can re-run the selection and verify the winners.
package beacon

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rafflewise/draw-engine/pkg/randpick"
)

// Pulse is one beacon emission reduced to what a draw needs
type Pulse struct {
	Round uint64 `json:"round"`
	Seed  int64  `json:"seed"`
}

// PulseSource yields beacon pulses
type PulseSource interface {
	LatestPulse(ctx context.Context) (Pulse, error)
}

// Client represents a randomness beacon client
type Client struct {
	BaseURL    string
	APIKey     string
	MockBeacon bool
	client     *http.Client

	mockRound uint64
}

// NewClient creates a new beacon client
func NewClient(baseURL, apiKey string, mockBeacon bool) *Client {
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		MockBeacon: mockBeacon,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// pulseResponse is the beacon's wire format
type pulseResponse struct {
	Round      uint64 `json:"round"`
	Randomness string `json:"randomness"` // Hex-encoded pulse output
}

// LatestPulse fetches the most recent beacon pulse and reduces its output to
// a replayable seed
func (c *Client) LatestPulse(ctx context.Context) (Pulse, error) {
	if c.MockBeacon {
		return c.mockLatestPulse()
	}

	url := c.BaseURL + "/public/latest"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Pulse{}, fmt.Errorf("failed to build beacon request: %w", err)
	}
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Pulse{}, fmt.Errorf("beacon request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Pulse{}, fmt.Errorf("beacon returned status %d", resp.StatusCode)
	}

	var payload pulseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Pulse{}, fmt.Errorf("failed to decode beacon response: %w", err)
	}

	seed, err := seedFromRandomness(payload.Randomness)
	if err != nil {
		return Pulse{}, err
	}
	return Pulse{Round: payload.Round, Seed: seed}, nil
}

// mockLatestPulse fabricates a pulse locally, for environments without
// beacon access. Rounds increase monotonically per client.
func (c *Client) mockLatestPulse() (Pulse, error) {
	seed, err := randpick.CryptoSeed()
	if err != nil {
		return Pulse{}, fmt.Errorf("failed to generate mock pulse: %w", err)
	}
	c.mockRound++
	return Pulse{Round: c.mockRound, Seed: seed}, nil
}

// seedFromRandomness reduces a hex pulse output to an int64 seed: the first
// eight bytes big-endian, sign bit cleared. The reduction must stay stable
// across versions or recorded rounds stop replaying to the same winners.
func seedFromRandomness(randomness string) (int64, error) {
	raw, err := hex.DecodeString(randomness)
	if err != nil {
		return 0, fmt.Errorf("beacon randomness is not valid hex: %w", err)
	}
	if len(raw) < 8 {
		return 0, fmt.Errorf("beacon randomness too short: %d bytes", len(raw))
	}
	return int64(binary.BigEndian.Uint64(raw[:8]) &^ (1 << 63)), nil
}
