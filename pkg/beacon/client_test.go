package beacon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestPulseFromServer(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"round":1234567,"randomness":"8000000000000001ff"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "beacon-key", false)
	pulse, err := client.LatestPulse(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/public/latest", gotPath)
	assert.Equal(t, "Bearer beacon-key", gotAuth)
	assert.Equal(t, uint64(1234567), pulse.Round)
	// First eight bytes big-endian with the sign bit cleared
	assert.Equal(t, int64(1), pulse.Seed)
}

func TestLatestPulseServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", false)
	_, err := client.LatestPulse(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestLatestPulseBadRandomness(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not hex", body: `{"round":1,"randomness":"zzzz"}`},
		{name: "too short", body: `{"round":1,"randomness":"abcd"}`},
		{name: "not json", body: `<html>`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "", false)
			_, err := client.LatestPulse(context.Background())

			require.Error(t, err)
		})
	}
}

func TestMockPulseRoundsIncrease(t *testing.T) {
	client := NewClient("", "", true)

	first, err := client.LatestPulse(context.Background())
	require.NoError(t, err)
	second, err := client.LatestPulse(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first.Round)
	assert.Equal(t, uint64(2), second.Round)
	assert.GreaterOrEqual(t, first.Seed, int64(0))
}

func TestSeedFromRandomnessIsStable(t *testing.T) {
	// Recorded rounds must keep replaying to the same winners, so this
	// reduction can never change
	seed, err := seedFromRandomness("0102030405060708deadbeef")
	require.NoError(t, err)
	assert.Equal(t, int64(0x0102030405060708), seed)

	seed, err = seedFromRandomness("ffffffffffffffff")
	require.NoError(t, err)
	assert.Equal(t, int64(0x7fffffffffffffff), seed)
}
