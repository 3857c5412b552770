package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WebhookNotifier posts win notifications to a configured HTTP endpoint
type WebhookNotifier struct {
	URL        string
	APIKey     string
	httpClient *http.Client
}

// NewWebhookNotifier creates a new WebhookNotifier
func NewWebhookNotifier(url, apiKey string) Notifier {
	return &WebhookNotifier{
		URL:    url,
		APIKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NotifyWinner posts the notification and returns the receiver's delivery ID
func (n *WebhookNotifier) NotifyWinner(ctx context.Context, notification Notification) (string, error) {
	jsonBody, err := json.Marshal(notification)
	if err != nil {
		return "", fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if n.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.APIKey)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("notification rejected with status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		DeliveryID string `json:"deliveryId"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return response.DeliveryID, nil
}
