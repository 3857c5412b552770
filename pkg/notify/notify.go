package notify

import (
	"context"
	"fmt"
	"time"
)

// Notification is the payload delivered for one winning entry
type Notification struct {
	Code        string    `json:"code"`
	Name        string    `json:"name,omitempty"`
	DrawName    string    `json:"drawName"`
	PrizeTier   string    `json:"prizeTier"`
	PrizeAmount float64   `json:"prizeAmount"`
	WinDate     time.Time `json:"winDate"`
}

// Notifier represents a winner notification channel
type Notifier interface {
	NotifyWinner(ctx context.Context, notification Notification) (string, error)
}

// MockNotifier represents a mock notification channel for testing
type MockNotifier struct {
	Name string
}

// NewMockNotifier creates a new MockNotifier
func NewMockNotifier(name string) Notifier {
	return &MockNotifier{Name: name}
}

// NotifyWinner simulates a delivery and returns a fabricated delivery ID
func (n *MockNotifier) NotifyWinner(_ context.Context, notification Notification) (string, error) {
	return fmt.Sprintf("%s-MOCK-NOTIFY-%d", n.Name, time.Now().UnixNano()), nil
}
