package api

import (
	"sync"

	"github.com/mawadk/dashboard-client/pkg/logging"
)

// Notifier receives the user-facing messages the dashboard would show as
// toasts. Every failure path notifies exactly once per message (422 field
// maps fan out to one notification per field message).
type Notifier interface {
	Notify(level, message string)
}

// Notification levels.
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelInfo    = "info"
)

// LogNotifier writes notifications to the structured log. It is the
// default when no UI-facing notifier is wired.
type LogNotifier struct {
	logger *logging.Logger
}

// NewLogNotifier creates a notifier backed by logger.
func NewLogNotifier(logger *logging.Logger) *LogNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(level, message string) {
	switch level {
	case LevelError:
		n.logger.Error("notification", "message", message)
	case LevelWarning:
		n.logger.Warn("notification", "message", message)
	default:
		n.logger.Info("notification", "message", message)
	}
}

// Collector records notifications for tests and for CLI display.
type Collector struct {
	mu      sync.Mutex
	entries []CollectedNotification
}

// CollectedNotification is one recorded notification.
type CollectedNotification struct {
	Level   string
	Message string
}

func (c *Collector) Notify(level, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, CollectedNotification{Level: level, Message: message})
}

// Entries returns a copy of everything recorded so far.
func (c *Collector) Entries() []CollectedNotification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CollectedNotification, len(c.entries))
	copy(out, c.entries)
	return out
}

// Reset clears recorded notifications.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}

var (
	_ Notifier = (*LogNotifier)(nil)
	_ Notifier = (*Collector)(nil)
)
