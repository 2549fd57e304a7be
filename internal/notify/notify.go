package notify

import (
	"context"
	"log"
)

// Notifier dispatches a user-facing notice. The SMTP implementation delivers
// mail; the console one is the fallback when delivery is unconfigured, so
// callers never need to check whether mail is wired up.
type Notifier interface {
	Notify(ctx context.Context, recipient, subject, message string) error
}

// ConsoleNotifier logs notices instead of delivering them. It is the
// fallback for every channel and the default in development.
type ConsoleNotifier struct {
	Channel string // e.g. "email", "sms"
}

func NewConsole(channel string) *ConsoleNotifier {
	return &ConsoleNotifier{Channel: channel}
}

func (c *ConsoleNotifier) Notify(ctx context.Context, recipient, subject, message string) error {
	log.Printf("[notify:%s] to=%s subject=%q %s", c.Channel, recipient, subject, message)
	return nil
}
