package notification

import (
	"context"
	"log/slog"
)

const (
	// KindTransactionAdded indicates a transaction was recorded.
	KindTransactionAdded = "transaction_added"
	// KindTransactionDeleted indicates a transaction was removed.
	KindTransactionDeleted = "transaction_deleted"
)

// Message describes a ledger event.
type Message struct {
	Kind          string
	Destination   string
	TransactionID string
	Body          string
}

// Notifier delivers ledger events to downstream systems.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier writes events to the structured logger.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(ctx context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.InfoContext(ctx, "ledger event",
		slog.String("kind", message.Kind),
		slog.String("destination", message.Destination),
		slog.String("transaction_id", message.TransactionID),
		slog.String("body", message.Body),
	)
	return nil
}
