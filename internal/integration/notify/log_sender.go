package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pockets-tracker/backend/internal/application/adapter"
)

// LogSender writes alerts to the structured log instead of delivering them.
// It is used when no Resend API key is configured, so the rest of the
// notification pipeline keeps working in local setups.
type LogSender struct{}

// NewLogSender creates a log-only alert sender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the alert and reports success.
func (s *LogSender) Send(_ context.Context, input adapter.SendAlertInput) (*adapter.SendAlertResult, error) {
	slog.Info("Alert (log only)", "title", input.Title, "body", input.Body)
	return &adapter.SendAlertResult{
		ProviderID: "log-" + uuid.NewString(),
	}, nil
}

var _ adapter.AlertSender = (*LogSender)(nil)
