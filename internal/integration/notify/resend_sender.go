package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	domainerror "github.com/pockets-tracker/backend/internal/domain/error"
)

// ResendSender implements the adapter.AlertSender interface using Resend.
// Alerts arrive as short emails in the user's inbox.
type ResendSender struct {
	client    *resend.Client
	fromName  string
	fromEmail string
	toEmail   string
}

// NewResendSender creates a new Resend-backed alert sender.
func NewResendSender(apiKey, fromName, fromEmail, toEmail string) *ResendSender {
	return &ResendSender{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

// Send delivers one alert via Resend.
func (s *ResendSender) Send(ctx context.Context, input adapter.SendAlertInput) (*adapter.SendAlertResult, error) {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{s.toEmail},
		Subject: input.Title,
		Text:    input.Body,
	}

	resp, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		if isPermanentError(err) {
			return nil, domainerror.NewNotificationError(
				domainerror.ErrCodePermanentDeliveryFailure,
				"permanent notification delivery failure",
				err,
			)
		}
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeTransientDeliveryFailure,
			"transient notification delivery failure",
			err,
		)
	}

	return &adapter.SendAlertResult{
		ProviderID: resp.Id,
	}, nil
}

// isPermanentError checks if the error should not be retried.
// Permanent: 401 (Unauthorized), 403 (Forbidden), 422 (Validation Error).
// Transient: 429 (Rate Limit), 5xx (Server Errors).
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	permanentPatterns := []string{
		"401",
		"403",
		"422",
		"unauthorized",
		"forbidden",
		"validation",
		"invalid",
		"bad request",
	}

	for _, pattern := range permanentPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// MockAlertSender is a mock implementation for testing.
type MockAlertSender struct {
	SentAlerts  []adapter.SendAlertInput
	ShouldFail  bool
	FailError   error
	IsPermanent bool
}

// NewMockAlertSender creates a new mock alert sender.
func NewMockAlertSender() *MockAlertSender {
	return &MockAlertSender{
		SentAlerts: make([]adapter.SendAlertInput, 0),
	}
}

// Send implements the adapter.AlertSender interface for testing.
func (m *MockAlertSender) Send(ctx context.Context, input adapter.SendAlertInput) (*adapter.SendAlertResult, error) {
	if m.ShouldFail {
		code := domainerror.ErrCodeTransientDeliveryFailure
		if m.IsPermanent {
			code = domainerror.ErrCodePermanentDeliveryFailure
		}
		return nil, domainerror.NewNotificationError(code, "mock delivery failure", m.FailError)
	}

	m.SentAlerts = append(m.SentAlerts, input)

	return &adapter.SendAlertResult{
		ProviderID: fmt.Sprintf("mock-%d", len(m.SentAlerts)),
	}, nil
}

// Reset clears all sent alerts and failure configuration.
func (m *MockAlertSender) Reset() {
	m.SentAlerts = make([]adapter.SendAlertInput, 0)
	m.ShouldFail = false
	m.FailError = nil
	m.IsPermanent = false
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.AlertSender = (*ResendSender)(nil)
	_ adapter.AlertSender = (*MockAlertSender)(nil)
)
