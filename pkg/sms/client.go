package sms

import (
	"context"
	"fmt"

	"github.com/arsmn/go-smsir/smsir"
	"github.com/danahmadi/bookora_backend/config"
)

// Client provides SMS sending functionality via sms.ir.
type Client struct {
	client  *smsir.Client
	enabled bool
}

// NewFromConfig creates a new SMS client from the application configuration.
// If SMS is disabled, returns a client that no-ops on all operations.
func NewFromConfig(cfg config.SMSConfig) (*Client, error) {
	if !cfg.Enabled {
		return &Client{enabled: false}, nil
	}

	if cfg.SMSIR.APIKey == "" {
		return nil, fmt.Errorf("sms.ir API key required when SMS enabled")
	}

	client := smsir.NewClient().WithAuthentication(cfg.SMSIR.APIKey, cfg.SMSIR.SecretKey)

	return &Client{
		client:  client,
		enabled: true,
	}, nil
}

// SendTemplate sends a templated SMS to the given phone number.
// If SMS is disabled, this is a no-op and returns nil.
//
// params maps template parameter names to their values. For the booking
// reminder template the expected parameters are "business", "date" and "time".
func (c *Client) SendTemplate(ctx context.Context, phoneNumber, templateID string, params map[string]string) error {
	if !c.enabled {
		// No-op when disabled (useful for development)
		return nil
	}

	if phoneNumber == "" {
		return fmt.Errorf("phone number is required")
	}
	if templateID == "" {
		return fmt.Errorf("template ID is required")
	}
	if len(params) == 0 {
		return fmt.Errorf("template parameters are required")
	}

	ps := make([]smsir.UltraFastParameter, 0, len(params))
	for k, v := range params {
		ps = append(ps, smsir.UltraFastParameter{Key: k, Value: v})
	}

	req := &smsir.UltraFastSendRequest{
		Mobile:     phoneNumber,
		TemplateID: templateID,
		Parameters: ps,
	}

	_, err := c.client.Verification.UltraFastSend(ctx, req)
	if err != nil {
		return fmt.Errorf("sms.ir send failed: %w", err)
	}

	return nil
}

// SendBookingReminder sends a booking reminder SMS using the configured template.
func (c *Client) SendBookingReminder(ctx context.Context, phoneNumber, templateID, businessName, date, startTime string) error {
	return c.SendTemplate(ctx, phoneNumber, templateID, map[string]string{
		"business": businessName,
		"date":     date,
		"time":     startTime,
	})
}

// IsEnabled returns whether SMS sending is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}
