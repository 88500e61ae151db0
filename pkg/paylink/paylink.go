// Package paylink provides a minimal client for creating one-off payment
// links through Stripe Checkout.
package paylink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/danahmadi/bookora_backend/config"
)

var (
	ErrDisabled             = errors.New("paylink: payment links are disabled")
	ErrInvalidAmount        = errors.New("paylink: amount must be positive")
	ErrUnexpectedResponse   = errors.New("paylink: unexpected response from gateway")
	ErrWebhookNotConfigured = errors.New("paylink: webhook secret is not configured")
	ErrInvalidSignature     = errors.New("paylink: webhook signature verification failed")
	ErrEventIgnored         = errors.New("paylink: event does not complete a payment")
)

// Link is the result of a successful link creation.
type Link struct {
	URL       string // hosted checkout page
	Reference string // gateway session id, stored for webhook correlation
}

// Client creates Stripe Checkout sessions for one-off charges.
type Client struct {
	enabled       bool
	currency      string
	successURL    string
	cancelURL     string
	webhookSecret string
	tolerance     time.Duration
}

// New creates a Client from config. When cfg.Enabled is false the client
// no-ops and Create returns ErrDisabled.
func New(cfg config.PaylinkConfig, serverDomain string) *Client {
	if cfg.Enabled {
		stripe.Key = strings.TrimSpace(cfg.SecretKey)
	}

	currency := strings.ToLower(strings.TrimSpace(cfg.Currency))
	if currency == "" {
		currency = "usd"
	}

	base := strings.TrimRight(serverDomain, "/")

	tolerance := webhook.DefaultTolerance
	if cfg.WebhookToleranceSeconds > 0 {
		tolerance = time.Duration(cfg.WebhookToleranceSeconds) * time.Second
	}

	return &Client{
		enabled:       cfg.Enabled,
		currency:      currency,
		successURL:    base + "/payments/success",
		cancelURL:     base + "/payments/cancelled",
		webhookSecret: strings.TrimSpace(cfg.WebhookSecret),
		tolerance:     tolerance,
	}
}

// IsEnabled returns whether link creation is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// Create creates a hosted payment page for a single charge.
// amount is in minor currency units. chargeID is attached as metadata so the
// paid webhook can be correlated back to the charge row.
func (c *Client) Create(ctx context.Context, amount int64, description, chargeID string) (Link, error) {
	if !c.enabled {
		return Link{}, ErrDisabled
	}
	if amount <= 0 {
		return Link{}, ErrInvalidAmount
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(c.successURL),
		CancelURL:         stripe.String(c.cancelURL),
		ClientReferenceID: stripe.String(chargeID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(c.currency),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
				},
			},
		},
	}
	params.IdempotencyKey = stripe.String("charge-" + chargeID)
	params.AddMetadata("charge_id", chargeID)
	params.Context = ctx

	sess, err := checkoutsession.New(params)
	if err != nil {
		return Link{}, fmt.Errorf("paylink create: %w", err)
	}
	if sess.URL == "" || sess.ID == "" {
		return Link{}, ErrUnexpectedResponse
	}

	return Link{URL: sess.URL, Reference: sess.ID}, nil
}

// PaidReference authenticates a webhook delivery and returns the checkout
// session id it settles. The signature is the only authentication on the
// webhook path, so anything unsigned or signed with the wrong secret is
// rejected outright. Events other than a paid checkout.session.completed
// return ErrEventIgnored.
func (c *Client) PaidReference(payload []byte, sigHeader string) (string, error) {
	if c.webhookSecret == "" {
		return "", ErrWebhookNotConfigured
	}

	evt, err := webhook.ConstructEventWithTolerance(payload, sigHeader, c.webhookSecret, c.tolerance)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	switch evt.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
	default:
		return "", ErrEventIgnored
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(evt.Data.Raw, &sess); err != nil {
		return "", fmt.Errorf("paylink webhook payload: %w", err)
	}
	if sess.ID == "" {
		return "", ErrUnexpectedResponse
	}

	// Async payment methods fire session.completed before the money moves;
	// those sessions settle later via async_payment_succeeded.
	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return "", ErrEventIgnored
	}

	return sess.ID, nil
}
