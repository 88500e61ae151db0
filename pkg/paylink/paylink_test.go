package paylink

import (
	"errors"
	"fmt"
	"testing"
	"time"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/danahmadi/bookora_backend/config"
)

const testWebhookSecret = "whsec_test_secret"

func newWebhookClient(secret string) *Client {
	return New(config.PaylinkConfig{WebhookSecret: secret}, "https://example.com")
}

func eventJSON(evtType, sessionID, paymentStatus string) []byte {
	return []byte(fmt.Sprintf(
		`{"id":"evt_1","api_version":%q,"type":%q,"data":{"object":{"id":%q,"object":"checkout.session","payment_status":%q}}}`,
		stripe.APIVersion, evtType, sessionID, paymentStatus))
}

func sign(payload []byte, secret string) string {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
		Scheme:    "v1",
	})
	return signed.Header
}

func TestPaidReference(t *testing.T) {
	c := newWebhookClient(testWebhookSecret)

	tests := []struct {
		name          string
		evtType       string
		paymentStatus string
		want          string
		wantErr       error
	}{
		{"completed and paid", "checkout.session.completed", "paid", "cs_test_1", nil},
		{"async settlement", "checkout.session.async_payment_succeeded", "paid", "cs_test_2", nil},
		{"completed but unpaid", "checkout.session.completed", "unpaid", "", ErrEventIgnored},
		{"unrelated event type", "checkout.session.expired", "paid", "", ErrEventIgnored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionID := tt.want
			if sessionID == "" {
				sessionID = "cs_test_x"
			}
			payload := eventJSON(tt.evtType, sessionID, tt.paymentStatus)

			got, err := c.PaidReference(payload, sign(payload, testWebhookSecret))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("PaidReference() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if got != tt.want {
				t.Errorf("PaidReference() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPaidReferenceRejectsBadSignature(t *testing.T) {
	c := newWebhookClient(testWebhookSecret)
	payload := eventJSON("checkout.session.completed", "cs_test_1", "paid")

	// A session id alone must never flip a charge; only a delivery signed
	// with our secret gets through.
	if _, err := c.PaidReference(payload, sign(payload, "whsec_wrong")); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("PaidReference() with foreign signature: error = %v, want %v", err, ErrInvalidSignature)
	}
	if _, err := c.PaidReference(payload, ""); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("PaidReference() with missing signature: error = %v, want %v", err, ErrInvalidSignature)
	}
}

func TestPaidReferenceRequiresSecret(t *testing.T) {
	c := newWebhookClient("")
	payload := eventJSON("checkout.session.completed", "cs_test_1", "paid")

	if _, err := c.PaidReference(payload, sign(payload, testWebhookSecret)); !errors.Is(err, ErrWebhookNotConfigured) {
		t.Errorf("PaidReference() without configured secret: error = %v, want %v", err, ErrWebhookNotConfigured)
	}
}
