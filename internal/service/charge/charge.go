package charge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/danahmadi/bookora_backend/internal/repo"
	entbooking "github.com/danahmadi/bookora_backend/internal/repo/booking"
	entbusiness "github.com/danahmadi/bookora_backend/internal/repo/business"
	entcharge "github.com/danahmadi/bookora_backend/internal/repo/charge"
	entcustomer "github.com/danahmadi/bookora_backend/internal/repo/customer"
	emailpkg "github.com/danahmadi/bookora_backend/pkg/email"
	paylinkpkg "github.com/danahmadi/bookora_backend/pkg/paylink"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// BatchItem is the per-booking outcome of a CreateBatch call. A batch is
// best-effort: one failed link does not abort the rest.
type BatchItem struct {
	BookingID      uuid.UUID `json:"booking_id"`
	ChargeID       uuid.UUID `json:"charge_id,omitempty"`
	PaymentLinkURL string    `json:"payment_link_url,omitempty"`
	Error          string    `json:"error,omitempty"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CreateBatch(ctx context.Context, businessID uuid.UUID, bookingIDs []uuid.UUID) ([]BatchItem, error)
	Get(ctx context.Context, businessID, chargeID uuid.UUID) (*repo.Charge, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID, status *string, page, perPage int) ([]*repo.Charge, error)

	// HandleWebhook authenticates a signed gateway delivery and, when it
	// settles a payment, marks the matching charge as paid. Idempotent.
	HandleWebhook(ctx context.Context, payload []byte, sigHeader string) (*repo.Charge, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type chargeService struct {
	db      *repo.Client
	paylink *paylinkpkg.Client
	email   *emailpkg.Client
	nc      *nats.Conn
}

func New(db *repo.Client, pl *paylinkpkg.Client, mail *emailpkg.Client, nc *nats.Conn) Service {
	return &chargeService{db: db, paylink: pl, email: mail, nc: nc}
}

func (s *chargeService) CreateBatch(ctx context.Context, businessID uuid.UUID, bookingIDs []uuid.UUID) ([]BatchItem, error) {
	if len(bookingIDs) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(bookingIDs) > MaxBatchSize {
		return nil, ErrBatchTooLarge
	}

	out := make([]BatchItem, 0, len(bookingIDs))
	for _, bookingID := range bookingIDs {
		item := s.createOne(ctx, businessID, bookingID)
		out = append(out, item)
	}
	return out, nil
}

func (s *chargeService) createOne(ctx context.Context, businessID, bookingID uuid.UUID) BatchItem {
	item := BatchItem{BookingID: bookingID}

	b, err := s.db.Booking.Query().
		Where(entbooking.ID(bookingID), entbooking.BusinessID(businessID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			item.Error = ErrBookingNotFound.Error()
		} else {
			item.Error = fmt.Sprintf("get booking: %v", err)
		}
		return item
	}

	if b.PaymentStatus == entbooking.PaymentStatusPaid {
		item.Error = ErrBookingAlreadyPaid.Error()
		return item
	}
	if b.Price <= 0 {
		item.Error = ErrNothingToCharge.Error()
		return item
	}

	ch, err := s.db.Charge.Create().
		SetBusinessID(businessID).
		SetBookingID(bookingID).
		SetAmount(b.Price).
		Save(ctx)
	if err != nil {
		item.Error = fmt.Sprintf("create charge: %v", err)
		return item
	}
	item.ChargeID = ch.ID

	desc := fmt.Sprintf("Booking on %s at %s", b.Date, b.StartTime)
	link, err := s.paylink.Create(ctx, ch.Amount, desc, ch.ID.String())
	if err != nil {
		_ = s.db.Charge.UpdateOne(ch).
			SetStatus(entcharge.StatusFailed).
			SetFailureReason(err.Error()).
			Exec(ctx)
		item.Error = fmt.Sprintf("create payment link: %v", err)
		return item
	}

	if err := s.db.Charge.UpdateOne(ch).
		SetStatus(entcharge.StatusLinkCreated).
		SetPaymentLinkURL(link.URL).
		SetGatewayReference(link.Reference).
		Exec(ctx); err != nil {
		item.Error = fmt.Sprintf("store payment link: %v", err)
		return item
	}

	_ = s.db.Booking.UpdateOne(b).
		SetPaymentStatus(entbooking.PaymentStatusLinkSent).
		Exec(ctx)

	s.sendPaymentLinkEmail(ctx, b, link.URL)

	item.PaymentLinkURL = link.URL
	return item
}

// sendPaymentLinkEmail is best effort. Billing must not fail because the
// customer mailbox is unreachable.
func (s *chargeService) sendPaymentLinkEmail(ctx context.Context, b *repo.Booking, linkURL string) {
	cust, err := s.db.Customer.Query().
		Where(entcustomer.ID(b.CustomerID)).
		Only(ctx)
	if err != nil || cust.Email == nil {
		return
	}

	biz, err := s.db.Business.Query().
		Where(entbusiness.ID(b.BusinessID)).
		Only(ctx)
	if err != nil {
		return
	}

	msg := emailpkg.BuildPaymentLinkEmail(emailpkg.BookingEmailData{
		RecipientName: cust.FirstName,
		Email:         *cust.Email,
		BusinessName:  biz.Name,
		Date:          b.Date,
		StartTime:     b.StartTime,
		PaymentURL:    linkURL,
	})
	if err := s.email.Send(ctx, msg); err != nil && !errors.Is(err, emailpkg.ErrDisabled{}) {
		slog.Warn("charge: payment link email failed", "booking_id", b.ID, "err", err)
	}
}

func (s *chargeService) Get(ctx context.Context, businessID, chargeID uuid.UUID) (*repo.Charge, error) {
	ch, err := s.db.Charge.Query().
		Where(entcharge.ID(chargeID), entcharge.BusinessID(businessID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get charge: %w", err)
	}
	return ch, nil
}

func (s *chargeService) ListByBusiness(ctx context.Context, businessID uuid.UUID, status *string, page, perPage int) ([]*repo.Charge, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	q := s.db.Charge.Query().
		Where(entcharge.BusinessID(businessID))

	if status != nil {
		q = q.Where(entcharge.StatusEQ(entcharge.Status(*status)))
	}

	charges, err := q.
		Order(entcharge.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list charges: %w", err)
	}
	return charges, nil
}

func (s *chargeService) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) (*repo.Charge, error) {
	// Verify against the gateway before touching any state. The session id
	// alone is no proof of payment: it is disclosed to the payer.
	ref, err := s.paylink.PaidReference(payload, sigHeader)
	if err != nil {
		if errors.Is(err, paylinkpkg.ErrEventIgnored) {
			return nil, ErrEventIgnored
		}
		return nil, fmt.Errorf("%w: %v", ErrWebhookRejected, err)
	}
	return s.markPaid(ctx, ref)
}

func (s *chargeService) markPaid(ctx context.Context, gatewayReference string) (*repo.Charge, error) {
	if gatewayReference == "" {
		return nil, ErrNotFound
	}

	ch, err := s.db.Charge.Query().
		Where(entcharge.GatewayReference(gatewayReference)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get charge by reference: %w", err)
	}

	// Idempotent: a second webhook delivery is a no-op.
	if ch.Status == entcharge.StatusPaid {
		return ch, nil
	}

	now := time.Now()
	paid, err := s.db.Charge.UpdateOne(ch).
		SetStatus(entcharge.StatusPaid).
		SetPaidAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark charge paid: %w", err)
	}

	_ = s.db.Booking.Update().
		Where(entbooking.ID(ch.BookingID)).
		SetPaymentStatus(entbooking.PaymentStatusPaid).
		Exec(ctx)

	if s.nc != nil {
		subject := fmt.Sprintf("bookora.charge.paid.%s", paid.ID)
		_ = s.nc.Publish(subject, []byte(paid.ID.String()))
	}

	return paid, nil
}
