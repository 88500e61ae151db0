package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/danahmadi/bookora_backend/config"
	"github.com/danahmadi/bookora_backend/internal/repo"
	entbooking "github.com/danahmadi/bookora_backend/internal/repo/booking"
	entbusiness "github.com/danahmadi/bookora_backend/internal/repo/business"
	entmember "github.com/danahmadi/bookora_backend/internal/repo/businessmember"
	entcharge "github.com/danahmadi/bookora_backend/internal/repo/charge"
	entcustomer "github.com/danahmadi/bookora_backend/internal/repo/customer"
	entprofile "github.com/danahmadi/bookora_backend/internal/repo/providerprofile"
	entoffering "github.com/danahmadi/bookora_backend/internal/repo/serviceoffering"
	"github.com/danahmadi/bookora_backend/internal/service/notification"
	emailpkg "github.com/danahmadi/bookora_backend/pkg/email"
	svcsms "github.com/danahmadi/bookora_backend/pkg/sms"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
	SMS      *svcsms.Client
	Email    *emailpkg.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startNotificationWorker(p.NC, p.DB, p.NotifSvc)
			startSMSWorker(p.NC, p.DB, p.SMS, p.Cfg.SMS.SMSIR.TemplateID)
			startEmailWorker(p.NC, p.DB, p.Email)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

func idFromMsg(msg *nats.Msg) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
	return id, err == nil
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

func startNotificationWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service) {
	// Booking created: notify the provider and, when the customer has a
	// linked account, the customer too.
	_, err := nc.Subscribe("bookora.booking.created.*", func(msg *nats.Msg) {
		bookingID, ok := idFromMsg(msg)
		if !ok {
			return
		}
		notifyBookingEvent(db, notifSvc, bookingID, "booking_created", "New booking scheduled")
	})
	if err != nil {
		slog.Error("notification_worker: subscribe booking.created failed", "err", err)
	}

	_, err = nc.Subscribe("bookora.booking.cancelled.*", func(msg *nats.Msg) {
		bookingID, ok := idFromMsg(msg)
		if !ok {
			return
		}
		notifyBookingEvent(db, notifSvc, bookingID, "booking_cancelled", "Booking cancelled")
	})
	if err != nil {
		slog.Error("notification_worker: subscribe booking.cancelled failed", "err", err)
	}

	// Charge paid: notify the provider that money arrived.
	_, err = nc.Subscribe("bookora.charge.paid.*", func(msg *nats.Msg) {
		chargeID, ok := idFromMsg(msg)
		if !ok {
			return
		}
		ctx := context.Background()

		ch, err := db.Charge.Query().
			Where(entcharge.ID(chargeID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: charge not found", "id", chargeID, "err", err)
			return
		}

		b, err := db.Booking.Query().
			Where(entbooking.ID(ch.BookingID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: booking not found", "id", ch.BookingID, "err", err)
			return
		}

		member, err := db.BusinessMember.Query().
			Where(entmember.ID(b.ProviderID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: provider member not found", "id", b.ProviderID, "err", err)
			return
		}

		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: member.UserID,
			Type:   "charge_paid",
			Title:  "Payment received",
			Data: map[string]any{
				"charge_id":  ch.ID.String(),
				"booking_id": b.ID.String(),
				"amount":     ch.Amount,
			},
		})
		if err != nil {
			slog.Warn("notification_worker: create charge notification failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe charge.paid failed", "err", err)
	}

	slog.Info("notification_worker: started")
}

func notifyBookingEvent(db *repo.Client, notifSvc notification.Service, bookingID uuid.UUID, notifType, title string) {
	ctx := context.Background()

	b, err := db.Booking.Query().
		Where(entbooking.ID(bookingID)).
		Only(ctx)
	if err != nil {
		slog.Warn("notification_worker: booking not found", "id", bookingID, "err", err)
		return
	}

	data := map[string]any{
		"booking_id": b.ID.String(),
		"date":       b.Date,
		"start_time": b.StartTime,
	}

	member, err := db.BusinessMember.Query().
		Where(entmember.ID(b.ProviderID)).
		Only(ctx)
	if err != nil {
		slog.Warn("notification_worker: provider member not found", "id", b.ProviderID, "err", err)
	} else {
		if _, err := notifSvc.Create(ctx, notification.CreateRequest{
			UserID: member.UserID,
			Type:   notifType,
			Title:  title,
			Data:   data,
		}); err != nil {
			slog.Warn("notification_worker: create provider notification failed", "err", err)
		}
	}

	cust, err := db.Customer.Query().
		Where(entcustomer.ID(b.CustomerID)).
		Only(ctx)
	if err != nil {
		slog.Warn("notification_worker: customer not found", "id", b.CustomerID, "err", err)
		return
	}
	if cust.UserID == nil {
		// Walk-in customer without an account, nothing to deliver in-app.
		return
	}

	if _, err := notifSvc.Create(ctx, notification.CreateRequest{
		UserID: *cust.UserID,
		Type:   notifType,
		Title:  title,
		Data:   data,
	}); err != nil {
		slog.Warn("notification_worker: create customer notification failed", "err", err)
	}
}

// ---------------------------------------------------------------------------
// sms_worker
// ---------------------------------------------------------------------------

func startSMSWorker(nc *nats.Conn, db *repo.Client, smsCli *svcsms.Client, templateID string) {
	if !smsCli.IsEnabled() {
		slog.Info("sms_worker: disabled")
		return
	}

	_, err := nc.Subscribe("bookora.booking.created.*", func(msg *nats.Msg) {
		bookingID, ok := idFromMsg(msg)
		if !ok {
			return
		}
		ctx := context.Background()

		b, err := db.Booking.Query().
			Where(entbooking.ID(bookingID)).
			Only(ctx)
		if err != nil {
			slog.Warn("sms_worker: booking not found", "id", bookingID, "err", err)
			return
		}

		cust, err := db.Customer.Query().
			Where(entcustomer.ID(b.CustomerID)).
			Only(ctx)
		if err != nil || cust.Phone == nil {
			return
		}

		biz, err := db.Business.Query().
			Where(entbusiness.ID(b.BusinessID)).
			Only(ctx)
		if err != nil {
			slog.Warn("sms_worker: business not found", "id", b.BusinessID, "err", err)
			return
		}

		if err := smsCli.SendBookingReminder(ctx, *cust.Phone, templateID, biz.Name, b.Date, b.StartTime); err != nil {
			slog.Warn("sms_worker: send reminder failed", "booking_id", bookingID, "err", err)
		}
	})
	if err != nil {
		slog.Error("sms_worker: subscribe booking.created failed", "err", err)
	}

	slog.Info("sms_worker: started")
}

// ---------------------------------------------------------------------------
// email_worker
// ---------------------------------------------------------------------------

func startEmailWorker(nc *nats.Conn, db *repo.Client, mail *emailpkg.Client) {
	_, err := nc.Subscribe("bookora.booking.created.*", func(msg *nats.Msg) {
		bookingID, ok := idFromMsg(msg)
		if !ok {
			return
		}
		sendBookingEmail(db, mail, bookingID, emailpkg.BuildBookingConfirmationEmail)
	})
	if err != nil {
		slog.Error("email_worker: subscribe booking.created failed", "err", err)
	}

	_, err = nc.Subscribe("bookora.booking.cancelled.*", func(msg *nats.Msg) {
		bookingID, ok := idFromMsg(msg)
		if !ok {
			return
		}
		sendBookingEmail(db, mail, bookingID, emailpkg.BuildBookingCancellationEmail)
	})
	if err != nil {
		slog.Error("email_worker: subscribe booking.cancelled failed", "err", err)
	}

	slog.Info("email_worker: started")
}

func sendBookingEmail(db *repo.Client, mail *emailpkg.Client, bookingID uuid.UUID, build func(emailpkg.BookingEmailData) emailpkg.Message) {
	ctx := context.Background()

	b, err := db.Booking.Query().
		Where(entbooking.ID(bookingID)).
		Only(ctx)
	if err != nil {
		slog.Warn("email_worker: booking not found", "id", bookingID, "err", err)
		return
	}

	cust, err := db.Customer.Query().
		Where(entcustomer.ID(b.CustomerID)).
		Only(ctx)
	if err != nil || cust.Email == nil {
		// No address on file, nothing to send.
		return
	}

	biz, err := db.Business.Query().
		Where(entbusiness.ID(b.BusinessID)).
		Only(ctx)
	if err != nil {
		slog.Warn("email_worker: business not found", "id", b.BusinessID, "err", err)
		return
	}

	data := emailpkg.BookingEmailData{
		RecipientName: cust.FirstName,
		Email:         *cust.Email,
		BusinessName:  biz.Name,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
	}

	if profile, err := db.ProviderProfile.Query().
		Where(entprofile.MemberID(b.ProviderID)).
		Only(ctx); err == nil {
		data.ProviderName = profile.DisplayName
	}
	if b.ServiceOfferingID != nil {
		if off, err := db.ServiceOffering.Query().
			Where(entoffering.ID(*b.ServiceOfferingID)).
			Only(ctx); err == nil {
			data.ServiceName = off.Name
		}
	}

	if err := mail.Send(ctx, build(data)); err != nil && !errors.Is(err, emailpkg.ErrDisabled{}) {
		slog.Warn("email_worker: send failed", "booking_id", bookingID, "err", err)
	}
}
