package booking

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/danahmadi/bookora_backend/internal/availability"
	"github.com/danahmadi/bookora_backend/internal/repo"
	entrule "github.com/danahmadi/bookora_backend/internal/repo/availabilityrule"
	entbooking "github.com/danahmadi/bookora_backend/internal/repo/booking"
	entbusiness "github.com/danahmadi/bookora_backend/internal/repo/business"
	entsettings "github.com/danahmadi/bookora_backend/internal/repo/businesssettings"
	entoffering "github.com/danahmadi/bookora_backend/internal/repo/serviceoffering"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	ProviderID *uuid.UUID
	CustomerID *uuid.UUID
	Status     *string
	FromDate   *string // "YYYY-MM-DD" inclusive
	ToDate     *string // "YYYY-MM-DD" inclusive
	Page       int
	PerPage    int
}

type BookRequest struct {
	ProviderID        uuid.UUID
	CustomerID        uuid.UUID
	ServiceOfferingID *uuid.UUID
	Date              string // "YYYY-MM-DD"
	StartTime         string // "HH:MM"
	EndTime           string // "HH:MM"
	Notes             *string
}

type CancelRequest struct {
	Reason      *string
	RequestedBy string // "customer" | "provider" | "business"
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, businessID uuid.UUID, req ListRequest) ([]*repo.Booking, error)
	GetByID(ctx context.Context, businessID, bookingID uuid.UUID) (*repo.Booking, error)
	Book(ctx context.Context, businessID uuid.UUID, req BookRequest) (*repo.Booking, error)
	Cancel(ctx context.Context, businessID, bookingID uuid.UUID, req CancelRequest) error
	Complete(ctx context.Context, businessID, bookingID uuid.UUID) error
	MarkNoShow(ctx context.Context, businessID, bookingID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type bookingService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &bookingService{db: db, nc: nc}
}

func (s *bookingService) List(ctx context.Context, businessID uuid.UUID, req ListRequest) ([]*repo.Booking, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Booking.Query().
		Where(entbooking.BusinessID(businessID))

	if req.ProviderID != nil {
		q = q.Where(entbooking.ProviderID(*req.ProviderID))
	}
	if req.CustomerID != nil {
		q = q.Where(entbooking.CustomerID(*req.CustomerID))
	}
	if req.Status != nil {
		q = q.Where(entbooking.StatusEQ(entbooking.Status(*req.Status)))
	}
	if req.FromDate != nil {
		q = q.Where(entbooking.DateGTE(*req.FromDate))
	}
	if req.ToDate != nil {
		q = q.Where(entbooking.DateLTE(*req.ToDate))
	}

	q = q.Order(entbooking.ByDate(sql.OrderDesc()), entbooking.ByStartTime(sql.OrderDesc()))

	bookings, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) GetByID(ctx context.Context, businessID, bookingID uuid.UUID) (*repo.Booking, error) {
	b, err := s.db.Booking.Query().
		Where(entbooking.ID(bookingID), entbooking.BusinessID(businessID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

func (s *bookingService) Book(ctx context.Context, businessID uuid.UUID, req BookRequest) (*repo.Booking, error) {
	date, err := availability.ParseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !availability.ValidTime(req.StartTime) || !availability.ValidTime(req.EndTime) {
		return nil, ErrInvalidTime
	}
	if req.StartTime >= req.EndTime {
		return nil, ErrInvalidTimeRange
	}

	// The provider must have a resolved availability window covering the
	// requested interval on that date.
	stored, err := s.db.AvailabilityRule.Query().
		Where(
			entrule.BusinessID(businessID),
			entrule.ProviderID(req.ProviderID),
		).
		Order(entrule.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list availability rules: %w", err)
	}
	if !availability.Covers(toRules(stored), date, req.StartTime, req.EndTime) {
		return nil, ErrOutsideAvailability
	}

	// Reject double-booking: any non-cancelled booking for this provider on
	// the same date whose interval overlaps the requested one.
	conflict, err := s.db.Booking.Query().
		Where(
			entbooking.ProviderID(req.ProviderID),
			entbooking.DateEQ(req.Date),
			entbooking.StatusNotIn(entbooking.StatusCancelled),
			entbooking.StartTimeLT(req.EndTime),
			entbooking.EndTimeGT(req.StartTime),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check booking conflict: %w", err)
	}
	if conflict {
		return nil, ErrConflictingBooking
	}

	price, err := s.snapshotPrice(ctx, businessID, req.ServiceOfferingID)
	if err != nil {
		return nil, err
	}

	c := s.db.Booking.Create().
		SetBusinessID(businessID).
		SetProviderID(req.ProviderID).
		SetCustomerID(req.CustomerID).
		SetDate(req.Date).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime).
		SetPrice(price)

	if req.ServiceOfferingID != nil {
		c = c.SetServiceOfferingID(*req.ServiceOfferingID)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	b, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("bookora.booking.created.%s", b.ID)
		_ = s.nc.Publish(subject, []byte(b.ID.String()))
	}

	return b, nil
}

func (s *bookingService) Cancel(ctx context.Context, businessID, bookingID uuid.UUID, req CancelRequest) error {
	b, err := s.GetByID(ctx, businessID, bookingID)
	if err != nil {
		return err
	}

	if b.Status == entbooking.StatusCancelled {
		return ErrAlreadyCancelled
	}
	if b.Status == entbooking.StatusCompleted {
		return ErrAlreadyCompleted
	}

	fee, err := s.cancellationFee(ctx, businessID, b)
	if err != nil {
		return err
	}

	now := time.Now()
	upd := s.db.Booking.UpdateOne(b).
		SetStatus(entbooking.StatusCancelled).
		SetCancelledAt(now).
		SetCancellationFee(fee).
		SetCancelRequestedBy(entbooking.CancelRequestedBy(req.RequestedBy))

	if req.Reason != nil {
		upd = upd.SetCancellationReason(*req.Reason)
	}

	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("bookora.booking.cancelled.%s", b.ID)
		_ = s.nc.Publish(subject, []byte(b.ID.String()))
	}

	return nil
}

func (s *bookingService) Complete(ctx context.Context, businessID, bookingID uuid.UUID) error {
	b, err := s.GetByID(ctx, businessID, bookingID)
	if err != nil {
		return err
	}

	if b.Status == entbooking.StatusCompleted {
		return ErrAlreadyCompleted
	}
	if b.Status == entbooking.StatusCancelled {
		return ErrAlreadyCancelled
	}

	now := time.Now()
	return s.db.Booking.UpdateOne(b).
		SetStatus(entbooking.StatusCompleted).
		SetCompletedAt(now).
		Exec(ctx)
}

func (s *bookingService) MarkNoShow(ctx context.Context, businessID, bookingID uuid.UUID) error {
	b, err := s.GetByID(ctx, businessID, bookingID)
	if err != nil {
		return err
	}

	if b.Status != entbooking.StatusScheduled {
		return ErrNotScheduled
	}

	return s.db.Booking.UpdateOne(b).
		SetStatus(entbooking.StatusNoShow).
		Exec(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// snapshotPrice resolves the price for a new booking: the offering's price
// when one is referenced, otherwise the business default.
func (s *bookingService) snapshotPrice(ctx context.Context, businessID uuid.UUID, offeringID *uuid.UUID) (int64, error) {
	if offeringID != nil {
		offering, err := s.db.ServiceOffering.Query().
			Where(entoffering.ID(*offeringID), entoffering.BusinessID(businessID)).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return 0, ErrOfferingNotFound
			}
			return 0, fmt.Errorf("get service offering: %w", err)
		}
		if !offering.IsActive {
			return 0, ErrOfferingInactive
		}
		return offering.Price, nil
	}

	settings, err := s.db.BusinessSettings.Query().
		Where(entsettings.BusinessID(businessID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("get business settings: %w", err)
	}
	return settings.DefaultPrice, nil
}

// cancellationFee applies the business's late-cancellation policy: the
// configured fee when the booking starts inside the cancellation window.
// The booking's wall-clock start is anchored in the business timezone.
func (s *bookingService) cancellationFee(ctx context.Context, businessID uuid.UUID, b *repo.Booking) (int64, error) {
	settings, err := s.db.BusinessSettings.Query().
		Where(entsettings.BusinessID(businessID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("get business settings: %w", err)
	}

	if settings.CancellationWindowHours <= 0 {
		return 0, nil
	}

	if lateCancellation(b.Date, b.StartTime, s.businessLocation(ctx, businessID), settings.CancellationWindowHours, time.Now()) {
		return settings.CancellationFeeAmount, nil
	}
	return 0, nil
}

// businessLocation loads the business's IANA zone, falling back to UTC when
// the record or zone data is unavailable.
func (s *bookingService) businessLocation(ctx context.Context, businessID uuid.UUID) *time.Location {
	biz, err := s.db.Business.Query().
		Where(entbusiness.ID(businessID)).
		Only(ctx)
	if err != nil {
		return time.UTC
	}
	loc, err := time.LoadLocation(biz.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// lateCancellation reports whether a booking starting at date+startTime wall
// clock in loc begins within windowHours of now.
func lateCancellation(date, startTime string, loc *time.Location, windowHours int, now time.Time) bool {
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+startTime, loc)
	if err != nil {
		return false
	}
	return start.Sub(now) < time.Duration(windowHours)*time.Hour
}

func toRules(stored []*repo.AvailabilityRule) []availability.Rule {
	out := make([]availability.Rule, 0, len(stored))
	for _, r := range stored {
		out = append(out, availability.Rule{
			ID:            r.ID,
			DayOfWeek:     int(r.DayOfWeek),
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			IsAvailable:   r.IsAvailable,
			EffectiveDate: r.EffectiveDate,
			ExpiryDate:    r.ExpiryDate,
		})
	}
	return out
}
