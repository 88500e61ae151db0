package customer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/danahmadi/bookora_backend/internal/repo"
	entcustomer "github.com/danahmadi/bookora_backend/internal/repo/customer"
)

// defaultRegion is used when a phone number is given without a country prefix.
const defaultRegion = "US"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListCustomersRequest struct {
	Page    int
	PerPage int
	Search  string // matches first/last name prefix or exact phone
}

type CreateCustomerRequest struct {
	UserID    *uuid.UUID
	FirstName string
	LastName  *string
	Phone     *string
	Email     *string
	Notes     *string
}

type UpdateCustomerRequest struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
	Notes     *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, businessID uuid.UUID, req CreateCustomerRequest) (*repo.Customer, error)
	GetByID(ctx context.Context, businessID, customerID uuid.UUID) (*repo.Customer, error)
	List(ctx context.Context, businessID uuid.UUID, req ListCustomersRequest) (*PaginatedResult[*repo.Customer], error)
	Update(ctx context.Context, businessID, customerID uuid.UUID, req UpdateCustomerRequest) (*repo.Customer, error)
	Delete(ctx context.Context, businessID, customerID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type customerService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &customerService{db: db}
}

func (s *customerService) Create(ctx context.Context, businessID uuid.UUID, req CreateCustomerRequest) (*repo.Customer, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	if req.FirstName == "" {
		return nil, ErrFirstNameRequired
	}

	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	if phone != nil {
		exists, err := s.db.Customer.Query().
			Where(
				entcustomer.BusinessID(businessID),
				entcustomer.Phone(*phone),
				entcustomer.DeletedAtIsNil(),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check phone: %w", err)
		}
		if exists {
			return nil, ErrPhoneAlreadyExists
		}
	}

	c := s.db.Customer.Create().
		SetBusinessID(businessID).
		SetFirstName(req.FirstName)

	if req.UserID != nil {
		c = c.SetNillableUserID(req.UserID)
	}
	if req.LastName != nil {
		c = c.SetNillableLastName(req.LastName)
	}
	if phone != nil {
		c = c.SetPhone(*phone)
	}
	if req.Email != nil {
		c = c.SetNillableEmail(req.Email)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	cust, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return cust, nil
}

func (s *customerService) GetByID(ctx context.Context, businessID, customerID uuid.UUID) (*repo.Customer, error) {
	c, err := s.db.Customer.Query().
		Where(
			entcustomer.ID(customerID),
			entcustomer.BusinessID(businessID),
			entcustomer.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (s *customerService) List(ctx context.Context, businessID uuid.UUID, req ListCustomersRequest) (*PaginatedResult[*repo.Customer], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Customer.Query().
		Where(entcustomer.BusinessID(businessID), entcustomer.DeletedAtIsNil())

	if search := strings.TrimSpace(req.Search); search != "" {
		q = q.Where(entcustomer.Or(
			entcustomer.FirstNameHasPrefix(search),
			entcustomer.LastNameHasPrefix(search),
			entcustomer.Phone(search),
		))
	}

	q = q.Order(entcustomer.ByCreatedAt(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	customers, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Customer]{
		Data:       customers,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *customerService) Update(ctx context.Context, businessID, customerID uuid.UUID, req UpdateCustomerRequest) (*repo.Customer, error) {
	c, err := s.GetByID(ctx, businessID, customerID)
	if err != nil {
		return nil, err
	}

	u := s.db.Customer.UpdateOne(c)

	if req.FirstName != nil {
		name := strings.TrimSpace(*req.FirstName)
		if name == "" {
			return nil, ErrFirstNameRequired
		}
		u = u.SetFirstName(name)
	}
	if req.LastName != nil {
		u = u.SetNillableLastName(req.LastName)
	}
	if req.Phone != nil {
		phone, err := normalizePhone(req.Phone)
		if err != nil {
			return nil, err
		}
		if phone == nil {
			u = u.ClearPhone()
		} else {
			u = u.SetPhone(*phone)
		}
	}
	if req.Email != nil {
		u = u.SetNillableEmail(req.Email)
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}

	return u.Save(ctx)
}

func (s *customerService) Delete(ctx context.Context, businessID, customerID uuid.UUID) error {
	c, err := s.GetByID(ctx, businessID, customerID)
	if err != nil {
		return err
	}
	// Soft delete keeps historical bookings pointing at a real record.
	return s.db.Customer.UpdateOne(c).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// normalizePhone parses and reformats a phone number as E.164. Empty input
// maps to nil so callers can clear the field.
func normalizePhone(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil, nil
	}

	num, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return nil, ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return nil, ErrInvalidPhone
	}

	formatted := phonenumbers.Format(num, phonenumbers.E164)
	return &formatted, nil
}
