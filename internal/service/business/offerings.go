package business

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/danahmadi/bookora_backend/internal/repo"
	entoffering "github.com/danahmadi/bookora_backend/internal/repo/serviceoffering"
)

// Service catalog management. Offerings are soft-deleted so bookings keep a
// valid reference to the service they were made for.

type CreateOfferingRequest struct {
	Name        string
	Description *string
	DurationMin int
	Price       int64
}

type UpdateOfferingRequest struct {
	Name        *string
	Description *string
	DurationMin *int
	Price       *int64
	IsActive    *bool
}

func (s *businessService) ListOfferings(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]*repo.ServiceOffering, error) {
	q := s.db.ServiceOffering.Query().
		Where(entoffering.BusinessID(businessID), entoffering.DeletedAtIsNil())
	if activeOnly {
		q = q.Where(entoffering.IsActive(true))
	}
	return q.Order(entoffering.ByCreatedAt(sql.OrderAsc())).All(ctx)
}

func (s *businessService) GetOffering(ctx context.Context, businessID, offeringID uuid.UUID) (*repo.ServiceOffering, error) {
	o, err := s.db.ServiceOffering.Query().
		Where(
			entoffering.ID(offeringID),
			entoffering.BusinessID(businessID),
			entoffering.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrOfferingNotFound
		}
		return nil, fmt.Errorf("get offering: %w", err)
	}
	return o, nil
}

func (s *businessService) CreateOffering(ctx context.Context, businessID uuid.UUID, req CreateOfferingRequest) (*repo.ServiceOffering, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrInvalidOfferingName
	}
	if req.DurationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	c := s.db.ServiceOffering.Create().
		SetBusinessID(businessID).
		SetName(req.Name).
		SetDurationMin(req.DurationMin).
		SetPrice(req.Price).
		SetIsActive(true)
	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}

	o, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create offering: %w", err)
	}
	return o, nil
}

func (s *businessService) UpdateOffering(ctx context.Context, businessID, offeringID uuid.UUID, req UpdateOfferingRequest) (*repo.ServiceOffering, error) {
	o, err := s.GetOffering(ctx, businessID, offeringID)
	if err != nil {
		return nil, err
	}

	upd := s.db.ServiceOffering.UpdateOne(o)
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrInvalidOfferingName
		}
		upd = upd.SetName(name)
	}
	if req.Description != nil {
		upd = upd.SetNillableDescription(req.Description)
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			return nil, ErrInvalidDuration
		}
		upd = upd.SetDurationMin(*req.DurationMin)
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidPrice
		}
		upd = upd.SetPrice(*req.Price)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	return upd.Save(ctx)
}

func (s *businessService) DeleteOffering(ctx context.Context, businessID, offeringID uuid.UUID) error {
	o, err := s.GetOffering(ctx, businessID, offeringID)
	if err != nil {
		return err
	}
	return s.db.ServiceOffering.UpdateOne(o).
		SetDeletedAt(time.Now()).
		SetIsActive(false).
		Exec(ctx)
}
