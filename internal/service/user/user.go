package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/danahmadi/bookora_backend/internal/repo"
	entuser "github.com/danahmadi/bookora_backend/internal/repo/user"
	"github.com/danahmadi/bookora_backend/pkg/util/password"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpdateProfileRequest struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*repo.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &userService{db: db}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*repo.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)

	if req.FirstName != nil {
		if len(*req.FirstName) > 100 {
			return nil, ErrInvalidName
		}
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		if len(*req.LastName) > 100 {
			return nil, ErrInvalidName
		}
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			upd = upd.ClearPhone()
		} else {
			taken, err := s.db.User.Query().
				Where(
					entuser.Phone(*req.Phone),
					entuser.IDNEQ(id),
					entuser.DeletedAtIsNil(),
				).
				Exist(ctx)
			if err != nil {
				return nil, fmt.Errorf("check phone: %w", err)
			}
			if taken {
				return nil, ErrPhoneAlreadyExists
			}
			upd = upd.SetPhone(*req.Phone)
		}
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest) error {
	if len(req.NewPassword) < 8 {
		return ErrPasswordTooShort
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := password.Verify(u.PasswordHash, req.CurrentPassword); err != nil {
		return ErrInvalidPassword
	}

	newHash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.db.User.UpdateOne(u).SetPasswordHash(newHash).Exec(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
