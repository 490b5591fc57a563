// Package user provides business logic for account management: registration,
// profile reads and updates, and the moderation switch.
package user

import (
	"context"
	"log/slog"

	"github.com/agrosphere/backend/pkg/domain/user"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/pkg/repository"
	"github.com/google/uuid"
)

// Service provides business logic for user operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateUser registers a new account. The password arrives in plaintext and
// is hashed before anything touches the store; username and email
// uniqueness is enforced by the store and surfaces as a conflict.
func (s *Service) CreateUser(
	ctx context.Context,
	create *dto.UserCreate,
) (u *user.User, err error) {
	log := s.logger.With("context", "CreateUser", "username", create.Username)
	log.Debug("CreateUser called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = user.New(create.Username, create.Email, create.Password)
		if err != nil {
			return err
		}
		u.Names = create.Names
		u.Area = create.Area
		u.City = create.City
		u.Country = create.Country
		return repo.Create(ctx, &dto.UserCreate{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Password: u.Password,
			Names:    u.Names,
			Area:     u.Area,
			City:     u.City,
			Country:  u.Country,
		})
	})
	if err != nil {
		log.Error("CreateUser failed", "error", err)
		u = nil
		return
	}
	log.Info("CreateUser successful", "userID", u.ID)
	return
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(
	ctx context.Context,
	userID uuid.UUID,
) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, userID)
		return err
	})
	if err != nil {
		u = nil
	}
	return
}

// GetUserByUsername retrieves a user by username.
func (s *Service) GetUserByUsername(
	ctx context.Context,
	username string,
) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.GetByUsername(ctx, username)
		return err
	})
	if err != nil {
		u = nil
	}
	return
}

// UpdateUser updates profile fields. Nil fields in the update are left
// untouched.
func (s *Service) UpdateUser(
	ctx context.Context,
	userID uuid.UUID,
	update *dto.UserUpdate,
) (err error) {
	log := s.logger.With("context", "UpdateUser", "userID", userID)
	log.Debug("UpdateUser called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := repo.Get(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		return repo.Update(ctx, userID, update)
	})
	if err != nil {
		log.Error("UpdateUser failed", "error", err)
	}
	return
}

// SetBanned flips the moderation switch on the account with the given
// username. Only the admin CLI calls this; no HTTP route reaches it.
func (s *Service) SetBanned(
	ctx context.Context,
	username string,
	banned bool,
) (err error) {
	log := s.logger.With("context", "SetBanned", "username", username)
	log.Debug("SetBanned called", "banned", banned)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := repo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		return repo.Update(ctx, u.ID, &dto.UserUpdate{Banned: &banned})
	})
	if err != nil {
		log.Error("SetBanned failed", "error", err)
		return
	}
	log.Info("SetBanned successful", "banned", banned)
	return
}
