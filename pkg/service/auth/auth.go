// Package auth provides authentication: credential login, JWT issuing and
// resolving the current user from a verified token. Identity for every
// protected operation comes from the token, never from request payloads.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/agrosphere/backend/pkg/config"
	"github.com/agrosphere/backend/pkg/domain/user"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/pkg/repository"
	"github.com/agrosphere/backend/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const userContextKey contextKey = "user"

// Strategy abstracts how credentials are verified and tokens produced.
type Strategy interface {
	Login(ctx context.Context, identity, password string) (*dto.UserRead, error)
	GetCurrentUserID(ctx context.Context) (uuid.UUID, error)
	GenerateToken(ctx context.Context, u *dto.UserRead) (string, error)
}

// Service provides authentication operations through a Strategy.
type Service struct {
	uow      repository.UnitOfWork
	strategy Strategy
	logger   *slog.Logger
}

// New creates a Service with a UnitOfWork, a Strategy and a logger.
func New(
	uow repository.UnitOfWork,
	strategy Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, strategy: strategy, logger: logger}
}

// NewWithJWT creates a Service backed by the JWT strategy.
func NewWithJWT(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return New(uow, &JWTStrategy{uow: uow, cfg: cfg, logger: logger}, logger)
}

// Login verifies an identity (username or email) and password, returning
// the account when valid.
func (s *Service) Login(
	ctx context.Context,
	identity, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Login")
	log.Debug("Login called", "identity", identity)
	u, err = s.strategy.Login(ctx, identity, password)
	if err != nil {
		log.Error("Login failed", "identity", identity, "error", err)
		return
	}
	log.Info("Login successful", "userID", u.ID)
	return
}

// GenerateToken issues a signed token for the user.
func (s *Service) GenerateToken(
	ctx context.Context,
	u *dto.UserRead,
) (string, error) {
	log := s.logger.With("userID", u.ID)
	token, err := s.strategy.GenerateToken(ctx, u)
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Debug("GenerateToken successful")
	return token, nil
}

// GetCurrentUserId resolves the authenticated user from a verified token.
func (s *Service) GetCurrentUserId(
	token *jwt.Token,
) (userID uuid.UUID, err error) {
	log := s.logger.With("context", "GetCurrentUserId")
	userID, err = s.strategy.GetCurrentUserID(
		context.WithValue(
			context.Background(),
			userContextKey,
			token,
		),
	)
	if err != nil {
		log.Error("GetCurrentUserId failed", "error", err)
		return
	}
	return
}

// JWTStrategy verifies credentials against the store and issues HS256
// tokens.
type JWTStrategy struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

// NewJWTStrategy creates a JWTStrategy.
func NewJWTStrategy(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *JWTStrategy {
	return &JWTStrategy{uow: uow, cfg: cfg, logger: logger}
}

// GenerateToken signs a token carrying the user's ID, username and email.
func (s *JWTStrategy) GenerateToken(
	ctx context.Context,
	u *dto.UserRead,
) (string, error) {
	log := s.logger.With("userID", u.ID)
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = u.Username
	claims["email"] = u.Email
	claims["user_id"] = u.ID.String()
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	return tokenString, nil
}

// Login resolves identity by email or username and compares the password.
// Lookups that miss still run one hash comparison so response timing does
// not reveal whether the account exists. Banned accounts cannot log in.
func (s *JWTStrategy) Login(
	ctx context.Context,
	identity, password string,
) (
	u *dto.UserRead,
	err error,
) {
	log := s.logger.With("context", "Login", "identity", identity)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		if utils.IsEmail(identity) {
			u, err = repo.GetByEmail(ctx, identity)
		} else {
			u, err = repo.GetByUsername(ctx, identity)
		}

		const dummyHash = "$2a$10$.IIxpSc3OElWXLV2Wj517eUGmZ64IQgBNQ4OcFbanW85CTrgrIDQy"
		if err != nil {
			return user.ErrUserUnauthorized
		}
		if u == nil {
			// Equalize timing with a throwaway comparison.
			_ = utils.CheckPasswordHash(password, dummyHash)
			log.Error("Login failed", "error", user.ErrUserUnauthorized)
			return user.ErrUserUnauthorized
		}
		if !utils.CheckPasswordHash(password, u.HashedPassword) {
			log.Error("Login failed", "error", user.ErrUserUnauthorized)
			return user.ErrUserUnauthorized
		}
		if u.Banned {
			log.Error("Login rejected", "error", user.ErrUserBanned)
			return user.ErrUserBanned
		}
		return nil
	})
	if err != nil {
		u = nil
	}
	return
}

// GetCurrentUserID extracts and parses the user_id claim from the token
// placed in the context.
func (s *JWTStrategy) GetCurrentUserID(
	ctx context.Context,
) (userID uuid.UUID, err error) {
	log := s.logger.With("context", "GetCurrentUserID")
	token, ok := ctx.Value(userContextKey).(*jwt.Token)
	if !ok || token == nil {
		log.Error("GetCurrentUserID failed", "error", user.ErrUserUnauthorized)
		err = user.ErrUserUnauthorized
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		log.Error("GetCurrentUserID failed", "error", user.ErrUserUnauthorized)
		err = user.ErrUserUnauthorized
		return
	}
	userIDRaw, ok := claims["user_id"].(string)
	if !ok {
		log.Error("GetCurrentUserID failed", "error", user.ErrUserUnauthorized)
		err = user.ErrUserUnauthorized
		return
	}
	userID, err = uuid.Parse(userIDRaw)
	if err != nil {
		log.Error("GetCurrentUserID failed", "error", err)
		return
	}
	return
}
