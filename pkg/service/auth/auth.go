// Package auth is the identity adapter: it turns credentials into the opaque
// owner id the ledger scopes everything by. The ledger packages never import
// this one.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackd/fintrack/pkg/config"
	"github.com/fintrackd/fintrack/pkg/domain"
	"github.com/fintrackd/fintrack/pkg/domain/user"
	"github.com/fintrackd/fintrack/pkg/dto"
	"github.com/fintrackd/fintrack/pkg/mapper"
	"github.com/fintrackd/fintrack/pkg/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps password comparison constant-time when the user does not
// exist.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Service provides registration, login, and token handling.
type Service struct {
	uow    repository.UnitOfWork
	cfg    config.Jwt
	logger *slog.Logger
}

// NewService creates the auth service.
func NewService(uow repository.UnitOfWork, cfg config.Jwt, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Register creates a user with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, create dto.UserCreate) (*dto.UserRead, error) {
	log := s.logger.With("email", create.Email)

	u, err := user.NewUser(create.Email, create.Password, create.Names)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, u)
	})
	if err != nil {
		log.Error("register failed", "error", err)
		return nil, err
	}
	log.Info("user registered", "userID", u.ID)
	return mapper.UserToRead(u), nil
}

// Login verifies the credentials and returns the user. A missing user and a
// wrong password both come back as ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*dto.UserRead, error) {
	log := s.logger.With("email", email)

	repo, err := s.uow.UserRepository()
	if err != nil {
		return nil, err
	}
	u, err := repo.GetByEmail(ctx, email)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		log.Warn("login failed", "error", err)
		return nil, user.ErrInvalidCredentials
	}
	if !u.CheckPassword(password) {
		log.Warn("login failed", "error", user.ErrInvalidCredentials)
		return nil, user.ErrInvalidCredentials
	}
	log.Info("login successful", "userID", u.ID)
	return mapper.UserToRead(u), nil
}

// GenerateToken signs a JWT carrying the user id as the owner claim.
func (s *Service) GenerateToken(u *dto.UserRead) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = u.ID.String()
	claims["email"] = u.Email
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("token signing failed", "userID", u.ID, "error", err)
		return "", err
	}
	return signed, nil
}

// GetCurrentUserID extracts the owner id from a verified token.
func GetCurrentUserID(token *jwt.Token) (uuid.UUID, error) {
	if token == nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return id, nil
}
