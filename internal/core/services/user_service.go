package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paydesk/compchange/internal/apperrors"
	"github.com/paydesk/compchange/internal/core/domain"
	portsrepo "github.com/paydesk/compchange/internal/core/ports/repositories"
	portssvc "github.com/paydesk/compchange/internal/core/ports/services"
	"github.com/paydesk/compchange/internal/dto"
	"github.com/paydesk/compchange/internal/middleware"
	"github.com/paydesk/compchange/internal/utils"
)

// userService manages application users and password authentication.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByID retrieves a user by ID.
// Implements portssvc.UserReaderSvc
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByUsername retrieves a user by username.
// Implements portssvc.UserReaderSvc
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

// ListUsers retrieves a paginated list of users.
// Implements portssvc.UserReaderSvc
func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// CreateUser creates a new user with a bcrypt-hashed password.
// Implements portssvc.UserWriterSvc
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check username availability", "username", req.Username, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username %s is already taken", apperrors.ErrDuplicate, req.Username)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		Department:   req.Department,
		PasswordHash: passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to create user", "username", req.Username, "error", err)
		return nil, err
	}

	logger.Info("User created", "user_id", user.UserID, "username", user.Username, "department", user.Department)
	return &user, nil
}

// UpdateUser updates an existing user's details.
// Implements portssvc.UserWriterSvc
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to update user", "user_id", userID, "error", err)
		return nil, err
	}

	return user, nil
}

// UpdateRefreshToken stores the hash and expiry of a user's refresh token.
// Implements portssvc.UserWriterSvc
func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateUserRefreshToken(ctx, userID, &refreshTokenHash, &refreshTokenExpiryTime)
}

// ClearRefreshToken clears the refresh token for a user.
// Implements portssvc.UserWriterSvc
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.UpdateUserRefreshToken(ctx, userID, nil, nil)
}

// AuthenticateUser authenticates a user with username and password.
// Implements portssvc.UserAuthSvc
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a bad password so usernames cannot be enumerated.
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to look up user for authentication", "username", username, "error", err)
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
