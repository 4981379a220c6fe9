package services

import (
	"context"
	"fmt"
	"time"

	"github.com/globopersona/marketing-dashboard/internal/config"
	"github.com/globopersona/marketing-dashboard/internal/models"
	"github.com/globopersona/marketing-dashboard/internal/repositories"
	"github.com/globopersona/marketing-dashboard/internal/utils"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	Logout(ctx context.Context) error
	// RestoreSession returns the persisted session user without
	// revalidating it against the users collection, as the reference does.
	RestoreSession(ctx context.Context) (*models.User, error)
	Me(ctx context.Context, userID int64) (*models.User, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	ids         *utils.IDGenerator
	cfg         *config.Config
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository, ids *utils.IDGenerator, cfg *config.Config) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		ids:         ids,
		cfg:         cfg,
	}
}

// Login looks up the exact (email, password) pair, stamps lastLogin,
// backfills fields older accounts may be missing, and persists the session.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != req.Password {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if user.ID == 0 {
		user.ID = s.ids.Next()
	}
	if user.RegisteredAt.IsZero() {
		if !user.LastLogin.IsZero() {
			user.RegisteredAt = user.LastLogin
		} else {
			user.RegisteredAt = now
		}
	}
	user.LastLogin = now

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Set(ctx, user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &models.LoginResponse{Token: token, User: user.Sanitized()}, nil
}

// Register creates a new account. Registration does not log the user in;
// the caller switches to the login flow afterwards.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(req.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	now := time.Now()
	user := &models.User{
		ID:           s.ids.Next(),
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		RegisteredAt: now,
		LastLogin:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// RequestPasswordReset acknowledges a reset for a known email. No mail is
// sent; the acknowledgment message is the whole caller-visible effect.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrEmailNotFound
	}
	return fmt.Sprintf("Password reset link has been sent to %s", email), nil
}

// Logout clears the persisted session
func (s *authService) Logout(ctx context.Context) error {
	return s.sessionRepo.Clear(ctx)
}

// RestoreSession reads the persisted session, if any
func (s *authService) RestoreSession(ctx context.Context) (*models.User, error) {
	user, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// Me resolves a user ID from a validated token against the users collection
func (s *authService) Me(ctx context.Context, userID int64) (*models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == userID {
			sanitized := users[i].Sanitized()
			return &sanitized, nil
		}
	}
	return nil, nil
}
