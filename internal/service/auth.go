package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/crypto"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/model"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already in use")
)

// AuthService handles registration, login and the persisted session.
type AuthService struct {
	users     *repository.UserRepository
	sessions  *repository.SessionRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository, sessions *repository.SessionRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account and returns an auth token. The
// password is Argon2id-hashed before it touches the store; the response
// never carries credential material.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) (model.AuthResponse, error) {
	if req.Username == "" {
		return model.AuthResponse{}, ErrUsernameRequired
	}
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := model.User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Email:     req.Email,
		AuthHash:  hash,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, User: user.Response()}, nil
}

// Login authenticates a user by exact email match and constant-time
// password verification, and returns an auth token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.AuthHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, User: user.Response()}, nil
}

// GetUser retrieves a user by id and returns the safe view.
func (s *AuthService) GetUser(ctx context.Context, userID string) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return user.Response(), nil
}

// CurrentSession returns the persisted session user, or nil when no
// session has been stored. The session is a denormalized copy; edits to
// the user record do not flow into it.
func (s *AuthService) CurrentSession(ctx context.Context) (*model.UserResponse, error) {
	return s.sessions.Get(ctx)
}

// SetSession persists user as the current session; nil clears it.
func (s *AuthService) SetSession(ctx context.Context, user *model.UserResponse) error {
	return s.sessions.Set(ctx, user)
}
