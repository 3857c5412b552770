package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rafflewise/draw-engine/internal/models"
	"github.com/rafflewise/draw-engine/internal/repositories"
	"github.com/rafflewise/draw-engine/pkg/jwt"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Compile-time check to ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

var (
	// ErrInvalidCredentials is returned for a bad email or password. The
	// two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering an email that already has
	// an account.
	ErrEmailTaken = errors.New("an account with this email already exists")
)

// AuthServiceImpl handles admin account registration and login
type AuthServiceImpl struct {
	adminUserRepo repositories.AdminUserRepository
	tokenService  *jwt.TokenService
}

// NewAuthService creates a new AuthServiceImpl
func NewAuthService(adminUserRepo repositories.AdminUserRepository, tokenService *jwt.TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{
		adminUserRepo: adminUserRepo,
		tokenService:  tokenService,
	}
}

// Register creates a new admin account with a bcrypt password hash
func (s *AuthServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*models.AdminUser, error) {
	_, err := s.adminUserRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	adminUser := &models.AdminUser{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Role:      "operator",
	}
	if err := s.adminUserRepo.Create(ctx, adminUser); err != nil {
		slog.Error("Failed to create admin account", "error", err, "email", req.Email)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	slog.Info("Admin account registered", "email", adminUser.Email, "role", adminUser.Role)
	adminUser.Password = ""
	return adminUser, nil
}

// Login checks credentials and returns a signed JWT on success
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *models.AdminUser, error) {
	adminUser, err := s.adminUserRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adminUser.Password), []byte(password)); err != nil {
		slog.Warn("Failed login attempt", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.Generate(adminUser.ID.Hex(), adminUser.Email, adminUser.Role)
	if err != nil {
		slog.Error("Failed to generate token", "error", err, "email", email)
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	adminUser.Password = ""
	return token, adminUser, nil
}

// GetProfile retrieves the account behind an authenticated request
func (s *AuthServiceImpl) GetProfile(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	adminUser, err := s.adminUserRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	adminUser.Password = ""
	return adminUser, nil
}
