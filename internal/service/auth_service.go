package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"policyhub/internal/auth"
	"policyhub/internal/errors"
	"policyhub/internal/model"
	"policyhub/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, credential verification and token issuance.
type AuthService interface {
	Register(ctx context.Context, email, password string, role model.Role) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	Anonymous(ctx context.Context) (token string, err error)
	Me(ctx context.Context, userID string) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password. The role defaults to
// user; super_admin can never be minted through this path.
func (s *authService) Register(ctx context.Context, email, password string, role model.Role) (*model.User, error) {
	if email == "" || password == "" {
		return nil, errors.ErrMissingFields
	}
	switch role {
	case "":
		role = model.RoleUser
	case model.RoleUser, model.RoleAdmin:
	case model.RoleSuperAdmin:
		return nil, errors.ErrSuperAdminCreation
	default:
		return nil, errors.ErrMissingFields
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and returns a session token plus the user.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

// Anonymous issues a guest session token with reader permissions. The guest
// identity is a fresh UUID with no backing user row.
func (s *authService) Anonymous(ctx context.Context) (string, error) {
	token, err := s.jwtService.Issue(uuid.New(), "anonymous", model.RoleUser)
	if err != nil {
		return "", fmt.Errorf("issue guest token: %w", err)
	}
	return token, nil
}

// Me resolves a token identity to its user record. Guest identities and
// deleted users are reported as not found.
func (s *authService) Me(ctx context.Context, userID string) (*model.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
