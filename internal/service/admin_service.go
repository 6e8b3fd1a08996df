package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"policyhub/internal/errors"
	"policyhub/internal/model"
	"policyhub/internal/repository"
)

// AdminService covers the super-admin account management operations.
// Invariants enforced here rather than in generic authorization: nobody
// deletes their own account, nobody deletes or creates a super admin.
type AdminService interface {
	ListAdmins(ctx context.Context) ([]model.User, error)
	CreateAdmin(ctx context.Context, email, password string, role model.Role) (*model.User, error)
	DeleteAdmin(ctx context.Context, callerID, targetID uuid.UUID) error
}

type adminService struct {
	userRepo repository.UserRepository
	activity ActivityService
}

// NewAdminService creates a new admin management service.
func NewAdminService(userRepo repository.UserRepository, activity ActivityService) AdminService {
	return &adminService{
		userRepo: userRepo,
		activity: activity,
	}
}

// ListAdmins lists admin and super admin accounts, newest first.
func (s *adminService) ListAdmins(ctx context.Context) ([]model.User, error) {
	admins, err := s.userRepo.ListByRoles(ctx, []model.Role{model.RoleAdmin, model.RoleSuperAdmin})
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

// CreateAdmin creates a privileged account. The role defaults to admin and
// may never be super_admin.
func (s *adminService) CreateAdmin(ctx context.Context, email, password string, role model.Role) (*model.User, error) {
	if email == "" || password == "" {
		return nil, errors.ErrMissingFields
	}
	if role == "" {
		role = model.RoleAdmin
	}
	if role == model.RoleSuperAdmin {
		return nil, errors.ErrSuperAdminCreation
	}
	if !role.Valid() {
		return nil, errors.ErrMissingFields
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check admin existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.activity.Log(ctx, fmt.Sprintf("Added admin account: %s", admin.Email))
	return admin, nil
}

// DeleteAdmin removes an account. The caller may not delete themselves and
// super admin accounts are never deletable.
func (s *adminService) DeleteAdmin(ctx context.Context, callerID, targetID uuid.UUID) error {
	if callerID == targetID {
		return errors.ErrSelfDelete
	}

	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("find target user: %w", err)
	}
	if target.Role == model.RoleSuperAdmin {
		return errors.ErrSuperAdminProtected
	}

	if err := s.userRepo.Delete(ctx, targetID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.activity.Log(ctx, fmt.Sprintf("Removed admin account: %s", target.Email))
	return nil
}
