package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"policyhub/internal/errors"
	"policyhub/internal/model"
)

func TestAdminService_CreateAdmin(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		role          model.Role
		setupMock     func(*MockUserRepository, *MockActivityRepository)
		expectedError error
	}{
		{
			name:     "successful creation defaults to admin role",
			email:    "admin@example.com",
			password: "password123",
			setupMock: func(u *MockUserRepository, a *MockActivityRepository) {
				u.On("FindByEmail", mock.Anything, "admin@example.com").Return(nil, gorm.ErrRecordNotFound)
				u.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				a.On("Append", mock.Anything, mock.AnythingOfType("*model.Activity")).Return(nil)
			},
		},
		{
			name:          "creating a super admin is forbidden",
			email:         "boss@example.com",
			password:      "password123",
			role:          model.RoleSuperAdmin,
			setupMock:     func(u *MockUserRepository, a *MockActivityRepository) {},
			expectedError: errors.ErrSuperAdminCreation,
		},
		{
			name:     "duplicate email",
			email:    "taken@example.com",
			password: "password123",
			setupMock: func(u *MockUserRepository, a *MockActivityRepository) {
				u.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{Email: "taken@example.com"}, nil)
			},
			expectedError: errors.ErrEmailTaken,
		},
		{
			name:          "missing fields",
			email:         "",
			password:      "",
			setupMock:     func(u *MockUserRepository, a *MockActivityRepository) {},
			expectedError: errors.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			activityRepo := new(MockActivityRepository)
			tt.setupMock(userRepo, activityRepo)

			service := NewAdminService(userRepo, NewActivityService(activityRepo))
			admin, err := service.CreateAdmin(context.Background(), tt.email, tt.password, tt.role)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, admin)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.RoleAdmin, admin.Role)
			}

			userRepo.AssertExpectations(t)
		})
	}
}

func TestAdminService_DeleteAdmin(t *testing.T) {
	callerID := uuid.New()
	targetID := uuid.New()

	t.Run("self deletion is forbidden", func(t *testing.T) {
		service := NewAdminService(new(MockUserRepository), NewActivityService(new(MockActivityRepository)))
		err := service.DeleteAdmin(context.Background(), callerID, callerID)
		assert.ErrorIs(t, err, errors.ErrSelfDelete)
	})

	t.Run("deleting a super admin is forbidden", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, targetID).Return(&model.User{
			ID:   targetID,
			Role: model.RoleSuperAdmin,
		}, nil)

		service := NewAdminService(userRepo, NewActivityService(new(MockActivityRepository)))
		err := service.DeleteAdmin(context.Background(), callerID, targetID)
		assert.ErrorIs(t, err, errors.ErrSuperAdminProtected)
		userRepo.AssertExpectations(t)
	})

	t.Run("unknown target", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, targetID).Return(nil, gorm.ErrRecordNotFound)

		service := NewAdminService(userRepo, NewActivityService(new(MockActivityRepository)))
		err := service.DeleteAdmin(context.Background(), callerID, targetID)
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})

	t.Run("successful delete of a plain admin", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		activityRepo := new(MockActivityRepository)
		userRepo.On("FindByID", mock.Anything, targetID).Return(&model.User{
			ID:    targetID,
			Email: "admin@example.com",
			Role:  model.RoleAdmin,
		}, nil)
		userRepo.On("Delete", mock.Anything, targetID).Return(nil)
		activityRepo.On("Append", mock.Anything, mock.AnythingOfType("*model.Activity")).Return(nil)

		service := NewAdminService(userRepo, NewActivityService(activityRepo))
		assert.NoError(t, service.DeleteAdmin(context.Background(), callerID, targetID))
		userRepo.AssertExpectations(t)
	})
}

func TestAdminService_ListAdmins(t *testing.T) {
	userRepo := new(MockUserRepository)
	expected := []model.User{
		{Email: "boss@example.com", Role: model.RoleSuperAdmin},
		{Email: "admin@example.com", Role: model.RoleAdmin},
	}
	userRepo.On("ListByRoles", mock.Anything, []model.Role{model.RoleAdmin, model.RoleSuperAdmin}).Return(expected, nil)

	service := NewAdminService(userRepo, NewActivityService(new(MockActivityRepository)))
	admins, err := service.ListAdmins(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, admins)
	userRepo.AssertExpectations(t)
}
