package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"policyhub/internal/model"
)

func TestActivityService_RecentDefaultsLimit(t *testing.T) {
	repo := new(MockActivityRepository)
	repo.On("Recent", mock.Anything, DefaultActivityLimit).Return([]model.Activity{}, nil)

	service := NewActivityService(repo)
	_, err := service.Recent(context.Background(), 0)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestActivityService_RecentPassesLimitThrough(t *testing.T) {
	now := time.Now()
	newest := []model.Activity{
		{Activity: "fifth", CreatedAt: now},
		{Activity: "fourth", CreatedAt: now.Add(-time.Minute)},
		{Activity: "third", CreatedAt: now.Add(-2 * time.Minute)},
	}
	repo := new(MockActivityRepository)
	repo.On("Recent", mock.Anything, 3).Return(newest, nil)

	service := NewActivityService(repo)
	activities, err := service.Recent(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, activities, 3)
	assert.Equal(t, "fifth", activities[0].Activity)
	assert.True(t, activities[0].CreatedAt.After(activities[1].CreatedAt))
	repo.AssertExpectations(t)
}

func TestActivityService_LogSwallowsErrors(t *testing.T) {
	repo := new(MockActivityRepository)
	repo.On("Append", mock.Anything, mock.AnythingOfType("*model.Activity")).Return(stderrors.New("write failed"))

	service := NewActivityService(repo)
	// Must not panic or surface the error in any way.
	service.Log(context.Background(), "Uploaded file: x to department y")
	repo.AssertExpectations(t)
}
