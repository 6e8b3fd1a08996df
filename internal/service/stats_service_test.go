package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"policyhub/internal/model"
)

func TestStatsService_Overview(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	latestUpload := now.AddDate(0, 0, -3)

	// Listing order is upload_date descending; three emergency entries and
	// two finance entries.
	files := []model.UploadedFile{
		{Department: "Emergency", UploadDate: latestUpload},
		{Department: "Finance", UploadDate: now.AddDate(0, 0, -4)},
		{Department: "Emergency", UploadDate: now.AddDate(0, 0, -5)},
		{Department: "Finance", UploadDate: now.AddDate(0, 0, -6)},
		{Department: "Emergency", UploadDate: now.AddDate(0, 0, -7)},
	}

	fileRepo := new(MockFileRepository)
	fileRepo.On("Count", mock.Anything).Return(int64(5), nil)
	fileRepo.On("CountSince", mock.Anything, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)).Return(int64(5), nil)
	fileRepo.On("FindAll", mock.Anything).Return(files, nil)
	fileRepo.On("FindLatest", mock.Anything).Return(&files[0], nil)

	service := &statsService{fileRepo: fileRepo, now: func() time.Time { return now }}
	stats, err := service.Overview(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalFiles)
	assert.Equal(t, int64(5), stats.FilesThisMonth)
	assert.Equal(t, map[string]int{"Emergency": 3, "Finance": 2}, stats.DepartmentCounts)
	assert.Equal(t, &DepartmentStat{Name: "Emergency", Count: 3}, stats.TopDepartment)
	assert.Equal(t, 2, stats.ActiveDepartments)
	assert.Equal(t, 3, stats.DaysSinceLastUpload)
	fileRepo.AssertExpectations(t)
}

func TestStatsService_OverviewTieKeepsScanOrder(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	files := []model.UploadedFile{
		{Department: "Nursing", UploadDate: now.AddDate(0, 0, -1)},
		{Department: "Finance", UploadDate: now.AddDate(0, 0, -2)},
		{Department: "Nursing", UploadDate: now.AddDate(0, 0, -3)},
		{Department: "Finance", UploadDate: now.AddDate(0, 0, -4)},
	}

	fileRepo := new(MockFileRepository)
	fileRepo.On("Count", mock.Anything).Return(int64(4), nil)
	fileRepo.On("CountSince", mock.Anything, mock.Anything).Return(int64(4), nil)
	fileRepo.On("FindAll", mock.Anything).Return(files, nil)
	fileRepo.On("FindLatest", mock.Anything).Return(&files[0], nil)

	service := &statsService{fileRepo: fileRepo, now: func() time.Time { return now }}
	stats, err := service.Overview(context.Background())

	assert.NoError(t, err)
	// Nursing appears first in the scan, so it wins the tie.
	assert.Equal(t, &DepartmentStat{Name: "Nursing", Count: 2}, stats.TopDepartment)
}

func TestStatsService_OverviewEmptyRegistry(t *testing.T) {
	fileRepo := new(MockFileRepository)
	fileRepo.On("Count", mock.Anything).Return(int64(0), nil)
	fileRepo.On("CountSince", mock.Anything, mock.Anything).Return(int64(0), nil)
	fileRepo.On("FindAll", mock.Anything).Return([]model.UploadedFile{}, nil)
	fileRepo.On("FindLatest", mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	service := NewStatsService(fileRepo)
	stats, err := service.Overview(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalFiles)
	assert.Nil(t, stats.TopDepartment)
	assert.Equal(t, 0, stats.ActiveDepartments)
	assert.Equal(t, 0, stats.DaysSinceLastUpload)
}
