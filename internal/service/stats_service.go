package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"policyhub/internal/repository"
)

// DepartmentStat is a department label with its entry count.
type DepartmentStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Overview is the derived usage picture of the registry, computed on demand.
type Overview struct {
	TotalFiles          int64           `json:"total_files"`
	FilesThisMonth      int64           `json:"files_this_month"`
	DepartmentCounts    map[string]int  `json:"department_counts"`
	TopDepartment       *DepartmentStat `json:"top_department"`
	ActiveDepartments   int             `json:"active_departments"`
	DaysSinceLastUpload int             `json:"days_since_last_upload"`
}

// StatsService aggregates registry usage. Nothing here is cached; every call
// reflects the store at that moment.
type StatsService interface {
	Overview(ctx context.Context) (*Overview, error)
}

type statsService struct {
	fileRepo repository.FileRepository
	now      func() time.Time
}

// NewStatsService creates a new stats service.
func NewStatsService(fileRepo repository.FileRepository) StatsService {
	return &statsService{fileRepo: fileRepo, now: time.Now}
}

// Overview computes the aggregate counts. Department counts scan entries in
// the registry's listing order (upload date descending), and the top
// department is the first label to reach the maximum count, which keeps ties
// stable for a given listing.
func (s *statsService) Overview(ctx context.Context) (*Overview, error) {
	now := s.now().UTC()

	total, err := s.fileRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count files: %w", err)
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	thisMonth, err := s.fileRepo.CountSince(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("count files this month: %w", err)
	}

	files, err := s.fileRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	counts := make(map[string]int, 8)
	var order []string
	for _, f := range files {
		if counts[f.Department] == 0 {
			order = append(order, f.Department)
		}
		counts[f.Department]++
	}

	var top *DepartmentStat
	for _, dept := range order {
		if top == nil || counts[dept] > top.Count {
			top = &DepartmentStat{Name: dept, Count: counts[dept]}
		}
	}

	daysSinceLastUpload := 0
	latest, err := s.fileRepo.FindLatest(ctx)
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find latest upload: %w", err)
	}
	if latest != nil {
		daysSinceLastUpload = int(now.Sub(latest.UploadDate).Hours() / 24)
		if daysSinceLastUpload < 0 {
			daysSinceLastUpload = 0
		}
	}

	return &Overview{
		TotalFiles:          total,
		FilesThisMonth:      thisMonth,
		DepartmentCounts:    counts,
		TopDepartment:       top,
		ActiveDepartments:   len(counts),
		DaysSinceLastUpload: daysSinceLastUpload,
	}, nil
}
