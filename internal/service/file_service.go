package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"policyhub/internal/cache"
	"policyhub/internal/errors"
	"policyhub/internal/model"
	"policyhub/internal/repository"
)

const (
	fileListCacheTTL = 5 * time.Minute
	fileListCacheKey = "files:all"

	// Fallback original name for direct uploads that never carried one.
	defaultOriginalName = "file"
)

// CreateFileInput is the caller-supplied part of a new registry entry.
// FileType is derived, never accepted from the caller.
type CreateFileInput struct {
	OriginalName string
	CustomName   string
	Department   string
	FileURL      string
	YoutubeURL   string
}

// UpdateFileInput carries the mutable fields of an entry. Empty fields are
// left untouched.
type UpdateFileInput struct {
	CustomName string
	Department string
}

// FileService handles the registry entry lifecycle. Every successful mutation
// appends one audit line; that append is best-effort and never rolls back the
// mutation.
type FileService interface {
	List(ctx context.Context) ([]model.UploadedFile, error)
	ListByDepartment(ctx context.Context, department string) ([]model.UploadedFile, error)
	Create(ctx context.Context, input CreateFileInput) (*model.UploadedFile, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateFileInput) (*model.UploadedFile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type fileService struct {
	fileRepo repository.FileRepository
	activity ActivityService
	cache    *cache.Client
}

// NewFileService creates a new file service.
func NewFileService(fileRepo repository.FileRepository, activity ActivityService, cacheClient *cache.Client) FileService {
	return &fileService{
		fileRepo: fileRepo,
		activity: activity,
		cache:    cacheClient,
	}
}

func departmentCacheKey(department string) string {
	return "files:dept:" + department
}

// List returns every registry entry, newest upload first, with caching.
func (s *fileService) List(ctx context.Context) ([]model.UploadedFile, error) {
	if data, _ := s.cache.Get(ctx, fileListCacheKey); data != nil {
		var cached []model.UploadedFile
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	files, err := s.fileRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	if payload, err := json.Marshal(files); err == nil {
		_ = s.cache.Set(ctx, fileListCacheKey, payload, fileListCacheTTL)
	}
	return files, nil
}

// ListByDepartment returns one department's entries, newest upload first.
func (s *fileService) ListByDepartment(ctx context.Context, department string) ([]model.UploadedFile, error) {
	key := departmentCacheKey(department)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.UploadedFile
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	files, err := s.fileRepo.FindByDepartment(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("list files by department: %w", err)
	}

	if payload, err := json.Marshal(files); err == nil {
		_ = s.cache.Set(ctx, key, payload, fileListCacheTTL)
	}
	return files, nil
}

// Create validates input, derives the file type from the supplied locator and
// stores the entry. A non-empty youtube URL wins over a file URL.
func (s *fileService) Create(ctx context.Context, input CreateFileInput) (*model.UploadedFile, error) {
	if input.CustomName == "" || input.Department == "" {
		return nil, errors.ErrMissingFields
	}
	if input.FileURL == "" && input.YoutubeURL == "" {
		return nil, errors.ErrNoLocator
	}

	file := &model.UploadedFile{
		OriginalName: input.OriginalName,
		CustomName:   input.CustomName,
		Department:   input.Department,
		FileURL:      input.FileURL,
		YoutubeURL:   input.YoutubeURL,
		FileType:     model.FileTypeFile,
	}
	if input.YoutubeURL != "" {
		file.FileType = model.FileTypeYoutube
		if file.OriginalName == "" {
			file.OriginalName = input.YoutubeURL
		}
	} else if file.OriginalName == "" {
		file.OriginalName = defaultOriginalName
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	s.activity.Log(ctx, fmt.Sprintf("Uploaded file: %s to department %s", file.CustomName, file.Department))
	s.invalidate(ctx, file.Department)
	return file, nil
}

// Update changes the display name and/or department of an entry.
func (s *fileService) Update(ctx context.Context, id uuid.UUID, input UpdateFileInput) (*model.UploadedFile, error) {
	file, err := s.fileRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrFileNotFound
		}
		return nil, fmt.Errorf("find file: %w", err)
	}

	previousDepartment := file.Department
	if input.CustomName != "" {
		file.CustomName = input.CustomName
	}
	if input.Department != "" {
		file.Department = input.Department
	}

	if err := s.fileRepo.Update(ctx, file); err != nil {
		return nil, fmt.Errorf("update file: %w", err)
	}

	s.activity.Log(ctx, fmt.Sprintf("Updated file: %s", file.CustomName))
	s.invalidate(ctx, previousDepartment, file.Department)
	return file, nil
}

// Delete removes an entry.
func (s *fileService) Delete(ctx context.Context, id uuid.UUID) error {
	file, err := s.fileRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrFileNotFound
		}
		return fmt.Errorf("find file: %w", err)
	}

	if err := s.fileRepo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrFileNotFound
		}
		return fmt.Errorf("delete file: %w", err)
	}

	s.activity.Log(ctx, fmt.Sprintf("Deleted file: %s", file.CustomName))
	s.invalidate(ctx, file.Department)
	return nil
}

func (s *fileService) invalidate(ctx context.Context, departments ...string) {
	keys := []string{fileListCacheKey}
	for _, d := range departments {
		keys = append(keys, departmentCacheKey(d))
	}
	_ = s.cache.Delete(ctx, keys...)
}
