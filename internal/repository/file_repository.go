package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"policyhub/internal/model"
)

// FileRepository defines registry entry persistence operations.
// All listings are ordered by upload_date descending.
type FileRepository interface {
	Create(ctx context.Context, file *model.UploadedFile) error
	Update(ctx context.Context, file *model.UploadedFile) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.UploadedFile, error)
	FindAll(ctx context.Context) ([]model.UploadedFile, error)
	FindByDepartment(ctx context.Context, department string) ([]model.UploadedFile, error)
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	FindLatest(ctx context.Context) (*model.UploadedFile, error)
	ExistsByFileURL(ctx context.Context, fileURL string) (bool, error)
}

type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a new file repository.
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

// Create creates a new registry entry.
func (r *fileRepository) Create(ctx context.Context, file *model.UploadedFile) error {
	return r.db.WithContext(ctx).Create(file).Error
}

// Update updates an existing registry entry.
func (r *fileRepository) Update(ctx context.Context, file *model.UploadedFile) error {
	return r.db.WithContext(ctx).Save(file).Error
}

// Delete removes a registry entry by ID. Missing rows surface as
// gorm.ErrRecordNotFound so callers can report 404.
func (r *fileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.UploadedFile{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID finds a registry entry by ID.
func (r *fileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UploadedFile, error) {
	var file model.UploadedFile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// FindAll lists every registry entry, newest upload first.
func (r *fileRepository) FindAll(ctx context.Context) ([]model.UploadedFile, error) {
	var files []model.UploadedFile
	if err := r.db.WithContext(ctx).
		Order("upload_date DESC").
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// FindByDepartment lists registry entries of one department, newest upload first.
func (r *fileRepository) FindByDepartment(ctx context.Context, department string) ([]model.UploadedFile, error) {
	var files []model.UploadedFile
	if err := r.db.WithContext(ctx).
		Where("department = ?", department).
		Order("upload_date DESC").
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// Count returns the total number of registry entries.
func (r *fileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.UploadedFile{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountSince returns the number of entries uploaded at or after since.
func (r *fileRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.UploadedFile{}).
		Where("upload_date >= ?", since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindLatest returns the most recently uploaded entry.
func (r *fileRepository) FindLatest(ctx context.Context) (*model.UploadedFile, error) {
	var file model.UploadedFile
	if err := r.db.WithContext(ctx).
		Order("upload_date DESC").
		First(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// ExistsByFileURL reports whether any entry already records the given blob URL.
func (r *fileRepository) ExistsByFileURL(ctx context.Context, fileURL string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.UploadedFile{}).
		Where("file_url = ?", fileURL).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
