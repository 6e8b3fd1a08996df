package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileType distinguishes which locator is authoritative for an entry.
type FileType string

const (
	FileTypeFile    FileType = "file"
	FileTypeYoutube FileType = "youtube"
)

// DepartmentUnspecified marks rows that predate classification. Transient:
// the relabel migration pass tries to resolve them.
const DepartmentUnspecified = "unspecified"

// UploadedFile is one published document or video reference.
// Exactly one of FileURL / YoutubeURL is authoritative, selected by FileType.
type UploadedFile struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	OriginalName string    `json:"original_name" gorm:"size:512;not null"`
	CustomName   string    `json:"custom_name" gorm:"size:512;not null"`
	Department   string    `json:"department" gorm:"size:255;not null;index"`
	FileURL      string    `json:"file_url" gorm:"size:1024"`
	FileType     FileType  `json:"file_type" gorm:"size:16;not null;default:file"`
	YoutubeURL   string    `json:"youtube_url,omitempty" gorm:"size:1024"`
	UploadDate   time.Time `json:"upload_date" gorm:"index"` // immutable after create
}

// TableName keeps the table name the frontend and migrations already use.
func (UploadedFile) TableName() string { return "uploaded_files" }

// BeforeCreate sets UUID and upload date before creating the record.
func (f *UploadedFile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.UploadDate.IsZero() {
		f.UploadDate = time.Now().UTC()
	}
	return nil
}
