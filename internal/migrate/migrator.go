// Package migrate holds the one-time classification passes that reconcile the
// registry with the blob store: relabeling legacy unclassified rows and
// backfilling entries for blobs the registry never recorded.
package migrate

import (
	"context"
	"fmt"
	"log"
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"policyhub/internal/blobstore"
	"policyhub/internal/classify"
	"policyhub/internal/model"
	"policyhub/internal/repository"
)

var migrationFiles = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "classification_migration_files_total",
	Help: "Registry entries processed by the classification migration",
}, []string{"pass", "operation"})

// documentExt strips the known document suffixes when deriving display names.
var documentExt = regexp.MustCompile(`(?i)\.(pdf|docx|doc|xlsx)$`)

// BlobLister is the slice of the blob store the backfill pass needs.
type BlobLister interface {
	ListFolder(ctx context.Context, folder string) ([]blobstore.Object, error)
	PublicURL(path string) string
}

// RelabelReport summarizes one relabel pass.
type RelabelReport struct {
	Updated    int
	Unresolved []string
}

// BackfillReport summarizes one backfill pass.
type BackfillReport struct {
	Added         int
	Skipped       int
	FailedFolders []string
}

// Migrator drives both classification passes. Each pass is idempotent and can
// run independently; neither takes any lock against concurrent writes.
type Migrator struct {
	fileRepo repository.FileRepository
	blobs    BlobLister
}

// New creates a migrator.
func New(fileRepo repository.FileRepository, blobs BlobLister) *Migrator {
	return &Migrator{fileRepo: fileRepo, blobs: blobs}
}

// Relabel classifies every entry still carrying the unspecified sentinel by
// its original name. Entries that match no token are left untouched and
// reported as unresolved.
func (m *Migrator) Relabel(ctx context.Context) (*RelabelReport, error) {
	files, err := m.fileRepo.FindByDepartment(ctx, model.DepartmentUnspecified)
	if err != nil {
		return nil, fmt.Errorf("list unspecified entries: %w", err)
	}

	report := &RelabelReport{}
	for i := range files {
		file := &files[i]
		label, ok := classify.Classify(file.OriginalName)
		if !ok {
			migrationFiles.WithLabelValues("relabel", "unresolved").Inc()
			report.Unresolved = append(report.Unresolved, file.OriginalName)
			continue
		}

		file.Department = label
		if err := m.fileRepo.Update(ctx, file); err != nil {
			return report, fmt.Errorf("relabel %s: %w", file.OriginalName, err)
		}
		migrationFiles.WithLabelValues("relabel", "updated").Inc()
		report.Updated++
		log.Printf("relabeled %s -> %s", file.OriginalName, label)
	}
	return report, nil
}

// Backfill walks every department folder in the blob store and registers any
// blob the registry does not know yet. The department comes from the folder
// token alone; the filename is never re-classified, so a misfiled blob keeps
// its folder's label. A folder listing failure skips that folder and the pass
// moves on, as a partial backfill is still useful.
func (m *Migrator) Backfill(ctx context.Context) (*BackfillReport, error) {
	report := &BackfillReport{}
	for _, mapping := range classify.DepartmentMappings {
		objects, err := m.blobs.ListFolder(ctx, mapping.Token)
		if err != nil {
			log.Printf("list folder %s failed: %v", mapping.Token, err)
			report.FailedFolders = append(report.FailedFolders, mapping.Token)
			continue
		}

		for _, obj := range objects {
			if obj.Name == "" || obj.Name == blobstore.PlaceholderName {
				continue
			}

			fileURL := m.blobs.PublicURL(mapping.Token + "/" + obj.Name)
			exists, err := m.fileRepo.ExistsByFileURL(ctx, fileURL)
			if err != nil {
				return report, fmt.Errorf("check %s: %w", obj.Name, err)
			}
			if exists {
				migrationFiles.WithLabelValues("backfill", "skipped").Inc()
				report.Skipped++
				continue
			}

			entry := &model.UploadedFile{
				OriginalName: obj.Name,
				CustomName:   documentExt.ReplaceAllString(obj.Name, ""),
				Department:   mapping.Label,
				FileURL:      fileURL,
				FileType:     model.FileTypeFile,
			}
			if err := m.fileRepo.Create(ctx, entry); err != nil {
				return report, fmt.Errorf("insert %s: %w", obj.Name, err)
			}
			migrationFiles.WithLabelValues("backfill", "added").Inc()
			report.Added++
			log.Printf("backfilled %s/%s", mapping.Token, obj.Name)
		}
	}
	return report, nil
}
