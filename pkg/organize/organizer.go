// Package organize scans a directory, classifies its regular files and
// moves them into category subdirectories.
//
// A run is strictly sequential: the scan completes before any
// subdirectory is created, every subdirectory is created before any file
// is moved, and files are moved in scan order. The first failure stops
// the run.
package organize

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/sdejongh/sortnorris/pkg/classify"
	"github.com/sdejongh/sortnorris/pkg/logging"
	"github.com/sdejongh/sortnorris/pkg/models"
	"github.com/sdejongh/sortnorris/pkg/output"
	"github.com/sdejongh/sortnorris/pkg/storage"
)

// Config holds organizer settings that are not part of the operation
type Config struct {
	// Output receives formatter output (nil = stdout)
	Output io.Writer
}

// Organizer orchestrates scan and apply over one directory
type Organizer struct {
	backend    storage.Backend
	classifier *classify.Classifier
	formatter  output.Formatter
	logger     logging.Logger
	operation  *models.OrganizeOperation
	config     Config
}

// NewOrganizer creates a new organizer. The backend must be rooted at the
// directory being organized.
func NewOrganizer(
	backend storage.Backend,
	classifier *classify.Classifier,
	formatter output.Formatter,
	logger logging.Logger,
	operation *models.OrganizeOperation,
	config Config,
) *Organizer {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	if operation.OnCollision == "" {
		operation.OnCollision = models.CollisionOverwrite
	}

	return &Organizer{
		backend:    backend,
		classifier: classifier,
		formatter:  formatter,
		logger:     logger.WithFields(logging.Fields{"operation_id": operation.ID}),
		operation:  operation,
		config:     config,
	}
}

// Run scans the directory and applies the moves, returning the report.
// On failure the report is returned together with the error so partial
// progress stays visible.
func (o *Organizer) Run(ctx context.Context) (*models.MoveReport, error) {
	startTime := time.Now()
	o.operation.StartedAt = &startTime

	o.logger.Info(ctx, "Starting organize operation", logging.Fields{
		"directory":    o.backend.Root(),
		"on_collision": o.operation.OnCollision,
		"verbose":      o.operation.Verbose,
	})

	if o.formatter != nil {
		o.formatter.Start(o.config.Output, o.backend.Root())
	}

	entries, scanStats, err := o.scan(ctx)
	if err != nil {
		report := o.newReport(nil)
		report.StartTime = startTime
		report.Status = models.StatusFailed
		report.Errors = append(report.Errors, models.OrganizeError{
			FilePath:  o.backend.Root(),
			Operation: "scan",
			Error:     err.Error(),
			Timestamp: time.Now(),
		})
		o.finish(report)
		o.logger.Error(ctx, "Scan failed", err, nil)
		if o.formatter != nil {
			o.formatter.Error(err)
			o.formatter.Complete(report)
		}
		return report, err
	}

	report, applyErr := o.Apply(ctx, entries)
	report.StartTime = startTime
	report.Stats.FilesScanned = scanStats.FilesScanned
	report.Stats.FilesMatched = scanStats.FilesMatched
	report.Stats.FilesUnmatched = scanStats.FilesUnmatched
	report.Stats.FilesExcluded = scanStats.FilesExcluded
	report.Stats.EntriesSkipped = scanStats.EntriesSkipped
	o.finish(report)

	if o.formatter != nil {
		o.formatter.Complete(report)
	}

	o.logger.Info(ctx, "Organize operation completed", logging.Fields{
		"duration":            report.Duration.String(),
		"status":              report.Status,
		"files_moved":         report.Stats.FilesMoved,
		"files_failed":        report.Stats.FilesFailed,
		"files_not_attempted": report.Stats.FilesNotAttempted,
		"dirs_created":        report.Stats.DirsCreated,
	})

	return report, applyErr
}

// Scan lists the directory and returns one entry per regular file whose
// extension maps to a category. Files without a match stay where they
// are and are not returned.
func (o *Organizer) Scan(ctx context.Context) ([]models.ScanEntry, error) {
	entries, _, err := o.scan(ctx)
	return entries, err
}

func (o *Organizer) scan(ctx context.Context) ([]models.ScanEntry, models.Statistics, error) {
	var stats models.Statistics
	root := o.backend.Root()

	listing, err := o.backend.ReadDir(ctx, "")
	if err != nil {
		return nil, models.Statistics{}, &models.DirectoryReadError{Path: root, Err: err}
	}

	entries := make([]models.ScanEntry, 0, len(listing))
	for _, info := range listing {
		if o.operation.Verbose {
			o.progress(output.ProgressUpdate{
				Type:  output.EventDirListed,
				Name:  info.Name,
				IsDir: info.Kind == storage.KindDir,
			})
		}

		if info.Kind != storage.KindRegular {
			stats.EntriesSkipped++
			o.logger.Debug(ctx, "Skipping non-regular entry", logging.Fields{
				"name": info.Name,
				"kind": info.Kind,
			})
			continue
		}
		stats.FilesScanned++

		if shouldExclude(info.Name, o.operation.ExcludePatterns) {
			stats.FilesExcluded++
			o.logger.Debug(ctx, "Excluded by pattern", logging.Fields{"name": info.Name})
			continue
		}

		category, ok := o.classifier.Classify(info.Name)
		if !ok {
			stats.FilesUnmatched++
			continue
		}

		stats.FilesMatched++
		entries = append(entries, models.ScanEntry{
			Name:     info.Name,
			Path:     filepath.Join(root, info.Name),
			Category: category,
			Size:     info.Size,
		})
	}

	o.logger.Info(ctx, "Scan complete", logging.Fields{
		"files_scanned":   stats.FilesScanned,
		"files_matched":   stats.FilesMatched,
		"files_unmatched": stats.FilesUnmatched,
		"files_excluded":  stats.FilesExcluded,
		"entries_skipped": stats.EntriesSkipped,
	})

	return entries, stats, nil
}

// Apply creates every category subdirectory, then moves entries in order.
//
// A SubdirectoryCreateError stops the run before any move. A MoveError
// stops the remaining moves; the report then shows the earlier entries as
// moved, the failing one as failed and the rest as not attempted.
func (o *Organizer) Apply(ctx context.Context, entries []models.ScanEntry) (*models.MoveReport, error) {
	root := o.backend.Root()
	report := o.newReport(entries)
	report.Stats.FilesNotAttempted = len(entries)

	for _, category := range o.classifier.Table().Categories() {
		if err := o.ensureDir(ctx, report, category, len(entries)); err != nil {
			report.Status = models.StatusFailed
			return report, err
		}
	}

	for i, entry := range entries {
		dest := entry.Destination(root)
		record := &report.Moves[i]
		record.Timestamp = time.Now()

		if err := o.move(ctx, entry, dest); err != nil {
			record.Status = models.MoveFailed
			record.Error = err.Error()
			report.Stats.FilesFailed++
			report.Stats.FilesNotAttempted--
			report.Errors = append(report.Errors, models.OrganizeError{
				FilePath:  entry.Path,
				Operation: "move",
				Error:     err.Error(),
				Timestamp: record.Timestamp,
			})

			o.logger.Error(ctx, "Move failed", err, logging.Fields{
				"source":      entry.Path,
				"destination": dest,
				"remaining":   len(entries) - i - 1,
			})
			if o.operation.Verbose {
				o.progress(output.ProgressUpdate{
					Type:        output.EventFileError,
					Category:    entry.Category,
					Name:        entry.Name,
					Source:      entry.Path,
					Destination: dest,
					CurrentFile: i + 1,
					TotalFiles:  len(entries),
					Error:       err,
				})
			}

			if i > 0 {
				report.Status = models.StatusPartial
			} else {
				report.Status = models.StatusFailed
			}
			return report, &models.MoveError{Source: entry.Path, Destination: dest, Index: i, Err: err}
		}

		record.Status = models.MoveMoved
		report.Stats.FilesMoved++
		report.Stats.FilesNotAttempted--
		report.Stats.BytesMoved += entry.Size

		o.logger.Info(ctx, "File moved", logging.Fields{
			"category":    entry.Category,
			"source":      entry.Path,
			"destination": dest,
		})
		if o.operation.Verbose {
			o.progress(output.ProgressUpdate{
				Type:        output.EventFileMoved,
				Category:    entry.Category,
				Name:        entry.Name,
				Source:      entry.Path,
				Destination: dest,
				CurrentFile: i + 1,
				TotalFiles:  len(entries),
			})
		}
	}

	return report, nil
}

// ensureDir creates the category directory when it is missing
func (o *Organizer) ensureDir(ctx context.Context, report *models.MoveReport, category models.Category, total int) error {
	rel := category.Dir()
	full := filepath.Join(o.backend.Root(), rel)

	existed, existsErr := o.backend.Exists(ctx, rel)
	if existsErr != nil {
		o.logger.Warn(ctx, "Could not check category directory", logging.Fields{
			"category": category,
			"path":     full,
			"error":    existsErr.Error(),
		})
	}

	if err := o.backend.MkdirAll(ctx, rel); err != nil {
		createErr := &models.SubdirectoryCreateError{Category: category, Path: full, Err: err}
		report.Errors = append(report.Errors, models.OrganizeError{
			FilePath:  full,
			Operation: "mkdir",
			Error:     createErr.Error(),
			Timestamp: time.Now(),
		})
		o.logger.Error(ctx, "Failed to create category directory", err, logging.Fields{
			"category": category,
			"path":     full,
		})
		return createErr
	}

	if existsErr != nil {
		return nil
	}
	if existed {
		report.Stats.DirsExisting++
		return nil
	}

	report.Stats.DirsCreated++
	report.DirsCreated = append(report.DirsCreated, full)
	o.logger.Info(ctx, "Created category directory", logging.Fields{
		"category": category,
		"path":     full,
	})
	if o.operation.Verbose {
		o.progress(output.ProgressUpdate{
			Type:        output.EventDirCreated,
			Category:    category,
			Destination: full,
			IsDir:       true,
			TotalFiles:  total,
		})
	}
	return nil
}

// move re-validates the source by path and renames it into place
func (o *Organizer) move(ctx context.Context, entry models.ScanEntry, dest string) error {
	info, err := o.backend.Lstat(ctx, entry.Path)
	if err != nil {
		return fmt.Errorf("source no longer available: %w", err)
	}
	if info.IsSymlink {
		info, err = o.backend.Stat(ctx, entry.Path)
		if err != nil {
			return fmt.Errorf("symlink target no longer available: %w", err)
		}
	}
	if info.Kind != storage.KindRegular {
		return fmt.Errorf("source is no longer a regular file: %s", entry.Path)
	}

	if o.operation.OnCollision == models.CollisionFail {
		exists, err := o.backend.Exists(ctx, dest)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s", models.ErrDestinationExists, dest)
		}
	}

	return o.backend.Rename(ctx, entry.Path, dest)
}

func (o *Organizer) newReport(entries []models.ScanEntry) *models.MoveReport {
	root := o.backend.Root()
	report := &models.MoveReport{
		OperationID: o.operation.ID,
		Directory:   root,
		StartTime:   time.Now(),
		Moves:       make([]models.MoveRecord, len(entries)),
		Status:      models.StatusSuccess,
	}
	for i, entry := range entries {
		report.Moves[i] = models.MoveRecord{
			Source:      entry.Path,
			Destination: entry.Destination(root),
			Category:    entry.Category,
			Status:      models.MoveNotAttempted,
		}
	}
	return report
}

func (o *Organizer) finish(report *models.MoveReport) {
	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)
	o.operation.CompletedAt = &report.EndTime
}

func (o *Organizer) progress(update output.ProgressUpdate) {
	if o.formatter != nil {
		o.formatter.Progress(update)
	}
}
