package engine

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"vitacoach/internal/storage"
	"vitacoach/internal/upload"
)

// UploadLabReport runs the simulated upload for fileName and records the
// outcome in the blob. A cancelled run is recorded as failed.
func (s *Service) UploadLabReport(ctx context.Context, fileName string, onProgress func(upload.Progress)) (*storage.Upload, error) {
	st, err := s.State(ctx)
	if err != nil {
		return nil, err
	}
	if err := RequireRole(st, RolePatient); err != nil {
		return nil, err
	}

	final, runErr := s.uploader.Run(ctx, fileName, onProgress)
	if runErr != nil && final.Status != upload.StatusFailed {
		// Input rejected before anything started.
		return nil, runErr
	}

	rec := storage.Upload{
		ID:       uuid.NewString(),
		FileName: final.FileName,
		Status:   string(final.Status),
	}
	if final.Status == upload.StatusComplete {
		t := s.now().UTC()
		rec.CompletedAt = &t
	}

	// Record even when ctx was cancelled.
	if _, err := s.update(context.WithoutCancel(ctx), func(st *storage.State) error {
		st.Uploads = append(st.Uploads, rec)
		return nil
	}); err != nil {
		return nil, errors.Join(runErr, err)
	}

	if runErr != nil {
		s.log.Warn(ctx, "upload failed", "file", rec.FileName, "error", runErr)
		return &rec, runErr
	}
	s.log.Info(ctx, "upload complete", "file", rec.FileName, "id", rec.ID)
	return &rec, nil
}
