package jobs

import (
	"context"
	"time"

	"keeso-backend/internal/logger"
)

// CleanupOrphanedUploads removes stored files no database row references
// anymore. Attachment uploads are deleted immediately when an application
// insert fails; this job is the backstop for files orphaned by crashes or
// by back-office uploads that were never attached to a resource. Files
// younger than the retention window are kept so in-flight submissions are
// never raced.
func (jr *JobRunner) CleanupOrphanedUploads() {
	jr.runWithRecovery("CleanupOrphanedUploads", func() {
		ctx := context.Background()

		stored, err := jr.files.ListFiles(ctx)
		if err != nil {
			logger.Error("Failed to list stored files", "error", err)
			return
		}
		if len(stored) == 0 {
			logger.Info("No stored files to inspect")
			return
		}

		referenced := make(map[string]bool)

		attachmentURLs, err := jr.store.MembershipRepository.ListAttachmentURLs(ctx)
		if err != nil {
			logger.Error("Failed to list application attachment URLs", "error", err)
			return
		}
		for _, u := range attachmentURLs {
			referenced[u] = true
		}

		resourceURLs, err := jr.store.ResourceRepository.ListFileURLs(ctx)
		if err != nil {
			logger.Error("Failed to list resource file URLs", "error", err)
			return
		}
		for _, u := range resourceURLs {
			referenced[u] = true
		}

		cutoff := time.Now().UTC().Add(-time.Duration(jr.config.Scheduler.OrphanRetentionHours) * time.Hour)

		removed := 0
		for _, f := range stored {
			if referenced[f.URL] {
				continue
			}
			if f.UpdatedAt.After(cutoff) {
				continue
			}
			if err := jr.files.DeleteFile(ctx, f.Key); err != nil {
				logger.Error("Failed to delete orphaned file", "key", f.Key, "error", err)
				continue
			}
			logger.Debug("Deleted orphaned file", "key", f.Key)
			removed++
		}

		logger.Info("Orphaned upload cleanup finished",
			"inspected", len(stored),
			"referenced", len(referenced),
			"removed", removed)
	})
}
