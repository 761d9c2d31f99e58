package jobs

import (
	"context"

	"keeso-backend/internal/logger"
)

// SendPendingApplicationsDigest mails the administrator a summary of every
// application still waiting for a decision. No pending applications, no mail.
func (jr *JobRunner) SendPendingApplicationsDigest() {
	jr.runWithRecovery("SendPendingApplicationsDigest", func() {
		ctx := context.Background()

		pending, err := jr.store.MembershipRepository.ListPending(ctx)
		if err != nil {
			logger.Error("Failed to list pending applications", "error", err)
			return
		}
		if len(pending) == 0 {
			logger.Info("No pending applications, skipping digest")
			return
		}

		if err := jr.email.SendPendingApplicationsDigest(ctx, pending); err != nil {
			logger.Error("Failed to send pending applications digest",
				"count", len(pending), "error", err)
			return
		}

		logger.Info("Sent pending applications digest", "count", len(pending))
	})
}
