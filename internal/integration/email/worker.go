// Package email delivers goal notifications by email via Resend.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/docuintelli/backend/internal/application/adapter"
	"github.com/docuintelli/backend/internal/domain/entity"
	domainerror "github.com/docuintelli/backend/internal/domain/error"
)

// Worker polls for notifications that have not yet been emailed and delivers
// them. Temporary send failures leave the row unstamped, so the next poll
// retries it.
type Worker struct {
	notificationRepo adapter.NotificationRepository
	userRepo         adapter.UserRepository
	sender           adapter.EmailSender
	pollInterval     time.Duration
	batchSize        int
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new email worker.
func NewWorker(
	notificationRepo adapter.NotificationRepository,
	userRepo adapter.UserRepository,
	sender adapter.EmailSender,
	config WorkerConfig,
) *Worker {
	return &Worker{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		sender:           sender,
		pollInterval:     config.PollInterval,
		batchSize:        config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of unemailed notifications.
func (w *Worker) processBatch(ctx context.Context) {
	notifications, err := w.notificationRepo.FindUnemailed(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to fetch unemailed notifications", "error", err)
		return
	}
	if len(notifications) == 0 {
		return
	}

	slog.Debug("Processing notification email batch", "count", len(notifications))

	for _, notification := range notifications {
		select {
		case <-ctx.Done():
			return
		default:
			w.processNotification(ctx, notification)
		}
	}
}

// processNotification delivers one notification by email.
func (w *Worker) processNotification(ctx context.Context, notification *entity.Notification) {
	logger := slog.With(
		"notification_id", notification.ID,
		"type", notification.Type,
		"user_id", notification.UserID,
	)

	user, err := w.userRepo.FindByID(ctx, notification.UserID)
	if err != nil {
		logger.Error("Failed to load notification recipient", "error", err)
		// Stamp it anyway: a missing user will not appear on the next poll either
		w.markEmailed(ctx, notification, logger)
		return
	}

	// Users can opt out of email delivery; the in-app notification stays
	if !user.GoalAlerts {
		w.markEmailed(ctx, notification, logger)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Name:    user.Name,
		Subject: notification.Title,
		HTML:    renderHTML(user, notification),
		Text:    notification.Message,
	})
	if err != nil {
		var notifErr *domainerror.NotificationError
		permanent := errors.As(err, &notifErr) && notifErr.Code == domainerror.ErrCodePermanentEmailFailure
		if permanent {
			logger.Warn("Notification email permanently failed", "error", err)
			w.markEmailed(ctx, notification, logger)
			return
		}
		logger.Error("Failed to send notification email, will retry", "error", err)
		return
	}

	logger.Info("Notification email sent", "provider_id", result.ProviderID)
	w.markEmailed(ctx, notification, logger)
}

func (w *Worker) markEmailed(ctx context.Context, notification *entity.Notification, logger *slog.Logger) {
	if err := w.notificationRepo.MarkEmailed(ctx, notification.ID); err != nil {
		logger.Error("Failed to mark notification as emailed", "error", err)
	}
}

// renderHTML produces the simple notification email body.
func renderHTML(user *entity.User, notification *entity.Notification) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p><strong>%s</strong></p><p>%s</p><p>— DocuIntelli</p>",
		user.Name, notification.Title, notification.Message,
	)
}

// ProcessNow processes one batch immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
