// Package email delivers goal notifications by email via Resend.
package email

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/domain/entity"
)

var errUserMissing = errors.New("user not found")

type stubNotificationRepo struct {
	notifications []*entity.Notification
	emailed       map[uuid.UUID]bool
}

func newStubNotificationRepo(notifications ...*entity.Notification) *stubNotificationRepo {
	return &stubNotificationRepo{
		notifications: notifications,
		emailed:       make(map[uuid.UUID]bool),
	}
}

func (r *stubNotificationRepo) InsertBatch(context.Context, []*entity.Notification) error {
	return nil
}

func (r *stubNotificationRepo) FindByUserID(context.Context, uuid.UUID, bool) ([]*entity.Notification, error) {
	return r.notifications, nil
}

func (r *stubNotificationRepo) MarkRead(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (r *stubNotificationRepo) FindUnemailed(_ context.Context, limit int) ([]*entity.Notification, error) {
	var pending []*entity.Notification
	for _, notification := range r.notifications {
		if !r.emailed[notification.ID] {
			pending = append(pending, notification)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (r *stubNotificationRepo) MarkEmailed(_ context.Context, id uuid.UUID) error {
	r.emailed[id] = true
	return nil
}

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, errUserMissing
}

func testUser(alerts bool) *entity.User {
	user := entity.NewUser(uuid.New(), "ana@example.com", "Ana")
	user.GoalAlerts = alerts
	return user
}

func TestWorkerSendsUnemailedNotifications(t *testing.T) {
	user := testUser(true)
	notification := entity.NewMilestoneNotification(user.ID, uuid.New(), "Emergency fund", 50)
	repo := newStubNotificationRepo(notification)
	sender := NewMockEmailSender()
	worker := NewWorker(repo, &stubUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}, sender, DefaultWorkerConfig())

	worker.ProcessNow(context.Background())

	if len(sender.SentEmails) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sender.SentEmails))
	}
	sent := sender.SentEmails[0]
	if sent.To != user.Email {
		t.Errorf("expected recipient %s, got %s", user.Email, sent.To)
	}
	if sent.Subject != notification.Title {
		t.Errorf("expected subject %q, got %q", notification.Title, sent.Subject)
	}
	if !repo.emailed[notification.ID] {
		t.Error("expected notification stamped as emailed")
	}

	// A second pass finds nothing to send
	worker.ProcessNow(context.Background())
	if len(sender.SentEmails) != 1 {
		t.Errorf("expected no resend, got %d emails", len(sender.SentEmails))
	}
}

func TestWorkerSkipsOptedOutUsers(t *testing.T) {
	user := testUser(false)
	notification := entity.NewCompletionNotification(user.ID, uuid.New(), "Emergency fund")
	repo := newStubNotificationRepo(notification)
	sender := NewMockEmailSender()
	worker := NewWorker(repo, &stubUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}, sender, DefaultWorkerConfig())

	worker.ProcessNow(context.Background())

	if len(sender.SentEmails) != 0 {
		t.Fatalf("expected no emails for opted-out user, got %d", len(sender.SentEmails))
	}
	if !repo.emailed[notification.ID] {
		t.Error("expected skipped notification stamped so it is not retried")
	}
}

func TestWorkerRetriesTemporaryFailures(t *testing.T) {
	user := testUser(true)
	notification := entity.NewExpiryNotification(user.ID, uuid.New(), "Old goal")
	repo := newStubNotificationRepo(notification)
	sender := NewMockEmailSender()
	sender.ShouldFail = true
	worker := NewWorker(repo, &stubUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}, sender, DefaultWorkerConfig())

	worker.ProcessNow(context.Background())

	if repo.emailed[notification.ID] {
		t.Fatal("temporary failure must leave the notification unstamped")
	}

	// The provider recovers; the next pass delivers
	sender.ShouldFail = false
	worker.ProcessNow(context.Background())

	if len(sender.SentEmails) != 1 {
		t.Fatalf("expected 1 email after retry, got %d", len(sender.SentEmails))
	}
	if !repo.emailed[notification.ID] {
		t.Error("expected notification stamped after successful retry")
	}
}

func TestWorkerStampsPermanentFailures(t *testing.T) {
	user := testUser(true)
	notification := entity.NewMilestoneNotification(user.ID, uuid.New(), "Trip", 75)
	repo := newStubNotificationRepo(notification)
	sender := NewMockEmailSender()
	sender.ShouldFail = true
	sender.IsPermanent = true
	worker := NewWorker(repo, &stubUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}, sender, DefaultWorkerConfig())

	worker.ProcessNow(context.Background())

	if !repo.emailed[notification.ID] {
		t.Error("permanent failure must stamp the notification to stop retries")
	}
}
