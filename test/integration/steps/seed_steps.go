// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/docuintelli/backend/internal/domain/entity"
)

// registerSeedSteps registers data seeding steps.
func registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a user "([^"]*)" exists$`, aUserExists)
	ctx.Step(`^"([^"]*)" has a (depository|credit|loan) account "([^"]*)" with initial balance "([^"]*)"$`, userHasAccount)
	ctx.Step(`^account "([^"]*)" has a posted transaction of "([^"]*)"$`, accountHasPostedTransaction)
	ctx.Step(`^account "([^"]*)" has a pending transaction of "([^"]*)"$`, accountHasPendingTransaction)
	ctx.Step(`^"([^"]*)" has (\d+) documents in the vault$`, userHasDocuments)
	ctx.Step(`^"([^"]*)" has an unread notification titled "([^"]*)"$`, userHasUnreadNotification)
	ctx.Step(`^a recalculation is already running for "([^"]*)"$`, recalculationIsRunningFor)
}

// ensureUser creates the user on first reference and returns it afterwards.
func (tc *TestContext) ensureUser(ctx context.Context, email string) (*entity.User, error) {
	if user, ok := tc.users[email]; ok {
		return user, nil
	}

	name := strings.Split(email, "@")[0]
	user := entity.NewUser(uuid.New(), email, name)
	if err := tc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to seed user %s: %w", email, err)
	}

	tc.users[email] = user
	return user, nil
}

func aUserExists(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	_, err := tc.ensureUser(ctx, email)
	return err
}

func userHasAccount(ctx context.Context, email, accountType, name, balance string) error {
	tc := GetTestContext(ctx)

	user, err := tc.ensureUser(ctx, email)
	if err != nil {
		return err
	}

	initialBalance, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", balance, err)
	}

	account := entity.NewAccount(user.ID, name, entity.AccountType(accountType), "", initialBalance)
	if err := tc.accountRepo.Create(ctx, account); err != nil {
		return fmt.Errorf("failed to seed account %s: %w", name, err)
	}

	tc.accounts[name] = account
	return nil
}

func accountHasPostedTransaction(ctx context.Context, accountName, amount string) error {
	return seedTransaction(ctx, accountName, amount, false)
}

func accountHasPendingTransaction(ctx context.Context, accountName, amount string) error {
	return seedTransaction(ctx, accountName, amount, true)
}

func seedTransaction(ctx context.Context, accountName, amount string, pending bool) error {
	tc := GetTestContext(ctx)

	account, ok := tc.accounts[accountName]
	if !ok {
		return fmt.Errorf("unknown account %q", accountName)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	transaction := entity.NewTransaction(account.UserID, account.ID, time.Now().UTC(), "seeded transaction", value, pending)
	if err := tc.transactionRepo.Create(ctx, transaction); err != nil {
		return fmt.Errorf("failed to seed transaction: %w", err)
	}
	return nil
}

func userHasDocuments(ctx context.Context, email string, count int) error {
	tc := GetTestContext(ctx)

	user, err := tc.ensureUser(ctx, email)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		document := entity.NewDocument(user.ID, fmt.Sprintf("statement-%d.pdf", i+1), "application/pdf", 1024, []string{"seeded"})
		if err := tc.documentRepo.Create(ctx, document); err != nil {
			return fmt.Errorf("failed to seed document: %w", err)
		}
	}
	return nil
}

func userHasUnreadNotification(ctx context.Context, email, title string) error {
	tc := GetTestContext(ctx)

	user, err := tc.ensureUser(ctx, email)
	if err != nil {
		return err
	}

	notification := entity.NewMilestoneNotification(user.ID, uuid.New(), title, 50)
	notification.Title = title
	if err := tc.notificationRepo.InsertBatch(ctx, []*entity.Notification{notification}); err != nil {
		return fmt.Errorf("failed to seed notification: %w", err)
	}

	tc.notifications[title] = notification
	return nil
}

// recalculationIsRunningFor simulates a concurrent recalculation by holding
// the user's Redis lock.
func recalculationIsRunningFor(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)

	user, err := tc.ensureUser(ctx, email)
	if err != nil {
		return err
	}

	return tc.redisClient.SetNX(ctx, "recalc_lock:"+user.ID.String(), "1", 30*time.Second).Err()
}
