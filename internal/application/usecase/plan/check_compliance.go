// Package plan contains subscription plan compliance use cases.
package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/application/adapter"
	"github.com/docuintelli/backend/internal/domain/entity"
	domainerror "github.com/docuintelli/backend/internal/domain/error"
)

// CheckComplianceInput represents the input for a plan compliance check.
type CheckComplianceInput struct {
	UserID     uuid.UUID
	TargetTier entity.PlanTier
}

// CheckComplianceOutput represents the output of a plan compliance check.
// ExcessDocuments is the number of documents the user must remove before a
// downgrade to the target tier, zero when compliant.
type CheckComplianceOutput struct {
	Tier            entity.PlanTier
	DocumentLimit   int
	DocumentCount   int64
	Compliant       bool
	ExcessDocuments int64
}

// CheckComplianceUseCase reconciles a user's vault usage against a plan tier,
// typically ahead of a downgrade.
type CheckComplianceUseCase struct {
	documentRepo adapter.DocumentRepository
}

// NewCheckComplianceUseCase creates a new CheckComplianceUseCase instance.
func NewCheckComplianceUseCase(documentRepo adapter.DocumentRepository) *CheckComplianceUseCase {
	return &CheckComplianceUseCase{
		documentRepo: documentRepo,
	}
}

// Execute performs the compliance check.
func (uc *CheckComplianceUseCase) Execute(ctx context.Context, input CheckComplianceInput) (*CheckComplianceOutput, error) {
	if !input.TargetTier.IsValid() {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodeInvalidPlanTier,
			"tier must be 'free', 'pro', or 'premium'",
			domainerror.ErrInvalidPlanTier,
		)
	}

	count, err := uc.documentRepo.CountByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	limit := input.TargetTier.DocumentLimit()

	output := &CheckComplianceOutput{
		Tier:          input.TargetTier,
		DocumentLimit: limit,
		DocumentCount: count,
		Compliant:     true,
	}

	if limit != entity.UnlimitedDocuments && count > int64(limit) {
		output.Compliant = false
		output.ExcessDocuments = count - int64(limit)
	}

	return output, nil
}
