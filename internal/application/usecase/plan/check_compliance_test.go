// Package plan contains subscription plan compliance use cases.
package plan

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/domain/entity"
	domainerror "github.com/docuintelli/backend/internal/domain/error"
)

type stubDocumentRepo struct {
	count int64
}

func (r *stubDocumentRepo) Create(context.Context, *entity.Document) error { return nil }

func (r *stubDocumentRepo) CountByUserID(context.Context, uuid.UUID) (int64, error) {
	return r.count, nil
}

func TestCheckCompliance(t *testing.T) {
	tests := []struct {
		name           string
		tier           entity.PlanTier
		count          int64
		compliant      bool
		expectedExcess int64
	}{
		{
			name:      "free tier under the limit",
			tier:      entity.PlanTierFree,
			count:     10,
			compliant: true,
		},
		{
			name:      "free tier exactly at the limit",
			tier:      entity.PlanTierFree,
			count:     25,
			compliant: true,
		},
		{
			name:           "free tier over the limit",
			tier:           entity.PlanTierFree,
			count:          40,
			compliant:      false,
			expectedExcess: 15,
		},
		{
			name:           "pro tier over the limit",
			tier:           entity.PlanTierPro,
			count:          501,
			compliant:      false,
			expectedExcess: 1,
		},
		{
			name:      "premium is never over the limit",
			tier:      entity.PlanTierPremium,
			count:     100000,
			compliant: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewCheckComplianceUseCase(&stubDocumentRepo{count: tt.count})

			output, err := useCase.Execute(context.Background(), CheckComplianceInput{
				UserID:     uuid.New(),
				TargetTier: tt.tier,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if output.Compliant != tt.compliant {
				t.Errorf("expected compliant=%t, got %t", tt.compliant, output.Compliant)
			}
			if output.ExcessDocuments != tt.expectedExcess {
				t.Errorf("expected excess %d, got %d", tt.expectedExcess, output.ExcessDocuments)
			}
			if output.DocumentCount != tt.count {
				t.Errorf("expected count %d, got %d", tt.count, output.DocumentCount)
			}
		})
	}
}

func TestCheckComplianceInvalidTier(t *testing.T) {
	useCase := NewCheckComplianceUseCase(&stubDocumentRepo{})

	_, err := useCase.Execute(context.Background(), CheckComplianceInput{
		UserID:     uuid.New(),
		TargetTier: entity.PlanTier("enterprise"),
	})

	if !errors.Is(err, domainerror.ErrInvalidPlanTier) {
		t.Errorf("expected ErrInvalidPlanTier, got %v", err)
	}
}
