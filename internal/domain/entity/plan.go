// Package entity defines the core business entities for the domain layer.
package entity

// PlanTier represents a subscription tier.
type PlanTier string

const (
	PlanTierFree    PlanTier = "free"
	PlanTierPro     PlanTier = "pro"
	PlanTierPremium PlanTier = "premium"
)

// UnlimitedDocuments marks a tier with no document cap.
const UnlimitedDocuments = -1

// DocumentLimit returns the maximum number of vault documents allowed on the
// tier, or UnlimitedDocuments.
func (t PlanTier) DocumentLimit() int {
	switch t {
	case PlanTierFree:
		return 25
	case PlanTierPro:
		return 500
	case PlanTierPremium:
		return UnlimitedDocuments
	default:
		return 0
	}
}

// IsValid reports whether the tier is one of the known tiers.
func (t PlanTier) IsValid() bool {
	return t == PlanTierFree || t == PlanTierPro || t == PlanTierPremium
}
