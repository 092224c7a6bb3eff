// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/docuintelli/backend/internal/application/usecase/plan"

// ComplianceResponse represents the response for a plan compliance check.
type ComplianceResponse struct {
	Tier            string `json:"tier"`
	DocumentLimit   int    `json:"document_limit"`
	DocumentCount   int64  `json:"document_count"`
	Compliant       bool   `json:"compliant"`
	ExcessDocuments int64  `json:"excess_documents"`
}

// ToComplianceResponse converts a compliance output to a ComplianceResponse DTO.
func ToComplianceResponse(output *plan.CheckComplianceOutput) ComplianceResponse {
	return ComplianceResponse{
		Tier:            string(output.Tier),
		DocumentLimit:   output.DocumentLimit,
		DocumentCount:   output.DocumentCount,
		Compliant:       output.Compliant,
		ExcessDocuments: output.ExcessDocuments,
	}
}
