// internal/workers/underwriting/check-loan-eligibility/models.go
package checkloaneligibility

import (
	"loan-eligibility-workers/internal/eligibility"

	"github.com/shopspring/decimal"
)

type Input struct {
	ApplicationID string                `json:"applicationId"`
	Applicant     eligibility.Applicant `json:"applicant"`
}

// Output is written back to the process instance. Amounts are decimal
// strings so they survive FEEL number handling unchanged.
type Output struct {
	ApplicationID     string          `json:"applicationId"`
	EvaluationID      string          `json:"evaluationId"`
	Eligible          bool            `json:"eligible"`
	Reasons           []string        `json:"reasons"`
	FailedChecks      []string        `json:"failedChecks"`
	Score             int             `json:"score"`
	MaxLoanAmount     decimal.Decimal `json:"maxLoanAmount"`
	DebtToIncomeRatio string          `json:"debtToIncomeRatio"`
	EvaluatedAt       string          `json:"evaluatedAt"`
}
