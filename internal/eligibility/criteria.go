// internal/eligibility/criteria.go
package eligibility

import "github.com/shopspring/decimal"

// Criteria holds the underwriting thresholds applied by the Evaluator.
type Criteria struct {
	MinAge             int
	MaxAge             int
	MinIncome          decimal.Decimal
	MinCreditScore     int
	MinEmploymentYears decimal.Decimal
	MaxDTIRatio        decimal.Decimal

	// MinDownPaymentPct is declared with the other thresholds but no hard
	// check enforces it; down payment only contributes to the score.
	MinDownPaymentPct decimal.Decimal
}

// DefaultCriteria returns the fixed thresholds every Evaluator uses.
func DefaultCriteria() Criteria {
	return Criteria{
		MinAge:             21,
		MaxAge:             65,
		MinIncome:          decimal.NewFromInt(15000),
		MinCreditScore:     650,
		MinEmploymentYears: decimal.NewFromInt(1),
		MaxDTIRatio:        decimal.RequireFromString("0.43"),
		MinDownPaymentPct:  decimal.RequireFromString("0.05"),
	}
}
