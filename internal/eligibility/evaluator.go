// internal/eligibility/evaluator.go
package eligibility

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
)

// Evaluator applies the hard checks, the score table and the max loan rule.
// It never mutates its criteria and is safe for concurrent use.
type Evaluator struct {
	criteria Criteria
}

func NewEvaluator() *Evaluator {
	return &Evaluator{criteria: DefaultCriteria()}
}

func (e *Evaluator) Criteria() Criteria {
	return e.criteria
}

// CheckEligibility runs every hard check and collects a reason for each one
// that fails. Checks do not short-circuit. Inputs are not range-validated.
func (e *Evaluator) CheckEligibility(applicant Applicant) Result {
	c := e.criteria
	reasons := []string{}
	var failed []Check

	fail := func(check Check, reason string) {
		reasons = append(reasons, reason)
		failed = append(failed, check)
	}

	if applicant.Age < c.MinAge {
		fail(CheckAge, fmt.Sprintf("Age below minimum (%d)", c.MinAge))
	} else if applicant.Age > c.MaxAge {
		fail(CheckAge, fmt.Sprintf("Age above maximum (%d)", c.MaxAge))
	}

	if applicant.AnnualIncome.LessThan(c.MinIncome) {
		fail(CheckIncome, fmt.Sprintf("Income below minimum ($%s)", c.MinIncome))
	}

	if applicant.CreditScore < c.MinCreditScore {
		fail(CheckCreditScore, fmt.Sprintf("Credit score below minimum (%d)", c.MinCreditScore))
	}

	if applicant.EmploymentYears.LessThan(c.MinEmploymentYears) {
		fail(CheckEmployment, fmt.Sprintf("Employment period below minimum (%s years)", c.MinEmploymentYears))
	}

	dti := e.DebtToIncome(applicant)
	if dti.GreaterThan(c.MaxDTIRatio) {
		fail(CheckDebtToIncome, fmt.Sprintf("Debt-to-income ratio too high (%s%%)", dti.Mul(hundred).StringFixed(2)))
	}

	result := Result{
		Eligible:      len(failed) == 0,
		Reasons:       reasons,
		FailedChecks:  failed,
		MaxLoanAmount: decimal.Zero,
		DebtToIncome:  dti,
	}
	if result.Eligible {
		result.Score = e.Score(applicant)
		result.MaxLoanAmount = e.MaxLoan(applicant)
	}
	return result
}

// DebtToIncome returns monthly debt over monthly income. A non-positive
// income yields 1, which always fails the DTI check.
func (e *Evaluator) DebtToIncome(applicant Applicant) decimal.Decimal {
	monthlyIncome := applicant.AnnualIncome.Div(monthsPerYear)
	if !monthlyIncome.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return applicant.monthlyDebt().Div(monthlyIncome)
}
