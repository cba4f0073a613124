// internal/eligibility/score.go
package eligibility

import "github.com/shopspring/decimal"

const maxScore = 100

var (
	income100k = decimal.NewFromInt(100000)
	income75k  = decimal.NewFromInt(75000)
	income50k  = decimal.NewFromInt(50000)
	income30k  = decimal.NewFromInt(30000)

	years10 = decimal.NewFromInt(10)
	years5  = decimal.NewFromInt(5)
	years3  = decimal.NewFromInt(3)
	years1  = decimal.NewFromInt(1)

	downPayment20 = decimal.RequireFromString("0.2")
	downPayment10 = decimal.RequireFromString("0.1")
	downPayment5  = decimal.RequireFromString("0.05")

	baseMultiplier = decimal.NewFromInt(3)
	goodMultiplier = decimal.RequireFromString("3.5")
	topMultiplier  = decimal.NewFromInt(4)

	debtYearsDeducted = decimal.NewFromInt(2)
)

// Score sums the credit, income, employment and down payment bands into a
// value in [0,100].
func (e *Evaluator) Score(applicant Applicant) int {
	score := 0

	// Credit score (max 40 points)
	cs := applicant.CreditScore
	if cs >= 800 {
		score += 40
	} else if cs >= 750 {
		score += 35
	} else if cs >= 700 {
		score += 30
	} else if cs >= 650 {
		score += 25
	} else {
		score += 20
	}

	// Income (max 30 points)
	income := applicant.AnnualIncome
	if income.GreaterThanOrEqual(income100k) {
		score += 30
	} else if income.GreaterThanOrEqual(income75k) {
		score += 25
	} else if income.GreaterThanOrEqual(income50k) {
		score += 20
	} else if income.GreaterThanOrEqual(income30k) {
		score += 15
	} else {
		score += 10
	}

	// Employment stability (max 20 points)
	years := applicant.EmploymentYears
	if years.GreaterThanOrEqual(years10) {
		score += 20
	} else if years.GreaterThanOrEqual(years5) {
		score += 15
	} else if years.GreaterThanOrEqual(years3) {
		score += 10
	} else if years.GreaterThanOrEqual(years1) {
		score += 5
	}

	// Down payment (max 10 points)
	down := applicant.downPaymentPct()
	if down.GreaterThanOrEqual(downPayment20) {
		score += 10
	} else if down.GreaterThanOrEqual(downPayment10) {
		score += 7
	} else if down.GreaterThanOrEqual(downPayment5) {
		score += 5
	}

	if score > maxScore {
		return maxScore
	}
	return score
}

// MaxLoan multiplies annual income by a credit-dependent factor and deducts
// two years of existing monthly debt. The result is never negative.
func (e *Evaluator) MaxLoan(applicant Applicant) decimal.Decimal {
	multiplier := baseMultiplier
	if applicant.CreditScore >= 750 {
		multiplier = topMultiplier
	} else if applicant.CreditScore >= 700 {
		multiplier = goodMultiplier
	}

	maxLoan := applicant.AnnualIncome.Mul(multiplier)

	if debt := applicant.monthlyDebt(); debt.IsPositive() {
		maxLoan = maxLoan.Sub(debt.Mul(monthsPerYear).Mul(debtYearsDeducted))
	}

	if maxLoan.IsNegative() {
		return decimal.Zero
	}
	return maxLoan
}
