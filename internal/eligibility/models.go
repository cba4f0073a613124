// internal/eligibility/models.go
package eligibility

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Applicant is the input to an eligibility evaluation. MonthlyDebt and
// DownPaymentPct are optional and count as zero when not set.
type Applicant struct {
	Age             int                 `json:"age"`
	AnnualIncome    decimal.Decimal     `json:"annual_income"`
	CreditScore     int                 `json:"credit_score"`
	EmploymentYears decimal.Decimal     `json:"employment_years"`
	MonthlyDebt     decimal.NullDecimal `json:"monthly_debt"`
	DownPaymentPct  decimal.NullDecimal `json:"down_payment_pct"`
}

// UnmarshalJSON accepts any integral JSON number for age and credit_score,
// including forms such as 30.0 or 7.2e2.
func (a *Applicant) UnmarshalJSON(data []byte) error {
	type plain Applicant
	aux := struct {
		*plain
		Age         decimal.Decimal `json:"age"`
		CreditScore decimal.Decimal `json:"credit_score"`
	}{plain: (*plain)(a)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	age, err := integral("age", aux.Age)
	if err != nil {
		return err
	}
	creditScore, err := integral("credit_score", aux.CreditScore)
	if err != nil {
		return err
	}

	a.Age = age
	a.CreditScore = creditScore
	return nil
}

func integral(field string, d decimal.Decimal) (int, error) {
	if !d.IsInteger() {
		return 0, fmt.Errorf("%s: %s is not an integer", field, d)
	}
	return int(d.IntPart()), nil
}

func (a Applicant) monthlyDebt() decimal.Decimal {
	if a.MonthlyDebt.Valid {
		return a.MonthlyDebt.Decimal
	}
	return decimal.Zero
}

func (a Applicant) downPaymentPct() decimal.Decimal {
	if a.DownPaymentPct.Valid {
		return a.DownPaymentPct.Decimal
	}
	return decimal.Zero
}

// Check identifies one of the hard checks.
type Check string

const (
	CheckAge          Check = "age"
	CheckIncome       Check = "income"
	CheckCreditScore  Check = "credit_score"
	CheckEmployment   Check = "employment"
	CheckDebtToIncome Check = "debt_to_income"
)

// Result is the verdict for one applicant. Score and MaxLoanAmount are only
// populated when Eligible is true; Reasons and FailedChecks are only
// populated when it is false, in check order.
type Result struct {
	Eligible      bool
	Reasons       []string
	FailedChecks  []Check
	Score         int
	MaxLoanAmount decimal.Decimal
	DebtToIncome  decimal.Decimal
}
