// internal/eligibility/score_test.go
package eligibility

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func scoreApplicant(credit int, income, years string, down decimal.NullDecimal) Applicant {
	return Applicant{
		Age:             35,
		AnnualIncome:    dec(income),
		CreditScore:     credit,
		EmploymentYears: dec(years),
		DownPaymentPct:  down,
	}
}

// ==========================
// Score Band Tests
// ==========================

func TestEvaluator_Score_CreditBands(t *testing.T) {
	// income < 30000 (10), employment < 1 (0), no down payment (0)
	tests := []struct {
		credit   int
		expected int
	}{
		{850, 50},
		{800, 50},
		{799, 45},
		{750, 45},
		{749, 40},
		{700, 40},
		{699, 35},
		{650, 35},
		{649, 30},
		{300, 30},
	}

	evaluator := NewEvaluator()
	for _, tt := range tests {
		got := evaluator.Score(scoreApplicant(tt.credit, "20000", "0", decimal.NullDecimal{}))
		assert.Equal(t, tt.expected, got, "credit score %d", tt.credit)
	}
}

func TestEvaluator_Score_IncomeBands(t *testing.T) {
	// credit < 650 (20), employment < 1 (0), no down payment (0)
	tests := []struct {
		income   string
		expected int
	}{
		{"250000", 50},
		{"100000", 50},
		{"99999.99", 45},
		{"75000", 45},
		{"74999", 40},
		{"50000", 40},
		{"49999", 35},
		{"30000", 35},
		{"29999", 30},
		{"0", 30},
	}

	evaluator := NewEvaluator()
	for _, tt := range tests {
		got := evaluator.Score(scoreApplicant(600, tt.income, "0", decimal.NullDecimal{}))
		assert.Equal(t, tt.expected, got, "income %s", tt.income)
	}
}

func TestEvaluator_Score_EmploymentBands(t *testing.T) {
	// credit < 650 (20), income < 30000 (10), no down payment (0)
	tests := []struct {
		years    string
		expected int
	}{
		{"25", 50},
		{"10", 50},
		{"9.9", 45},
		{"5", 45},
		{"4.5", 40},
		{"3", 40},
		{"2.99", 35},
		{"1", 35},
		{"0.99", 30},
		{"0", 30},
	}

	evaluator := NewEvaluator()
	for _, tt := range tests {
		got := evaluator.Score(scoreApplicant(600, "20000", tt.years, decimal.NullDecimal{}))
		assert.Equal(t, tt.expected, got, "employment years %s", tt.years)
	}
}

func TestEvaluator_Score_DownPaymentBands(t *testing.T) {
	// credit < 650 (20), income < 30000 (10), employment < 1 (0)
	tests := []struct {
		name     string
		down     decimal.NullDecimal
		expected int
	}{
		{"half", optional("0.5"), 40},
		{"twenty percent", optional("0.2"), 40},
		{"just under twenty", optional("0.199"), 37},
		{"ten percent", optional("0.1"), 37},
		{"just under ten", optional("0.09"), 35},
		{"five percent", optional("0.05"), 35},
		{"just under five", optional("0.049"), 30},
		{"zero", optional("0"), 30},
		{"absent", decimal.NullDecimal{}, 30},
	}

	evaluator := NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, evaluator.Score(scoreApplicant(600, "20000", "0", tt.down)))
		})
	}
}

func TestEvaluator_Score_Bounds(t *testing.T) {
	evaluator := NewEvaluator()

	top := evaluator.Score(scoreApplicant(850, "1000000", "40", optional("0.9")))
	bottom := evaluator.Score(scoreApplicant(-100, "-1000", "-5", optional("-1")))

	assert.Equal(t, 100, top)
	assert.Equal(t, 30, bottom) // credit and income floors still award points
}

func TestEvaluator_Score_Monotonic(t *testing.T) {
	evaluator := NewEvaluator()
	credits := []int{300, 649, 650, 700, 749, 750, 800, 850}
	incomes := []string{"0", "29999", "30000", "50000", "75000", "100000", "500000"}
	years := []string{"0", "1", "3", "5", "10", "30"}
	downs := []string{"0", "0.05", "0.1", "0.2", "1"}

	for _, income := range incomes {
		for _, y := range years {
			for _, down := range downs {
				prev := -1
				for _, credit := range credits {
					s := evaluator.Score(scoreApplicant(credit, income, y, optional(down)))
					assert.GreaterOrEqual(t, s, prev, "credit %d income %s years %s down %s", credit, income, y, down)
					prev = s
				}
			}
		}
	}

	for _, credit := range credits {
		for _, y := range years {
			prev := -1
			for _, income := range incomes {
				s := evaluator.Score(scoreApplicant(credit, income, y, decimal.NullDecimal{}))
				assert.GreaterOrEqual(t, s, prev, "income %s", income)
				prev = s
			}
		}
	}

	for _, credit := range credits {
		for _, income := range incomes {
			prev := -1
			for _, y := range years {
				s := evaluator.Score(scoreApplicant(credit, income, y, decimal.NullDecimal{}))
				assert.GreaterOrEqual(t, s, prev, "years %s", y)
				prev = s
			}

			prev = -1
			for _, down := range downs {
				s := evaluator.Score(scoreApplicant(credit, income, "2", optional(down)))
				assert.GreaterOrEqual(t, s, prev, "down payment %s", down)
				prev = s
			}
		}
	}
}

// ==========================
// Max Loan Tests
// ==========================

func TestEvaluator_MaxLoan(t *testing.T) {
	tests := []struct {
		name     string
		credit   int
		income   string
		debt     decimal.NullDecimal
		expected string
	}{
		{"base multiplier", 650, "50000", decimal.NullDecimal{}, "150000"},
		{"good credit multiplier", 700, "50000", decimal.NullDecimal{}, "175000"},
		{"top credit multiplier", 750, "50000", decimal.NullDecimal{}, "200000"},
		{"top credit precedence", 800, "50000", decimal.NullDecimal{}, "200000"},
		{"debt deducted", 720, "60000", optional("500"), "198000"},
		{"zero debt not deducted", 850, "150000", optional("0"), "600000"},
		{"negative debt not deducted", 650, "50000", optional("-100"), "150000"},
		{"floored at zero", 650, "20000", optional("3000"), "0"},
		{"exactly zero", 650, "16000", optional("2000"), "0"},
		{"negative income floored", 650, "-10000", decimal.NullDecimal{}, "0"},
		{"fractional income", 700, "45000.50", decimal.NullDecimal{}, "157501.75"},
	}

	evaluator := NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applicant := Applicant{
				Age:             30,
				AnnualIncome:    dec(tt.income),
				CreditScore:     tt.credit,
				EmploymentYears: dec("5"),
				MonthlyDebt:     tt.debt,
			}

			got := evaluator.MaxLoan(applicant)

			assertDecimalEqual(t, tt.expected, got)
			assert.False(t, got.IsNegative())
		})
	}
}
