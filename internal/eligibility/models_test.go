// internal/eligibility/models_test.go
package eligibility

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicant_UnmarshalJSON_IntegralForms(t *testing.T) {
	tests := []struct {
		name                string
		document            string
		expectedAge         int
		expectedCreditScore int
	}{
		{name: "plain integers", document: `{"age": 30, "credit_score": 720}`, expectedAge: 30, expectedCreditScore: 720},
		{name: "trailing zero fraction", document: `{"age": 30.0, "credit_score": 720.00}`, expectedAge: 30, expectedCreditScore: 720},
		{name: "exponent notation", document: `{"age": 3e1, "credit_score": 7.2e2}`, expectedAge: 30, expectedCreditScore: 720},
		{name: "negative", document: `{"age": -5, "credit_score": -1.0}`, expectedAge: -5, expectedCreditScore: -1},
		{name: "absent", document: `{}`, expectedAge: 0, expectedCreditScore: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var applicant Applicant
			require.NoError(t, json.Unmarshal([]byte(tt.document), &applicant))

			assert.Equal(t, tt.expectedAge, applicant.Age)
			assert.Equal(t, tt.expectedCreditScore, applicant.CreditScore)
		})
	}
}

func TestApplicant_UnmarshalJSON_KeepsOtherFields(t *testing.T) {
	var applicant Applicant
	require.NoError(t, json.Unmarshal([]byte(`{
		"age": 30.0,
		"annual_income": 60000,
		"credit_score": 7.2e2,
		"employment_years": 4,
		"monthly_debt": 500,
		"down_payment_pct": null
	}`), &applicant))

	assertDecimalEqual(t, "60000", applicant.AnnualIncome)
	assertDecimalEqual(t, "4", applicant.EmploymentYears)
	require.True(t, applicant.MonthlyDebt.Valid)
	assertDecimalEqual(t, "500", applicant.MonthlyDebt.Decimal)
	assert.False(t, applicant.DownPaymentPct.Valid)

	result := NewEvaluator().CheckEligibility(applicant)
	assert.True(t, result.Eligible)
	assert.Equal(t, 60, result.Score)
}

func TestApplicant_UnmarshalJSON_RejectsFractions(t *testing.T) {
	var applicant Applicant

	err := json.Unmarshal([]byte(`{"age": 30.5, "credit_score": 720}`), &applicant)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age")

	err = json.Unmarshal([]byte(`{"age": 30, "credit_score": 720.1}`), &applicant)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credit_score")
}
