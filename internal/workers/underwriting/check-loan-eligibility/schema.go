// internal/workers/underwriting/check-loan-eligibility/schema.go
package checkloaneligibility

import "loan-eligibility-workers/internal/common/validation"

// Ranges are deliberately absent: out-of-range values are evaluated, not
// rejected.
const inputSchemaJSON = `{
  "type": "object",
  "required": ["applicant"],
  "properties": {
    "applicationId": {"type": "string"},
    "applicant": {
      "type": "object",
      "required": ["age", "annual_income", "credit_score", "employment_years"],
      "properties": {
        "age": {"type": "integer"},
        "annual_income": {"type": "number"},
        "credit_score": {"type": "integer"},
        "employment_years": {"type": "number"},
        "monthly_debt": {"type": ["number", "null"]},
        "down_payment_pct": {"type": ["number", "null"]}
      }
    }
  }
}`

var inputSchema = validation.MustSchema(inputSchemaJSON)
