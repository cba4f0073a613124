// internal/common/errors/errors_test.go
package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToBPMNError(t *testing.T) {
	tests := []struct {
		name            string
		err             *StandardError
		expectedCode    string
		expectedRetries int
	}{
		{
			name:            "validation error is not retried",
			err:             NewApplicantValidationFailedError("age is required"),
			expectedCode:    "APPLICANT_VALIDATION_FAILED",
			expectedRetries: 0,
		},
		{
			name:            "parse error is not retried",
			err:             NewParseError(stderrors.New("unexpected end of JSON input")),
			expectedCode:    "PARSE_ERROR",
			expectedRetries: 0,
		},
		{
			name:            "external service error is retried",
			err:             NewExternalServiceError("zeebe", stderrors.New("unavailable")),
			expectedCode:    "EXTERNAL_SERVICE_ERROR",
			expectedRetries: 3,
		},
		{
			name:            "timeout is retried twice",
			err:             NewTimeoutError("zeebe", stderrors.New("deadline exceeded")),
			expectedCode:    "TIMEOUT_ERROR",
			expectedRetries: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpmnErr := ConvertToBPMNError(tt.err)

			assert.Equal(t, tt.expectedCode, bpmnErr.Code)
			assert.Equal(t, tt.expectedRetries, bpmnErr.Retries)
			assert.Equal(t, tt.err.Message, bpmnErr.Message)
			assert.Equal(t, string(tt.err.Code), bpmnErr.ErrorVariables["originalErrorCode"])
		})
	}
}

func TestConvertToBPMNError_NonRetryableOverridesCode(t *testing.T) {
	stdErr := NewExternalServiceError("zeebe", stderrors.New("refused"))
	stdErr.Retryable = false

	assert.Equal(t, 0, ConvertToBPMNError(stdErr).Retries)
}

func TestBPMNError_ToErrorVariables(t *testing.T) {
	stdErr := NewApplicantValidationFailedError("credit_score is required").
		WithMetadata("applicationId", "app-42")

	vars := ConvertToBPMNError(stdErr).ToErrorVariables()

	assert.Equal(t, "APPLICANT_VALIDATION_FAILED", vars["errorCode"])
	assert.Equal(t, "credit_score is required", vars["errorDetails"])
	assert.Equal(t, false, vars["retryable"])
	assert.Equal(t, "app-42", vars["applicationId"])
	assert.Contains(t, vars, "timestamp")
}

func TestAsStandardError(t *testing.T) {
	original := NewApplicantValidationFailedError("age is required")
	wrapped := fmt.Errorf("execute: %w", original)

	assert.Same(t, original, AsStandardError(wrapped))

	unknown := AsStandardError(stderrors.New("nil pointer"))
	require.NotNil(t, unknown)
	assert.Equal(t, ErrCodeInternal, unknown.Code)
	assert.Equal(t, "nil pointer", unknown.Details)
}

func TestStandardError_Error(t *testing.T) {
	assert.Equal(t,
		"StandardError[APPLICANT_VALIDATION_FAILED]: Applicant data validation failed: age is required",
		NewApplicantValidationFailedError("age is required").Error())

	bare := &StandardError{Code: ErrCodeInternal, Message: "Unexpected error"}
	assert.Equal(t, "StandardError[INTERNAL_ERROR]: Unexpected error", bare.Error())
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeParseError))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeApplicantValidationFailed))
	assert.Equal(t, "INFRASTRUCTURE", GetErrorCategory(ErrCodeTimeout))
	assert.Equal(t, "INFRASTRUCTURE", GetErrorCategory(ErrCodeExternalService))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeExternalService))
	assert.True(t, IsRetryableErrorCode(ErrCodeTimeout))
	assert.False(t, IsRetryableErrorCode(ErrCodeApplicantValidationFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeInternal))
}

func TestRemainingRetries(t *testing.T) {
	bpmnErr := &BPMNError{Retries: 3}

	tests := []struct {
		jobRetries int32
		maxRetries int
		expected   int32
	}{
		{5, 0, 2},
		{3, 0, 2},
		{2, 0, 1},
		{1, 0, 0},
		{5, 2, 1},
		{5, 1, 0},
		{2, 5, 1},
	}

	for _, tt := range tests {
		h := NewErrorHandler(nil).WithMaxRetries(tt.maxRetries)
		job := entities.Job{ActivatedJob: &pb.ActivatedJob{Retries: tt.jobRetries}}
		assert.Equal(t, tt.expected, h.remainingRetries(job, bpmnErr), "job retries %d, max %d", tt.jobRetries, tt.maxRetries)
	}
}
