// internal/workers/underwriting/check-loan-eligibility/handler.go
package checkloaneligibility

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"loan-eligibility-workers/internal/common/errors"
	"loan-eligibility-workers/internal/common/logger"
	"loan-eligibility-workers/internal/common/metrics"
	"loan-eligibility-workers/internal/eligibility"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	TaskType = "check-loan-eligibility"

	statusCompleted = "completed"
	statusFailed    = "failed"
)

// Telemetry supplies the tracer and receives per-job otel measurements.
type Telemetry interface {
	Tracer(name string) trace.Tracer
	RecordJobProcessed(ctx context.Context, taskType, status string)
	RecordJobDuration(ctx context.Context, taskType string, duration time.Duration, status string)
}

type noopTelemetry struct{}

func (noopTelemetry) Tracer(name string) trace.Tracer {
	return noop.NewTracerProvider().Tracer(name)
}
func (noopTelemetry) RecordJobProcessed(context.Context, string, string)                {}
func (noopTelemetry) RecordJobDuration(context.Context, string, time.Duration, string) {}

type Handler struct {
	config       *Config
	evaluator    *eligibility.Evaluator
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	telemetry    Telemetry
	tracer       trace.Tracer
	now          func() time.Time
	newID        func() string
}

// NewHandler builds the handler. telemetry may be nil.
func NewHandler(config *Config, log logger.Logger, telemetry Telemetry) *Handler {
	if config == nil {
		config = LoadConfig()
	}
	if telemetry == nil {
		telemetry = noopTelemetry{}
	}

	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})

	return &Handler{
		config:       config,
		evaluator:    eligibility.NewEvaluator(),
		logger:       scoped,
		errorHandler: errors.NewErrorHandler(scoped).WithMaxRetries(config.MaxRetries),
		telemetry:    telemetry,
		tracer:       telemetry.Tracer(TaskType),
		now:          time.Now,
		newID:        func() string { return uuid.New().String() },
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := h.now()

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	ctx, span := h.tracer.Start(ctx, TaskType, trace.WithAttributes(
		attribute.Int64("job.key", job.Key),
		attribute.Int64("process.instance.key", job.ProcessInstanceKey),
	))
	defer span.End()

	active := metrics.WorkerJobsActive.WithLabelValues(TaskType)
	active.Inc()
	defer active.Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	output, err := h.process(ctx, job.Variables)
	if err != nil {
		stdErr := errors.AsStandardError(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, string(stdErr.Code))
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
		h.errorHandler.HandleJobError(ctx, client, job, stdErr)
		h.observe(ctx, start, statusFailed)
		return
	}

	span.SetAttributes(
		attribute.String("application.id", output.ApplicationID),
		attribute.Bool("eligibility.eligible", output.Eligible),
		attribute.Int("eligibility.score", output.Score),
	)

	if err := h.completeJob(ctx, client, job, output); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "complete job")
		h.observe(ctx, start, statusFailed)
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	h.observe(ctx, start, statusCompleted)
}

// process validates and decodes raw job variables, then evaluates them.
func (h *Handler) process(ctx context.Context, variables string) (*Output, error) {
	result, err := inputSchema.ValidateJSON(variables)
	if err != nil {
		return nil, errors.NewParseError(err)
	}
	if !result.Valid {
		return nil, errors.NewApplicantValidationFailedError(strings.Join(result.GetErrorMessages(), "; "))
	}

	var input Input
	if err := json.Unmarshal([]byte(variables), &input); err != nil {
		return nil, errors.NewParseError(err)
	}

	return h.execute(ctx, &input)
}

// Execute evaluates an already decoded input. Exposed for tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewTimeoutError(TaskType, err)
	}

	result := h.evaluator.CheckEligibility(input.Applicant)
	h.recordEvaluation(result)

	failedChecks := make([]string, len(result.FailedChecks))
	for i, check := range result.FailedChecks {
		failedChecks[i] = string(check)
	}

	output := &Output{
		ApplicationID:     input.ApplicationID,
		EvaluationID:      h.newID(),
		Eligible:          result.Eligible,
		Reasons:           result.Reasons,
		FailedChecks:      failedChecks,
		Score:             result.Score,
		MaxLoanAmount:     result.MaxLoanAmount,
		DebtToIncomeRatio: result.DebtToIncome.StringFixed(4),
		EvaluatedAt:       h.now().UTC().Format(time.RFC3339),
	}

	h.logger.Info("eligibility evaluated", map[string]interface{}{
		"applicationId": output.ApplicationID,
		"evaluationId":  output.EvaluationID,
		"eligible":      output.Eligible,
		"score":         output.Score,
		"maxLoanAmount": output.MaxLoanAmount.String(),
		"failedChecks":  failedChecks,
	})

	return output, nil
}

func (h *Handler) recordEvaluation(result eligibility.Result) {
	if !result.Eligible {
		metrics.EligibilityEvaluations.WithLabelValues(metrics.OutcomeIneligible).Inc()
		for _, check := range result.FailedChecks {
			metrics.EligibilityCheckFailures.WithLabelValues(string(check)).Inc()
		}
		return
	}

	metrics.EligibilityEvaluations.WithLabelValues(metrics.OutcomeEligible).Inc()
	metrics.EligibilityScore.Observe(float64(result.Score))
	metrics.EligibilityMaxLoanAmount.Observe(result.MaxLoanAmount.InexactFloat64())
}

func (h *Handler) observe(ctx context.Context, start time.Time, status string) {
	elapsed := h.now().Sub(start)
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(elapsed.Seconds())
	h.telemetry.RecordJobProcessed(ctx, TaskType, status)
	h.telemetry.RecordJobDuration(ctx, TaskType, elapsed, status)
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) error {
	cmd, err := client.NewCompleteJobCommand().JobKey(job.Key).VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return err
	}

	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return err
	}

	h.logger.Info("job completed", map[string]interface{}{
		"jobKey":        job.Key,
		"applicationId": output.ApplicationID,
		"eligible":      output.Eligible,
	})
	return nil
}
