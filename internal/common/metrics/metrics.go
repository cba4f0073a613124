// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "worker_job_duration_seconds",
			Help:    "Duration of job processing in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	EligibilityEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eligibility_evaluations_total",
			Help: "Loan eligibility evaluations by outcome",
		},
		[]string{"outcome"},
	)

	EligibilityCheckFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eligibility_check_failures_total",
			Help: "Failed hard checks by check name",
		},
		[]string{"check"},
	)

	EligibilityScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "eligibility_score",
			Help:    "Suitability score of eligible applicants",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	EligibilityMaxLoanAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "eligibility_max_loan_amount",
			Help:    "Estimated maximum loan amount of eligible applicants",
			Buckets: prometheus.ExponentialBuckets(10000, 2, 10),
		},
	)
)

const (
	OutcomeEligible   = "eligible"
	OutcomeIneligible = "ineligible"
)
