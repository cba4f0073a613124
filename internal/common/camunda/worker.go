// internal/common/camunda/worker.go
package camunda

import (
	"time"

	"loan-eligibility-workers/internal/common/config"
	"loan-eligibility-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// StartWorker opens a job worker for taskType. It returns nil when the
// worker is disabled in configuration.
func StartWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handler worker.JobHandler, log logger.Logger) worker.JobWorker {
	fields := map[string]interface{}{"taskType": taskType}

	if !wcfg.Enabled {
		log.Info("worker disabled", fields)
		return nil
	}

	jobWorker := client.NewJobWorker().
		JobType(taskType).
		Handler(handler).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	fields["maxJobsActive"] = wcfg.MaxJobsActive
	fields["timeoutMs"] = wcfg.Timeout
	log.Info("worker started", fields)

	return jobWorker
}
