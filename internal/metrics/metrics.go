package metrics

import (
	"sync/atomic"
	"time"
)

// Collector tracks request volume plus payroll pipeline activity. Counters
// only, read out through Snapshot on /metrics.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	totalDurationMs uint64
	batchesRun      uint64
	reportsBuilt    uint64
	rowsDiscarded   uint64
	pdfsGenerated   uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordBatch(reports, discardedRows int) {
	atomic.AddUint64(&c.batchesRun, 1)
	atomic.AddUint64(&c.reportsBuilt, uint64(reports))
	atomic.AddUint64(&c.rowsDiscarded, uint64(discardedRows))
}

func (c *Collector) RecordPDF() {
	atomic.AddUint64(&c.pdfsGenerated, 1)
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":    total,
		"errorsTotal":      atomic.LoadUint64(&c.errorRequests),
		"avgDurationMs":    avg,
		"payrollBatches":   atomic.LoadUint64(&c.batchesRun),
		"reportsBuilt":     atomic.LoadUint64(&c.reportsBuilt),
		"rowsDiscarded":    atomic.LoadUint64(&c.rowsDiscarded),
		"reportPdfsServed": atomic.LoadUint64(&c.pdfsGenerated),
	}
}
