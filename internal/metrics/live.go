package metrics

import (
	"sync"
	"time"

	"github.com/doeshing/smartos-go/internal/domain"
)

// Live holds the incrementally maintained counters the pipeline updates
// after every dispatched command. The pipeline is the sole writer by
// contract; the mutex exists so periodic readers (monitor, CLI) always
// observe a fully consistent state.
type Live struct {
	mu             sync.Mutex
	total          int
	successful     int
	failed         int
	clarifications int
	avgSeconds     float64
}

// LiveSnapshot is a consistent copy of the live counters.
type LiveSnapshot struct {
	TotalCommands       int
	SuccessfulCommands  int
	FailedCommands      int
	Clarifications      int
	AverageResponseTime time.Duration
}

// Observe folds one execution result into the counters using the rolling
// average formula.
func (l *Live) Observe(result domain.ExecutionResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.avgSeconds = NextAverage(l.avgSeconds, l.total, result.Seconds())
	l.total++
	if result.Success {
		l.successful++
	} else {
		l.failed++
	}
}

// ObserveClarification counts a below-gate classification. Clarifications are
// tracked separately from failures and never touch the averages.
func (l *Live) ObserveClarification() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clarifications++
}

// Snapshot returns a consistent copy of the counters.
func (l *Live) Snapshot() LiveSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return LiveSnapshot{
		TotalCommands:       l.total,
		SuccessfulCommands:  l.successful,
		FailedCommands:      l.failed,
		Clarifications:      l.clarifications,
		AverageResponseTime: secondsToDuration(l.avgSeconds),
	}
}
