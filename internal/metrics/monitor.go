package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/doeshing/smartos-go/internal/domain"
	"github.com/doeshing/smartos-go/internal/ports"
)

// Monitor periodically reads the full record set, recomputes a snapshot and
// emits it for reporting. It runs on its own schedule and neither blocks nor
// is blocked by command processing: the log's own locking guarantees it only
// ever observes fully written records.
type Monitor struct {
	Log      ports.ExecutionLog
	Renderer ports.SnapshotRenderer
	Logger   ports.Logger
	Interval time.Duration

	mu        sync.Mutex
	stop      chan struct{}
	done      chan struct{}
	snapshots chan domain.MetricsSnapshot
}

// Start launches the monitor loop. Calling Start on a running monitor is a
// no-op. The loop stops when ctx is cancelled or Stop is called; the stop
// signal is honored between iterations, never mid-read.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stop != nil {
		return
	}

	if m.Interval <= 0 {
		m.Interval = domain.DefaultMonitorInterval
	}
	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	m.snapshots = make(chan domain.MetricsSnapshot, 1)

	go m.loop(ctx, m.stop, m.done, m.snapshots)
}

// Stop signals the loop and waits for it to finish. Safe to call when the
// monitor never started.
func (m *Monitor) Stop() {
	m.mu.Lock()
	stop, done := m.stop, m.done
	m.stop, m.done = nil, nil
	m.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Snapshots returns the channel snapshots are emitted on. The channel keeps
// only the most recent snapshot when no consumer is draining it.
func (m *Monitor) Snapshots() <-chan domain.MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshots
}

func (m *Monitor) loop(ctx context.Context, stop <-chan struct{}, done chan<- struct{}, out chan domain.MetricsSnapshot) {
	defer close(done)

	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.publish(out)
		}
	}
}

func (m *Monitor) publish(out chan domain.MetricsSnapshot) {
	records, err := m.Log.Records()
	if err != nil {
		if m.Logger != nil {
			m.Logger.Warn("monitor read failed", map[string]interface{}{"error": err.Error()})
		}
		return
	}

	snapshot := Compute(records, time.Now())

	// Replace a stale snapshot rather than blocking the loop.
	select {
	case out <- snapshot:
	default:
		select {
		case <-out:
		default:
		}
		select {
		case out <- snapshot:
		default:
		}
	}

	if m.Renderer != nil {
		if _, err := m.Renderer.Render(snapshot); err != nil && m.Logger != nil {
			m.Logger.Warn("dashboard render failed", map[string]interface{}{"error": err.Error()})
		}
	}

	if m.Logger != nil {
		m.Logger.Info("metrics updated", map[string]interface{}{
			"records": snapshot.TotalCommands,
		})
	}
}
