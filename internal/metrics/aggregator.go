// Package metrics derives execution statistics from the append-only record
// set. Compute is a pure function of its input; the live pipeline uses the
// incremental NextAverage path so metrics stay numerically exact under
// streaming updates without rescanning history.
package metrics

import (
	"time"

	"github.com/doeshing/smartos-go/internal/domain"
)

// NextAverage folds one new response time (in seconds) into a rolling
// average over nBefore observations:
//
//	newAvg = (currentAvg*nBefore + newTime) / (nBefore + 1)
//
// The formula is a documented acceptance criterion and must stay exactly
// this shape. A negative nBefore is treated as zero so the initial state can
// never divide by zero.
func NextAverage(currentAvg float64, nBefore int, newTime float64) float64 {
	if nBefore < 0 {
		nBefore = 0
	}
	return (currentAvg*float64(nBefore) + newTime) / float64(nBefore+1)
}

// Compute recalculates a full snapshot from the record set. It can be called
// at any time and always reproduces the same snapshot for the same records
// and reference time.
func Compute(records []domain.ExecutionRecord, now time.Time) domain.MetricsSnapshot {
	snapshot := domain.MetricsSnapshot{
		GeneratedAt: now,
		Categories:  map[domain.ActionKind]domain.CategoryStats{},
		LastHour:    domain.WindowStats{Window: domain.WindowLastHour},
		LastDay:     domain.WindowStats{Window: domain.WindowLastDay},
	}

	var (
		totalSeconds   float64
		highConfidence int
		hourTotal      int
		hourSuccess    int
		dayTotal       int
		daySuccess     int
		perCategory    = map[domain.ActionKind]*categoryAccumulator{}
	)

	for _, record := range records {
		snapshot.TotalCommands++
		if record.Result.Success {
			snapshot.SuccessfulCommands++
		} else {
			snapshot.FailedCommands++
		}

		seconds := record.Result.Seconds()
		totalSeconds += seconds
		bucket(&snapshot.Histogram, record.Result.ExecutionTime)

		if record.Intent.Confidence > domain.HighConfidenceThreshold {
			highConfidence++
		}

		acc := perCategory[record.Intent.Action]
		if acc == nil {
			acc = &categoryAccumulator{}
			perCategory[record.Intent.Action] = acc
		}
		acc.total++
		acc.seconds += seconds
		if record.Result.Success {
			acc.success++
		}

		// Records lacking a parsable timestamp are excluded from the
		// windows, not treated as errors.
		if record.Timestamp.IsZero() {
			continue
		}
		if !record.Timestamp.Before(now.Add(-domain.WindowLastHour)) {
			hourTotal++
			if record.Result.Success {
				hourSuccess++
			}
		}
		if !record.Timestamp.Before(now.Add(-domain.WindowLastDay)) {
			dayTotal++
			if record.Result.Success {
				daySuccess++
			}
		}
	}

	snapshot.SuccessRate = successRate(snapshot.SuccessfulCommands, snapshot.TotalCommands)
	snapshot.IntentAccuracy = successRate(highConfidence, snapshot.TotalCommands)
	if snapshot.TotalCommands > 0 {
		snapshot.AverageResponseTime = secondsToDuration(totalSeconds / float64(snapshot.TotalCommands))
	}

	for kind, acc := range perCategory {
		stats := domain.CategoryStats{
			Total:       acc.total,
			Successful:  acc.success,
			SuccessRate: successRate(acc.success, acc.total),
		}
		if acc.total > 0 {
			stats.AverageResponseTime = secondsToDuration(acc.seconds / float64(acc.total))
		}
		snapshot.Categories[kind] = stats
	}

	snapshot.LastHour.Total = hourTotal
	snapshot.LastHour.SuccessRate = successRate(hourSuccess, hourTotal)
	snapshot.LastDay.Total = dayTotal
	snapshot.LastDay.SuccessRate = successRate(daySuccess, dayTotal)

	return snapshot
}

type categoryAccumulator struct {
	total   int
	success int
	seconds float64
}

// bucket fills the cumulative histogram: every duration under a bound also
// counts toward the wider bounds.
func bucket(h *domain.ResponseTimeHistogram, d time.Duration) {
	switch {
	case d < domain.HistogramBucket1s:
		h.Under1s++
		h.Under3s++
		h.Under5s++
	case d < domain.HistogramBucket3s:
		h.Under3s++
		h.Under5s++
	case d < domain.HistogramBucket5s:
		h.Under5s++
	default:
		h.Over5s++
	}
}

func successRate(success, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(success) / float64(total) * 100
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
