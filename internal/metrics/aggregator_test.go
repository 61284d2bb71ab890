package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/smartos-go/internal/domain"
)

func TestNextAverageSequence(t *testing.T) {
	// Feeding 2, 4, 6 must yield the running averages 2, 3, 4.
	avg := 0.0
	inputs := []float64{2, 4, 6}
	want := []float64{2, 3, 4}
	for i, in := range inputs {
		avg = NextAverage(avg, i, in)
		if avg != want[i] {
			t.Fatalf("after %d samples avg = %v, want %v", i+1, avg, want[i])
		}
	}
}

func TestNextAverageNegativeCountTreatedAsZero(t *testing.T) {
	if got := NextAverage(99, -5, 2.5); got != 2.5 {
		t.Fatalf("NextAverage(99, -5, 2.5) = %v, want 2.5", got)
	}
	if got := NextAverage(0, 0, 0); got != 0 {
		t.Fatalf("NextAverage(0, 0, 0) = %v, want 0", got)
	}
}

func TestComputeEmptyRecords(t *testing.T) {
	snapshot := Compute(nil, time.Now())

	if snapshot.TotalCommands != 0 {
		t.Fatalf("total = %d, want 0", snapshot.TotalCommands)
	}
	if snapshot.SuccessRate != 0 || snapshot.IntentAccuracy != 0 {
		t.Fatalf("rates = %v/%v, want 0/0", snapshot.SuccessRate, snapshot.IntentAccuracy)
	}
	if snapshot.AverageResponseTime != 0 {
		t.Fatalf("average = %v, want 0", snapshot.AverageResponseTime)
	}
}

func TestComputeTotals(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	records := []domain.ExecutionRecord{
		record(now.Add(-10*time.Minute), domain.ActionOpenApplication, 0.90, true, 500*time.Millisecond),
		record(now.Add(-20*time.Minute), domain.ActionOpenApplication, 0.90, false, 1500*time.Millisecond),
		record(now.Add(-2*time.Hour), domain.ActionFileOperation, 0.80, true, 2*time.Second),
		record(now.Add(-30*time.Hour), domain.ActionSystemControl, 0.85, true, 4*time.Second),
		record(now.Add(-1*time.Minute), domain.ActionContentCreation, 0.75, true, 6*time.Second),
	}

	s := Compute(records, now)

	if s.TotalCommands != 5 {
		t.Fatalf("total = %d, want 5", s.TotalCommands)
	}
	if s.TotalCommands != s.SuccessfulCommands+s.FailedCommands {
		t.Fatalf("total %d != success %d + failed %d",
			s.TotalCommands, s.SuccessfulCommands, s.FailedCommands)
	}
	if s.SuccessfulCommands != 4 || s.FailedCommands != 1 {
		t.Fatalf("success/failed = %d/%d, want 4/1", s.SuccessfulCommands, s.FailedCommands)
	}
	if s.SuccessRate != 80 {
		t.Fatalf("success rate = %v, want 80", s.SuccessRate)
	}

	// Two of five records carry confidence strictly above 0.8.
	if s.IntentAccuracy != 40 {
		t.Fatalf("intent accuracy = %v, want 40", s.IntentAccuracy)
	}

	// (0.5 + 1.5 + 2 + 4 + 6) / 5 = 2.8s
	if got := s.AverageResponseTime.Seconds(); math.Abs(got-2.8) > 1e-9 {
		t.Fatalf("average = %vs, want 2.8s", got)
	}
}

func TestComputeHistogramIsCumulative(t *testing.T) {
	now := time.Now()
	records := []domain.ExecutionRecord{
		record(now, domain.ActionOpenApplication, 0.9, true, 200*time.Millisecond),
		record(now, domain.ActionOpenApplication, 0.9, true, 2*time.Second),
		record(now, domain.ActionOpenApplication, 0.9, true, 4*time.Second),
		record(now, domain.ActionOpenApplication, 0.9, true, 9*time.Second),
	}

	s := Compute(records, now)

	want := domain.ResponseTimeHistogram{Under1s: 1, Under3s: 2, Under5s: 3, Over5s: 1}
	if diff := cmp.Diff(want, s.Histogram); diff != "" {
		t.Fatalf("histogram mismatch (-want +got):\n%s", diff)
	}
	if s.Histogram.Under1s > s.Histogram.Under3s || s.Histogram.Under3s > s.Histogram.Under5s {
		t.Fatal("cumulative buckets must be monotonically non-decreasing")
	}
	if s.Histogram.Under5s+s.Histogram.Over5s != s.TotalCommands {
		t.Fatal("under_5s plus over_5s must cover every record")
	}
}

func TestComputeBucketBoundariesExclusive(t *testing.T) {
	now := time.Now()
	// Exactly 1s belongs to the next bucket up, not under_1s.
	records := []domain.ExecutionRecord{
		record(now, domain.ActionOpenApplication, 0.9, true, time.Second),
		record(now, domain.ActionOpenApplication, 0.9, true, 5*time.Second),
	}

	s := Compute(records, now)

	if s.Histogram.Under1s != 0 {
		t.Fatalf("under_1s = %d, want 0", s.Histogram.Under1s)
	}
	if s.Histogram.Under3s != 1 {
		t.Fatalf("under_3s = %d, want 1", s.Histogram.Under3s)
	}
	if s.Histogram.Over5s != 1 {
		t.Fatalf("over_5s = %d, want 1", s.Histogram.Over5s)
	}
}

func TestComputeCategories(t *testing.T) {
	now := time.Now()
	records := []domain.ExecutionRecord{
		record(now, domain.ActionOpenApplication, 0.9, true, time.Second),
		record(now, domain.ActionOpenApplication, 0.9, false, 3*time.Second),
		record(now, domain.ActionFileOperation, 0.8, true, 2*time.Second),
	}

	s := Compute(records, now)

	apps, ok := s.Categories[domain.ActionOpenApplication]
	if !ok {
		t.Fatal("open_application category missing")
	}
	if apps.Total != 2 || apps.Successful != 1 || apps.SuccessRate != 50 {
		t.Fatalf("open_application stats = %+v", apps)
	}
	if got := apps.AverageResponseTime.Seconds(); math.Abs(got-2) > 1e-9 {
		t.Fatalf("open_application avg = %vs, want 2s", got)
	}

	files := s.Categories[domain.ActionFileOperation]
	if files.Total != 1 || files.SuccessRate != 100 {
		t.Fatalf("file_operation stats = %+v", files)
	}

	if _, ok := s.Categories[domain.ActionSystemControl]; ok {
		t.Fatal("empty category must not appear in the snapshot")
	}
}

func TestComputeWindowsExcludeZeroTimestamps(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	records := []domain.ExecutionRecord{
		record(now.Add(-30*time.Minute), domain.ActionOpenApplication, 0.9, true, time.Second),
		record(now.Add(-5*time.Hour), domain.ActionOpenApplication, 0.9, false, time.Second),
		record(now.Add(-48*time.Hour), domain.ActionOpenApplication, 0.9, true, time.Second),
		record(time.Time{}, domain.ActionOpenApplication, 0.9, true, time.Second),
	}

	s := Compute(records, now)

	// The zero-timestamp record still counts toward the totals.
	if s.TotalCommands != 4 {
		t.Fatalf("total = %d, want 4", s.TotalCommands)
	}
	if s.LastHour.Total != 1 || s.LastHour.SuccessRate != 100 {
		t.Fatalf("last hour = %+v", s.LastHour)
	}
	if s.LastDay.Total != 2 || s.LastDay.SuccessRate != 50 {
		t.Fatalf("last day = %+v", s.LastDay)
	}
}

func TestLiveObserve(t *testing.T) {
	live := &Live{}

	live.Observe(domain.ExecutionResult{Success: true, ExecutionTime: 2 * time.Second})
	live.Observe(domain.ExecutionResult{Success: false, ExecutionTime: 4 * time.Second})
	live.Observe(domain.ExecutionResult{Success: true, ExecutionTime: 6 * time.Second})
	live.ObserveClarification()

	s := live.Snapshot()
	if s.TotalCommands != 3 || s.SuccessfulCommands != 2 || s.FailedCommands != 1 {
		t.Fatalf("counters = %+v", s)
	}
	if s.Clarifications != 1 {
		t.Fatalf("clarifications = %d, want 1", s.Clarifications)
	}
	if got := s.AverageResponseTime.Seconds(); math.Abs(got-4) > 1e-9 {
		t.Fatalf("average = %vs, want 4s", got)
	}
}

func TestLiveClarificationDoesNotTouchAverages(t *testing.T) {
	live := &Live{}
	live.ObserveClarification()
	live.ObserveClarification()

	s := live.Snapshot()
	if s.TotalCommands != 0 || s.AverageResponseTime != 0 {
		t.Fatalf("clarifications leaked into counters: %+v", s)
	}
}

func record(ts time.Time, action domain.ActionKind, confidence float64, success bool, d time.Duration) domain.ExecutionRecord {
	return domain.ExecutionRecord{
		Timestamp: ts,
		Command:   "test command",
		Intent: domain.Intent{
			Action:     action,
			Confidence: confidence,
		},
		Result: domain.ExecutionResult{
			Success:       success,
			ExecutionTime: d,
		},
	}
}
