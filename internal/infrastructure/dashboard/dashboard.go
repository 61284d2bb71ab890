// Package dashboard renders metrics snapshots to a static HTML page for
// external viewing. It is a reporting consumer of the core pipeline, not a
// part of it.
package dashboard

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/smartos-go/internal/domain"
	"github.com/doeshing/smartos-go/internal/pkg/filesystem"
	"github.com/doeshing/smartos-go/internal/ports"
)

// Generator writes smartos_dashboard_latest.html (plus a timestamped copy)
// under the output directory.
type Generator struct {
	dir string
}

// New builds a generator writing under ~/.smartos/dashboard, or under the
// given directory when non-empty.
func New(dir string) *Generator {
	if dir == "" {
		dir = filepath.Join(filesystem.DataDir(), "dashboard")
	}
	return &Generator{dir: dir}
}

// Render implements ports.SnapshotRenderer and returns the latest-page path.
func (g *Generator) Render(snapshot domain.MetricsSnapshot) (string, error) {
	if err := os.MkdirAll(g.dir, domain.DirectoryPermissions); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageData(snapshot)); err != nil {
		return "", fmt.Errorf("render dashboard: %w", err)
	}

	stamped := filepath.Join(g.dir,
		fmt.Sprintf("smartos_dashboard_%s.html", snapshot.GeneratedAt.Format("20060102_150405")))
	if err := os.WriteFile(stamped, buf.Bytes(), domain.DataFilePermissions); err != nil {
		return "", err
	}

	latest := filepath.Join(g.dir, "smartos_dashboard_latest.html")
	if err := os.WriteFile(latest, buf.Bytes(), domain.DataFilePermissions); err != nil {
		return "", err
	}
	return latest, nil
}

type pageData struct {
	GeneratedAt   string
	TotalCommands string
	SuccessRate   string
	AvgResponse   string
	Accuracy      string
	Categories    []categoryRow
	Distribution  []distributionRow
	LastHour      windowRow
	LastDay       windowRow
}

type categoryRow struct {
	Name        string
	Total       int
	SuccessRate string
	AvgResponse string
	Status      string
}

type distributionRow struct {
	Label string
	Count int
}

type windowRow struct {
	Label       string
	Total       int
	SuccessRate string
}

func newPageData(s domain.MetricsSnapshot) pageData {
	data := pageData{
		GeneratedAt:   s.GeneratedAt.Format("2006-01-02 15:04:05"),
		TotalCommands: humanize.Comma(int64(s.TotalCommands)),
		SuccessRate:   fmt.Sprintf("%.1f%%", s.SuccessRate),
		AvgResponse:   formatDuration(s.AverageResponseTime),
		Accuracy:      fmt.Sprintf("%.1f%%", s.IntentAccuracy),
		LastHour:      windowRow{Label: "Last hour", Total: s.LastHour.Total, SuccessRate: fmt.Sprintf("%.1f%%", s.LastHour.SuccessRate)},
		LastDay:       windowRow{Label: "Last 24 hours", Total: s.LastDay.Total, SuccessRate: fmt.Sprintf("%.1f%%", s.LastDay.SuccessRate)},
	}

	for _, kind := range domain.ActionKinds {
		stats, ok := s.Categories[kind]
		if !ok {
			continue
		}
		data.Categories = append(data.Categories, categoryRow{
			Name:        string(kind),
			Total:       stats.Total,
			SuccessRate: fmt.Sprintf("%.1f%%", stats.SuccessRate),
			AvgResponse: formatDuration(stats.AverageResponseTime),
			Status:      statusFor(stats.SuccessRate),
		})
	}
	if stats, ok := s.Categories[domain.ActionUnknown]; ok {
		data.Categories = append(data.Categories, categoryRow{
			Name:        string(domain.ActionUnknown),
			Total:       stats.Total,
			SuccessRate: fmt.Sprintf("%.1f%%", stats.SuccessRate),
			AvgResponse: formatDuration(stats.AverageResponseTime),
			Status:      statusFor(stats.SuccessRate),
		})
	}

	h := s.Histogram
	data.Distribution = []distributionRow{
		{Label: "< 1s", Count: h.Under1s},
		{Label: "1-3s", Count: h.Under3s - h.Under1s},
		{Label: "3-5s", Count: h.Under5s - h.Under3s},
		{Label: "> 5s", Count: h.Over5s},
	}
	return data
}

func statusFor(rate float64) string {
	switch {
	case rate > 80:
		return "good"
	case rate > 60:
		return "fair"
	default:
		return "poor"
	}
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>SmartOS Metrics Dashboard</title>
<style>
body { font-family: sans-serif; margin: 0; padding: 20px; background: #f5f5f5; }
.dashboard { max-width: 960px; margin: 0 auto; }
.header { background: #4a5568; color: white; padding: 24px; border-radius: 8px; margin-bottom: 24px; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 16px; margin-bottom: 24px; }
.card { background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #4a5568; }
.card .title { font-size: 12px; color: #666; text-transform: uppercase; }
.card .value { font-size: 28px; font-weight: bold; }
table { width: 100%; border-collapse: collapse; background: white; border-radius: 8px; margin-bottom: 24px; }
th, td { padding: 10px 14px; text-align: left; border-bottom: 1px solid #eee; }
th { background: #f8f9fa; }
.good { color: #2f855a; } .fair { color: #b7791f; } .poor { color: #c53030; }
</style>
</head>
<body>
<div class="dashboard">
  <div class="header">
    <h1>SmartOS Metrics Dashboard</h1>
    <p>Last updated: {{.GeneratedAt}}</p>
  </div>
  <div class="cards">
    <div class="card"><div class="title">Total Commands</div><div class="value">{{.TotalCommands}}</div></div>
    <div class="card"><div class="title">Success Rate</div><div class="value">{{.SuccessRate}}</div></div>
    <div class="card"><div class="title">Avg Response Time</div><div class="value">{{.AvgResponse}}</div></div>
    <div class="card"><div class="title">Intent Accuracy</div><div class="value">{{.Accuracy}}</div></div>
  </div>
  <h3>Command Categories</h3>
  <table>
    <tr><th>Category</th><th>Total</th><th>Success Rate</th><th>Avg Response</th><th>Status</th></tr>
    {{range .Categories}}
    <tr><td>{{.Name}}</td><td>{{.Total}}</td><td>{{.SuccessRate}}</td><td>{{.AvgResponse}}</td><td class="{{.Status}}">{{.Status}}</td></tr>
    {{end}}
  </table>
  <h3>Response Time Distribution</h3>
  <table>
    <tr><th>Bucket</th><th>Commands</th></tr>
    {{range .Distribution}}
    <tr><td>{{.Label}}</td><td>{{.Count}}</td></tr>
    {{end}}
  </table>
  <h3>Recent Activity</h3>
  <table>
    <tr><th>Window</th><th>Commands</th><th>Success Rate</th></tr>
    <tr><td>{{.LastHour.Label}}</td><td>{{.LastHour.Total}}</td><td>{{.LastHour.SuccessRate}}</td></tr>
    <tr><td>{{.LastDay.Label}}</td><td>{{.LastDay.Total}}</td><td>{{.LastDay.SuccessRate}}</td></tr>
  </table>
</div>
</body>
</html>
`))

var _ ports.SnapshotRenderer = (*Generator)(nil)
