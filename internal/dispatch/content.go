package dispatch

import (
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/smartos-go/internal/domain"
)

// contentTemplates keys rendered output by content type. Unmatched types fall
// back to a generic template that still carries the topic.
var contentTemplates = map[string]string{
	"essay":    "# Essay on %[1]s\n\nIntroduction:\n\nBody:\n\nConclusion:",
	"document": "Document: %[1]s\n\nContent goes here...",
	"letter":   "Dear [Recipient],\n\nRegarding: %[1]s\n\nSincerely,\n[Your Name]",
	"report":   "# Report: %[1]s\n\n## Executive Summary\n\n## Findings\n\n## Recommendations",
}

// createContent renders the template for the target type, writes it to a
// filename derived deterministically from type and topic, and opens the file
// in the platform editor fire-and-forget. An editor failure is not fatal to
// the overall result.
func (d *Dispatcher) createContent(intent domain.Intent) domain.ExecutionResult {
	contentType := intent.Target
	topic := intent.Parameter(domain.ParamTopic, domain.DefaultTopic)

	template, ok := contentTemplates[contentType]
	if !ok {
		template = "Content about %[1]s"
	}
	content := fmt.Sprintf(template, topic)

	filename := fmt.Sprintf("%s_%s.txt", contentType, strings.ReplaceAll(topic, " ", "_"))
	path := d.resolve(filename)

	if err := os.WriteFile(path, []byte(content), domain.DataFilePermissions); err != nil {
		return domain.ExecutionResult{
			Message: fmt.Sprintf("Content creation failed: %v", err),
		}
	}

	if d.Launcher != nil {
		if err := d.Launcher.Open(path); err != nil && d.Logger != nil {
			d.Logger.Warn("editor open failed", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}
	}

	return domain.ExecutionResult{
		Success: true,
		Message: fmt.Sprintf("Created %s about %s: %s", contentType, topic, filename),
	}
}
