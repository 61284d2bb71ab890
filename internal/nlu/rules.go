package nlu

import "github.com/doeshing/smartos-go/internal/domain"

// TargetRule maps a canonical target label to the alias phrases that select
// it. Order inside a group matters: the first rule whose alias appears in the
// utterance wins.
type TargetRule struct {
	Label   string
	Aliases []string
}

// RuleGroup owns the trigger keywords and target rules for one action kind.
// Confidence is the fixed constant assigned whenever the group matches.
type RuleGroup struct {
	Action     domain.ActionKind
	Confidence float64
	// Triggers activate the group when any of them appears in the
	// utterance. Multi-word triggers match on any of their words.
	Triggers []string
	// Targets resolve the intent target. When empty, the matched trigger
	// keyword itself becomes the target (system control behaves this way).
	Targets []TargetRule
	// TargetFromTrigger selects the matched trigger as the target.
	TargetFromTrigger bool
}

// DefaultRuleGroups returns the built-in rule groups in their fixed priority
// order: open_application, file_operation, system_control, content_creation.
// The order is a contract; it deliberately means a command containing both an
// app keyword and a file keyword resolves as open_application.
func DefaultRuleGroups() []RuleGroup {
	return []RuleGroup{
		{
			Action:     domain.ActionOpenApplication,
			Confidence: domain.ConfidenceOpenApplication,
			Triggers:   []string{"open", "launch", "start", "run"},
			Targets: []TargetRule{
				{Label: "notepad", Aliases: []string{"notepad", "text editor", "note"}},
				{Label: "calculator", Aliases: []string{"calculator", "calc"}},
				{Label: "browser", Aliases: []string{"browser", "chrome", "firefox", "edge", "internet"}},
				{Label: "explorer", Aliases: []string{"explorer", "file manager", "files", "folder"}},
				{Label: "cmd", Aliases: []string{"command prompt", "cmd", "terminal", "console"}},
				{Label: "powershell", Aliases: []string{"powershell", "ps"}},
				{Label: "code", Aliases: []string{"vscode", "visual studio code", "code editor", "vs code"}},
				{Label: "word", Aliases: []string{"word", "microsoft word", "document"}},
				{Label: "excel", Aliases: []string{"excel", "spreadsheet", "microsoft excel"}},
			},
		},
		{
			Action:     domain.ActionFileOperation,
			Confidence: domain.ConfidenceFileOperation,
			Triggers:   []string{"create", "write", "save", "delete", "copy", "move"},
			Targets: []TargetRule{
				{Label: "create", Aliases: []string{"create", "make", "new"}},
				{Label: "write", Aliases: []string{"write", "type", "add content", "insert"}},
				{Label: "save", Aliases: []string{"save", "store"}},
				{Label: "delete", Aliases: []string{"delete", "remove", "erase"}},
				{Label: "copy", Aliases: []string{"copy", "duplicate"}},
				{Label: "move", Aliases: []string{"move", "transfer", "relocate"}},
			},
		},
		{
			Action:            domain.ActionSystemControl,
			Confidence:        domain.ConfidenceSystemControl,
			Triggers:          []string{"shutdown", "restart", "sleep", "hibernate", "lock"},
			TargetFromTrigger: true,
		},
		{
			Action:     domain.ActionContentCreation,
			Confidence: domain.ConfidenceContentCreation,
			Triggers:   []string{"write essay", "create document", "compose", "draft"},
			Targets: []TargetRule{
				{Label: "essay", Aliases: []string{"essay"}},
				{Label: "document", Aliases: []string{"document"}},
				{Label: "letter", Aliases: []string{"letter"}},
				{Label: "report", Aliases: []string{"report"}},
				{Label: "email", Aliases: []string{"email"}},
			},
		},
	}
}
