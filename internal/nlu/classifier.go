// Package nlu implements the deterministic, explainable intent classifier.
//
// Classification is priority-ordered rule matching, not natural-language
// understanding: the first rule group with a trigger keyword present in the
// utterance wins, later groups are never consulted even when their keywords
// also match.
package nlu

import (
	"strings"

	"github.com/doeshing/smartos-go/internal/domain"
	"github.com/doeshing/smartos-go/internal/ports"
)

// Classifier evaluates rule groups in declared priority order.
type Classifier struct {
	groups []RuleGroup
}

// New builds a classifier over the given rule groups; with none given the
// built-in groups are used.
func New(groups ...RuleGroup) *Classifier {
	if len(groups) == 0 {
		groups = DefaultRuleGroups()
	}
	return &Classifier{groups: groups}
}

// Classify maps raw text to a structured Intent. It is total: unmatched text
// yields the unknown action with zero confidence and an empty target.
func (c *Classifier) Classify(text string) domain.Intent {
	normalized := strings.ToLower(strings.TrimSpace(text))

	intent := domain.Intent{
		Action:       domain.ActionUnknown,
		Parameters:   map[string]string{},
		OriginalText: text,
	}

	for _, group := range c.groups {
		trigger, ok := group.match(normalized)
		if !ok {
			continue
		}

		intent.Action = group.Action
		intent.Confidence = group.Confidence
		if group.TargetFromTrigger {
			intent.Target = trigger
		} else {
			intent.Target = group.resolveTarget(normalized)
		}
		extractParameters(&intent, group.Action, text, normalized)
		return intent
	}

	return intent
}

// match reports whether any trigger appears in the normalized text and
// returns the matching trigger. Multi-word triggers match on any word.
func (g RuleGroup) match(normalized string) (string, bool) {
	for _, trigger := range g.Triggers {
		words := strings.Fields(trigger)
		if len(words) > 1 {
			for _, word := range words {
				if strings.Contains(normalized, word) {
					return trigger, true
				}
			}
			continue
		}
		if strings.Contains(normalized, trigger) {
			return trigger, true
		}
	}
	return "", false
}

// resolveTarget selects the first target rule, in declared order, whose alias
// set intersects the text. No match leaves the target empty; the group's base
// confidence still applies.
func (g RuleGroup) resolveTarget(normalized string) string {
	for _, target := range g.Targets {
		for _, alias := range target.Aliases {
			if strings.Contains(normalized, alias) {
				return target.Label
			}
		}
	}
	return ""
}

// extractParameters pulls group-specific parameters out of the utterance,
// independent of target resolution.
func extractParameters(intent *domain.Intent, action domain.ActionKind, original, normalized string) {
	switch action {
	case domain.ActionFileOperation:
		if name, ok := filenameAfterMarker(original); ok {
			intent.Parameters[domain.ParamFilename] = name
		}
	case domain.ActionContentCreation:
		// Index into the original text so the topic keeps its casing.
		if idx := strings.Index(strings.ToLower(original), "about"); idx >= 0 {
			topic := strings.TrimSpace(original[idx+len("about"):])
			if topic != "" {
				intent.Parameters[domain.ParamTopic] = topic
			}
		}
	}
}

// filenameAfterMarker scans whitespace-delimited tokens for "file" or
// "document" and returns the following token when present.
func filenameAfterMarker(text string) (string, bool) {
	words := strings.Fields(text)
	for i, word := range words {
		lower := strings.ToLower(word)
		if (lower == "file" || lower == "document") && i+1 < len(words) {
			return words[i+1], true
		}
	}
	return "", false
}

var _ ports.Classifier = (*Classifier)(nil)
