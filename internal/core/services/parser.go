package services

import (
	"encoding/json"
	"strings"

	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
)

// Completion parsing: raw model text in, structured results out.
// Parsing is defensive and lossy by design - malformed output degrades
// to an empty structured result with the raw text preserved, never an
// error that aborts the workflow.

// ParseMappingCompletion parses a symptom-mapping completion expected to
// be a JSON array. If the text parses as JSON and the top-level value is
// an array, every object element becomes a record (missing keys stay
// zero; non-object elements become empty records). Anything else yields
// Parsed=false with the raw text retained. No partial recovery is
// attempted.
func ParseMappingCompletion(raw string) *domain.MappingResult {
	result := &domain.MappingResult{Raw: raw}

	var top any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &top); err != nil {
		return result
	}
	elements, ok := top.([]any)
	if !ok {
		return result
	}

	result.Parsed = true
	result.Mappings = make([]domain.SymptomMapping, 0, len(elements))
	for _, el := range elements {
		obj, ok := el.(map[string]any)
		if !ok {
			result.Mappings = append(result.Mappings, domain.SymptomMapping{})
			continue
		}
		result.Mappings = append(result.Mappings, domain.SymptomMapping{
			Condition:        stringField(obj, "condition"),
			ICD10:            stringField(obj, "icd10"),
			BodySystem:       stringField(obj, "body_system"),
			VARatingHint:     stringField(obj, "va_rating_hint"),
			Rationale:        stringField(obj, "rationale"),
			SelectedForClaim: boolField(obj, "selected_for_claim"),
		})
	}
	return result
}

// ParseConditionTable parses the legacy line-oriented pseudo-markdown
// table. Policy: skip blank lines; skip a header line containing both
// the condition and ICD column markers; skip separator lines composed
// only of '|', '-', and spaces; split the rest on '|', trim each cell,
// discard empty cells, and accept the line only when exactly two
// non-empty cells remain. Other lines are silently dropped.
func ParseConditionTable(raw string) []domain.ConditionCode {
	var rows []domain.ConditionCode
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.Contains(trimmed, "Condition") && strings.Contains(trimmed, "ICD") {
			continue
		}
		if isSeparatorLine(trimmed) {
			continue
		}
		var cells []string
		for _, part := range strings.Split(trimmed, "|") {
			if cell := strings.TrimSpace(part); cell != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) != 2 {
			continue
		}
		rows = append(rows, domain.ConditionCode{Condition: cells[0], ICD10: cells[1]})
	}
	return rows
}

// ParseProseCompletion handles prose features (summary, statement, chat
// reply): no structure expected, the completion is used verbatim minus
// surrounding whitespace.
func ParseProseCompletion(raw string) string {
	return strings.TrimSpace(raw)
}

// isSeparatorLine reports whether a line consists only of '|', '-', and
// spaces - a markdown table rule.
func isSeparatorLine(line string) bool {
	for _, r := range line {
		if r != '|' && r != '-' && r != ' ' {
			return false
		}
	}
	return true
}

func stringField(obj map[string]any, key string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return ""
}

func boolField(obj map[string]any, key string) bool {
	if v, ok := obj[key].(bool); ok {
		return v
	}
	return false
}
