package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
)

// Prompt assembly: each builder is a pure function from workspace slices
// (plus optional extra input) to a system/user prompt pair. Empty
// optional sections are skipped entirely rather than emitted as empty
// labeled blocks, so the model is never prompted on placeholders.

// Truncation ceilings for oversized text. These are fixed character
// counts, not proportional shares, so later documents may be partially
// or wholly dropped.
const (
	// EvidenceBlobLimit caps the concatenated document blob embedded in
	// the evidence-summary prompt.
	EvidenceBlobLimit = 12000

	// ChatSnippetLimit caps each document snippet in the chat context.
	ChatSnippetLimit = 1200

	// ChatSnippetDocs caps how many documents contribute chat snippets.
	ChatSnippetDocs = 3
)

// PromptPair is an assembled system/user prompt.
type PromptPair struct {
	System string
	User   string
}

// Default system prompts, used when no PromptStore override exists.
const (
	defaultMappingSystemPrompt = `You support veterans building VA disability claims. Return JSON only. Format: [{"condition":"","icd10":"","body_system":"","va_rating_hint":"","rationale":""}] Do not add commentary outside JSON.`

	defaultMappingTableSystemPrompt = `You map symptoms to VA-claimable conditions and ICD-10 codes.`

	defaultSummarySystemPrompt = `You summarize medical records for VA disability claims. Write a structured summary covering diagnoses, key findings, functional limitations, and any references to service or exposures.`

	defaultStatementSystemPrompt = `You write VA lay statements and personal impact statements for disability claims. Use first person from the veteran. Tone: plain language, honest, detailed, no legal jargon. Target length: 600 to 900 words. Cover onset, progression, daily impact, work impact, safety concerns, sleep, mental health, flare patterns, and connection to service. Reference medical and symptom context when helpful, without quoting records line by line.`

	defaultRewriteSystemPrompt = `You edit VA personal statements. Keep the first-person voice and every factual detail. Tighten wording, improve flow, and keep plain language. Return only the revised statement.`

	defaultChatSystemPrompt = `You are a VA claims helper. Provide education on VA concepts, rating criteria, and preparation steps. Do not give legal advice and do not promise outcomes. Use the provided context when relevant, but you are not a substitute for a VSO, attorney, or accredited representative.`
)

// BuildMappingPrompt assembles the symptom-mapping prompt. The system
// prompt fixes the JSON-array output contract; the user prompt embeds
// the raw narrative. No truncation is applied - the caller owns
// narrative length.
func BuildMappingPrompt(systemPrompt, narrative string) PromptPair {
	if systemPrompt == "" {
		systemPrompt = defaultMappingSystemPrompt
	}
	user := fmt.Sprintf(
		"Symptoms and history from the veteran:\n%s\n\n"+
			"Suggest likely diagnostic labels with ICD-10 codes and VA rating hints. "+
			"Include Gulf War environmental exposure links when that fits.",
		narrative,
	)
	return PromptPair{System: systemPrompt, User: user}
}

// BuildMappingTablePrompt assembles the legacy two-column mapping
// prompt, answered as a markdown table.
func BuildMappingTablePrompt(systemPrompt, narrative string) PromptPair {
	if systemPrompt == "" {
		systemPrompt = defaultMappingTableSystemPrompt
	}
	user := fmt.Sprintf(
		"A U.S. veteran lists these symptoms for a VA disability claim: '%s'. "+
			"List the most likely VA-claimable medical conditions with their ICD-10 codes. "+
			"Respond as a markdown table with two columns: Condition | ICD-10 Code.",
		narrative,
	)
	return PromptPair{System: systemPrompt, User: user}
}

// BuildEvidenceBlob concatenates every document's name and text into one
// blob separated by blank lines, in document order, then hard-truncates
// to the first EvidenceBlobLimit characters. Documents without text are
// skipped.
func BuildEvidenceBlob(docs []domain.Document) string {
	var blocks []string
	for _, d := range docs {
		if d.Text == "" {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("%s:\n%s", d.Name, d.Text))
	}
	return truncate(strings.Join(blocks, "\n\n"), EvidenceBlobLimit)
}

// BuildSummaryPrompt assembles the evidence-summary prompt over the
// truncated document blob.
func BuildSummaryPrompt(systemPrompt, blob string) PromptPair {
	if systemPrompt == "" {
		systemPrompt = defaultSummarySystemPrompt
	}
	user := fmt.Sprintf(
		"Summarize the following records for use in a VA claim. Do not give legal advice.\n\n%s",
		blob,
	)
	return PromptPair{System: systemPrompt, User: user}
}

// BuildStatementPrompt assembles the personal-statement prompt from the
// profile (non-empty fields only, one labeled line each), the issue
// labels, the mappings filtered to the focus set (an empty set includes
// all), and the evidence summary verbatim. The 600-900 word target lives
// in the system prompt as a hint, not an enforced constraint.
func BuildStatementPrompt(systemPrompt string, w *domain.Workspace, title string, focusConditions []string) PromptPair {
	if systemPrompt == "" {
		systemPrompt = defaultStatementSystemPrompt
	}

	profBlock := strings.Join(profileLines(w.Profile), "\n")

	var issueLines []string
	for _, i := range w.Issues {
		if i.Label != "" {
			issueLines = append(issueLines, "- "+i.Label)
		}
	}

	focus := make(map[string]bool, len(focusConditions))
	for _, c := range focusConditions {
		focus[c] = true
	}
	var mappingLines []string
	for _, m := range w.SymptomMappings {
		if len(focus) > 0 && !focus[m.Condition] {
			continue
		}
		mappingLines = append(mappingLines, fmt.Sprintf(
			"- %s (ICD-10 %s, system: %s) Hint: %s",
			m.Condition, m.ICD10, m.BodySystem, m.VARatingHint,
		))
	}

	user := fmt.Sprintf(
		"Claim focus title:\n%s\n\n"+
			"Veteran background:\n%s\n\n"+
			"High level claimed issues:\n%s\n\n"+
			"Selected conditions and VA rating hints:\n%s\n\n"+
			"Evidence summary prepared from records:\n%s\n\n"+
			"Write a lay statement for this claim. "+
			"Use first person, talk through a typical day, and explain functional impact. "+
			"End with a short paragraph thanking the rater and confirming that the statement "+
			"is true to the best of the veteran's knowledge.",
		title,
		profBlock,
		strings.Join(issueLines, "\n"),
		strings.Join(mappingLines, "\n"),
		w.EvidenceSummary,
	)
	return PromptPair{System: systemPrompt, User: user}
}

// BuildRewritePrompt assembles the statement-rewrite prompt around an
// existing statement body.
func BuildRewritePrompt(systemPrompt, body string) PromptPair {
	if systemPrompt == "" {
		systemPrompt = defaultRewriteSystemPrompt
	}
	user := fmt.Sprintf("Revise this VA personal statement:\n\n%s", body)
	return PromptPair{System: systemPrompt, User: user}
}

// BuildChatContext assembles the workspace context for the claim chat:
// profile branch/dates/deployments, issue labels, the evidence summary,
// and snippets from at most the first ChatSnippetDocs documents, each
// truncated to ChatSnippetLimit characters. Sections come in that fixed
// order, joined with blank lines; empty sections are omitted.
func BuildChatContext(w *domain.Workspace) string {
	var profBits []string
	if w.Profile.Branch != "" {
		profBits = append(profBits, "Branch: "+w.Profile.Branch)
	}
	if w.Profile.ServiceDates != "" {
		profBits = append(profBits, "Service dates: "+w.Profile.ServiceDates)
	}
	if w.Profile.DeploymentLocations != "" {
		profBits = append(profBits, "Deployments: "+w.Profile.DeploymentLocations)
	}

	var issueBits []string
	for _, i := range w.Issues {
		if i.Label != "" {
			issueBits = append(issueBits, i.Label)
		}
	}

	var snippets []string
	for _, d := range w.Documents {
		if d.Text == "" {
			continue
		}
		snippets = append(snippets, fmt.Sprintf("%s:\n%s", d.Name, truncate(d.Text, ChatSnippetLimit)))
		if len(snippets) == ChatSnippetDocs {
			break
		}
	}

	var pieces []string
	if len(profBits) > 0 {
		pieces = append(pieces, "Profile:\n"+strings.Join(profBits, "\n"))
	}
	if len(issueBits) > 0 {
		pieces = append(pieces, "Claimed issues:\n- "+strings.Join(issueBits, "\n- "))
	}
	if w.EvidenceSummary != "" {
		pieces = append(pieces, "Evidence summary:\n"+w.EvidenceSummary)
	}
	if len(snippets) > 0 {
		pieces = append(pieces, "Record snippets:\n"+strings.Join(snippets, "\n\n"))
	}

	return strings.Join(pieces, "\n\n")
}

// BuildChatPrompt assembles the chat prompt pair from the workspace
// context, the session conversation so far, and the user's question.
// The history block is omitted when the conversation is empty.
func BuildChatPrompt(systemPrompt string, w *domain.Workspace, history []domain.ChatTurn, question string) PromptPair {
	if systemPrompt == "" {
		systemPrompt = defaultChatSystemPrompt
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Context for this veteran:\n%s\n\n", BuildChatContext(w))
	if len(history) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range history {
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "User question:\n%s", question)

	return PromptPair{System: systemPrompt, User: b.String()}
}

// profileLines renders non-empty profile fields, one labeled line each.
// Empty fields are omitted entirely.
func profileLines(p domain.Profile) []string {
	var lines []string
	if p.FullName != "" {
		lines = append(lines, "Name: "+p.FullName)
	}
	if p.Branch != "" {
		lines = append(lines, "Branch: "+p.Branch)
	}
	if p.ServiceDates != "" {
		lines = append(lines, "Service dates: "+p.ServiceDates)
	}
	if p.DeploymentLocations != "" {
		lines = append(lines, "Deployments: "+p.DeploymentLocations)
	}
	if p.MOSDuties != "" {
		lines = append(lines, "Duties: "+p.MOSDuties)
	}
	if p.OtherNotes != "" {
		lines = append(lines, "Other context: "+p.OtherNotes)
	}
	return lines
}

// truncate caps s at limit characters (runes, not bytes).
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
