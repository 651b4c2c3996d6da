package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
)

// noSummaryPlaceholder renders in place of an absent evidence summary.
const noSummaryPlaceholder = "[No summary prepared yet]"

// RenderPacket deterministically flattens the whole aggregate into the
// claim packet: header with generation timestamp, veteran profile,
// claimed issues, symptom mappings, evidence summary, then every saved
// statement in stored order. Two renders of an unmodified aggregate are
// byte-identical except for the timestamp line, and every section header
// appears even when its section is empty.
func RenderPacket(w *domain.Workspace, now time.Time) string {
	var lines []string

	lines = append(lines, "VA ClaimMate Claim Packet")
	lines = append(lines, fmt.Sprintf("Generated: %s", now.UTC().Format(time.RFC3339)))
	lines = append(lines, "")

	lines = append(lines, "Veteran profile")
	lines = append(lines, "----------------")
	lines = append(lines, packetProfileLines(w.Profile)...)
	lines = append(lines, "")

	lines = append(lines, "Claimed issues")
	lines = append(lines, "-------------")
	for _, i := range w.Issues {
		if i.Label == "" {
			continue
		}
		if i.Details != "" {
			lines = append(lines, fmt.Sprintf("- %s - %s", i.Label, i.Details))
		} else {
			lines = append(lines, "- "+i.Label)
		}
	}
	lines = append(lines, "")

	lines = append(lines, "Symptom to condition mappings")
	lines = append(lines, "-----------------------------")
	for _, m := range w.SymptomMappings {
		lines = append(lines, fmt.Sprintf(
			"- %s | ICD-10 %s | system: %s | rating hint: %s | selected: %t",
			m.Condition, m.ICD10, m.BodySystem, m.VARatingHint, m.SelectedForClaim,
		))
	}
	lines = append(lines, "")

	lines = append(lines, "Evidence summary")
	lines = append(lines, "----------------")
	if w.EvidenceSummary != "" {
		lines = append(lines, w.EvidenceSummary)
	} else {
		lines = append(lines, noSummaryPlaceholder)
	}
	lines = append(lines, "")

	lines = append(lines, "Saved personal statements")
	lines = append(lines, "-------------------------")
	for _, c := range w.Claims {
		lines = append(lines, "")
		lines = append(lines, "Title: "+c.Title)
		lines = append(lines, "Created: "+c.CreatedAt.UTC().Format(time.RFC3339))
		lines = append(lines, "")
		lines = append(lines, c.Body)
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// packetProfileLines renders non-empty profile fields with the packet's
// own labels, which differ from the prompt labels for the duties and
// notes fields. Empty fields are omitted entirely.
func packetProfileLines(p domain.Profile) []string {
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
		lines = append(lines, "Duties / MOS: "+p.MOSDuties)
	}
	if p.OtherNotes != "" {
		lines = append(lines, "Additional notes: "+p.OtherNotes)
	}
	return lines
}
