package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var evidenceCmd = &cobra.Command{
	Use:   "evidence",
	Short: "Manage the evidence summary",
	Long:  `Summarise uploaded records with AI assistance, or view and edit the summary by hand.`,
}

var evidenceSummariseCmd = &cobra.Command{
	Use:     "summarise",
	Aliases: []string{"summarize"},
	Short:   "Summarise uploaded records",
	Long: `Combine the text of every uploaded document and ask the model for a
structured summary. The result replaces the stored evidence summary.`,
	RunE: runEvidenceSummarise,
}

var evidenceShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the evidence summary",
	RunE:  runEvidenceShow,
}

var evidenceSetCmd = &cobra.Command{
	Use:   "set [text]",
	Short: "Replace the evidence summary",
	Long:  `Replace the evidence summary with the given text, or with stdin when no argument is provided.`,
	RunE:  runEvidenceSet,
}

func init() {
	evidenceCmd.AddCommand(evidenceSummariseCmd)
	evidenceCmd.AddCommand(evidenceShowCmd)
	evidenceCmd.AddCommand(evidenceSetCmd)
	rootCmd.AddCommand(evidenceCmd)
}

func runEvidenceSummarise(cmd *cobra.Command, _ []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	summary, err := assistantService.SummariseEvidence(context.Background())
	if err != nil {
		return err
	}
	cmd.Println(summary)
	return nil
}

func runEvidenceShow(cmd *cobra.Command, _ []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	w, err := workspaceService.Get(context.Background())
	if err != nil {
		return err
	}
	if w.EvidenceSummary == "" {
		cmd.Println("No evidence summary. Run 'claimmate evidence summarise' or set one directly.")
		return nil
	}
	cmd.Println(w.EvidenceSummary)
	return nil
}

func runEvidenceSet(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		text = strings.TrimSpace(string(data))
	}

	if err := workspaceService.SetEvidenceSummary(context.Background(), text); err != nil {
		return err
	}
	cmd.Println("Evidence summary saved.")
	return nil
}
