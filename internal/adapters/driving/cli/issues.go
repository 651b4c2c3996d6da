package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "Manage claimed issues",
	Long:  `View or replace the list of issues being claimed.`,
	RunE:  runIssuesShow,
}

var issuesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the claimed issues",
	RunE:  runIssuesShow,
}

var issuesSetCmd = &cobra.Command{
	Use:   "set [issues...]",
	Short: "Replace the claimed issues",
	Long: `Replace the entire issue list. Each argument becomes one issue; with no
arguments, issues are read from stdin, one per line. The previous list
is replaced wholesale.`,
	RunE: runIssuesSet,
}

func init() {
	issuesCmd.AddCommand(issuesShowCmd)
	issuesCmd.AddCommand(issuesSetCmd)
	rootCmd.AddCommand(issuesCmd)
}

func runIssuesShow(cmd *cobra.Command, _ []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	w, err := workspaceService.Get(context.Background())
	if err != nil {
		return err
	}

	if len(w.Issues) == 0 {
		cmd.Println("No issues recorded. Use 'claimmate issues set' to add some.")
		return nil
	}
	for _, issue := range w.Issues {
		if issue.Details != "" {
			cmd.Printf("- %s - %s\n", issue.Label, issue.Details)
		} else {
			cmd.Printf("- %s\n", issue.Label)
		}
	}
	return nil
}

func runIssuesSet(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	var text string
	if len(args) > 0 {
		text = strings.Join(args, "\n")
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		text = string(data)
	}

	if err := workspaceService.SetIssues(context.Background(), text); err != nil {
		return err
	}

	w, err := workspaceService.Get(context.Background())
	if err != nil {
		return err
	}
	cmd.Printf("Recorded %d issue(s).\n", len(w.Issues))
	return nil
}
