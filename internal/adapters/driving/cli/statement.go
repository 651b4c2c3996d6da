package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var statementCmd = &cobra.Command{
	Use:   "statement",
	Short: "Manage personal statements",
	Long:  `Draft, save, and rework the personal statements that accompany the claim.`,
}

var statementDraftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft a personal statement",
	Long: `Draft a personal statement from the profile, selected conditions, and
evidence summary. The draft is printed, not saved; use
'claimmate statement save' to keep it.`,
	RunE: runStatementDraft,
}

var statementSaveCmd = &cobra.Command{
	Use:   "save [text]",
	Short: "Save a statement",
	Long:  `Save a statement to the workspace. The body comes from the arguments, or from stdin when none are given.`,
	RunE:  runStatementSave,
}

var statementListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved statements",
	RunE:  runStatementList,
}

var statementShowCmd = &cobra.Command{
	Use:   "show [claim-id]",
	Short: "Print a saved statement",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatementShow,
}

var statementRemoveCmd = &cobra.Command{
	Use:   "remove [claim-id]",
	Short: "Remove a saved statement",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatementRemove,
}

var statementRewriteCmd = &cobra.Command{
	Use:   "rewrite [claim-id]",
	Short: "Rewrite a saved statement",
	Long: `Ask the model to tighten a saved statement. The rewritten text is
printed, not stored; save it explicitly if you prefer it.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatementRewrite,
}

// Statement flags.
var (
	statementTitle string
	statementFocus []string
)

func init() {
	statementDraftCmd.Flags().StringVar(&statementTitle, "title", "", "Statement title")
	statementDraftCmd.Flags().StringSliceVar(&statementFocus, "focus", nil, "Conditions to focus on (defaults to the selected mappings)")
	statementSaveCmd.Flags().StringVar(&statementTitle, "title", "", "Statement title")

	statementCmd.AddCommand(statementDraftCmd)
	statementCmd.AddCommand(statementSaveCmd)
	statementCmd.AddCommand(statementListCmd)
	statementCmd.AddCommand(statementShowCmd)
	statementCmd.AddCommand(statementRemoveCmd)
	statementCmd.AddCommand(statementRewriteCmd)
	rootCmd.AddCommand(statementCmd)
}

func runStatementDraft(cmd *cobra.Command, _ []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	draft, err := assistantService.DraftStatement(context.Background(), statementTitle, statementFocus)
	if err != nil {
		return err
	}
	cmd.Println(draft)
	cmd.Println("\nUse 'claimmate statement save' to keep this draft.")
	return nil
}

func runStatementSave(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	var body string
	if len(args) > 0 {
		body = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		body = strings.TrimSpace(string(data))
	}

	claim, err := workspaceService.SaveClaim(context.Background(), statementTitle, body)
	if err != nil {
		return err
	}
	cmd.Printf("Saved %s: %s\n", claim.ID, claim.Title)
	return nil
}

func runStatementList(cmd *cobra.Command, _ []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	w, err := workspaceService.Get(context.Background())
	if err != nil {
		return err
	}

	if len(w.Claims) == 0 {
		cmd.Println("No statements saved.")
		return nil
	}
	for _, claim := range w.Claims {
		cmd.Printf("%s  %s  (%s)\n", claim.ID, claim.Title, claim.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func runStatementShow(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	w, err := workspaceService.Get(context.Background())
	if err != nil {
		return err
	}

	claim := w.FindClaim(args[0])
	if claim == nil {
		return errors.New("statement " + args[0] + " not found")
	}
	cmd.Printf("%s\n\n%s\n", claim.Title, claim.Body)
	return nil
}

func runStatementRemove(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	if err := workspaceService.RemoveClaim(context.Background(), args[0]); err != nil {
		return err
	}
	cmd.Printf("Removed %s\n", args[0])
	return nil
}

func runStatementRewrite(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	rewritten, err := assistantService.RewriteStatement(context.Background(), args[0])
	if err != nil {
		return err
	}
	cmd.Println(rewritten)
	cmd.Println("\nUse 'claimmate statement save' to keep this version.")
	return nil
}
