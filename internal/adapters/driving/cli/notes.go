package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage scratch notes",
	Long:  `View or replace the free-text scratch notes carried into the claim packet.`,
	RunE:  runNotesShow,
}

var notesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the scratch notes",
	RunE:  runNotesShow,
}

var notesSetCmd = &cobra.Command{
	Use:   "set [text]",
	Short: "Replace the scratch notes",
	RunE:  runNotesSet,
}

func init() {
	notesCmd.AddCommand(notesShowCmd)
	notesCmd.AddCommand(notesSetCmd)
	rootCmd.AddCommand(notesCmd)
}

func runNotesShow(cmd *cobra.Command, _ []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	w, err := workspaceService.Get(context.Background())
	if err != nil {
		return err
	}
	if w.Notes == "" {
		cmd.Println("No notes.")
		return nil
	}
	cmd.Println(w.Notes)
	return nil
}

func runNotesSet(cmd *cobra.Command, args []string) error {
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

	if err := workspaceService.SetNotes(context.Background(), text); err != nil {
		return err
	}
	cmd.Println("Notes saved.")
	return nil
}
