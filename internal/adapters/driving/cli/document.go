package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driving"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage uploaded documents",
	Long:  `Add, list, and annotate the records backing the claim.`,
}

var documentAddCmd = &cobra.Command{
	Use:   "add [file...]",
	Short: "Add documents to the workspace",
	Long: `Add one or more files to the workspace. Text is extracted according to
the file type (plain text, PDF, or DOCX); unsupported types are kept
with empty text. A file whose name and size match an existing document
is skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDocumentAdd,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded documents",
	RunE:  runDocumentList,
}

var documentContentCmd = &cobra.Command{
	Use:   "content [doc-id]",
	Short: "Print extracted document text",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentContent,
}

var documentNoteCmd = &cobra.Command{
	Use:   "note [doc-id] [note]",
	Short: "Attach a note to a document",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runDocumentNote,
}

func init() {
	documentCmd.AddCommand(documentAddCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentContentCmd)
	documentCmd.AddCommand(documentNoteCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentAdd(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	ctx := context.Background()
	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		name := filepath.Base(path)
		doc, dup, err := workspaceService.AddDocument(ctx, driving.Upload{
			Name:      name,
			MediaType: mediaTypeFor(name),
			Content:   content,
		})
		if err != nil {
			return fmt.Errorf("add %s: %w", name, err)
		}
		if dup {
			cmd.Printf("Skipped %s (already uploaded as %s)\n", name, doc.ID)
			continue
		}
		if doc.Text == "" {
			cmd.Printf("Added %s (no text extracted)\n", doc.ID)
		} else {
			cmd.Printf("Added %s (%d characters extracted)\n", doc.ID, len(doc.Text))
		}
	}
	return nil
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	w, err := workspaceService.Get(context.Background())
	if err != nil {
		return err
	}

	if len(w.Documents) == 0 {
		cmd.Println("No documents uploaded.")
		return nil
	}
	for _, doc := range w.Documents {
		line := fmt.Sprintf("%s  %s  %d bytes", doc.ID, doc.MediaType, doc.Size)
		if doc.Notes != "" {
			line += "  [" + doc.Notes + "]"
		}
		cmd.Println(line)
	}
	return nil
}

func runDocumentContent(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	w, err := workspaceService.Get(context.Background())
	if err != nil {
		return err
	}

	doc := w.FindDocument(args[0])
	if doc == nil {
		return fmt.Errorf("document %s not found", args[0])
	}
	if doc.Text == "" {
		cmd.Println("(no text extracted)")
		return nil
	}
	cmd.Println(doc.Text)
	return nil
}

func runDocumentNote(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	note := strings.Join(args[1:], " ")
	if err := workspaceService.SetDocumentNote(context.Background(), args[0], note); err != nil {
		return err
	}
	cmd.Println("Note saved.")
	return nil
}

// mediaTypeFor derives a media type from the file extension. Unknown
// extensions fall back to octet-stream and flow through the plain-text
// extraction path.
func mediaTypeFor(name string) string {
	if mt := mime.TypeByExtension(filepath.Ext(name)); mt != "" {
		return mt
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".md", ".txt", ".log":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
