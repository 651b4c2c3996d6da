package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:   "map [narrative]",
	Short: "Map symptoms to VA-claimable conditions",
	Long: `Describe your symptoms in plain language and get suggested conditions
with ICD-10 codes and VA rating hints. The suggestions replace the
stored mapping list and clear any prior selection; run
'claimmate map select' again to pick conditions from the new list.

When the model's output cannot be read as structured data, the raw
response is shown instead and the stored mappings are left untouched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMap,
}

var mapSelectCmd = &cobra.Command{
	Use:   "select [conditions...]",
	Short: "Select conditions for the claim",
	Long: `Mark the named conditions as selected for the claim. Every mapping is
re-flagged: named conditions are selected, all others deselected.
Run with no arguments to clear the selection.`,
	RunE: runMapSelect,
}

var mapShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored condition mappings",
	RunE:  runMapShow,
}

// mapTable requests the legacy two-column table variant.
var mapTable bool

func init() {
	mapCmd.Flags().BoolVar(&mapTable, "table", false, "Use the legacy two-column table format")

	mapCmd.AddCommand(mapSelectCmd)
	mapCmd.AddCommand(mapShowCmd)
	rootCmd.AddCommand(mapCmd)
}

func runMap(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	narrative := strings.Join(args, " ")
	ctx := context.Background()

	if mapTable {
		rows, raw, err := assistantService.MapSymptomsTable(ctx, narrative)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			cmd.Println("No table rows recognised. Raw response:")
			cmd.Println(raw)
			return nil
		}
		for _, row := range rows {
			cmd.Printf("%-40s %s\n", row.Condition, row.ICD10)
		}
		return nil
	}

	result, err := assistantService.MapSymptoms(ctx, narrative)
	if err != nil {
		return err
	}

	if !result.Parsed {
		cmd.Println("The response was not structured data. Raw response:")
		cmd.Println(result.Raw)
		return nil
	}
	if len(result.Mappings) == 0 {
		cmd.Println("No conditions suggested.")
		return nil
	}

	for _, m := range result.Mappings {
		cmd.Printf("- %s (ICD-10 %s, system: %s)\n", m.Condition, m.ICD10, m.BodySystem)
		if m.VARatingHint != "" {
			cmd.Printf("  Rating hint: %s\n", m.VARatingHint)
		}
		if m.Rationale != "" {
			cmd.Printf("  Rationale: %s\n", m.Rationale)
		}
	}
	cmd.Println("\nUse 'claimmate map select' to pick conditions for the claim.")
	return nil
}

func runMapSelect(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	ctx := context.Background()
	if err := workspaceService.SelectConditions(ctx, args); err != nil {
		return err
	}

	w, err := workspaceService.Get(ctx)
	if err != nil {
		return err
	}
	selected := w.SelectedConditions()
	if len(selected) == 0 {
		cmd.Println("Selection cleared.")
		return nil
	}
	cmd.Printf("Selected: %s\n", strings.Join(selected, ", "))
	return nil
}

func runMapShow(cmd *cobra.Command, _ []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	w, err := workspaceService.Get(context.Background())
	if err != nil {
		return err
	}

	if len(w.SymptomMappings) == 0 {
		cmd.Println("No condition mappings stored. Run 'claimmate map' first.")
		return nil
	}
	for _, m := range w.SymptomMappings {
		marker := " "
		if m.SelectedForClaim {
			marker = "*"
		}
		cmd.Printf("%s %s (ICD-10 %s, system: %s)\n", marker, m.Condition, m.ICD10, m.BodySystem)
	}
	return nil
}
