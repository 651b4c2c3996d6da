package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var packetCmd = &cobra.Command{
	Use:   "packet",
	Short: "Export the claim packet",
}

var packetExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the workspace as a flat-text packet",
	Long: `Render every section of the workspace into a single text document ready
for review or filing. The output goes to stdout, or to a file with --out.`,
	RunE: runPacketExport,
}

var packetOut string

func init() {
	packetExportCmd.Flags().StringVar(&packetOut, "out", "", "Write the packet to a file instead of stdout")

	packetCmd.AddCommand(packetExportCmd)
	rootCmd.AddCommand(packetCmd)
}

func runPacketExport(cmd *cobra.Command, _ []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	packet, err := workspaceService.ExportPacket(context.Background())
	if err != nil {
		return err
	}

	if packetOut == "" {
		cmd.Print(packet)
		return nil
	}
	if err := os.WriteFile(packetOut, []byte(packet), 0o644); err != nil {
		return fmt.Errorf("write packet: %w", err)
	}
	cmd.Printf("Packet written to %s\n", packetOut)
	return nil
}
