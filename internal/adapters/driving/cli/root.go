// Package cli provides the command-line interface for ClaimMate.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/claimmate-cli/internal/adapters/driven/ai"
	configfile "github.com/custodia-labs/claimmate-cli/internal/adapters/driven/config/file"
	storagefile "github.com/custodia-labs/claimmate-cli/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/claimmate-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driven"
	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driving"
	"github.com/custodia-labs/claimmate-cli/internal/core/services"
	"github.com/custodia-labs/claimmate-cli/internal/extractors"
	"github.com/custodia-labs/claimmate-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// verboseFlag enables debug logging to stderr.
var verboseFlag bool

// Shared services, wired in initServices. Tests replace these directly.
var (
	workspaceService driving.WorkspaceService
	assistantService driving.AssistantService
	settingsService  driving.SettingsService
	promptStore      driven.PromptStore
)

// servicesInitialised guards initServices so tests can inject their own
// services without the pre-run hook overwriting them.
var servicesInitialised bool

// closers holds resources released after command execution.
var closers []func() error

var rootCmd = &cobra.Command{
	Use:   "claimmate",
	Short: "ClaimMate - VA disability claim packet assistant",
	Long: `ClaimMate helps veterans prepare VA disability claim packets.

Build a claim workspace from your profile, claimed issues, and uploaded
records, then use AI assistance to map symptoms to conditions, summarise
evidence, draft personal statements, and export everything as a single
claim packet.

ClaimMate provides preparation support only. It is not legal advice and
not a substitute for a VSO, attorney, or accredited representative.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose debug output")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initServices wires the adapter stack behind the driving ports.
// A missing or unconfigured generator is not an error here; AI commands
// report it when actually used.
func initServices() error {
	if servicesInitialised {
		return nil
	}

	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}
	settingsService = services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}

	store, err := openWorkspaceStore(settings.Storage)
	if err != nil {
		return fmt.Errorf("open workspace store: %w", err)
	}
	closers = append(closers, store.Close)

	workspace := services.NewWorkspaceService(store, extractors.NewRegistry())
	workspaceService = workspace

	generator, err := ai.CreateGenerator(&settings.Generator)
	if err != nil {
		logger.Warn("generator unavailable: %v", err)
	}
	if generator != nil {
		closers = append(closers, generator.Close)
	}

	assistant := services.NewAssistantService(workspace, generator)
	prompts, err := configfile.NewPromptStore("")
	if err != nil {
		logger.Warn("prompt store unavailable, using built-in prompts: %v", err)
	} else {
		promptStore = prompts
		assistant.SetPromptStore(prompts)
	}
	assistantService = assistant

	servicesInitialised = true
	return nil
}

// openWorkspaceStore picks the persistence backend from settings.
func openWorkspaceStore(settings domain.StorageSettings) (driven.WorkspaceStore, error) {
	switch settings.Backend {
	case domain.StorageSQLite:
		return sqlite.NewStore(settings.DataDir)
	default:
		return storagefile.NewWorkspaceStore(settings.DataDir)
	}
}

// closeServices releases adapter resources opened by initServices.
func closeServices() error {
	var firstErr error
	for _, close := range closers {
		if err := close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	closers = nil
	return firstErr
}
