package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/custodia-labs/claimmate-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/claimmate-cli/internal/core/ports/driven"
	"github.com/custodia-labs/claimmate-cli/internal/core/services"
)

// testExtractors extracts text uploads verbatim and everything else to
// an empty string, mirroring the registry's never-fail contract.
type testExtractors struct{}

func (testExtractors) Extract(_ context.Context, content []byte, mediaType, _ string) string {
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	if mediaType == "text/plain" || mediaType == "application/octet-stream" {
		return string(content)
	}
	return ""
}

// testGenerator returns a canned completion for every call.
type testGenerator struct {
	response string
	err      error
}

func (g *testGenerator) Complete(_ context.Context, _, _ string, _ driven.CompleteOptions) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func (g *testGenerator) ModelName() string { return "test-model" }

func (g *testGenerator) Ping(_ context.Context) error { return g.err }

func (g *testGenerator) Close() error { return nil }

var errGeneratorDown = errors.New("generator down")

// setupTestServices wires the package-level services to in-memory
// doubles and returns a cleanup that restores the previous wiring. The
// initialised guard is set so the pre-run hook leaves the doubles alone.
func setupTestServices() func() {
	return setupTestServicesWith(&testGenerator{response: "canned response"})
}

func setupTestServicesWith(generator driven.Generator) func() {
	oldWorkspace := workspaceService
	oldAssistant := assistantService
	oldSettings := settingsService
	oldInitialised := servicesInitialised

	store := memory.NewWorkspaceStore()
	workspace := services.NewWorkspaceService(store, testExtractors{})
	workspaceService = workspace
	assistantService = services.NewAssistantService(workspace, generator)
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	servicesInitialised = true

	return func() {
		workspaceService = oldWorkspace
		assistantService = oldAssistant
		settingsService = oldSettings
		servicesInitialised = oldInitialised
	}
}
