package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssuesCmd_Use(t *testing.T) {
	assert.Equal(t, "issues", issuesCmd.Use)
}

func TestIssuesCmd_HasSubcommands(t *testing.T) {
	commands := issuesCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "set")
}

func TestIssuesShowCmd_EmptyList(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"issues", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No issues recorded")
}

func TestIssuesSetCmd_FromArgs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"issues", "set", "tinnitus", "knee pain"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Recorded 2 issue(s).")

	buf.Reset()
	rootCmd.SetArgs([]string{"issues", "show"})
	err = rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "tinnitus")
	assert.Contains(t, buf.String(), "knee pain")
}

func TestIssuesSetCmd_ReplacesWholesale(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"issues", "set", "tinnitus"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()
	assert.NoError(t, rootCmd.Execute())

	buf.Reset()
	rootCmd.SetArgs([]string{"issues", "set", "migraines"})
	assert.NoError(t, rootCmd.Execute())

	buf.Reset()
	rootCmd.SetArgs([]string{"issues", "show"})
	assert.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "migraines")
	assert.NotContains(t, buf.String(), "tinnitus")
}

func TestIssuesSetCmd_ServiceNotConfigured(t *testing.T) {
	oldService := workspaceService
	oldInitialised := servicesInitialised
	workspaceService = nil
	servicesInitialised = true
	defer func() {
		workspaceService = oldService
		servicesInitialised = oldInitialised
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"issues", "set", "tinnitus"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "workspace service not configured")
}
