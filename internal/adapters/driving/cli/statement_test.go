package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementCmd_Use(t *testing.T) {
	assert.Equal(t, "statement", statementCmd.Use)
}

func TestStatementCmd_HasSubcommands(t *testing.T) {
	commands := statementCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "draft")
	assert.Contains(t, commandNames, "save")
	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "remove")
	assert.Contains(t, commandNames, "rewrite")
}

func TestStatementDraftCmd_PrintsDraftWithoutSaving(t *testing.T) {
	cleanup := setupTestServicesWith(&testGenerator{response: "I am submitting this statement."})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"statement", "draft"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "I am submitting this statement.")
	assert.Contains(t, buf.String(), "statement save")

	buf.Reset()
	rootCmd.SetArgs([]string{"statement", "list"})
	assert.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "No statements saved.")
}

func TestStatementSaveCmd_SavesAndLists(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"statement", "save", "--title", "Tinnitus statement", "My ears ring constantly."})
	defer func() {
		rootCmd.SetArgs(nil)
		statementTitle = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Saved claim_1_")
	assert.Contains(t, buf.String(), "Tinnitus statement")

	buf.Reset()
	rootCmd.SetArgs([]string{"statement", "list"})
	assert.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Tinnitus statement")
}

func TestStatementSaveCmd_EmptyBody(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"statement", "save", "   "})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestStatementShowCmd_PrintsBody(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"statement", "save", "My ears ring constantly."})
	defer func() {
		rootCmd.SetArgs(nil)
	}()
	require.NoError(t, rootCmd.Execute())

	claimID := savedClaimID(t, buf.String())

	buf.Reset()
	rootCmd.SetArgs([]string{"statement", "show", claimID})
	assert.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "My ears ring constantly.")
}

func TestStatementRemoveCmd_RemovesClaim(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"statement", "save", "My knees ache daily."})
	defer func() {
		rootCmd.SetArgs(nil)
	}()
	require.NoError(t, rootCmd.Execute())

	claimID := savedClaimID(t, buf.String())

	buf.Reset()
	rootCmd.SetArgs([]string{"statement", "remove", claimID})
	assert.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Removed "+claimID)

	buf.Reset()
	rootCmd.SetArgs([]string{"statement", "list"})
	assert.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "No statements saved.")
}

func TestStatementRemoveCmd_UnknownID(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"statement", "remove", "claim_99_0"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestStatementRewriteCmd_PrintsWithoutReplacing(t *testing.T) {
	cleanup := setupTestServicesWith(&testGenerator{response: "Tightened statement text."})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"statement", "save", "Original statement text."})
	defer func() {
		rootCmd.SetArgs(nil)
	}()
	require.NoError(t, rootCmd.Execute())

	claimID := savedClaimID(t, buf.String())

	buf.Reset()
	rootCmd.SetArgs([]string{"statement", "rewrite", claimID})
	assert.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Tightened statement text.")

	buf.Reset()
	rootCmd.SetArgs([]string{"statement", "show", claimID})
	assert.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Original statement text.")
}

func TestStatementDraftCmd_ServiceNotConfigured(t *testing.T) {
	oldService := assistantService
	oldInitialised := servicesInitialised
	assistantService = nil
	servicesInitialised = true
	defer func() {
		assistantService = oldService
		servicesInitialised = oldInitialised
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"statement", "draft"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "assistant service not configured")
}

// savedClaimID pulls the claim ID out of a "Saved <id>: <title>" line.
func savedClaimID(t *testing.T, output string) string {
	t.Helper()
	idx := strings.Index(output, "Saved ")
	require.GreaterOrEqual(t, idx, 0)
	rest := output[idx+len("Saved "):]
	end := strings.Index(rest, ":")
	require.Greater(t, end, 0)
	return rest[:end]
}
