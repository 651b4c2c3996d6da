package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "claimmate", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "profile")
	assert.Contains(t, commandNames, "issues")
	assert.Contains(t, commandNames, "document")
	assert.Contains(t, commandNames, "map")
	assert.Contains(t, commandNames, "evidence")
	assert.Contains(t, commandNames, "statement")
	assert.Contains(t, commandNames, "notes")
	assert.Contains(t, commandNames, "packet")
	assert.Contains(t, commandNames, "chat")
	assert.Contains(t, commandNames, "settings")
	assert.Contains(t, commandNames, "version")
}

func TestRootCmd_HelpMentionsDisclaimer(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--help"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "not legal advice")
}
