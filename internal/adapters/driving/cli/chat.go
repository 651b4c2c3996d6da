package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/claimmate-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
	"github.com/custodia-labs/claimmate-cli/internal/logger"
)

var chatCmd = &cobra.Command{
	Use:   "chat [question]",
	Short: "Ask questions about the claim",
	Long: `Ask a one-off question, or start an interactive session when no
question is given. The conversation history lives in memory for the
session only; nothing is persisted.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	ctx := context.Background()

	if len(args) > 0 {
		answer, err := assistantService.Chat(ctx, nil, strings.Join(args, " "))
		if err != nil {
			return err
		}
		cmd.Println(answer)
		return nil
	}

	// Interactive sessions reload prompt files edited mid-session.
	if dirStore, ok := promptStore.(interface{ Dir() string }); ok {
		if watcher, err := configfile.NewPromptWatcher(dirStore.Dir(), promptStore); err != nil {
			logger.Debug("prompt watcher unavailable: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	sessionID := uuid.NewString()
	cmd.Printf("Chat session %s. Type 'exit' to quit.\n", sessionID)

	var history []domain.ChatTurn
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print("you> ")
		if !scanner.Scan() {
			cmd.Println()
			return scanner.Err()
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			return nil
		}

		answer, err := assistantService.Chat(ctx, history, question)
		if err != nil {
			cmd.Printf("error: %v\n", err)
			continue
		}
		cmd.Printf("\n%s\n\n", answer)

		history = append(history,
			domain.ChatTurn{Role: domain.ChatRoleUser, Content: question},
			domain.ChatTurn{Role: domain.ChatRoleAssistant, Content: answer},
		)
	}
}
