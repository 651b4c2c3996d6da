package domain

// ChatTurn is one message in a session-scoped conversation.
// Chat history lives only in memory for the life of a session; it is
// never written to the workspace aggregate.
type ChatTurn struct {
	// Role is "user" or "assistant".
	Role string

	// Content is the message text.
	Content string
}

// Chat roles.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)
