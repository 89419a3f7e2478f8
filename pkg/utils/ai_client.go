package utils

import "context"

// CompletionClientInterface is the single abstraction over the chat-completion
// providers. Prompts constrain the output format; callers validate it.
type CompletionClientInterface interface {
	Complete(ctx context.Context, system string, user string) (string, error)
}
