package summarization

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const maxCommentsForDigest = 60
const maxPromptLength = 15000 // rough character limit for the prompt

// GenerateDigest asks OpenAI for a short management digest of recent
// feedback comments. Returns an empty string when there is nothing to
// summarize.
func GenerateDigest(ctx context.Context, client *openai.Client, comments []string) (string, error) {
	if len(comments) == 0 {
		return "", nil
	}
	if len(comments) > maxCommentsForDigest {
		comments = comments[:maxCommentsForDigest]
	}

	combined := strings.Join(comments, "\n---\n")
	if len(combined) > maxPromptLength {
		combined = combined[:maxPromptLength]
	}

	prompt := fmt.Sprintf("Summarize the following collection of airport service feedback comments. Focus on recurring complaints, recurring praise, and which services are mentioned most. Comments may be in English, Russian, or Uzbek; write the summary in English. Provide a concise summary (3-4 sentences maximum):\n\n---\n%s\n---\n\nSummary:", combined)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that summarizes customer feedback for airport service managers concisely.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   200,
			N:           1,
			Temperature: 0.5,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
