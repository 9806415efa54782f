package ai

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"ai_site_builder/internal/ai/prompts"
	"ai_site_builder/internal/utils"
)

// GenerateSite wraps a user prompt in the output contract and returns the raw completion.
func (g *Generator) GenerateSite(ctx context.Context, userPrompt string) (string, error) {
	return g.Complete(ctx, prompts.FormatPrompt(userPrompt))
}

// Complete sends prompt as the sole user message and returns the completion text.
// One attempt only; retrying is left to the user.
func (g *Generator) Complete(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("%w: API key is not configured", ErrGenerationFailed)
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	log.Printf("Requesting completion from model %s (%d prompt bytes)", g.model, len(prompt))

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: g.temperature,
		},
	)
	if err != nil {
		if utils.IsTransient(err) {
			log.Printf("WARN: transient upstream failure, the user may retry: %v", err)
		}
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenAI usage for empty completion: %+v", resp.Usage)
		return "", ErrEmptyCompletion
	}

	content := resp.Choices[0].Message.Content
	log.Printf("Completion received: %d bytes", len(content))
	return content, nil
}
