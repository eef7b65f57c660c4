package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
	provider  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return newOpenAIClient("openai", model, option.WithAPIKey(apiKey))
}

// NewGeminiClient talks to Gemini through its OpenAI-compatible endpoint.
func NewGeminiClient(apiKey, model string) *OpenAIClient {
	return newOpenAIClient("gemini", model, option.WithAPIKey(apiKey), option.WithBaseURL(geminiBaseURL))
}

func newOpenAIClient(provider, model string, opts ...option.RequestOption) *OpenAIClient {
	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModel(model),
		modelName: model,
		provider:  provider,
	}
}

func (c *OpenAIClient) ModelName() string {
	return c.modelName
}

func (c *OpenAIClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(prompt))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: messages,
	})

	if err != nil {
		return "", fmt.Errorf("%s API error: %w", c.provider, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", c.provider)
	}

	return resp.Choices[0].Message.Content, nil
}
