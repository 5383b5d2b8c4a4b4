package completion

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ChatCompleter sends the prompt as a single user message.
type ChatCompleter struct {
	chatModel model.BaseChatModel
	opts      []model.Option
}

var _ Completer = (*ChatCompleter)(nil)

func NewChatCompleter(chatModel model.BaseChatModel, opts ...model.Option) *ChatCompleter {
	return &ChatCompleter{
		chatModel: chatModel,
		opts:      opts,
	}
}

func (c *ChatCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	response, err := c.chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)}, c.opts...)
	if err != nil {
		return "", err
	}
	if response == nil {
		return "", ErrEmptyResponse
	}
	return response.Content, nil
}

type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature *float32
}

// NewOpenAIChatModel builds an OpenAI compatible chat model. The key is
// passed in by the caller; nothing here reads credentials.
func NewOpenAIChatModel(ctx context.Context, conf OpenAIConfig) (*openai.ChatModel, error) {
	if conf.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}
	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      conf.APIKey,
		Model:       conf.Model,
		BaseURL:     conf.BaseURL,
		Temperature: conf.Temperature,
	})
}
