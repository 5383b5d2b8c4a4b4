package completion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/tbxark/worldgen/record"
)

// ToolCompleter forces the model to call a tool whose parameters mirror the
// target schema and returns the call arguments as the response text.
type ToolCompleter struct {
	chatModel model.ToolCallingChatModel
	plain     *ChatCompleter
}

var _ SchemaCompleter = (*ToolCompleter)(nil)

func NewToolCompleter(chatModel model.ToolCallingChatModel) *ToolCompleter {
	return &ToolCompleter{
		chatModel: chatModel,
		plain:     NewChatCompleter(chatModel),
	}
}

func (c *ToolCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return c.plain.Complete(ctx, prompt)
}

func (c *ToolCompleter) CompleteSchema(ctx context.Context, s record.Schema, prompt string) (string, error) {
	describer, ok := s.(record.ToolDescriber)
	if !ok {
		return c.plain.Complete(ctx, prompt)
	}
	info, err := describer.ToolInfo()
	if err != nil {
		return "", err
	}

	systemPrompt := fmt.Sprintf("You generate content for a game. Call %s with the generated %s.", info.Name, s.Name())
	response, err := c.chatModel.Generate(ctx,
		[]*schema.Message{
			schema.SystemMessage(systemPrompt),
			schema.UserMessage(prompt),
		},
		model.WithTools([]*schema.ToolInfo{info}),
		model.WithToolChoice(schema.ToolChoiceForced, info.Name),
	)
	if err != nil {
		return "", err
	}
	if response == nil {
		return "", ErrEmptyResponse
	}
	if len(response.ToolCalls) == 0 {
		// Some providers ignore forced tool choice and answer inline.
		slog.Warn("No ToolCall found in model response", "tool", info.Name)
		return response.Content, nil
	}
	return response.ToolCalls[0].Function.Arguments, nil
}
