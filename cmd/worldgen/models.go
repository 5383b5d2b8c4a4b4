package main

import (
	"context"

	"github.com/cloudwego/eino/components/model"
	"github.com/tbxark/worldgen/completion"
	"github.com/tbxark/worldgen/config"
)

type models struct {
	completer completion.Completer
	chat      model.BaseChatModel
}

func newModels(ctx context.Context, conf *config.Config) (*models, error) {
	apiKey, err := conf.APIKeyValue()
	if err != nil {
		return nil, err
	}

	if conf.Provider == config.ProviderGemini {
		gc, err := completion.NewGeminiCompleter(ctx, apiKey, conf.Model)
		if err != nil {
			return nil, err
		}
		return &models{completer: gc}, nil
	}

	cm, err := completion.NewOpenAIChatModel(ctx, completion.OpenAIConfig{
		APIKey:  apiKey,
		BaseURL: conf.BaseURL,
		Model:   conf.Model,
	})
	if err != nil {
		return nil, err
	}
	m := &models{chat: cm}
	if conf.Mode == config.ModeTool {
		m.completer = completion.NewToolCompleter(cm)
	} else {
		m.completer = completion.NewChatCompleter(cm)
	}
	return m, nil
}
