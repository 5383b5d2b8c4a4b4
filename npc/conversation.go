// Package npc keeps an in-character chat with a non-player character.
package npc

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const DefaultPersona = "You are Hamish the sentient skeleton, you're generally relatively grumpy and are short with people who try to interrupt your patrol. Keep your response terse"

const defaultTemperature float32 = 0.3

var ErrEmptyReply = errors.New("npc: model returned no reply")

// Conversation is one NPC's memory of a chat. History lives in memory only.
type Conversation struct {
	mu          sync.Mutex
	chatModel   model.BaseChatModel
	history     []*schema.Message
	trimmer     Trimmer
	temperature float32
	persona     string
}

type Option func(*Conversation)

func WithPersona(persona string) Option {
	return func(c *Conversation) {
		c.persona = persona
	}
}

func WithTrimmer(t Trimmer) Option {
	return func(c *Conversation) {
		c.trimmer = t
	}
}

func WithTemperature(temperature float32) Option {
	return func(c *Conversation) {
		c.temperature = temperature
	}
}

func NewConversation(chatModel model.BaseChatModel, opts ...Option) (*Conversation, error) {
	if chatModel == nil {
		return nil, errors.New("npc: chat model is required")
	}
	c := &Conversation{
		chatModel:   chatModel,
		trimmer:     KeepSystemLastNTrimmer{N: 50},
		temperature: defaultTemperature,
		persona:     DefaultPersona,
	}
	for _, opt := range opts {
		opt(c)
	}
	if p := strings.TrimSpace(c.persona); p != "" {
		c.history = []*schema.Message{schema.SystemMessage(p)}
	}
	return c, nil
}

// Say sends one line to the NPC and returns its reply. A failed call leaves
// the history as it was.
func (c *Conversation) Say(ctx context.Context, text string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending := appendHistory(slices.Clone(c.history), schema.UserMessage(text))
	pending = c.trim(pending)

	slog.Debug("NPC turn", "messages", len(pending))
	resp, err := c.chatModel.Generate(ctx, pending, model.WithTemperature(c.temperature))
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", ErrEmptyReply
	}

	c.history = c.trim(appendHistory(pending, schema.AssistantMessage(resp.Content, nil)))
	return resp.Content, nil
}

// History returns a copy of the messages the next turn would send.
func (c *Conversation) History() []*schema.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.history)
}

func (c *Conversation) trim(history []*schema.Message) []*schema.Message {
	if c.trimmer == nil {
		return history
	}
	return c.trimmer.Trim(history)
}
