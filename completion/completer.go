// Package completion holds the collaborators that turn a prompt into
// response text. The factory depends only on Completer.
package completion

import (
	"context"
	"errors"

	"github.com/tbxark/worldgen/record"
)

var (
	ErrEmptyAPIKey   = errors.New("completion: api key is empty")
	ErrEmptyResponse = errors.New("completion: model returned no content")
)

// Completer turns a prompt into response text with a single blocking call.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// SchemaCompleter is implemented by completers that can use the target
// schema, e.g. to force a tool call shaped like the record.
type SchemaCompleter interface {
	Completer
	CompleteSchema(ctx context.Context, s record.Schema, prompt string) (string, error)
}

// Func adapts a plain function to Completer.
type Func func(ctx context.Context, prompt string) (string, error)

func (f Func) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
