// Package worldgen asks a completion model for game-world records and checks
// the answers against the record's declared fields.
package worldgen

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/cloudwego/eino/callbacks"
	"github.com/google/uuid"
	"github.com/tbxark/worldgen/completion"
	"github.com/tbxark/worldgen/record"
)

// Factory turns schemas and parameters into validated records. It keeps no
// state between requests and is safe for concurrent use when its completer is.
type Factory struct {
	completer completion.Completer
	logger    *slog.Logger
	sanitizer Sanitizer
}

func NewFactory(completer completion.Completer, opts ...Option) (*Factory, error) {
	if completer == nil {
		return nil, fmt.Errorf("completer is required")
	}
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &Factory{
		completer: completer,
		logger:    o.logger,
		sanitizer: o.sanitizer,
	}, nil
}

// Request builds the prompt for params, asks the completer once and decodes
// the answer into T.
func Request[T, P any](ctx context.Context, f *Factory, s record.Schema, params P) (*T, error) {
	describer, ok := s.(record.Describer[P])
	if !ok {
		return nil, &UnsupportedSchemaError{Schema: schemaName(s), Params: reflect.TypeFor[P]().String()}
	}

	ctx = callbacks.EnsureRunInfo(ctx, "Factory", "WorldGen")
	ctx = callbacks.OnStart(ctx, map[string]any{
		"schema": s.Name(),
		"params": params,
	})

	logger := f.logger.With("request_id", uuid.NewString(), "schema", s.Name())

	prompt, err := describer.PromptDescriptor(params)
	if err != nil {
		callbacks.OnError(ctx, err)
		return nil, err
	}

	logger.Debug("Requesting record", "prompt_length", len(prompt))
	text, err := f.complete(ctx, s, prompt)
	if err != nil {
		logger.Error("Completion failed", "error", err)
		callbacks.OnError(ctx, err)
		return nil, err
	}
	logger.Debug("Received completion", "response_length", len(text))

	out, err := decode[T](s, text, f.sanitizer)
	if err != nil {
		logger.Warn("Rejected completion", "error", err)
		callbacks.OnError(ctx, err)
		return nil, err
	}

	callbacks.OnEnd(ctx, map[string]any{
		"schema":   s.Name(),
		"instance": out,
	})
	return out, nil
}

func (f *Factory) complete(ctx context.Context, s record.Schema, prompt string) (string, error) {
	if sc, ok := f.completer.(completion.SchemaCompleter); ok {
		return sc.CompleteSchema(ctx, s, prompt)
	}
	return f.completer.Complete(ctx, prompt)
}

func schemaName(s record.Schema) string {
	if s == nil {
		return "<nil>"
	}
	return s.Name()
}
