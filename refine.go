package worldgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/callbacks"
	"github.com/google/uuid"
	"github.com/tbxark/worldgen/patch"
	"github.com/tbxark/worldgen/record"
)

// Refine asks the completer for JSON Patch operations that apply instruction
// to current, then decodes the patched record the same way Request does.
// current is not modified.
func Refine[T any](ctx context.Context, f *Factory, s record.Schema, current *T, instruction string) (*T, error) {
	if s == nil {
		return nil, errors.New("refine: schema is nil")
	}
	if current == nil {
		return nil, errors.New("refine: current record is nil")
	}

	ctx = callbacks.EnsureRunInfo(ctx, "Factory", "WorldGen")
	ctx = callbacks.OnStart(ctx, map[string]any{
		"schema":      s.Name(),
		"instruction": instruction,
		"current":     current,
	})

	out, err := refine(ctx, f, s, current, instruction)
	if err != nil {
		callbacks.OnError(ctx, err)
		return nil, err
	}

	callbacks.OnEnd(ctx, map[string]any{
		"schema":   s.Name(),
		"instance": out,
	})
	return out, nil
}

func refine[T any](ctx context.Context, f *Factory, s record.Schema, current *T, instruction string) (*T, error) {
	logger := f.logger.With("request_id", uuid.NewString(), "schema", s.Name())

	currentJSON, err := sonic.MarshalString(current)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal current %s: %w", s.Name(), err)
	}
	allowed := patch.AllowedPaths(s.Fields())
	prompt := patch.BuildPrompt(s.Name(), currentJSON, allowed, instruction)

	logger.Debug("Requesting patch", "prompt_length", len(prompt))
	text, err := f.completer.Complete(ctx, prompt)
	if err != nil {
		logger.Error("Completion failed", "error", err)
		return nil, err
	}

	var args patch.UpdateArgs
	if err := sonic.UnmarshalString(stripCodeFence(text), &args); err != nil {
		return nil, &MalformedResponseError{Schema: s.Name(), Response: text, Err: err}
	}
	if len(args.Ops) == 0 {
		logger.Debug("No changes requested")
		return decode[T](s, currentJSON, nil)
	}
	if err := patch.Validate(args.Ops, allowed); err != nil {
		logger.Warn("Rejected patch", "error", err)
		return nil, err
	}

	var doc map[string]any
	if err := sonic.UnmarshalString(currentJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to read current %s: %w", s.Name(), err)
	}
	patched, err := patch.Apply(doc, args.Ops)
	if err != nil {
		return nil, &MalformedResponseError{Schema: s.Name(), Response: text, Err: err}
	}
	logger.Debug("Applied patch", "ops", len(args.Ops))

	return reconcile[T](s, patched, text, f.sanitizer)
}
