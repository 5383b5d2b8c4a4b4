package worldgen

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/tbxark/worldgen/record"
	"github.com/tbxark/worldgen/types"
)

var codeFence = regexp.MustCompile("^```[a-zA-Z]*\\s*([\\s\\S]*?)\\s*```$")

// Decode turns response text into an instance of T using the field
// declarations of s. Required fields must be present; absent optional fields
// are left empty and keys s does not declare are ignored.
func Decode[T any](s record.Schema, text string) (*T, error) {
	return decode[T](s, text, nil)
}

func decode[T any](s record.Schema, text string, sanitizer Sanitizer) (*T, error) {
	raw, err := parseObject(text)
	if err != nil {
		return nil, &MalformedResponseError{Schema: s.Name(), Response: text, Err: err}
	}
	return reconcile[T](s, raw, text, sanitizer)
}

func reconcile[T any](s record.Schema, raw map[string]any, text string, sanitizer Sanitizer) (*T, error) {
	fields := s.Fields()

	var missing []string
	for _, name := range types.RequiredNames(fields) {
		if _, ok := raw[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldError{Schema: s.Name(), Missing: missing}
	}

	merged := make(map[string]any, len(fields))
	for _, name := range types.FieldNames(fields) {
		if value, ok := raw[name]; ok {
			if sanitizer != nil {
				value = sanitizeValue(value, sanitizer)
			}
			merged[name] = value
		}
	}
	for _, name := range types.OptionalNames(fields) {
		if _, ok := merged[name]; !ok {
			merged[name] = nil
		}
	}

	data, err := sonic.Marshal(merged)
	if err != nil {
		return nil, &MalformedResponseError{Schema: s.Name(), Response: text, Err: err}
	}
	var out T
	if err := sonic.Unmarshal(data, &out); err != nil {
		return nil, &MalformedResponseError{
			Schema:   s.Name(),
			Response: text,
			Err:      fmt.Errorf("build %s: %w", s.Name(), err),
		}
	}
	if v, ok := any(&out).(record.Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, &MalformedResponseError{Schema: s.Name(), Response: text, Err: err}
		}
	}
	return &out, nil
}

func parseObject(text string) (map[string]any, error) {
	body := stripCodeFence(text)
	if body == "" {
		return nil, errors.New("empty response")
	}
	if body[0] != '{' {
		return nil, errors.New("response is not a JSON object")
	}
	var raw map[string]any
	if err := sonic.UnmarshalString(body, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("response is not a JSON object")
	}
	return raw, nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if m := codeFence.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}

func sanitizeValue(v any, sanitizer Sanitizer) any {
	switch val := v.(type) {
	case string:
		return sanitizer.Sanitize(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = sanitizeValue(item, sanitizer)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = sanitizeValue(item, sanitizer)
		}
		return out
	default:
		return v
	}
}
