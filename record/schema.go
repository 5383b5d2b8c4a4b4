package record

import (
	"fmt"
	"slices"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
	"github.com/eino-contrib/jsonschema"
	"github.com/tbxark/worldgen/types"
)

// Schema is a named record description.
type Schema interface {
	Name() string
	Fields() []types.FieldSpec
}

// Describer is a Schema that can turn caller parameters into a generation
// request. Schemas take different parameter types; a schema only supports a
// request when it implements Describer for the caller's P.
type Describer[P any] interface {
	Schema
	PromptDescriptor(params P) (string, error)
}

// ToolDescriber is implemented by schemas that can describe themselves as a
// tool for forced tool-calling models.
type ToolDescriber interface {
	ToolInfo() (*schema.ToolInfo, error)
}

// Validator is implemented by record types with constraints beyond field
// presence. Decoding calls it on the built record.
type Validator interface {
	Validate() error
}

// RenderFunc renders the free-text part of a generation request.
type RenderFunc[P any] func(params P) (string, error)

// Definition is an immutable Schema backed by the Go type T and taking
// parameters of type P.
type Definition[T, P any] struct {
	name        string
	description string
	fields      []types.FieldSpec
	example     T
	exampleJSON string
	render      RenderFunc[P]
}

var (
	_ Describer[string] = (*Definition[struct{ A string }, string])(nil)
	_ ToolDescriber     = (*Definition[struct{ A string }, string])(nil)
)

// Define builds a Definition. It is meant for package-level vars and panics
// when T cannot describe a record or the example does not match its fields.
func Define[T, P any](name, description string, example T, render RenderFunc[P]) *Definition[T, P] {
	def, err := NewDefinition(name, description, example, render)
	if err != nil {
		panic(err)
	}
	return def
}

// NewDefinition is Define without the panic.
func NewDefinition[T, P any](name, description string, example T, render RenderFunc[P]) (*Definition[T, P], error) {
	if render == nil {
		return nil, fmt.Errorf("record %s: render func is nil", name)
	}
	fields, err := FieldsOf[T]()
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", name, err)
	}
	exampleJSON, err := sonic.MarshalString(example)
	if err != nil {
		return nil, fmt.Errorf("record %s: marshal example: %w", name, err)
	}
	if err := checkExampleKeys(exampleJSON, fields); err != nil {
		return nil, fmt.Errorf("record %s: %w", name, err)
	}
	return &Definition[T, P]{
		name:        name,
		description: description,
		fields:      fields,
		example:     example,
		exampleJSON: exampleJSON,
		render:      render,
	}, nil
}

func (d *Definition[T, P]) Name() string {
	return d.name
}

func (d *Definition[T, P]) Description() string {
	return d.description
}

// Fields returns a copy of the declared fields in declaration order.
func (d *Definition[T, P]) Fields() []types.FieldSpec {
	return slices.Clone(d.fields)
}

// Example returns the worked example embedded in every prompt.
func (d *Definition[T, P]) Example() T {
	return d.example
}

func (d *Definition[T, P]) ExampleJSON() string {
	return d.exampleJSON
}

// PromptDescriptor renders the request for params followed by the worked
// example and the field table. It has no side effects.
func (d *Definition[T, P]) PromptDescriptor(params P) (string, error) {
	request, err := d.render(params)
	if err != nil {
		return "", fmt.Errorf("render %s prompt: %w", d.name, err)
	}
	return formatPrompt(request, d.exampleJSON, d.fields), nil
}

func (d *Definition[T, P]) JSONSchema() (string, error) {
	s := jsonschema.Reflect(new(T))
	s.Title = d.name
	s.Description = d.description
	out, err := sonic.MarshalString(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON schema: %w", err)
	}
	return out, nil
}

func (d *Definition[T, P]) ToolInfo() (*schema.ToolInfo, error) {
	info, err := utils.GoStruct2ToolInfo[T](ToolName(d.name), d.description)
	if err != nil {
		return nil, fmt.Errorf("convert tool info failed: %w", err)
	}
	return info, nil
}

// ToolName is the forced tool name used for a schema.
func ToolName(schemaName string) string {
	return "create_" + schemaName
}

func checkExampleKeys(exampleJSON string, fields []types.FieldSpec) error {
	var doc map[string]any
	if err := sonic.UnmarshalString(exampleJSON, &doc); err != nil {
		return fmt.Errorf("example is not a JSON object: %w", err)
	}
	for _, f := range fields {
		if _, ok := doc[f.Name]; !ok {
			return fmt.Errorf("example is missing field %q", f.Name)
		}
	}
	if len(doc) != len(fields) {
		return fmt.Errorf("example has %d keys, schema declares %d fields", len(doc), len(fields))
	}
	return nil
}
