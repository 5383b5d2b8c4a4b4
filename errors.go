package worldgen

import (
	"fmt"
	"strings"
)

// UnsupportedSchemaError reports a schema that cannot build a prompt from the
// caller's parameter type. No collaborator call is made.
type UnsupportedSchemaError struct {
	Schema string
	Params string
}

func (e *UnsupportedSchemaError) Error() string {
	return fmt.Sprintf("schema %s does not support prompts with %s parameters", e.Schema, e.Params)
}

// MalformedResponseError reports response text that is not a JSON object, or
// whose values do not fit the target type.
type MalformedResponseError struct {
	Schema   string
	Response string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed %s response: %v", e.Schema, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// MissingFieldError lists every required field absent from a response, in
// declaration order.
type MissingFieldError struct {
	Schema  string
	Missing []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s response is missing required fields: %s", e.Schema, strings.Join(e.Missing, ", "))
}
