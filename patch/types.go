package patch

const (
	OperationAdd     = "add"
	OperationRemove  = "remove"
	OperationReplace = "replace"
)

type Operation struct {
	Op    string `json:"op" jsonschema:"required,enum=add,enum=remove,enum=replace"`
	Path  string `json:"path" jsonschema:"required,description=JSON pointer of the field to change"`
	Value any    `json:"value,omitempty"`
}

// UpdateArgs is the shape a model answers with when asked to edit a record.
type UpdateArgs struct {
	Ops []Operation `json:"ops"`
}
