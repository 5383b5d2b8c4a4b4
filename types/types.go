package types

// FieldSpec describes one declared field of a record schema.
type FieldSpec struct {
	Name        string `json:"name"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// RequiredNames returns the names of required fields in declaration order.
func RequiredNames(fields []FieldSpec) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// OptionalNames returns the names of optional fields in declaration order.
func OptionalNames(fields []FieldSpec) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		if !f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// FieldNames returns every field name in declaration order.
func FieldNames(fields []FieldSpec) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}
