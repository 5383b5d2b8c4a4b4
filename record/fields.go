package record

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/tbxark/worldgen/types"
)

// FieldsOf derives field specs from the exported fields of struct T.
//
// The JSON key comes from the json tag. A field is required only when its
// jsonschema tag carries the "required" token; everything else is optional
// and should be declared as a pointer so that "absent" decodes to nil.
// Untagged embedded structs are flattened the way encoding/json does.
func FieldsOf[T any]() ([]types.FieldSpec, error) {
	typ := indirectType(reflect.TypeOf((*T)(nil)).Elem())
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct, got %s", typ.Kind())
	}

	var fields []types.FieldSpec
	if err := collectFields(typ, &fields, make(map[string]bool), make(map[reflect.Type]bool)); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%s declares no fields", typ.Name())
	}
	return fields, nil
}

func collectFields(typ reflect.Type, fields *[]types.FieldSpec, seen map[string]bool, visiting map[reflect.Type]bool) error {
	if visiting[typ] {
		return nil
	}
	visiting[typ] = true
	defer delete(visiting, typ)

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Anonymous && jsonTagName(field) == "" {
			if ft := indirectType(field.Type); ft.Kind() == reflect.Struct {
				if err := collectFields(ft, fields, seen, visiting); err != nil {
					return err
				}
				continue
			}
		}
		if !field.IsExported() {
			continue
		}
		name := jsonFieldName(field)
		if name == "" || name == "-" {
			continue
		}
		if seen[name] {
			return fmt.Errorf("duplicate field name %q", name)
		}
		seen[name] = true
		required, description := parseSchemaTag(field.Tag.Get("jsonschema"))
		*fields = append(*fields, types.FieldSpec{
			Name:        name,
			Required:    required,
			Description: description,
		})
	}
	return nil
}

func indirectType(typ reflect.Type) reflect.Type {
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	return typ
}

func jsonTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	return name
}

func jsonFieldName(field reflect.StructField) string {
	if name := jsonTagName(field); name != "" {
		return name
	}
	return field.Name
}

func parseSchemaTag(tag string) (required bool, description string) {
	if tag == "" {
		return false, ""
	}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "required":
			required = true
		case strings.HasPrefix(part, "description="):
			description = strings.TrimPrefix(part, "description=")
		}
	}
	return required, description
}
