package types

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
)

// FormatFieldTable renders fields as a markdown table for prompts.
func FormatFieldTable(fields []FieldSpec) string {
	if len(fields) == 0 {
		return ""
	}
	var buf strings.Builder
	table := tablewriter.NewTable(&buf, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("Field", "Required", "Description")
	for _, field := range fields {
		required := "no"
		if field.Required {
			required = "yes"
		}
		_ = table.Append(field.Name, required, field.Description)
	}
	_ = table.Render()
	return strings.TrimRight(buf.String(), "\n")
}
