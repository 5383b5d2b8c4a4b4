package record

import (
	"fmt"
	"strings"

	"github.com/tbxark/worldgen/types"
)

func formatPrompt(request, exampleJSON string, fields []types.FieldSpec) string {
	sections := []string{
		strings.TrimSpace(request),
		fmt.Sprintf("Only return answers as a single JSON object in the following format:\n```json\n%s\n```", exampleJSON),
	}
	if table := types.FormatFieldTable(fields); table != "" {
		sections = append(sections, "# Fields:\n"+table)
	}
	return strings.Join(sections, "\n\n")
}
