package patch

import (
	"fmt"
	"sort"
	"strings"
)

func formatAllowedPaths(paths map[string]bool) string {
	if len(paths) == 0 {
		return "all (no restriction)"
	}
	keys := make([]string, 0, len(paths))
	for p := range paths {
		keys = append(keys, p)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, p := range keys {
		sb.WriteString("- ")
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// BuildPrompt asks for RFC6902 operations that apply instruction to the
// record in currentJSON.
func BuildPrompt(schemaName, currentJSON string, allowed map[string]bool, instruction string) string {
	sections := []string{
		fmt.Sprintf("You edit a %s for a game. Generate RFC6902 JSON Patch operations that apply the instruction below. Rules: use replace for existing fields and add for new ones; only use allowed paths; keep every other field unchanged; if nothing should change, return empty operations.", schemaName),
		fmt.Sprintf("# Current %s JSON:\n%s", schemaName, currentJSON),
		fmt.Sprintf("# Allowed paths:\n%s", formatAllowedPaths(allowed)),
		fmt.Sprintf("# Instruction:\n%s", strings.TrimSpace(instruction)),
		"Only return a single JSON object in the following format:\n```json\n{\"ops\":[{\"op\":\"replace\",\"path\":\"/name\",\"value\":\"New name\"}]}\n```",
	}
	return strings.Join(sections, "\n\n")
}
