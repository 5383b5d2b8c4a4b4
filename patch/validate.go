package patch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tbxark/worldgen/types"
)

var ErrPathNotAllowed = errors.New("path is not in the allowed paths set")

// AllowedPaths returns the JSON pointers of a record's top-level fields and
// of anything nested below them.
func AllowedPaths(fields []types.FieldSpec) map[string]bool {
	allowed := make(map[string]bool, len(fields)*2)
	for _, f := range fields {
		p := "/" + escapeToken(f.Name)
		allowed[p] = true
		allowed[p+"/*"] = true
	}
	return allowed
}

func Validate(ops []Operation, allowedPaths map[string]bool) error {
	for i, op := range ops {
		switch op.Op {
		case OperationAdd, OperationRemove, OperationReplace:
		default:
			return fmt.Errorf("operation %d: unsupported op %q", i, op.Op)
		}
		if err := validatePathAllowed(op.Path, allowedPaths); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return nil
}

func validatePathAllowed(path string, allowedPaths map[string]bool) error {
	if len(allowedPaths) == 0 {
		return nil
	}
	if allowedPaths[path] {
		return nil
	}
	if isPathMatchedByWildcard(path, allowedPaths) {
		return nil
	}
	return fmt.Errorf("%q: %w", path, ErrPathNotAllowed)
}

func isPathMatchedByWildcard(path string, allowedPaths map[string]bool) bool {
	segments := strings.Split(path, "/")
	return matchWildcardRecursive(segments, 0, allowedPaths, false)
}

// matchWildcardRecursive tries "-" and "*" in place of every segment after the
// leading empty one. "/a/*" therefore matches "/a/0" but not "/a/0/b".
func matchWildcardRecursive(segments []string, index int, allowedPaths map[string]bool, hasWildcard bool) bool {
	if index >= len(segments) {
		if !hasWildcard {
			return false
		}
		pattern := strings.Join(segments, "/")
		return allowedPaths[pattern]
	}

	if index == 0 {
		return matchWildcardRecursive(segments, index+1, allowedPaths, hasWildcard)
	}

	original := segments[index]

	segments[index] = "-"
	if matchWildcardRecursive(segments, index+1, allowedPaths, true) {
		segments[index] = original
		return true
	}

	segments[index] = "*"
	if matchWildcardRecursive(segments, index+1, allowedPaths, true) {
		segments[index] = original
		return true
	}

	segments[index] = original
	return matchWildcardRecursive(segments, index+1, allowedPaths, hasWildcard)
}

func escapeToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}
