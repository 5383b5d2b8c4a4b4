package completion

import (
	"fmt"
	"os"
	"strings"
)

// LoadAPIKey reads an API key from a local file. Surrounding whitespace is
// trimmed and an empty file is an error.
func LoadAPIKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read api key file: %w", err)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyAPIKey)
	}
	return key, nil
}
