package entity

import (
	"fmt"
	"strings"

	"github.com/tbxark/worldgen/record"
)

type Location struct {
	Name        string `json:"name" jsonschema:"required,description=The location's name"`
	Description string `json:"description" jsonschema:"required,description=What a traveller sees and feels there"`
}

var Locations = record.Define("location",
	"A location for a fantasy game.",
	Location{
		Name:        eldulia,
		Description: elduliaDescription,
	},
	func(description string) (string, error) {
		description = strings.TrimSpace(description)
		if description == "" {
			return "", fmt.Errorf("location description is empty")
		}
		return fmt.Sprintf("Generate a description for a location for a game. This should be %s.", description), nil
	},
)
