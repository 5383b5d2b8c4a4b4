package entity

import (
	"fmt"
	"strings"

	"github.com/tbxark/worldgen/record"
)

type Character struct {
	Name        string  `json:"name" jsonschema:"required,description=The character's name"`
	Description string  `json:"description" jsonschema:"required,description=Appearance and personality"`
	Gender      string  `json:"gender" jsonschema:"required,description=The character's gender"`
	Race        *string `json:"race" jsonschema:"description=Elf or dwarf or human and so on"`
}

// Validate rejects characters with a blank name, description or gender.
func (c Character) Validate() error {
	var blank []string
	if strings.TrimSpace(c.Name) == "" {
		blank = append(blank, "name")
	}
	if strings.TrimSpace(c.Description) == "" {
		blank = append(blank, "description")
	}
	if strings.TrimSpace(c.Gender) == "" {
		blank = append(blank, "gender")
	}
	if len(blank) > 0 {
		return fmt.Errorf("character has blank %s", strings.Join(blank, ", "))
	}
	return nil
}

// Characters takes a free-text description of the wanted character.
var Characters = record.Define("character",
	"A character for a fantasy game.",
	Character{
		Name:        "Analia",
		Description: analiaDescription,
		Gender:      "Female",
		Race:        ptr("Elf"),
	},
	func(description string) (string, error) {
		description = strings.TrimSpace(description)
		if description == "" {
			return "", fmt.Errorf("character description is empty")
		}
		return fmt.Sprintf("Generate a description for a character for a game. This should be %s.\n\nInclude a character sheet in JSON format.", description), nil
	},
)
