package entity

import (
	"fmt"
	"strings"

	"github.com/tbxark/worldgen/record"
)

type Encounter struct {
	Name        string      `json:"name" jsonschema:"required,description=A short title for the encounter"`
	Description string      `json:"description" jsonschema:"required,description=What happens"`
	Location    string      `json:"location" jsonschema:"required,description=Name of the location it takes place in"`
	Characters  []Character `json:"characters" jsonschema:"description=Characters met during the encounter"`
}

// Validate checks the characters met during the encounter.
func (e Encounter) Validate() error {
	for i, c := range e.Characters {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("characters[%d]: %w", i, err)
		}
	}
	return nil
}

// EncounterParams places an encounter in an already generated location.
type EncounterParams struct {
	Location    Location
	Description string
}

var Encounters = record.Define("encounter",
	"An encounter that takes place in a known location.",
	Encounter{
		Name:        "The Guardian of the Glade",
		Description: guardianDescription,
		Location:    eldulia,
		Characters: []Character{{
			Name:        "Analia",
			Description: analiaDescription,
			Gender:      "Female",
			Race:        ptr("Elf"),
		}},
	},
	func(params EncounterParams) (string, error) {
		if strings.TrimSpace(params.Location.Name) == "" {
			return "", fmt.Errorf("encounter location has no name")
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "Generate a description for an encounter for a game. This takes place in %s, which is described by %s.",
			params.Location.Name, strings.TrimSpace(params.Location.Description))
		if d := strings.TrimSpace(params.Description); d != "" {
			fmt.Fprintf(&sb, "\nThe encounter should be %s.", d)
		}
		return sb.String(), nil
	},
)
