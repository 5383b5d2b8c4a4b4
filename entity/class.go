package entity

import (
	"fmt"
	"strings"

	"github.com/tbxark/worldgen/record"
)

type CharacterClass struct {
	Name           string   `json:"name" jsonschema:"required,description=The class name"`
	Description    string   `json:"description" jsonschema:"required,description=What members of the class do"`
	PrimaryAbility string   `json:"primary_ability" jsonschema:"required,description=The ability score the class relies on"`
	HitDie         *int     `json:"hit_die" jsonschema:"description=Sides of the hit die"`
	Abilities      []string `json:"abilities" jsonschema:"description=Signature abilities"`
}

var Classes = record.Define("character_class",
	"A playable character class.",
	CharacterClass{
		Name:           "Warden",
		Description:    wardenDescription,
		PrimaryAbility: "Wisdom",
		HitDie:         ptr(10),
		Abilities:      []string{"Beast Speech", "Trackless Step", "Thorn Volley"},
	},
	func(description string) (string, error) {
		description = strings.TrimSpace(description)
		if description == "" {
			return "", fmt.Errorf("class description is empty")
		}
		return fmt.Sprintf("Generate a character class for a game. This should be %s.", description), nil
	},
)
