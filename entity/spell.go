package entity

import (
	"fmt"
	"strings"

	"github.com/tbxark/worldgen/record"
)

type SpellEffect string

const (
	EffectLift SpellEffect = "lift"
	EffectBurn SpellEffect = "burn"
)

func (e SpellEffect) Valid() bool {
	return e == EffectLift || e == EffectBurn
}

type Spell struct {
	Name        string      `json:"name" jsonschema:"required,description=The spell's name"`
	Description string      `json:"description" jsonschema:"required,description=What casting it looks like"`
	Effect      SpellEffect `json:"effect" jsonschema:"required,enum=lift,enum=burn,description=The effect the spell applies"`
	Incantation *string     `json:"incantation" jsonschema:"description=Words spoken while casting"`
}

func (s Spell) Validate() error {
	if !s.Effect.Valid() {
		return fmt.Errorf("spell effect %q is not one of %s, %s", s.Effect, EffectLift, EffectBurn)
	}
	return nil
}

var Spells = record.Define("spell",
	"A spell with a single effect.",
	Spell{
		Name:        "Ember Seed",
		Description: emberDescription,
		Effect:      EffectBurn,
		Incantation: ptr("Ignis semen"),
	},
	func(description string) (string, error) {
		description = strings.TrimSpace(description)
		if description == "" {
			return "", fmt.Errorf("spell description is empty")
		}
		return fmt.Sprintf("Generate a spell for a game. This should be %s.\nThe effect must be one of: %s, %s.",
			description, EffectLift, EffectBurn), nil
	},
)
