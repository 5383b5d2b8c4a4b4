// Package entity declares the game-world records worldgen can generate.
package entity

import "github.com/tbxark/worldgen/record"

// All lists every schema in this package, keyed by schema name.
func All() map[string]record.Schema {
	return map[string]record.Schema{
		Characters.Name(): Characters,
		Locations.Name():  Locations,
		Encounters.Name(): Encounters,
		Spells.Name():     Spells,
		Classes.Name():    Classes,
	}
}
