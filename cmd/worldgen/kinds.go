package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/tbxark/worldgen"
	"github.com/tbxark/worldgen/entity"
	"github.com/tbxark/worldgen/record"
)

type request struct {
	description  string
	locationFile string
}

type kind struct {
	schema   record.Schema
	generate func(ctx context.Context, f *worldgen.Factory, r request) (any, error)
	refine   func(ctx context.Context, f *worldgen.Factory, current, instruction string) (any, error)
}

type jsonSchemer interface {
	JSONSchema() (string, error)
}

func (k kind) jsonSchema() (string, error) {
	js, ok := k.schema.(jsonSchemer)
	if !ok {
		return "", fmt.Errorf("%s has no JSON schema", k.schema.Name())
	}
	return js.JSONSchema()
}

var kinds = map[string]kind{
	"character": newKind[entity.Character](entity.Characters, describe),
	"location":  newKind[entity.Location](entity.Locations, describe),
	"encounter": newKind[entity.Encounter](entity.Encounters, encounterParams),
	"spell":     newKind[entity.Spell](entity.Spells, describe),
	"class":     newKind[entity.CharacterClass](entity.Classes, describe),
}

func newKind[T, P any](s record.Schema, params func(request) (P, error)) kind {
	return kind{
		schema: s,
		generate: func(ctx context.Context, f *worldgen.Factory, r request) (any, error) {
			p, err := params(r)
			if err != nil {
				return nil, err
			}
			out, err := worldgen.Request[T](ctx, f, s, p)
			if err != nil {
				return nil, err
			}
			return out, nil
		},
		refine: func(ctx context.Context, f *worldgen.Factory, current, instruction string) (any, error) {
			cur, err := worldgen.Decode[T](s, current)
			if err != nil {
				return nil, fmt.Errorf("read current %s: %w", s.Name(), err)
			}
			out, err := worldgen.Refine(ctx, f, s, cur, instruction)
			if err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}

// lookupKind accepts a CLI kind name or a schema name.
func lookupKind(name string) (kind, bool) {
	if k, ok := kinds[name]; ok {
		return k, true
	}
	s, ok := entity.All()[name]
	if !ok {
		return kind{}, false
	}
	for _, k := range kinds {
		if k.schema == s {
			return k, true
		}
	}
	return kind{}, false
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func describe(r request) (string, error) {
	return r.description, nil
}

func encounterParams(r request) (entity.EncounterParams, error) {
	if r.locationFile == "" {
		return entity.EncounterParams{}, fmt.Errorf("an encounter needs -location")
	}
	data, err := os.ReadFile(r.locationFile)
	if err != nil {
		return entity.EncounterParams{}, err
	}
	loc, err := worldgen.Decode[entity.Location](entity.Locations, string(data))
	if err != nil {
		return entity.EncounterParams{}, fmt.Errorf("read location: %w", err)
	}
	return entity.EncounterParams{Location: *loc, Description: r.description}, nil
}
