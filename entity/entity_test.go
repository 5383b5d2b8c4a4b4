package entity

import (
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbxark/worldgen/record"
	"github.com/tbxark/worldgen/types"
)

func exampleKeys(t *testing.T, prompt string) []string {
	t.Helper()
	_, rest, ok := strings.Cut(prompt, "```json\n")
	require.True(t, ok, "prompt has no JSON example:\n%s", prompt)
	example, _, ok := strings.Cut(rest, "\n```")
	require.True(t, ok, "prompt has no JSON example:\n%s", prompt)
	var doc map[string]any
	require.NoError(t, sonic.UnmarshalString(example, &doc))
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	return keys
}

func TestStringSchemasProducePrompts(t *testing.T) {
	for _, s := range []record.Describer[string]{Characters, Locations, Spells, Classes} {
		t.Run(s.Name(), func(t *testing.T) {
			prompt, err := s.PromptDescriptor("a dude with a top hat")
			require.NoError(t, err)
			assert.Contains(t, prompt, "a dude with a top hat")
			assert.ElementsMatch(t, types.FieldNames(s.Fields()), exampleKeys(t, prompt))
		})
	}
}

func TestStringSchemasRejectEmptyDescription(t *testing.T) {
	for _, s := range []record.Describer[string]{Characters, Locations, Spells, Classes} {
		_, err := s.PromptDescriptor("   ")
		assert.Error(t, err, s.Name())
	}
}

func TestEncountersCanBeBuiltOffLocations(t *testing.T) {
	location := Location{Name: eldulia, Description: elduliaDescription}

	prompt, err := Encounters.PromptDescriptor(EncounterParams{Location: location})
	require.NoError(t, err)
	assert.Contains(t, prompt, eldulia)
	assert.Contains(t, prompt, "which is described by")
	assert.ElementsMatch(t, types.FieldNames(Encounters.Fields()), exampleKeys(t, prompt))

	withHint, err := Encounters.PromptDescriptor(EncounterParams{Location: location, Description: "tense"})
	require.NoError(t, err)
	assert.Contains(t, withHint, "should be tense")

	_, err = Encounters.PromptDescriptor(EncounterParams{})
	assert.Error(t, err)
}

func TestEncountersDoNotTakeStrings(t *testing.T) {
	var s record.Schema = Encounters
	_, ok := s.(record.Describer[string])
	assert.False(t, ok)
}

func TestRequiredFields(t *testing.T) {
	cases := map[string]struct {
		schema   record.Schema
		required []string
		optional []string
	}{
		"character": {Characters, []string{"name", "description", "gender"}, []string{"race"}},
		"location":  {Locations, []string{"name", "description"}, []string{}},
		"encounter": {Encounters, []string{"name", "description", "location"}, []string{"characters"}},
		"spell":     {Spells, []string{"name", "description", "effect"}, []string{"incantation"}},
		"class":     {Classes, []string{"name", "description", "primary_ability"}, []string{"hit_die", "abilities"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			fields := tc.schema.Fields()
			assert.Equal(t, tc.required, types.RequiredNames(fields))
			assert.Equal(t, tc.optional, types.OptionalNames(fields))
		})
	}
}

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 5)
	for name, s := range all {
		assert.Equal(t, name, s.Name())
	}
}

func TestSpellEffectValid(t *testing.T) {
	assert.True(t, EffectLift.Valid())
	assert.True(t, EffectBurn.Valid())
	assert.False(t, SpellEffect("freeze").Valid())
}

func TestSpellValidate(t *testing.T) {
	assert.NoError(t, Spell{Name: "Ember", Effect: EffectBurn}.Validate())
	err := Spell{Name: "Frost", Effect: "freeze"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "freeze")
}

func TestEncounterValidateChecksCharacters(t *testing.T) {
	assert.NoError(t, Encounter{Name: "Ambush"}.Validate())
	assert.NoError(t, Encounter{Characters: []Character{{Name: "Analia", Description: "An elf queen", Gender: "Female"}}}.Validate())

	err := Encounter{Characters: []Character{
		{Name: "Analia", Description: "An elf queen", Gender: "Female"},
		{Name: "  "},
	}}.Validate()
	require.Error(t, err)
	assert.Equal(t, "characters[1]: character has blank name, description, gender", err.Error())
}

func TestExamplesValidate(t *testing.T) {
	assert.NoError(t, Characters.Example().Validate())
	assert.NoError(t, Encounters.Example().Validate())
	assert.NoError(t, Spells.Example().Validate())
}
