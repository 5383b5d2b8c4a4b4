package worldgen

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbxark/worldgen/completion"
	"github.com/tbxark/worldgen/config"
	"github.com/tbxark/worldgen/entity"
)

func newLiveFactory(t *testing.T) *Factory {
	t.Helper()
	if os.Getenv("WORLDGEN_RUN_LIVE_TESTS") != "1" {
		t.Skip("set WORLDGEN_RUN_LIVE_TESTS=1 to run live LLM tests")
	}

	ctx := context.Background()
	conf, err := config.Load(os.Getenv("WORLDGEN_CONFIG"))
	if err != nil {
		t.Skipf("failed to load config: %v", err)
	}
	apiKey, err := conf.APIKeyValue()
	if err != nil {
		t.Skipf("no api key: %v", err)
	}

	var c completion.Completer
	switch conf.Provider {
	case config.ProviderGemini:
		c, err = completion.NewGeminiCompleter(ctx, apiKey, conf.Model)
	default:
		cm, cErr := completion.NewOpenAIChatModel(ctx, completion.OpenAIConfig{
			APIKey:  apiKey,
			BaseURL: conf.BaseURL,
			Model:   conf.Model,
		})
		if cErr != nil {
			t.Fatalf("failed to init chat model: %v", cErr)
		}
		if conf.Mode == config.ModeTool {
			c = completion.NewToolCompleter(cm)
		} else {
			c = completion.NewChatCompleter(cm)
		}
	}
	require.NoError(t, err)
	f, err := NewFactory(c)
	require.NoError(t, err)
	return f
}

func TestLiveLocationThenEncounter(t *testing.T) {
	f := newLiveFactory(t)
	ctx := context.Background()

	loc, err := Request[entity.Location](ctx, f, entity.Locations, "a flooded dwarven mine")
	require.NoError(t, err)
	assert.NotEmpty(t, loc.Name)
	t.Logf("location: %+v", loc)

	enc, err := Request[entity.Encounter](ctx, f, entity.Encounters, entity.EncounterParams{Location: *loc})
	require.NoError(t, err)
	assert.NotEmpty(t, enc.Description)
	t.Logf("encounter: %+v", enc)
}

func TestLiveSpell(t *testing.T) {
	f := newLiveFactory(t)
	spell, err := Request[entity.Spell](context.Background(), f, entity.Spells, "a spell that sets a target alight")
	require.NoError(t, err)
	t.Logf("spell: %+v", spell)
	assert.True(t, spell.Effect.Valid(), "effect %q", spell.Effect)
}
