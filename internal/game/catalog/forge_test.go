package catalog_test

import (
	"errors"
	"testing"

	"github.com/ironvale/forge/internal/game/catalog"
	"github.com/ironvale/forge/internal/game/loot"
	"github.com/ironvale/forge/internal/game/rng"
	"github.com/ironvale/forge/internal/game/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newForge(t *testing.T, seed int64, templates ...*catalog.Template) *catalog.Forge {
	t.Helper()
	r := catalog.NewRegistry()
	require.NoError(t, r.RegisterAll(templates))
	gen := loot.NewGenerator(stats.DefaultTable(), rng.NewSeededSource(seed))
	return catalog.NewForge(r, gen, zap.NewNop())
}

func TestForge_Commission(t *testing.T) {
	tmpl := validTemplate()
	f := newForge(t, 1, tmpl)

	w, err := f.Commission(tmpl.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, w.ID())
	assert.Equal(t, "Iron Sword", w.Name())
	assert.Empty(t, w.Modifiers(), "a commissioned weapon starts unenchanted")
	assert.Equal(t, tmpl.Damage, w.Attributes().Damage)
	assert.Equal(t, tmpl.Level, w.Level())
}

func TestForge_Commission_FreshIdentityPerInstance(t *testing.T) {
	tmpl := validTemplate()
	f := newForge(t, 1, tmpl)

	a, err := f.Commission(tmpl.ID)
	require.NoError(t, err)
	b, err := f.Commission(tmpl.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID(), "each commission mints a new instance identity")
}

func TestForge_Commission_UnknownTemplate(t *testing.T) {
	f := newForge(t, 1, validTemplate())
	_, err := f.Commission("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrTemplateNotFound),
		"error must wrap ErrTemplateNotFound, got %v", err)
}

func TestForge_CommissionEnchanted_RollsByRarity(t *testing.T) {
	tmpl := validTemplate()
	tmpl.ID = "wl_kingmaker"
	tmpl.Rarity = "Legendary"
	f := newForge(t, 7, tmpl)

	w, err := f.CommissionEnchanted(tmpl.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, w.Modifiers())
	assert.LessOrEqual(t, len(w.Modifiers()), 4)
	assert.NotEqual(t, w.BaseName(), w.Name(), "a legendary weapon always earns an adjective")
}

func TestForge_CommissionEnchanted_CommonStaysPlain(t *testing.T) {
	tmpl := validTemplate()
	f := newForge(t, 7, tmpl)

	w, err := f.CommissionEnchanted(tmpl.ID)
	require.NoError(t, err)
	assert.Empty(t, w.Modifiers())
	assert.Equal(t, "Iron Sword", w.Name())
}

// TestForge_CommissionEnchanted_SeedDeterministic: the same seed must
// reproduce the same rolls even though instance IDs differ.
func TestForge_CommissionEnchanted_SeedDeterministic(t *testing.T) {
	build := func() *catalog.Forge {
		tmpl := validTemplate()
		tmpl.ID = "wl_kingmaker"
		tmpl.Rarity = "Legendary"
		return newForge(t, 42, tmpl)
	}

	a, err := build().CommissionEnchanted("wl_kingmaker")
	require.NoError(t, err)
	b, err := build().CommissionEnchanted("wl_kingmaker")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, a.Name(), b.Name())
	assert.Equal(t, a.EffectiveDamage(), b.EffectiveDamage())
	require.Len(t, b.Modifiers(), len(a.Modifiers()))
	for i, m := range a.Modifiers() {
		assert.Equal(t, m.String(), b.Modifiers()[i].String())
	}
}
