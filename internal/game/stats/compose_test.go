package stats_test

import (
	"math"
	"testing"

	"github.com/ironvale/forge/internal/game/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// wideTable allows larger rolls than the shipped defaults so composition
// tests can use round numbers without tripping the clamp.
func wideTable(t testing.TB) *stats.Table {
	t.Helper()
	tbl, err := stats.NewTable(map[stats.Pair]stats.RangeEntry{
		{Stat: stats.StatAttackDamage, Kind: stats.KindFlat}:          {Min: 0, Max: 100, Precision: 2},
		{Stat: stats.StatAttackDamage, Kind: stats.KindPercentageAdd}: {Min: 0.01, Max: 1.0, Precision: 4},
		{Stat: stats.StatAttackDamage, Kind: stats.KindMultiplier}:    {Min: 1.01, Max: 3.0, Precision: 2},
		{Stat: stats.StatMaxHealth, Kind: stats.KindFlat}:             {Min: 0, Max: 100, Precision: 0},
	})
	require.NoError(t, err)
	return tbl
}

// TestEffectiveValue_Identity verifies the identity law: composing zero
// modifiers returns the base unchanged.
func TestEffectiveValue_Identity(t *testing.T) {
	assert.Equal(t, 100.0, stats.EffectiveValue(100, stats.StatAttackDamage, nil))
	assert.Equal(t, 100.0, stats.EffectiveValue(100, stats.StatAttackDamage, []*stats.Modifier{}))
	assert.Equal(t, 0.0, stats.EffectiveValue(0, stats.StatMaxHealth, nil))
}

func TestEffectiveValue_SkipsNilEntries(t *testing.T) {
	assert.Equal(t, 100.0, stats.EffectiveValue(100, stats.StatAttackDamage, []*stats.Modifier{nil}))
}

// TestEffectiveValue_AllThreeKinds pins the canonical worked example:
// (100 + 20) * (1 + 0.25) * 1.5 = 225.
func TestEffectiveValue_AllThreeKinds(t *testing.T) {
	tbl := wideTable(t)
	mods := []*stats.Modifier{
		mustModifier(t, tbl, stats.StatAttackDamage, stats.KindFlat, 20),
		mustModifier(t, tbl, stats.StatAttackDamage, stats.KindPercentageAdd, 0.25),
		mustModifier(t, tbl, stats.StatAttackDamage, stats.KindMultiplier, 1.5),
	}
	assert.Equal(t, 225.0, stats.EffectiveValue(100, stats.StatAttackDamage, mods))
}

func TestEffectiveValue_IgnoresOtherStats(t *testing.T) {
	tbl := wideTable(t)
	mods := []*stats.Modifier{
		mustModifier(t, tbl, stats.StatMaxHealth, stats.KindFlat, 50),
	}
	assert.Equal(t, 10.0, stats.EffectiveValue(10, stats.StatAttackDamage, mods),
		"modifiers for other stats must not leak into the composition")
}

func TestEffectiveValue_StackedEqualsSeparate(t *testing.T) {
	tbl := wideTable(t)

	separate := []*stats.Modifier{
		mustModifier(t, tbl, stats.StatAttackDamage, stats.KindFlat, 5),
		mustModifier(t, tbl, stats.StatAttackDamage, stats.KindFlat, 7),
	}
	stacked := mustModifier(t, tbl, stats.StatAttackDamage, stats.KindFlat, 5)
	require.NoError(t, stacked.Stack(mustModifier(t, tbl, stats.StatAttackDamage, stats.KindFlat, 7)))

	assert.Equal(t,
		stats.EffectiveValue(100, stats.StatAttackDamage, separate),
		stats.EffectiveValue(100, stats.StatAttackDamage, []*stats.Modifier{stacked}),
		"stacking two flats must compose identically to holding them apart")
}

// TestProperty_EffectiveValue_OrderIndependent: the composition folds by
// kind, so shuffling the slice cannot change the result beyond float noise.
func TestProperty_EffectiveValue_OrderIndependent(t *testing.T) {
	tbl := wideTable(t)
	rapid.Check(t, func(rt *rapid.T) {
		var mods []*stats.Modifier
		n := rapid.IntRange(0, 6).Draw(rt, "count")
		for i := 0; i < n; i++ {
			switch rapid.IntRange(0, 2).Draw(rt, "kind") {
			case 0:
				raw := rapid.Float64Range(0, 100).Draw(rt, "flat")
				mods = append(mods, mustModifier(rt, tbl, stats.StatAttackDamage, stats.KindFlat, raw))
			case 1:
				raw := rapid.Float64Range(0.01, 1.0).Draw(rt, "pct")
				mods = append(mods, mustModifier(rt, tbl, stats.StatAttackDamage, stats.KindPercentageAdd, raw))
			default:
				raw := rapid.Float64Range(1.01, 3.0).Draw(rt, "mult")
				mods = append(mods, mustModifier(rt, tbl, stats.StatAttackDamage, stats.KindMultiplier, raw))
			}
		}
		reversed := make([]*stats.Modifier, len(mods))
		for i, m := range mods {
			reversed[len(mods)-1-i] = m
		}

		base := rapid.Float64Range(0, 1000).Draw(rt, "base")
		forward := stats.EffectiveValue(base, stats.StatAttackDamage, mods)
		backward := stats.EffectiveValue(base, stats.StatAttackDamage, reversed)
		assert.InDelta(rt, forward, backward, 1e-9)
	})
}

func TestLevelScaling_LevelFloor(t *testing.T) {
	assert.Equal(t, 1.0, stats.LevelScaling(1, 1.5))
	assert.Equal(t, 1.0, stats.LevelScaling(0, 1.5))
	assert.Equal(t, 1.0, stats.LevelScaling(-3, 1.5))
}

func TestLevelScaling_NonPositiveRate(t *testing.T) {
	assert.Equal(t, 1.0, stats.LevelScaling(10, 0))
	assert.Equal(t, 1.0, stats.LevelScaling(10, -1.1))
}

func TestLevelScaling_Compounds(t *testing.T) {
	assert.Equal(t, 1.5, stats.LevelScaling(2, 1.5))
	assert.Equal(t, 4.0, stats.LevelScaling(3, 2.0))
	assert.InEpsilon(t, math.Pow(1.1, 49), stats.LevelScaling(50, 1.1), 1e-12)
}

// TestProperty_LevelScaling_Recurrence: each level multiplies the previous
// factor by the growth rate.
func TestProperty_LevelScaling_Recurrence(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(1, 40).Draw(rt, "level")
		rate := rapid.Float64Range(0.1, 2.0).Draw(rt, "rate")
		assert.InEpsilon(rt, rate*stats.LevelScaling(level, rate), stats.LevelScaling(level+1, rate), 1e-9)
	})
}
