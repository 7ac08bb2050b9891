package stats_test

import (
	"errors"
	"testing"

	"github.com/ironvale/forge/internal/game/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewTable_RejectsEmpty(t *testing.T) {
	_, err := stats.NewTable(nil)
	assert.Error(t, err)
}

func TestNewTable_RejectsMinGreaterThanMax(t *testing.T) {
	_, err := stats.NewTable(map[stats.Pair]stats.RangeEntry{
		{Stat: stats.StatMaxHealth, Kind: stats.KindFlat}: {Min: 50, Max: 5},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min")
}

func TestNewTable_RejectsInvalidPrecision(t *testing.T) {
	_, err := stats.NewTable(map[stats.Pair]stats.RangeEntry{
		{Stat: stats.StatMaxHealth, Kind: stats.KindFlat}: {Min: 5, Max: 50, Precision: 9},
	})
	assert.Error(t, err)
}

func TestNewTable_RejectsMultiplierMinAtOne(t *testing.T) {
	_, err := stats.NewTable(map[stats.Pair]stats.RangeEntry{
		{Stat: stats.StatMaxHealth, Kind: stats.KindMultiplier}: {Min: 1.0, Max: 1.5, Precision: 2},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiplier")
}

func TestNewTable_RejectsPercentageOutsideFraction(t *testing.T) {
	_, err := stats.NewTable(map[stats.Pair]stats.RangeEntry{
		{Stat: stats.StatMaxHealth, Kind: stats.KindPercentageAdd}: {Min: 5, Max: 25, Precision: 4},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "percentage")
}

func TestNewTable_RejectsInvalidStat(t *testing.T) {
	_, err := stats.NewTable(map[stats.Pair]stats.RangeEntry{
		{Stat: stats.StatKind(99), Kind: stats.KindFlat}: {Min: 1, Max: 2},
	})
	assert.Error(t, err)
}

// TestNewTable_ReportsEveryViolation verifies validation accumulates instead
// of stopping at the first broken entry.
func TestNewTable_ReportsEveryViolation(t *testing.T) {
	_, err := stats.NewTable(map[stats.Pair]stats.RangeEntry{
		{Stat: stats.StatMaxHealth, Kind: stats.KindFlat}:          {Min: 50, Max: 5},
		{Stat: stats.StatAttackDamage, Kind: stats.KindMultiplier}: {Min: 0.5, Max: 2.0, Precision: 2},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min")
	assert.Contains(t, err.Error(), "multiplier")
}

// TestDefaultTable_Exhaustive walks every configured pair and checks the
// entry is internally consistent, so a bad edit to the defaults fails here
// rather than midway through a loot roll.
func TestDefaultTable_Exhaustive(t *testing.T) {
	tbl := stats.DefaultTable()
	statKinds := tbl.Stats()
	require.NotEmpty(t, statKinds)
	for _, stat := range statKinds {
		kinds, err := tbl.AllowedModifierKinds(stat)
		require.NoError(t, err)
		require.NotEmpty(t, kinds, "stat %s has no rollable kinds", stat)
		for _, kind := range kinds {
			entry, err := tbl.Range(stat, kind)
			require.NoError(t, err)
			assert.LessOrEqual(t, entry.Min, entry.Max, "pair %s/%s", stat, kind)
		}
	}
}

func TestDefaultTable_EveryStatRollable(t *testing.T) {
	tbl := stats.DefaultTable()
	assert.Equal(t, stats.AllStatKinds(), tbl.Stats())
}

func TestRange_UnconfiguredPair(t *testing.T) {
	tbl := stats.DefaultTable()
	_, err := tbl.Range(stats.StatCriticalChance, stats.KindMultiplier)
	require.Error(t, err)
	assert.True(t, errors.Is(err, stats.ErrUnconfiguredPair),
		"error must wrap ErrUnconfiguredPair, got %v", err)
}

func TestAllowedModifierKinds_DerivedFromEntries(t *testing.T) {
	tbl := stats.DefaultTable()

	kinds, err := tbl.AllowedModifierKinds(stats.StatCriticalChance)
	require.NoError(t, err)
	assert.Equal(t, []stats.ModifierKind{stats.KindFlat, stats.KindPercentageAdd}, kinds,
		"critical chance must not offer a multiplier roll")

	kinds, err = tbl.AllowedModifierKinds(stats.StatAttackDamage)
	require.NoError(t, err)
	assert.Equal(t, stats.AllModifierKinds(), kinds)
}

func TestAllowedModifierKinds_UnknownStat(t *testing.T) {
	tbl, err := stats.NewTable(map[stats.Pair]stats.RangeEntry{
		{Stat: stats.StatMaxHealth, Kind: stats.KindFlat}: {Min: 5, Max: 50},
	})
	require.NoError(t, err)
	_, err = tbl.AllowedModifierKinds(stats.StatAttackDamage)
	assert.True(t, errors.Is(err, stats.ErrUnconfiguredPair))
}

func TestStats_OmitsUnconfigured(t *testing.T) {
	tbl, err := stats.NewTable(map[stats.Pair]stats.RangeEntry{
		{Stat: stats.StatCriticalDamage, Kind: stats.KindFlat}: {Min: 0.1, Max: 0.5, Precision: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []stats.StatKind{stats.StatCriticalDamage}, tbl.Stats())
}

func TestNormalize_ClampsBelowMin(t *testing.T) {
	tbl := stats.DefaultTable()
	v, err := tbl.Normalize(stats.StatAttackDamage, stats.KindFlat, -100)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestNormalize_ClampsAboveMax(t *testing.T) {
	tbl := stats.DefaultTable()
	v, err := tbl.Normalize(stats.StatAttackDamage, stats.KindFlat, 20)
	require.NoError(t, err)
	assert.Equal(t, 15.0, v)
}

func TestNormalize_RoundsToPrecision(t *testing.T) {
	tbl := stats.DefaultTable()
	v, err := tbl.Normalize(stats.StatAttackDamage, stats.KindFlat, 9.97)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
}

// TestNormalize_WholePercentReinterpreted covers the common data-entry
// mistake of writing 25 where 0.25 was meant: values above the entry's max
// on whole-percent pairs are read as whole percentages.
func TestNormalize_WholePercentReinterpreted(t *testing.T) {
	tbl := stats.DefaultTable()

	v, err := tbl.Normalize(stats.StatAttackDamage, stats.KindPercentageAdd, 25)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)

	v, err = tbl.Normalize(stats.StatAttackDamage, stats.KindPercentageAdd, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v, "fractional input must pass through unscaled")
}

func TestNormalize_MultiplierFloor(t *testing.T) {
	tbl := stats.DefaultTable()
	for _, raw := range []float64{-2, 0, 0.5, 1.0} {
		v, err := tbl.Normalize(stats.StatAttackDamage, stats.KindMultiplier, raw)
		require.NoError(t, err)
		assert.Equal(t, 1.1, v, "raw %v must lift to the 1.1 floor", raw)
	}
}

func TestNormalize_UnconfiguredPair(t *testing.T) {
	tbl := stats.DefaultTable()
	_, err := tbl.Normalize(stats.StatCriticalChance, stats.KindMultiplier, 1.2)
	assert.True(t, errors.Is(err, stats.ErrUnconfiguredPair))
}

// TestProperty_Normalize_AlwaysInRange verifies the central postcondition:
// whatever raw value comes in, the normalized result lands inside the
// configured [Min, Max] for the pair.
func TestProperty_Normalize_AlwaysInRange(t *testing.T) {
	tbl := stats.DefaultTable()
	statKinds := tbl.Stats()
	rapid.Check(t, func(rt *rapid.T) {
		stat := statKinds[rapid.IntRange(0, len(statKinds)-1).Draw(rt, "stat")]
		kinds, err := tbl.AllowedModifierKinds(stat)
		require.NoError(rt, err)
		kind := kinds[rapid.IntRange(0, len(kinds)-1).Draw(rt, "kind")]
		raw := rapid.Float64Range(-500, 500).Draw(rt, "raw")

		v, err := tbl.Normalize(stat, kind, raw)
		require.NoError(rt, err)

		entry, err := tbl.Range(stat, kind)
		require.NoError(rt, err)
		assert.GreaterOrEqual(rt, v, entry.Min, "pair %s/%s raw %v", stat, kind, raw)
		assert.LessOrEqual(rt, v, entry.Max, "pair %s/%s raw %v", stat, kind, raw)
	})
}

// TestProperty_Normalize_Idempotent: normalizing an already-normalized value
// changes nothing, so re-validating stored modifiers is safe.
func TestProperty_Normalize_Idempotent(t *testing.T) {
	tbl := stats.DefaultTable()
	statKinds := tbl.Stats()
	rapid.Check(t, func(rt *rapid.T) {
		stat := statKinds[rapid.IntRange(0, len(statKinds)-1).Draw(rt, "stat")]
		kinds, err := tbl.AllowedModifierKinds(stat)
		require.NoError(rt, err)
		kind := kinds[rapid.IntRange(0, len(kinds)-1).Draw(rt, "kind")]
		raw := rapid.Float64Range(-500, 500).Draw(rt, "raw")

		once, err := tbl.Normalize(stat, kind, raw)
		require.NoError(rt, err)
		twice, err := tbl.Normalize(stat, kind, once)
		require.NoError(rt, err)
		assert.Equal(rt, once, twice)
	})
}
