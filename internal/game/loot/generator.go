// Package loot rolls random prefix modifiers for forged weapons. A
// Generator owns the range table and the random source, so every roll in a
// forge session draws from one seedable sequence.
package loot

import (
	"fmt"

	"github.com/ironvale/forge/internal/game/rarity"
	"github.com/ironvale/forge/internal/game/rng"
	"github.com/ironvale/forge/internal/game/stats"
)

// Generator produces randomized modifier sets sized by rarity tier.
type Generator struct {
	table *stats.Table
	src   rng.Source
}

// NewGenerator creates a Generator rolling against tbl with src.
//
// Precondition: tbl and src must be non-nil.
func NewGenerator(tbl *stats.Table, src rng.Source) *Generator {
	return &Generator{table: tbl, src: src}
}

// Table returns the range table this generator rolls against.
func (g *Generator) Table() *stats.Table {
	return g.table
}

// Roll produces the tier's configured number of modifiers. Each roll picks
// a uniform stat from the table, a uniform kind from that stat's allowed
// set, and a uniform value inside the configured range.
//
// Postcondition: returns exactly tier.ModifierRolls() modifiers in roll
// order; Common tiers return an empty sequence. Rolled duplicates are NOT
// merged here; stacking happens when the caller applies them via Merge.
func (g *Generator) Roll(tier rarity.Tier) ([]*stats.Modifier, error) {
	count := tier.ModifierRolls()
	mods := make([]*stats.Modifier, 0, count)
	statKinds := g.table.Stats()
	for i := 0; i < count; i++ {
		stat := statKinds[g.src.Intn(len(statKinds))]
		kinds, err := g.table.AllowedModifierKinds(stat)
		if err != nil {
			return nil, fmt.Errorf("rolling modifier %d of %d: %w", i+1, count, err)
		}
		kind := kinds[g.src.Intn(len(kinds))]
		entry, err := g.table.Range(stat, kind)
		if err != nil {
			return nil, fmt.Errorf("rolling modifier %d of %d: %w", i+1, count, err)
		}
		raw := rng.FloatBetween(g.src, entry.Min, entry.Max)
		m, err := stats.NewModifier(g.table, stat, kind, raw)
		if err != nil {
			return nil, fmt.Errorf("rolling modifier %d of %d: %w", i+1, count, err)
		}
		mods = append(mods, m)
	}
	return mods, nil
}

// Merge folds a freshly rolled modifier into an existing collection. A
// modifier with the same (stat, kind) identity absorbs the new value in
// place; otherwise the roll appends. The collection therefore never holds
// two entries for one pair, and composition needs no dedup logic.
//
// Postcondition: returns the updated collection and the entry that now
// carries the rolled value, for most-recent-modifier display logic.
func Merge(mods []*stats.Modifier, rolled *stats.Modifier) ([]*stats.Modifier, *stats.Modifier) {
	for _, existing := range mods {
		if !existing.Matches(rolled) {
			continue
		}
		if err := existing.Stack(rolled); err != nil {
			panic("loot: stack failed after identity match: " + err.Error())
		}
		return mods, existing
	}
	return append(mods, rolled), rolled
}
