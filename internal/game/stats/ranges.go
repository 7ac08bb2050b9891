package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnconfiguredPair is returned when a (stat, modifier) pair has no entry
// in the range table. A correctly populated table means this never fires for
// gameplay input; seeing it indicates a configuration bug.
var ErrUnconfiguredPair = errors.New("stats: no range configured for stat/modifier pair")

// Pair keys a range-table entry by the (stat, modifier kind) it governs.
type Pair struct {
	Stat StatKind
	Kind ModifierKind
}

// String returns "<stat>/<kind>" for error messages and logs.
func (p Pair) String() string {
	return fmt.Sprintf("%s/%s", p.Stat, p.Kind)
}

// RangeEntry holds the inclusive roll bounds and normalization data for one
// pair. Normalization is pure data dispatched by Table.Normalize; entries
// never carry behavior.
type RangeEntry struct {
	// Min and Max are the inclusive bounds every normalized value lands in.
	Min float64
	Max float64
	// Precision is the number of decimal places kept after normalization.
	Precision int
	// WholePercent marks percentage entries that accept legacy whole-number
	// input: a raw value above Max is reinterpreted as value/100 first.
	WholePercent bool
}

// Table is the static roll-range configuration covering every (stat, kind)
// pair that can be rolled or constructed. Immutable after NewTable.
type Table struct {
	entries map[Pair]RangeEntry
	stats   []StatKind
	allowed map[StatKind][]ModifierKind
}

// NewTable builds a Table from the given entries after validating them.
//
// Precondition: entries must be non-empty.
// Postcondition: returns a Table whose Stats and AllowedModifierKinds
// iterate in declaration order, or an error describing all violations.
func NewTable(entries map[Pair]RangeEntry) (*Table, error) {
	if len(entries) == 0 {
		return nil, errors.New("stats: range table must have at least one entry")
	}

	var errs []error
	for pair, e := range entries {
		if !pair.Stat.Valid() || !pair.Kind.Valid() {
			errs = append(errs, fmt.Errorf("pair %s: invalid stat or modifier kind", pair))
			continue
		}
		if e.Min > e.Max {
			errs = append(errs, fmt.Errorf("pair %s: min (%v) must be <= max (%v)", pair, e.Min, e.Max))
		}
		if e.Precision < 0 || e.Precision > 8 {
			errs = append(errs, fmt.Errorf("pair %s: precision must be 0-8, got %d", pair, e.Precision))
		}
		switch pair.Kind {
		case KindMultiplier:
			if e.Min <= 1.0 {
				errs = append(errs, fmt.Errorf("pair %s: multiplier min must be > 1.0, got %v", pair, e.Min))
			}
		case KindPercentageAdd:
			if e.Min <= 0 || e.Max > 1.0 {
				errs = append(errs, fmt.Errorf("pair %s: percentage bounds must be in (0, 1.0], got [%v, %v]", pair, e.Min, e.Max))
			}
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("stats: range table validation failed: %v", errs)
	}

	t := &Table{
		entries: make(map[Pair]RangeEntry, len(entries)),
		allowed: make(map[StatKind][]ModifierKind),
	}
	for pair, e := range entries {
		t.entries[pair] = e
	}
	for _, stat := range AllStatKinds() {
		var kinds []ModifierKind
		for _, kind := range AllModifierKinds() {
			if _, ok := t.entries[Pair{Stat: stat, Kind: kind}]; ok {
				kinds = append(kinds, kind)
			}
		}
		if len(kinds) > 0 {
			t.stats = append(t.stats, stat)
			t.allowed[stat] = kinds
		}
	}
	return t, nil
}

// defaultEntries is the built-in roll configuration. CriticalChance has no
// Multiplier entry: chances only move additively, so the pair stays
// unconfigured and unrollable.
var defaultEntries = map[Pair]RangeEntry{
	{StatMaxHealth, KindFlat}:          {Min: 5, Max: 50, Precision: 0},
	{StatMaxHealth, KindPercentageAdd}: {Min: 0.05, Max: 0.25, Precision: 4, WholePercent: true},
	{StatMaxHealth, KindMultiplier}:    {Min: 1.1, Max: 1.5, Precision: 2},

	{StatAttackDamage, KindFlat}:          {Min: 1, Max: 15, Precision: 1},
	{StatAttackDamage, KindPercentageAdd}: {Min: 0.05, Max: 0.5, Precision: 4, WholePercent: true},
	{StatAttackDamage, KindMultiplier}:    {Min: 1.1, Max: 2.0, Precision: 2},

	{StatCriticalChance, KindFlat}:          {Min: 0.01, Max: 0.1, Precision: 4},
	{StatCriticalChance, KindPercentageAdd}: {Min: 0.05, Max: 0.25, Precision: 4, WholePercent: true},

	{StatCriticalDamage, KindFlat}:          {Min: 0.1, Max: 0.5, Precision: 2},
	{StatCriticalDamage, KindPercentageAdd}: {Min: 0.05, Max: 0.3, Precision: 4, WholePercent: true},
	{StatCriticalDamage, KindMultiplier}:    {Min: 1.1, Max: 1.5, Precision: 2},
}

// DefaultTable returns the built-in roll-range configuration.
//
// Postcondition: never returns nil; panics only if defaultEntries is broken,
// which the table exhaustiveness tests guard against.
func DefaultTable() *Table {
	t, err := NewTable(defaultEntries)
	if err != nil {
		panic("stats: default range table invalid: " + err.Error())
	}
	return t
}

// Range returns the configured entry for the pair.
//
// Postcondition: returns the entry, or an error wrapping ErrUnconfiguredPair
// when the pair is absent.
func (t *Table) Range(stat StatKind, kind ModifierKind) (RangeEntry, error) {
	e, ok := t.entries[Pair{Stat: stat, Kind: kind}]
	if !ok {
		return RangeEntry{}, fmt.Errorf("%w: %s", ErrUnconfiguredPair, Pair{Stat: stat, Kind: kind})
	}
	return e, nil
}

// AllowedModifierKinds returns the modifier kinds configured for stat, in
// composition order. The set is derived from table entries, never hardcoded.
//
// Postcondition: returns a non-empty slice, or an error wrapping
// ErrUnconfiguredPair when the stat has no entries at all.
func (t *Table) AllowedModifierKinds(stat StatKind) ([]ModifierKind, error) {
	kinds, ok := t.allowed[stat]
	if !ok {
		return nil, fmt.Errorf("%w: stat %s has no configured kinds", ErrUnconfiguredPair, stat)
	}
	out := make([]ModifierKind, len(kinds))
	copy(out, kinds)
	return out, nil
}

// Stats returns every stat with at least one configured pair, in declaration
// order. Loot rolls pick uniformly from this slice, so the order is stable.
func (t *Table) Stats() []StatKind {
	out := make([]StatKind, len(t.stats))
	copy(out, t.stats)
	return out
}

// Normalize maps a raw value into the configured range for (stat, kind):
// whole-number percentages are reinterpreted as fractions, multipliers at or
// below 1.0 are lifted to the 1.1 floor, and the result is clamped into
// [Min, Max] and rounded to the entry's precision. Clamping keeps loot
// generation total; out-of-range input is never rejected.
//
// Postcondition: on success the result lies within [entry.Min, entry.Max];
// returns an error wrapping ErrUnconfiguredPair when the pair is absent.
func (t *Table) Normalize(stat StatKind, kind ModifierKind, raw float64) (float64, error) {
	e, err := t.Range(stat, kind)
	if err != nil {
		return 0, err
	}

	v := raw
	if kind == KindPercentageAdd && e.WholePercent && v > e.Max {
		v /= 100
	}
	if kind == KindMultiplier && v <= 1.0 {
		v = 1.1
	}
	v = clamp(v, e.Min, e.Max)
	v = roundTo(v, e.Precision)
	return clamp(v, e.Min, e.Max), nil
}

// clamp restricts v to the inclusive range [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
