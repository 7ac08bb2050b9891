package stats

import (
	"fmt"
	"strconv"
)

// Modifier is a single prefix stat: an immutable (stat, kind) identity with
// a numeric value normalized against the range table at construction. The
// value stays mutable so duplicate rolls can stack into an existing entry.
//
// Invariant: percentage values are fractions (0.0-1.0); scaling by 100
// happens only in String.
type Modifier struct {
	stat  StatKind
	kind  ModifierKind
	value float64
}

// NewModifier builds a Modifier whose value is normalized by t's rule for
// (stat, kind). Centralizing normalization here means no caller can inject a
// mis-scaled value, such as a percentage stored as 25 instead of 0.25.
//
// Postcondition: the returned modifier's value lies within the configured
// range; returns an error wrapping ErrUnconfiguredPair when the pair has no
// table entry.
func NewModifier(t *Table, stat StatKind, kind ModifierKind, raw float64) (*Modifier, error) {
	v, err := t.Normalize(stat, kind, raw)
	if err != nil {
		return nil, fmt.Errorf("constructing modifier: %w", err)
	}
	return &Modifier{stat: stat, kind: kind, value: v}, nil
}

// RestoreModifier rebuilds a Modifier from persisted state, taking the value
// verbatim. Stacked values can legitimately exceed a single roll's configured
// range, so normalizing here would corrupt saved weapons.
//
// Precondition: value must originate from modifiers that were normalized at
// construction.
func RestoreModifier(stat StatKind, kind ModifierKind, value float64) (*Modifier, error) {
	if !stat.Valid() {
		return nil, fmt.Errorf("restoring modifier: invalid stat kind %d", stat)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("restoring modifier: invalid modifier kind %d", kind)
	}
	return &Modifier{stat: stat, kind: kind, value: value}, nil
}

// Stat returns the stat this modifier adjusts.
func (m *Modifier) Stat() StatKind { return m.stat }

// Kind returns how this modifier combines with the base value.
func (m *Modifier) Kind() ModifierKind { return m.kind }

// Value returns the normalized numeric value.
func (m *Modifier) Value() float64 { return m.value }

// Matches reports whether m and other share the same (stat, kind) identity.
func (m *Modifier) Matches(other *Modifier) bool {
	return other != nil && m.stat == other.stat && m.kind == other.kind
}

// Stack merges other's value into m, the duplicate-roll stacking rule: the
// collection owner keeps one entry per (stat, kind) pair and grows it in
// place instead of appending.
//
// Precondition: other must match m's (stat, kind) identity.
// Postcondition: m.Value() increased by other.Value(), or an error and no
// mutation when the identities differ.
func (m *Modifier) Stack(other *Modifier) error {
	if !m.Matches(other) {
		return fmt.Errorf("stats: cannot stack %s onto %s", Pair{other.stat, other.kind}, Pair{m.stat, m.kind})
	}
	m.value += other.value
	return nil
}

// String renders the prefix display form:
//
//	flat        "+12 Attack Damage"
//	percentage  "+25% Attack Damage"
//	multiplier  "1.5x Attack Damage"
//
// Postcondition: returns a non-empty string for every valid kind.
func (m *Modifier) String() string {
	switch m.kind {
	case KindPercentageAdd:
		return fmt.Sprintf("+%s%% %s", formatValue(roundTo(m.value*100, 2)), m.stat)
	case KindMultiplier:
		return fmt.Sprintf("%sx %s", formatValue(m.value), m.stat)
	default:
		return fmt.Sprintf("+%s %s", formatValue(m.value), m.stat)
	}
}

// formatValue prints v with the fewest digits that round-trip.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
