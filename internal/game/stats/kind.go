// Package stats provides the stat-modifier model for the Ironvale forge
// engine: stat and modifier kinds, the configured roll-range table,
// normalized prefix modifiers, and effective-value composition.
package stats

import (
	"fmt"
	"strings"
)

// StatKind identifies a combat statistic a modifier can adjust.
// The set is closed; extending it means adding range-table entries.
type StatKind int

const (
	StatMaxHealth StatKind = iota
	StatAttackDamage
	StatCriticalChance
	StatCriticalDamage

	statKindCount
)

// String returns the human-readable stat name used in prefix display strings.
//
// Postcondition: returns a non-empty name, or "unknown" for invalid values.
func (k StatKind) String() string {
	switch k {
	case StatMaxHealth:
		return "Max Health"
	case StatAttackDamage:
		return "Attack Damage"
	case StatCriticalChance:
		return "Critical Chance"
	case StatCriticalDamage:
		return "Critical Damage"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the defined stat kinds.
func (k StatKind) Valid() bool {
	return k >= 0 && k < statKindCount
}

// AllStatKinds returns every defined StatKind in declaration order.
//
// Postcondition: len(result) == number of defined stat kinds.
func AllStatKinds() []StatKind {
	out := make([]StatKind, 0, statKindCount)
	for k := StatKind(0); k < statKindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseStatKind converts a stat name (as produced by String) back into a
// StatKind. Matching is case-insensitive and ignores surrounding whitespace.
//
// Postcondition: returns a valid StatKind, or an error for unknown names.
func ParseStatKind(s string) (StatKind, error) {
	name := strings.TrimSpace(s)
	for _, k := range AllStatKinds() {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return StatKind(0), fmt.Errorf("unknown stat kind %q", s)
}

// ModifierKind identifies how a modifier value combines with a base stat.
// The zero value (KindFlat) is a valid kind.
type ModifierKind int

const (
	// KindFlat adds a constant to the base value.
	KindFlat ModifierKind = iota
	// KindPercentageAdd contributes an additive fraction, composed as 1 + sum.
	KindPercentageAdd
	// KindMultiplier contributes an independent factor, composed as a product.
	KindMultiplier

	modifierKindCount
)

// String returns the lowercase kind name.
//
// Postcondition: returns "flat", "percentage", "multiplier", or "unknown".
func (k ModifierKind) String() string {
	switch k {
	case KindFlat:
		return "flat"
	case KindPercentageAdd:
		return "percentage"
	case KindMultiplier:
		return "multiplier"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the defined modifier kinds.
func (k ModifierKind) Valid() bool {
	return k >= 0 && k < modifierKindCount
}

// AllModifierKinds returns every defined ModifierKind in composition order
// (flat, percentage, multiplier).
func AllModifierKinds() []ModifierKind {
	out := make([]ModifierKind, 0, modifierKindCount)
	for k := ModifierKind(0); k < modifierKindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseModifierKind converts a kind name (as produced by String) back into a
// ModifierKind. Matching is case-insensitive and ignores surrounding
// whitespace.
//
// Postcondition: returns a valid ModifierKind, or an error for unknown names.
func ParseModifierKind(s string) (ModifierKind, error) {
	name := strings.TrimSpace(s)
	for _, k := range AllModifierKinds() {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return ModifierKind(0), fmt.Errorf("unknown modifier kind %q", s)
}
