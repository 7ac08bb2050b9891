// Package rarity defines the weapon rarity ladder and the per-tier
// properties the rest of the engine dispatches on. Properties live in
// tables keyed by tier rather than switch statements so a new tier fails
// the exhaustiveness check instead of silently falling into a default arm.
package rarity

import (
	"fmt"
	"strings"
)

// Tier is a weapon rarity grade. Tiers order from most to least common;
// the zero value is Common.
type Tier int

const (
	Common Tier = iota
	Uncommon
	Rare
	Epic
	Legendary
	tierCount
)

var names = map[Tier]string{
	Common:    "Common",
	Uncommon:  "Uncommon",
	Rare:      "Rare",
	Epic:      "Epic",
	Legendary: "Legendary",
}

// damageMultipliers scales a weapon's composed damage by tier.
var damageMultipliers = map[Tier]float64{
	Common:    1.0,
	Uncommon:  1.25,
	Rare:      1.5,
	Epic:      1.75,
	Legendary: 2.0,
}

// modifierRolls is how many prefix modifiers the forge rolls per tier.
var modifierRolls = map[Tier]int{
	Common:    0,
	Uncommon:  1,
	Rare:      2,
	Epic:      3,
	Legendary: 4,
}

// priceMultipliers scales a weapon's sale price by tier.
var priceMultipliers = map[Tier]int{
	Common:    1,
	Uncommon:  2,
	Rare:      3,
	Epic:      5,
	Legendary: 8,
}

// String returns the display name of the tier.
//
// Postcondition: returns "unknown" for values outside the ladder.
func (t Tier) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether t is one of the defined tiers.
func (t Tier) Valid() bool {
	return t >= Common && t < tierCount
}

// DamageMultiplier returns the tier's damage scale factor.
//
// Precondition: t must be a valid tier; panics otherwise, since an invalid
// tier this deep means a parse boundary failed to normalize its input.
func (t Tier) DamageMultiplier() float64 {
	m, ok := damageMultipliers[t]
	if !ok {
		panic(fmt.Sprintf("rarity: no damage multiplier configured for tier %d", int(t)))
	}
	return m
}

// ModifierRolls returns how many modifiers the forge rolls for this tier.
//
// Precondition: t must be a valid tier; panics otherwise.
func (t Tier) ModifierRolls() int {
	n, ok := modifierRolls[t]
	if !ok {
		panic(fmt.Sprintf("rarity: no modifier roll count configured for tier %d", int(t)))
	}
	return n
}

// PriceMultiplier returns the tier's sale price scale factor.
//
// Precondition: t must be a valid tier; panics otherwise.
func (t Tier) PriceMultiplier() int {
	m, ok := priceMultipliers[t]
	if !ok {
		panic(fmt.Sprintf("rarity: no price multiplier configured for tier %d", int(t)))
	}
	return m
}

// AllTiers returns every tier from Common through Legendary in ascending
// rarity order.
func AllTiers() []Tier {
	tiers := make([]Tier, 0, tierCount)
	for t := Common; t < tierCount; t++ {
		tiers = append(tiers, t)
	}
	return tiers
}

// Parse resolves a tier from its display name, case-insensitively. Content
// files store tiers as names, not ordinals.
//
// Postcondition: returns the matching tier, or an error naming the input.
func Parse(s string) (Tier, error) {
	needle := strings.TrimSpace(s)
	for t, name := range names {
		if strings.EqualFold(needle, name) {
			return t, nil
		}
	}
	return Common, fmt.Errorf("rarity: unknown tier %q", s)
}

// ValidateTables checks that every tier has an entry in every property
// table. Run at startup so a half-added tier is caught before any weapon
// is forged with it.
//
// Postcondition: returns nil, or an error listing every missing entry.
func ValidateTables() error {
	var missing []string
	for t := Common; t < tierCount; t++ {
		if _, ok := names[t]; !ok {
			missing = append(missing, fmt.Sprintf("names[%d]", int(t)))
		}
		if _, ok := damageMultipliers[t]; !ok {
			missing = append(missing, fmt.Sprintf("damageMultipliers[%d]", int(t)))
		}
		if _, ok := modifierRolls[t]; !ok {
			missing = append(missing, fmt.Sprintf("modifierRolls[%d]", int(t)))
		}
		if _, ok := priceMultipliers[t]; !ok {
			missing = append(missing, fmt.Sprintf("priceMultipliers[%d]", int(t)))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("rarity: property tables missing entries: %s", strings.Join(missing, ", "))
	}
	return nil
}
