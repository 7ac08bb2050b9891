// Package weapon provides the forged weapon entity: base combat attributes,
// rarity, level, element, and the rolled modifier collection, with all
// derived values recomputed on demand so no stale cache can survive a
// level-up or a fresh roll.
package weapon

import (
	"errors"
	"fmt"
	"math"

	"github.com/ironvale/forge/internal/game/loot"
	"github.com/ironvale/forge/internal/game/rarity"
	"github.com/ironvale/forge/internal/game/rng"
	"github.com/ironvale/forge/internal/game/stats"
)

// sellPriceRate is the fraction of the sale price a merchant pays back.
const sellPriceRate = 0.15

// Attributes holds a weapon's base combat numbers before any modifier,
// rarity, or level scaling applies.
type Attributes struct {
	// Damage is the base damage per hit.
	Damage float64
	// CriticalChance is the base crit probability as a fraction (0-1).
	CriticalChance float64
	// CriticalDamage is the base crit damage multiplier.
	CriticalDamage float64
	// AttackSpeed is attacks per second.
	AttackSpeed float64
	// Reach is the attack range in meters.
	Reach float64
	// Weight is the carry weight in kilograms.
	Weight float64
}

// Weapon is a forged weapon instance. Identity, type, rarity, and element
// are fixed at construction; level and the modifier collection mutate
// through explicit operations only.
type Weapon struct {
	id         string
	baseName   string
	name       string
	weaponType Type
	tier       rarity.Tier
	element    Element

	attrs      Attributes
	level      int
	growthRate float64

	mods []*stats.Modifier
}

// New constructs a weapon with an empty modifier collection.
//
// Precondition: id and name must be non-empty; weaponType, tier, and
// element must be valid.
// Postcondition: negative attributes are lifted to zero and level to 1, so
// a constructed weapon always prices and rolls damage without panicking.
func New(id, name string, weaponType Type, tier rarity.Tier, element Element, attrs Attributes, level int, growthRate float64) (*Weapon, error) {
	var errs []error
	if id == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if !weaponType.Valid() {
		errs = append(errs, fmt.Errorf("invalid weapon type %d", int(weaponType)))
	}
	if !tier.Valid() {
		errs = append(errs, fmt.Errorf("invalid rarity tier %d", int(tier)))
	}
	if !element.Valid() {
		errs = append(errs, fmt.Errorf("invalid element %d", int(element)))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("weapon validation failed: %v", errs)
	}

	attrs.Damage = math.Max(attrs.Damage, 0)
	attrs.CriticalChance = math.Max(attrs.CriticalChance, 0)
	attrs.CriticalDamage = math.Max(attrs.CriticalDamage, 0)
	attrs.AttackSpeed = math.Max(attrs.AttackSpeed, 0)
	attrs.Reach = math.Max(attrs.Reach, 0)
	attrs.Weight = math.Max(attrs.Weight, 0)
	if level < 1 {
		level = 1
	}

	return &Weapon{
		id:         id,
		baseName:   name,
		name:       name,
		weaponType: weaponType,
		tier:       tier,
		element:    element,
		attrs:      attrs,
		level:      level,
		growthRate: growthRate,
	}, nil
}

// ID returns the weapon's identity.
func (w *Weapon) ID() string { return w.id }

// Name returns the current display name, including any earned adjective.
func (w *Weapon) Name() string { return w.name }

// BaseName returns the name the weapon was forged with, without adjectives.
func (w *Weapon) BaseName() string { return w.baseName }

// Type returns the weapon archetype.
func (w *Weapon) Type() Type { return w.weaponType }

// Tier returns the rarity tier.
func (w *Weapon) Tier() rarity.Tier { return w.tier }

// Element returns the elemental affinity.
func (w *Weapon) Element() Element { return w.element }

// Attributes returns a copy of the base combat attributes.
func (w *Weapon) Attributes() Attributes { return w.attrs }

// Level returns the current weapon level.
func (w *Weapon) Level() int { return w.level }

// GrowthRate returns the per-level damage growth rate.
func (w *Weapon) GrowthRate() float64 { return w.growthRate }

// Modifiers returns a copy of the modifier collection in insertion order.
// The entries themselves are shared; use AddModifier to mutate them.
func (w *Weapon) Modifiers() []*stats.Modifier {
	out := make([]*stats.Modifier, len(w.mods))
	copy(out, w.mods)
	return out
}

// AddModifier folds m into the weapon's collection, stacking into an
// existing same-pair entry when present, and renames the weapon after the
// entry that received the value.
//
// Postcondition: the collection holds at most one entry per (stat, kind)
// pair; Name() carries the adjective of the most recent modifier.
func (w *Weapon) AddModifier(m *stats.Modifier) {
	if m == nil {
		return
	}
	var entry *stats.Modifier
	w.mods, entry = loot.Merge(w.mods, m)
	adjective := loot.Adjective(stats.Pair{Stat: entry.Stat(), Kind: entry.Kind()})
	w.name = adjective + " " + w.baseName
}

// Enchant rolls the tier's modifier count from g and applies each roll via
// AddModifier. Rolling and applying in one call keeps a whole forge session
// on one deterministic draw sequence.
//
// Postcondition: Common weapons come back unchanged; higher tiers gain up
// to ModifierRolls() distinct modifier entries and an adjective name.
func (w *Weapon) Enchant(g *loot.Generator) error {
	rolled, err := g.Roll(w.tier)
	if err != nil {
		return fmt.Errorf("enchanting weapon %s: %w", w.id, err)
	}
	for _, m := range rolled {
		w.AddModifier(m)
	}
	return nil
}

// SetLevel raises or lowers the weapon's level.
//
// Postcondition: Level() >= 1; derived values reflect the new level
// immediately since nothing is cached.
func (w *Weapon) SetLevel(level int) {
	if level < 1 {
		level = 1
	}
	w.level = level
}

// EffectiveDamage composes base damage with attack modifiers, then scales
// by rarity and level growth.
func (w *Weapon) EffectiveDamage() float64 {
	composed := stats.EffectiveValue(w.attrs.Damage, stats.StatAttackDamage, w.mods)
	return composed * w.tier.DamageMultiplier() * stats.LevelScaling(w.level, w.growthRate)
}

// EffectiveCriticalChance composes the base crit chance with modifiers.
// Rarity and level scaling deliberately do not apply to chances.
func (w *Weapon) EffectiveCriticalChance() float64 {
	return stats.EffectiveValue(w.attrs.CriticalChance, stats.StatCriticalChance, w.mods)
}

// EffectiveCriticalDamage composes the base crit damage multiplier with
// modifiers. No rarity or level scaling applies.
func (w *Weapon) EffectiveCriticalDamage() float64 {
	return stats.EffectiveValue(w.attrs.CriticalDamage, stats.StatCriticalDamage, w.mods)
}

// EffectiveMaxHealth composes a wielder's base health with the weapon's
// health modifiers, for equipment screens that preview the equipped total.
func (w *Weapon) EffectiveMaxHealth(base float64) float64 {
	return stats.EffectiveValue(base, stats.StatMaxHealth, w.mods)
}

// SalePrice is what a merchant charges for the weapon:
// floor(effectiveDamage*10 + weight*5) scaled by the tier's price multiplier.
func (w *Weapon) SalePrice() int {
	base := math.Floor(w.EffectiveDamage()*10 + w.attrs.Weight*5)
	return int(base) * w.tier.PriceMultiplier()
}

// SellPrice is what a merchant pays the owner: floor(salePrice * 0.15).
func (w *Weapon) SellPrice() int {
	return int(math.Floor(float64(w.SalePrice()) * sellPriceRate))
}

// RollDamage samples one hit: a uniform integer in
// [floor(effectiveDamage*0.8), floor(effectiveDamage*1.2)], multiplied by
// the effective crit damage when the crit chance lands.
//
// Postcondition: reports the final damage and whether the hit crit. The
// crit check always draws from src, so the draw sequence length is fixed
// for a given weapon regardless of outcome.
func (w *Weapon) RollDamage(src rng.Source) (int, bool) {
	eff := w.EffectiveDamage()
	low := int(math.Floor(eff * 0.8))
	high := int(math.Floor(eff * 1.2))
	dmg := rng.IntBetween(src, low, high)
	crit := src.Float64() < w.EffectiveCriticalChance()
	if crit {
		dmg = int(float64(dmg) * w.EffectiveCriticalDamage())
	}
	return dmg, crit
}

// CloneAtLevel produces an independent weapon sharing every immutable
// attribute, set to the given level, with an empty modifier collection.
// Prefixes intentionally do not transfer: the copy starts unenchanted and
// its display name resets to the base name.
func (w *Weapon) CloneAtLevel(level int) *Weapon {
	if level < 1 {
		level = 1
	}
	return &Weapon{
		id:         w.id,
		baseName:   w.baseName,
		name:       w.baseName,
		weaponType: w.weaponType,
		tier:       w.tier,
		element:    w.element,
		attrs:      w.attrs,
		level:      level,
		growthRate: w.growthRate,
	}
}
