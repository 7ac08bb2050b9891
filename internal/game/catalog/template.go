// Package catalog provides weapon template definitions, the content loaders
// that produce them, and the forge that turns templates into live weapons.
package catalog

import (
	"errors"
	"fmt"

	"github.com/ironvale/forge/internal/game/rarity"
	"github.com/ironvale/forge/internal/game/weapon"
)

// Template defines a forgeable weapon archetype loaded from content files.
// Enum-valued fields hold display names ("Sword", "Legendary", "Fire") and
// are parsed when the template is validated or forged.
type Template struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	Type           string  `yaml:"type"`
	Rarity         string  `yaml:"rarity"`
	Damage         float64 `yaml:"damage"`
	Reach          float64 `yaml:"reach"`
	Weight         float64 `yaml:"weight"`
	CriticalChance float64 `yaml:"critical_chance"`
	CriticalDamage float64 `yaml:"critical_damage"`
	AttackSpeed    float64 `yaml:"attack_speed"`
	Element        string  `yaml:"element"`
	GrowthPerLevel float64 `yaml:"growth_per_level"`
	Level          int     `yaml:"level"`
}

// WeaponType parses the template's type field.
func (t *Template) WeaponType() (weapon.Type, error) {
	return weapon.ParseType(t.Type)
}

// RarityTier parses the template's rarity field.
func (t *Template) RarityTier() (rarity.Tier, error) {
	return rarity.Parse(t.Rarity)
}

// WeaponElement parses the template's element field.
func (t *Template) WeaponElement() (weapon.Element, error) {
	return weapon.ParseElement(t.Element)
}

// Attributes assembles the base combat attributes for forging.
func (t *Template) Attributes() weapon.Attributes {
	return weapon.Attributes{
		Damage:         t.Damage,
		CriticalChance: t.CriticalChance,
		CriticalDamage: t.CriticalDamage,
		AttackSpeed:    t.AttackSpeed,
		Reach:          t.Reach,
		Weight:         t.Weight,
	}
}

// Validate checks that the Template satisfies its invariants. Loaders run
// this before a template reaches the registry, so the forge never sees
// garbage.
//
// Precondition: t is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (t *Template) Validate() error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if t.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if _, err := t.WeaponType(); err != nil {
		errs = append(errs, err)
	}
	if _, err := t.RarityTier(); err != nil {
		errs = append(errs, err)
	}
	if _, err := t.WeaponElement(); err != nil {
		errs = append(errs, err)
	}
	if t.Damage < 0 {
		errs = append(errs, errors.New("Damage must be >= 0"))
	}
	if t.Reach < 0 {
		errs = append(errs, errors.New("Reach must be >= 0"))
	}
	if t.Weight < 0 {
		errs = append(errs, errors.New("Weight must be >= 0"))
	}
	if t.CriticalChance < 0 || t.CriticalChance > 1 {
		errs = append(errs, fmt.Errorf("CriticalChance must be a fraction in [0, 1], got %v", t.CriticalChance))
	}
	if t.CriticalDamage < 0 {
		errs = append(errs, errors.New("CriticalDamage must be >= 0"))
	}
	if t.AttackSpeed < 0 {
		errs = append(errs, errors.New("AttackSpeed must be >= 0"))
	}
	if t.GrowthPerLevel < 0 {
		errs = append(errs, errors.New("GrowthPerLevel must be >= 0"))
	}
	if t.Level < 1 {
		errs = append(errs, errors.New("Level must be >= 1"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("template validation failed: %v", errs)
	}
	return nil
}

// applyDefaults fills the fields content files may omit: level 1 and one
// attack per second.
func (t *Template) applyDefaults() {
	if t.Level == 0 {
		t.Level = 1
	}
	if t.AttackSpeed == 0 {
		t.AttackSpeed = 1.0
	}
}
