package catalog

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ironvale/forge/internal/game/loot"
	"github.com/ironvale/forge/internal/game/weapon"
)

// ErrTemplateNotFound is returned when a forge request names an unknown
// template ID.
var ErrTemplateNotFound = errors.New("catalog: template not found")

// Forge turns registered templates into live weapon instances.
type Forge struct {
	registry *Registry
	gen      *loot.Generator
	logger   *zap.Logger
}

// NewForge creates a Forge drawing templates from registry and modifier
// rolls from gen.
//
// Precondition: registry, gen, and logger must be non-nil.
func NewForge(registry *Registry, gen *loot.Generator, logger *zap.Logger) *Forge {
	return &Forge{registry: registry, gen: gen, logger: logger}
}

// Commission forges an unenchanted weapon from the named template with a
// fresh instance identity.
//
// Postcondition: the returned weapon has an empty modifier collection;
// returns an error wrapping ErrTemplateNotFound for unknown IDs.
func (f *Forge) Commission(templateID string) (*weapon.Weapon, error) {
	tmpl, ok := f.registry.Template(templateID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, templateID)
	}

	typ, err := tmpl.WeaponType()
	if err != nil {
		return nil, fmt.Errorf("catalog: template %q: %w", templateID, err)
	}
	tier, err := tmpl.RarityTier()
	if err != nil {
		return nil, fmt.Errorf("catalog: template %q: %w", templateID, err)
	}
	elem, err := tmpl.WeaponElement()
	if err != nil {
		return nil, fmt.Errorf("catalog: template %q: %w", templateID, err)
	}

	w, err := weapon.New(uuid.New().String(), tmpl.Name, typ, tier, elem,
		tmpl.Attributes(), tmpl.Level, tmpl.GrowthPerLevel)
	if err != nil {
		return nil, fmt.Errorf("catalog: forging from template %q: %w", templateID, err)
	}

	f.logger.Debug("weapon commissioned",
		zap.String("weapon_id", w.ID()),
		zap.String("template_id", templateID),
		zap.String("rarity", tier.String()),
	)
	return w, nil
}

// CommissionEnchanted forges a weapon and immediately rolls its rarity's
// modifier count onto it.
//
// Postcondition: the weapon carries up to tier.ModifierRolls() distinct
// modifiers and, when any roll landed, an adjective display name.
func (f *Forge) CommissionEnchanted(templateID string) (*weapon.Weapon, error) {
	w, err := f.Commission(templateID)
	if err != nil {
		return nil, err
	}
	if err := w.Enchant(f.gen); err != nil {
		return nil, err
	}

	f.logger.Info("weapon forged",
		zap.String("weapon_id", w.ID()),
		zap.String("name", w.Name()),
		zap.String("rarity", w.Tier().String()),
		zap.Int("modifiers", len(w.Modifiers())),
		zap.Float64("effective_damage", w.EffectiveDamage()),
	)
	return w, nil
}
