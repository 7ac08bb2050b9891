// Package render formats forge entities as plain console text for the CLI
// and any other text frontend.
package render

import (
	"fmt"
	"strings"

	"github.com/ironvale/forge/internal/game/inventory"
	"github.com/ironvale/forge/internal/game/weapon"
)

// WeaponLine formats a one-line weapon summary for list views.
//
// Postcondition: single line, no trailing newline.
func WeaponLine(w *weapon.Weapon) string {
	return fmt.Sprintf("%s - %s %s, lvl %d, dmg %.1f",
		w.Name(), w.Tier(), w.Type(), w.Level(), w.EffectiveDamage())
}

// WeaponSheet formats a full weapon detail sheet. Percentages scale by 100
// here and nowhere deeper; all stored values stay fractions.
func WeaponSheet(w *weapon.Weapon) string {
	var b strings.Builder

	b.WriteString(w.Name())
	b.WriteString("\n")

	if w.Element() != weapon.ElementNone {
		fmt.Fprintf(&b, "  %s %s %s, level %d\n", w.Tier(), w.Element(), w.Type(), w.Level())
	} else {
		fmt.Fprintf(&b, "  %s %s, level %d\n", w.Tier(), w.Type(), w.Level())
	}

	attrs := w.Attributes()
	fmt.Fprintf(&b, "  Damage: %.1f   Crit: %.1f%% for %.2fx\n",
		w.EffectiveDamage(), w.EffectiveCriticalChance()*100, w.EffectiveCriticalDamage())
	fmt.Fprintf(&b, "  Speed: %.1f/s   Reach: %.1fm   Weight: %.1fkg\n",
		attrs.AttackSpeed, attrs.Reach, attrs.Weight)

	if mods := w.Modifiers(); len(mods) > 0 {
		b.WriteString("  Modifiers:\n")
		for _, m := range mods {
			fmt.Fprintf(&b, "    %s\n", m)
		}
	}

	fmt.Fprintf(&b, "  Price: %dg   Sell: %dg\n", w.SalePrice(), w.SellPrice())
	return b.String()
}

// ArsenalSheet formats an arsenal listing. The equipped weapon is marked
// with an asterisk.
func ArsenalSheet(a *inventory.Arsenal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Arsenal (%d/%d slots, %.1f/%.1f kg)\n",
		a.UsedSlots(), a.MaxSlots, a.TotalWeight(), a.MaxWeight)

	weapons := a.Weapons()
	if len(weapons) == 0 {
		b.WriteString("  (empty)\n")
		return b.String()
	}

	equippedID := ""
	if held, ok := a.Equipped(); ok {
		equippedID = held.ID()
	}
	for _, w := range weapons {
		marker := " "
		if w.ID() == equippedID {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s\n", marker, WeaponLine(w))
	}
	return b.String()
}
