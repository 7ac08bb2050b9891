// Package inventory provides the arsenal: a slot- and weight-limited
// container for forged weapons with a single equipped hand.
package inventory

import (
	"errors"
	"fmt"

	"github.com/ironvale/forge/internal/game/weapon"
)

// ErrWeaponNotFound is returned when an arsenal operation names a weapon ID
// the arsenal does not hold.
var ErrWeaponNotFound = errors.New("inventory: weapon not found")

// Arsenal is a weapon container with slot and weight limits.
type Arsenal struct {
	MaxSlots  int
	MaxWeight float64
	weapons   []*weapon.Weapon
	equipped  string
}

// NewArsenal creates an Arsenal with the given limits.
//
// Precondition: maxSlots >= 0 and maxWeight >= 0.
// Postcondition: the returned Arsenal is empty with nothing equipped.
func NewArsenal(maxSlots int, maxWeight float64) *Arsenal {
	return &Arsenal{
		MaxSlots:  maxSlots,
		MaxWeight: maxWeight,
	}
}

// Add places w into the arsenal. It is atomic: if a limit would be
// exceeded or the ID is already held, no state is modified.
//
// Precondition: w must not be nil.
// Postcondition: on success Weapon(w.ID()) returns w; on error the arsenal
// is unchanged.
func (a *Arsenal) Add(w *weapon.Weapon) error {
	if _, ok := a.Weapon(w.ID()); ok {
		return fmt.Errorf("inventory: weapon %q already in arsenal", w.ID())
	}
	if len(a.weapons)+1 > a.MaxSlots {
		return fmt.Errorf("inventory: arsenal is full (%d slots)", a.MaxSlots)
	}
	added := w.Attributes().Weight
	if current := a.TotalWeight(); current+added > a.MaxWeight {
		return fmt.Errorf("inventory: adding %q would exceed weight limit (%.2f + %.2f > %.2f)",
			w.Name(), current, added, a.MaxWeight)
	}
	a.weapons = append(a.weapons, w)
	return nil
}

// Remove takes the weapon with the given ID out of the arsenal, unequipping
// it first if it is held.
//
// Postcondition: returns the removed weapon, or an error wrapping
// ErrWeaponNotFound.
func (a *Arsenal) Remove(id string) (*weapon.Weapon, error) {
	for i, w := range a.weapons {
		if w.ID() != id {
			continue
		}
		if a.equipped == id {
			a.equipped = ""
		}
		a.weapons = append(a.weapons[:i], a.weapons[i+1:]...)
		return w, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrWeaponNotFound, id)
}

// Weapon returns the held weapon with the given ID and whether it was found.
func (a *Arsenal) Weapon(id string) (*weapon.Weapon, bool) {
	for _, w := range a.weapons {
		if w.ID() == id {
			return w, true
		}
	}
	return nil, false
}

// Weapons returns a snapshot copy of the held weapons in insertion order.
//
// Postcondition: mutations of the returned slice do not affect the arsenal.
func (a *Arsenal) Weapons() []*weapon.Weapon {
	out := make([]*weapon.Weapon, len(a.weapons))
	copy(out, a.weapons)
	return out
}

// UsedSlots returns the number of occupied slots.
//
// Postcondition: result >= 0 and <= MaxSlots.
func (a *Arsenal) UsedSlots() int {
	return len(a.weapons)
}

// TotalWeight returns the summed carry weight of all held weapons.
//
// Postcondition: result >= 0.
func (a *Arsenal) TotalWeight() float64 {
	var total float64
	for _, w := range a.weapons {
		total += w.Attributes().Weight
	}
	return total
}

// TotalSellValue returns what a merchant would pay for the whole arsenal.
func (a *Arsenal) TotalSellValue() int {
	var total int
	for _, w := range a.weapons {
		total += w.SellPrice()
	}
	return total
}

// Equip readies the weapon with the given ID in the main hand.
//
// Precondition: the weapon must already be in the arsenal.
// Postcondition: Equipped() returns the weapon, or an error wrapping
// ErrWeaponNotFound and the previous hand is kept.
func (a *Arsenal) Equip(id string) error {
	if _, ok := a.Weapon(id); !ok {
		return fmt.Errorf("%w: %q", ErrWeaponNotFound, id)
	}
	a.equipped = id
	return nil
}

// Unequip empties the main hand. Unequipping an empty hand is a no-op.
func (a *Arsenal) Unequip() {
	a.equipped = ""
}

// Equipped returns the weapon in the main hand and whether one is held.
func (a *Arsenal) Equipped() (*weapon.Weapon, bool) {
	if a.equipped == "" {
		return nil, false
	}
	return a.Weapon(a.equipped)
}
