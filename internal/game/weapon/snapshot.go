package weapon

import (
	"fmt"

	"github.com/ironvale/forge/internal/game/rarity"
	"github.com/ironvale/forge/internal/game/stats"
)

// Snapshot is the persistable state of a weapon. It exposes every field a
// repository needs without opening the entity itself to mutation.
type Snapshot struct {
	ID         string
	BaseName   string
	Name       string
	Type       Type
	Tier       rarity.Tier
	Element    Element
	Attributes Attributes
	Level      int
	GrowthRate float64
	Modifiers  []*stats.Modifier
}

// Snapshot captures the weapon's current state. The modifier slice is a
// fresh copy; the entries themselves are shared.
func (w *Weapon) Snapshot() Snapshot {
	return Snapshot{
		ID:         w.id,
		BaseName:   w.baseName,
		Name:       w.name,
		Type:       w.weaponType,
		Tier:       w.tier,
		Element:    w.element,
		Attributes: w.attrs,
		Level:      w.level,
		GrowthRate: w.growthRate,
		Modifiers:  w.Modifiers(),
	}
}

// FromSnapshot rebuilds a weapon from persisted state. The display name and
// modifier values are restored verbatim: re-deriving the adjective here
// could disagree with the name the owner last saw, since stacking binds the
// adjective to the stacked-into entry rather than the newest list position.
//
// Precondition: s must come from Snapshot or an equivalent trusted source.
// Postcondition: the restored weapon passes the same validation as New.
func FromSnapshot(s Snapshot) (*Weapon, error) {
	w, err := New(s.ID, s.BaseName, s.Type, s.Tier, s.Element, s.Attributes, s.Level, s.GrowthRate)
	if err != nil {
		return nil, fmt.Errorf("restoring weapon %q: %w", s.ID, err)
	}
	if s.Name != "" {
		w.name = s.Name
	}
	for _, m := range s.Modifiers {
		if m != nil {
			w.mods = append(w.mods, m)
		}
	}
	return w, nil
}
