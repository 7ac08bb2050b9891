package weapon

import (
	"fmt"
	"strings"
)

// Type is the weapon archetype. The zero value is TypeSword, which doubles
// as the safe default when a content file carries an unparseable type.
type Type int

const (
	TypeSword Type = iota
	TypeAxe
	TypeBow
	TypeStaff
	TypeDagger
	TypeHammer
	typeCount
)

var typeNames = map[Type]string{
	TypeSword:  "Sword",
	TypeAxe:    "Axe",
	TypeBow:    "Bow",
	TypeStaff:  "Staff",
	TypeDagger: "Dagger",
	TypeHammer: "Hammer",
}

// String returns the display name of the weapon type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether t is one of the defined weapon types.
func (t Type) Valid() bool {
	return t >= TypeSword && t < typeCount
}

// AllTypes returns every weapon type in declaration order.
func AllTypes() []Type {
	types := make([]Type, 0, typeCount)
	for t := TypeSword; t < typeCount; t++ {
		types = append(types, t)
	}
	return types
}

// ParseType resolves a weapon type from its display name, case-insensitively.
//
// Postcondition: returns the matching type, or TypeSword and an error for
// unknown input so loader boundaries can fall back to the default.
func ParseType(s string) (Type, error) {
	needle := strings.TrimSpace(s)
	for t, name := range typeNames {
		if strings.EqualFold(needle, name) {
			return t, nil
		}
	}
	return TypeSword, fmt.Errorf("weapon: unknown type %q", s)
}

// Element is the elemental affinity of a weapon. The zero value is
// ElementNone: most weapons carry no element.
type Element int

const (
	ElementNone Element = iota
	ElementFire
	ElementIce
	ElementLightning
	ElementEarth
	elementCount
)

var elementNames = map[Element]string{
	ElementNone:      "None",
	ElementFire:      "Fire",
	ElementIce:       "Ice",
	ElementLightning: "Lightning",
	ElementEarth:     "Earth",
}

// String returns the display name of the element.
func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether e is one of the defined elements.
func (e Element) Valid() bool {
	return e >= ElementNone && e < elementCount
}

// AllElements returns every element in declaration order.
func AllElements() []Element {
	elements := make([]Element, 0, elementCount)
	for e := ElementNone; e < elementCount; e++ {
		elements = append(elements, e)
	}
	return elements
}

// ParseElement resolves an element from its display name, case-insensitively.
//
// Postcondition: returns the matching element, or ElementNone and an error
// for unknown input so loader boundaries can fall back to the default.
func ParseElement(s string) (Element, error) {
	needle := strings.TrimSpace(s)
	for e, name := range elementNames {
		if strings.EqualFold(needle, name) {
			return e, nil
		}
	}
	return ElementNone, fmt.Errorf("weapon: unknown element %q", s)
}
