package stats

import "math"

// EffectiveValue folds a set of modifiers into a base stat value. Kinds
// combine in a fixed order regardless of slice order:
//
//	(base + sum of flats) * (1 + sum of percentages) * product of multipliers
//
// Modifiers for other stats are ignored, so a caller can pass a weapon's
// whole collection and ask about one stat at a time.
//
// Postcondition: an empty or nil collection returns base unchanged.
func EffectiveValue(base float64, stat StatKind, mods []*Modifier) float64 {
	flatSum := 0.0
	pctSum := 0.0
	mulProd := 1.0
	for _, m := range mods {
		if m == nil || m.stat != stat {
			continue
		}
		switch m.kind {
		case KindFlat:
			flatSum += m.value
		case KindPercentageAdd:
			pctSum += m.value
		case KindMultiplier:
			mulProd *= m.value
		}
	}
	return (base + flatSum) * (1 + pctSum) * mulProd
}

// LevelScaling returns the compounding growth factor a weapon applies to its
// damage at the given level.
//
// Postcondition: returns growthRate^(level-1); level 1 and below, or a
// non-positive growth rate, scale by exactly 1.0.
func LevelScaling(level int, growthRate float64) float64 {
	if level <= 1 || growthRate <= 0 {
		return 1.0
	}
	return math.Pow(growthRate, float64(level-1))
}
