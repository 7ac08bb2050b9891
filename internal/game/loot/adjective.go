package loot

import "github.com/ironvale/forge/internal/game/stats"

// adjectives maps a modifier identity to the name prefix a weapon earns
// when that pair is the most recent roll. Pairs without an entry fall back
// to FallbackAdjective, so the table only needs the evocative ones.
var adjectives = map[stats.Pair]string{
	{Stat: stats.StatAttackDamage, Kind: stats.KindMultiplier}:    "Deadly",
	{Stat: stats.StatAttackDamage, Kind: stats.KindPercentageAdd}: "Jagged",
	{Stat: stats.StatAttackDamage, Kind: stats.KindFlat}:          "Sharp",
	{Stat: stats.StatMaxHealth, Kind: stats.KindMultiplier}:       "Immortal",
	{Stat: stats.StatMaxHealth, Kind: stats.KindFlat}:             "Stalwart",
	{Stat: stats.StatCriticalDamage, Kind: stats.KindMultiplier}:  "Merciless",
}

// FallbackAdjective names weapons whose dominant modifier has no mapped
// adjective.
const FallbackAdjective = "Enchanted"

// Adjective returns the display adjective for the given modifier identity.
// Cosmetic only: the result is deterministic and never affects numbers.
//
// Postcondition: never returns an empty string.
func Adjective(p stats.Pair) string {
	if adj, ok := adjectives[p]; ok {
		return adj
	}
	return FallbackAdjective
}
