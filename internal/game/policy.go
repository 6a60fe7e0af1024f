package game

import rand "math/rand/v2"

// StandPolicy decides whether the dealer stands on a given score. The rng
// is the game's rng; deterministic policies ignore it.
type StandPolicy func(score int, rng *rand.Rand) bool

// StandOnSeventeen is the fixed house rule: stand on 17 or better, hit
// anything lower. This is the default.
func StandOnSeventeen(score int, _ *rand.Rand) bool {
	return score >= 17
}

// LegacyRandomized flips a coin in the 15-16 band instead of applying a
// fixed threshold. Opt-in via dealer_policy = "legacy".
func LegacyRandomized(score int, rng *rand.Rand) bool {
	switch {
	case score >= 17:
		return true
	case score >= 15:
		return rng.IntN(2) == 1
	default:
		return false
	}
}

// PolicyByName maps the config's dealer_policy setting to a StandPolicy.
// Unknown names fall back to the fixed house rule.
func PolicyByName(name string) StandPolicy {
	if name == "legacy" {
		return LegacyRandomized
	}
	return StandOnSeventeen
}
