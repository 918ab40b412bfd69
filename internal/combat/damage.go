package combat

import "github.com/opstats/opcalc/internal/model"

// FloorRate is the guaranteed minimum fraction of attack power dealt per
// hit, no matter how high the target's defense or magic resistance is.
// Tower-defense convention: even a fully armored enemy takes 5% chip damage.
const FloorRate = 0.05

// PhysicalDamage calculates per-hit physical damage against flat defense.
// Formula: max(atk - defense, atk × 0.05) × hitCount.
//
// atk <= 0 deals nothing (not an error: the engine degrades to zero so a
// half-filled record produces an all-zero bundle instead of a failure).
// The result is never negative and, for atk > 0, never below
// atk × 0.05 × hitCount.
func PhysicalDamage(atk, defense int, hitCount float64) float64 {
	if atk <= 0 {
		return 0.0
	}

	base := float64(atk - defense)
	floor := float64(atk) * FloorRate
	perHit := base
	if perHit < floor {
		perHit = floor
	}

	dmg := perHit * hitCount
	if dmg < 0 {
		dmg = 0.0
	}
	return dmg
}

// MagicalDamage calculates per-hit magical damage against percent resist.
// Formula: max(atk × (1 - resist/100), atk × 0.05) × hitCount.
//
// Resist at or above 100% collapses the scaling term to zero (or below),
// so the floor wins there without a separate branch.
func MagicalDamage(atk int, magicResistPct, hitCount float64) float64 {
	if atk <= 0 {
		return 0.0
	}

	// (100-resist)/100 instead of 1-resist/100: keeps round percent
	// inputs exact in float64 (95% of 500 is 25.0, not 25.000000000000021).
	perHit := float64(atk) * (100.0 - magicResistPct) / 100.0
	floor := float64(atk) * FloorRate
	if perHit < floor {
		perHit = floor
	}

	dmg := perHit * hitCount
	if dmg < 0 {
		dmg = 0.0
	}
	return dmg
}

// DPS converts per-hit damage to damage per second.
// Non-positive attack speed means the operator never attacks: 0.
func DPS(damagePerHit, atkSpeed float64) float64 {
	if atkSpeed <= 0 {
		return 0.0
	}
	return damagePerHit * atkSpeed
}

// DamagePerHit dispatches to the formula matching the attack type.
// AttackNone (or any unrecognized value) deals zero, silently — label
// validation belongs at the input boundary, not here.
func DamagePerHit(atk int, typ model.AttackType, defense int, magicResistPct, hitCount float64) float64 {
	switch typ {
	case model.AttackPhysical:
		return PhysicalDamage(atk, defense, hitCount)
	case model.AttackMagical:
		return MagicalDamage(atk, magicResistPct, hitCount)
	default:
		return 0.0
	}
}
