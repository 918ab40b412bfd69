package combat

import (
	"math"

	"github.com/opstats/opcalc/internal/model"
)

// Metrics is the full performance bundle for one operator against one
// enemy profile. Every field is always present; fields that don't apply
// (healing for non-healers, damage for healers with no attack) stay zero.
// The set of fields is a stable contract for UI, export and report code.
type Metrics struct {
	DPH            float64 // damage per hit, hit count included
	DPS            float64 // DPH × attack speed
	ArmorBreak     int     // defense value where physical damage hits the floor
	CostEfficiency float64 // DPS per deployment cost point
	HPS            float64 // healing per second, healer classes only
	HPH            float64 // healing per hit, healer classes only
	Survivability  float64 // heuristic effective HP
}

// ArmorBreakPoint returns the enemy defense at which physical damage
// transitions from the subtraction formula to the 5% floor:
// atk - def == atk × 0.05  ⇒  def == atk × 0.95. Any defense above it
// only ever meets the floor.
func ArmorBreakPoint(atk int) int {
	if atk <= 0 {
		return 0
	}
	return int(math.Floor(float64(atk) * (1.0 - FloorRate)))
}

// OperatorPerformance computes the complete metrics bundle for an operator
// against the given enemy. It never fails: malformed stats degrade to an
// all-zero bundle (see the formula functions), and missing optional fields
// pick up their documented defaults via Normalized.
func OperatorPerformance(op model.Operator, enemy model.Enemy) Metrics {
	op = op.Normalized()

	dph := DamagePerHit(op.Atk, op.AtkType, enemy.Defense, enemy.MagicResist, op.HitCount)
	dps := DPS(dph, op.AtkSpeed)

	m := Metrics{
		DPH:            dph,
		DPS:            dps,
		ArmorBreak:     ArmorBreakPoint(op.Atk),
		CostEfficiency: dps / float64(max(op.Cost, 1)),
	}

	// Healing bypasses defense and resist entirely.
	if op.IsHealer() {
		m.HPS = op.HealAmount * op.AtkSpeed
		m.HPH = op.HealAmount * op.HitCount
	}

	// Effective-HP heuristic: every 100 points of defense counts as one
	// extra bar of HP. Linear on purpose, unlike the floor-based damage
	// mitigation above — kept for compatibility with existing reports.
	m.Survivability = float64(op.HP) * (1.0 + float64(op.Def)/100.0)

	return m
}
