package model

import "fmt"

// AttackType selects which damage formula applies to an operator's attacks.
// The zero value AttackNone deals no damage; the engine treats it as a
// silent degrade-to-zero rather than an error, so callers that want
// diagnostics must go through ParseAttackType at the input boundary.
type AttackType int

const (
	AttackNone AttackType = iota
	AttackPhysical
	AttackMagical
)

// attackTypeLabels maps the canonical labels plus the legacy short and long
// Chinese labels carried over from older data files. Both label forms of
// each type are semantically identical.
var attackTypeLabels = map[string]AttackType{
	"physical": AttackPhysical,
	"magical":  AttackMagical,
	"物理":       AttackPhysical,
	"物理伤害":     AttackPhysical,
	"法术":       AttackMagical,
	"法术伤害":     AttackMagical,
}

// ParseAttackType resolves a raw attack type label.
// Unknown labels are an error here: silently mapping bad data to zero
// damage hides import mistakes, so the boundary fails loudly and only the
// engine itself degrades to zero.
func ParseAttackType(s string) (AttackType, error) {
	if t, ok := attackTypeLabels[s]; ok {
		return t, nil
	}
	return AttackNone, fmt.Errorf("unknown attack type %q", s)
}

func (t AttackType) String() string {
	switch t {
	case AttackPhysical:
		return "physical"
	case AttackMagical:
		return "magical"
	default:
		return "none"
	}
}

// ClassHealer marks operators whose output is healing rather than damage.
const ClassHealer = "healer"

// Operator holds the combat-relevant stats of a deployable operator.
// Value type, read-only to the engine: every computation takes a copy and
// never writes back.
type Operator struct {
	Name       string
	Atk        int        // attack power, typically 1-2000
	AtkType    AttackType // formula branch; AttackNone deals no damage
	AtkSpeed   float64    // hits per second, default 1.0
	HitCount   float64    // hits per attack instance, default 1.0
	Cost       int        // deployment cost, min 1 (used as divisor)
	ClassType  string
	HealAmount float64 // per-hit healing, healer classes only
	HP         int
	Def        int
}

// Normalized returns a copy with the documented defaults applied to unset
// fields: AtkSpeed and HitCount fall back to 1.0 when zero, Cost to 1 when
// zero or below. Explicitly negative AtkSpeed/HitCount are kept as-is so
// the formulas can force the corresponding output to zero.
func (o Operator) Normalized() Operator {
	if o.AtkSpeed == 0 {
		o.AtkSpeed = 1.0
	}
	if o.HitCount == 0 {
		o.HitCount = 1.0
	}
	if o.Cost < 1 {
		o.Cost = 1
	}
	return o
}

// IsHealer reports whether healer metrics apply to this operator.
func (o Operator) IsHealer() bool {
	return o.ClassType == ClassHealer && o.HealAmount > 0
}
