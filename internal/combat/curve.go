package combat

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/opstats/opcalc/internal/model"
)

// CurvePoint is one sample of a defense (or resist) sweep.
type CurvePoint struct {
	X   float64 // swept stat value: enemy defense or magic resist percent
	DPS float64
}

// TimePoint is one sample of a cumulative damage timeline.
type TimePoint struct {
	Time       float64 // seconds since deployment
	Cumulative float64
}

// timelineStep is the sampling interval of TimelineDamage, in seconds.
const timelineStep = 5

// DamageCurve sweeps enemy defense from 0 to maxDefense inclusive in step
// increments and records the operator's DPS at each point. Magic resist is
// held at 0 for the whole sweep, so magical attackers produce a flat line
// (use ResistCurve for them).
//
// For a physical attacker DPS is non-increasing in defense and goes flat
// at the floor value once defense passes ArmorBreakPoint(atk).
func DamageCurve(op model.Operator, maxDefense, step int) []CurvePoint {
	if step <= 0 {
		step = 25
	}
	if maxDefense < 0 {
		maxDefense = 0
	}

	points := make([]CurvePoint, 0, maxDefense/step+1)
	for def := 0; def <= maxDefense; def += step {
		m := OperatorPerformance(op, model.Enemy{Defense: def})
		points = append(points, CurvePoint{X: float64(def), DPS: m.DPS})
	}
	return points
}

// ResistCurve is the magic-resist analogue of DamageCurve: it sweeps enemy
// magic resistance from 0 to maxResist percent inclusive with defense held
// at 0. Physical attackers produce a flat line here.
func ResistCurve(op model.Operator, maxResist, step float64) []CurvePoint {
	if step <= 0 {
		step = 5
	}
	if maxResist < 0 {
		maxResist = 0
	}

	points := make([]CurvePoint, 0, int(maxResist/step)+1)
	for res := 0.0; res <= maxResist; res += step {
		m := OperatorPerformance(op, model.Enemy{MagicResist: res})
		points = append(points, CurvePoint{X: res, DPS: m.DPS})
	}
	return points
}

// TimelineDamage samples cumulative damage against a fixed enemy profile
// at 0, 5, 10, ... up to floor(duration) seconds inclusive. DPS is
// computed once; damage accrues linearly (no burst or cooldown modeling).
func TimelineDamage(op model.Operator, duration float64, enemy model.Enemy) []TimePoint {
	dps := OperatorPerformance(op, enemy).DPS

	last := int(math.Floor(duration))
	if last < 0 {
		last = 0
	}

	points := make([]TimePoint, 0, last/timelineStep+1)
	for t := 0; t <= last; t += timelineStep {
		points = append(points, TimePoint{Time: float64(t), Cumulative: dps * float64(t)})
	}
	return points
}

// CumulativeDamageAt returns total damage dealt after the given number of
// seconds against a fixed enemy profile. Non-positive time means nothing
// has happened yet: 0.
func CumulativeDamageAt(op model.Operator, seconds float64, enemy model.Enemy) float64 {
	if seconds <= 0 {
		return 0.0
	}
	return OperatorPerformance(op, enemy).DPS * seconds
}

// DamageCurves generates defense sweeps for several operators at once,
// one goroutine per operator. Every per-point computation is pure and
// independent, so no coordination beyond the errgroup join is needed.
// The result is indexed like ops. The only error source is ctx cancellation.
func DamageCurves(ctx context.Context, ops []model.Operator, maxDefense, step int) ([][]CurvePoint, error) {
	curves := make([][]CurvePoint, len(ops))

	g, ctx := errgroup.WithContext(ctx)
	for i, op := range ops {
		i, op := i, op
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			curves[i] = DamageCurve(op, maxDefense, step)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return curves, nil
}
