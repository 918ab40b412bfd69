// Package roster loads operator records from YAML files and turns the
// loose, stringly-typed input into validated model values. All label and
// range checking lives here: once a record leaves this package the engine
// accepts it as-is.
package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opstats/opcalc/internal/model"
)

// rawOperator mirrors one YAML roster entry. Every stat except name and
// atk_type is optional and falls back to the engine defaults.
type rawOperator struct {
	Name       string  `yaml:"name"`
	Atk        int     `yaml:"atk"`
	AtkType    string  `yaml:"atk_type"`
	AtkSpeed   float64 `yaml:"atk_speed"`
	HitCount   float64 `yaml:"hit_count"`
	Cost       int     `yaml:"cost"`
	ClassType  string  `yaml:"class_type"`
	HealAmount float64 `yaml:"heal_amount"`
	HP         int     `yaml:"hp"`
	Def        int     `yaml:"def"`
}

type rawRoster struct {
	Operators []rawOperator `yaml:"operators"`
}

// Load reads and validates an operator roster file.
// Unknown atk_type labels are a hard error: the engine would silently
// compute zero damage for them, which hides data entry mistakes.
func Load(path string) ([]model.Operator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes roster YAML. Split out from Load for testing and for
// callers that already hold the bytes.
func Parse(data []byte) ([]model.Operator, error) {
	var raw rawRoster
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}

	ops := make([]model.Operator, 0, len(raw.Operators))
	for i, r := range raw.Operators {
		op, err := r.toOperator()
		if err != nil {
			return nil, fmt.Errorf("operator %d (%s): %w", i, r.Name, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func (r rawOperator) toOperator() (model.Operator, error) {
	if r.Name == "" {
		return model.Operator{}, fmt.Errorf("missing name")
	}

	// Absent atk_type is legitimate for pure support operators; only a
	// present-but-unknown label is rejected.
	var typ model.AttackType
	if r.AtkType != "" {
		var err error
		typ, err = model.ParseAttackType(r.AtkType)
		if err != nil {
			return model.Operator{}, err
		}
	}

	op := model.Operator{
		Name:       r.Name,
		Atk:        r.Atk,
		AtkType:    typ,
		AtkSpeed:   r.AtkSpeed,
		HitCount:   r.HitCount,
		Cost:       r.Cost,
		ClassType:  r.ClassType,
		HealAmount: r.HealAmount,
		HP:         r.HP,
		Def:        r.Def,
	}
	return op.Normalized(), nil
}
