package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opstats/opcalc/internal/model"
)

const validRoster = `
operators:
  - name: Vanguard
    atk: 500
    atk_type: physical
    atk_speed: 2.0
    cost: 12
    hp: 2400
    def: 350
  - name: Caster
    atk: 620
    atk_type: 法术
    atk_speed: 0.8
    cost: 19
  - name: Mender
    atk: 150
    atk_type: 物理伤害
    class_type: healer
    heal_amount: 280
`

func TestParse(t *testing.T) {
	ops, err := Parse([]byte(validRoster))
	require.NoError(t, err)
	require.Len(t, ops, 3)

	assert.Equal(t, model.Operator{
		Name: "Vanguard", Atk: 500, AtkType: model.AttackPhysical,
		AtkSpeed: 2.0, HitCount: 1.0, Cost: 12, HP: 2400, Def: 350,
	}, ops[0])

	// Legacy labels resolve to the same two types.
	assert.Equal(t, model.AttackMagical, ops[1].AtkType)
	assert.Equal(t, model.AttackPhysical, ops[2].AtkType)

	// Defaults applied on load, not left for the engine to guess.
	assert.Equal(t, 1.0, ops[2].AtkSpeed)
	assert.Equal(t, 1, ops[2].Cost)
	assert.Equal(t, model.ClassHealer, ops[2].ClassType)
}

func TestParseUnknownAttackType(t *testing.T) {
	_, err := Parse([]byte(`
operators:
  - name: Broken
    atk: 500
    atk_type: psychic
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
	assert.Contains(t, err.Error(), "psychic")
}

func TestParseMissingAttackType(t *testing.T) {
	// Support operators without an attack are allowed; they just deal 0.
	ops, err := Parse([]byte(`
operators:
  - name: Banner
    class_type: healer
    heal_amount: 90
`))
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, model.AttackNone, ops[0].AtkType)
}

func TestParseMissingName(t *testing.T) {
	_, err := Parse([]byte(`
operators:
  - atk: 500
    atk_type: physical
`))
	assert.Error(t, err)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("operators: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validRoster), 0o644))

	ops, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, ops, 3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
