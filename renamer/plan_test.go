package renamer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldecampos/namecraft/casing"
	"github.com/ldecampos/namecraft/ncerrors"
)

func TestParsePlan(t *testing.T) {
	t.Run("valid plan", func(t *testing.T) {
		data := []byte(`
rules:
  - match: Ctrl
    style: snake_case
    suffix: ctrl
  - renumber: true
    pad: 3
`)
		plan, err := ParsePlan(data)
		require.NoError(t, err)
		require.Len(t, plan.Rules, 2)
		assert.Equal(t, casing.StyleSnake, plan.Rules[0].Style)
		assert.Equal(t, "Ctrl", plan.Rules[0].Match)
		assert.True(t, plan.Rules[1].Renumber)
		assert.Equal(t, 3, plan.Rules[1].Pad)
	})

	t.Run("empty plan is a config error", func(t *testing.T) {
		_, err := ParsePlan([]byte("rules: []"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ncerrors.ErrConfig))
	})

	t.Run("unknown style is a config error", func(t *testing.T) {
		_, err := ParsePlan([]byte("rules:\n  - style: SCREAMING\n"))
		require.Error(t, err)

		var cfgErr *ncerrors.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "rules[0].style", cfgErr.Field)
	})

	t.Run("negative pad is a config error", func(t *testing.T) {
		_, err := ParsePlan([]byte("rules:\n  - renumber: true\n    pad: -1\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ncerrors.ErrConfig))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParsePlan([]byte("rules: ["))
		require.Error(t, err)
	})
}

func TestPlanPreview(t *testing.T) {
	t.Run("case conversion rule", func(t *testing.T) {
		plan := &Plan{Rules: []Rule{{Style: casing.StyleSnake}}}
		renames, err := plan.Preview([]string{"leftArmCtrl", "rightArmCtrl"})
		require.NoError(t, err)
		assert.Equal(t, []Rename{
			{From: "leftArmCtrl", To: "left_arm_ctrl"},
			{From: "rightArmCtrl", To: "right_arm_ctrl"},
		}, renames)
	})

	t.Run("match restricts the rule", func(t *testing.T) {
		plan := &Plan{Rules: []Rule{{Match: "Ctrl", Style: casing.StyleSnake}}}
		renames, err := plan.Preview([]string{"leftArmCtrl", "ikHandle"})
		require.NoError(t, err)
		assert.Equal(t, "left_arm_ctrl", renames[0].To)
		assert.Equal(t, "ikHandle", renames[1].To)
		assert.False(t, renames[1].Changed())
	})

	t.Run("prefix and suffix", func(t *testing.T) {
		plan := &Plan{Rules: []Rule{{Prefix: "rig", Suffix: "ctrl"}}}
		renames, err := plan.Preview([]string{"left_arm"})
		require.NoError(t, err)
		assert.Equal(t, "rig_left_arm_ctrl", renames[0].To)
	})

	t.Run("custom separator", func(t *testing.T) {
		plan := &Plan{Rules: []Rule{{Suffix: "ctrl", Separator: "-"}}}
		renames, err := plan.Preview([]string{"left-arm"})
		require.NoError(t, err)
		assert.Equal(t, "left-arm-ctrl", renames[0].To)
	})

	t.Run("renumber assigns batch positions", func(t *testing.T) {
		plan := &Plan{Rules: []Rule{{Renumber: true, Pad: 3}}}
		renames, err := plan.Preview([]string{"joint99", "joint", "joint12"})
		require.NoError(t, err)
		assert.Equal(t, []Rename{
			{From: "joint99", To: "joint001"},
			{From: "joint", To: "joint002"},
			{From: "joint12", To: "joint003"},
		}, renames)
	})

	t.Run("rules compose in order", func(t *testing.T) {
		plan := &Plan{Rules: []Rule{
			{Style: casing.StyleSnake, StripDigits: true},
			{Suffix: "geo", Renumber: true},
		}}
		renames, err := plan.Preview([]string{"pCubeShape12"})
		require.NoError(t, err)
		// snake+strip: p_cube_shape; suffix: p_cube_shape_geo; renumber: ..._geo01
		assert.Equal(t, "p_cube_shape_geo01", renames[0].To)
	})

	t.Run("camel target on empty tokenization fails", func(t *testing.T) {
		plan := &Plan{Rules: []Rule{{Style: casing.StyleCamel}}}
		_, err := plan.Preview([]string{"__"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ncerrors.ErrEmptyInput))
	})
}

func TestPlanApply(t *testing.T) {
	t.Run("applies renames to the graph", func(t *testing.T) {
		g := NewMemoryGraph("leftArmCtrl", "rightArmCtrl")
		plan := &Plan{Rules: []Rule{{Style: casing.StyleSnake}}}

		applied, err := plan.Apply(g, []string{"leftArmCtrl", "rightArmCtrl"})
		require.NoError(t, err)
		assert.Len(t, applied, 2)
		assert.True(t, g.Exists("left_arm_ctrl"))
		assert.True(t, g.Exists("right_arm_ctrl"))
		assert.False(t, g.Exists("leftArmCtrl"))
	})

	t.Run("collisions bump the target", func(t *testing.T) {
		g := NewMemoryGraph("leftArmCtrl", "left_arm_ctrl")
		plan := &Plan{Rules: []Rule{{Style: casing.StyleSnake}}}

		applied, err := plan.Apply(g, []string{"leftArmCtrl"})
		require.NoError(t, err)
		assert.Equal(t, "left_arm_ctrl01", applied[0].To)
		assert.True(t, g.Exists("left_arm_ctrl01"))
		assert.True(t, g.Exists("left_arm_ctrl"))
	})

	t.Run("missing source stops the batch", func(t *testing.T) {
		g := NewMemoryGraph("present")
		plan := &Plan{Rules: []Rule{{Suffix: "geo"}}}

		applied, err := plan.Apply(g, []string{"present", "ghost"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ncerrors.ErrRename))
		// The first rename went through before the failure.
		assert.Len(t, applied, 1)
		assert.True(t, g.Exists("present_geo"))
	})

	t.Run("unchanged names are not renamed", func(t *testing.T) {
		g := NewMemoryGraph("left_arm_ctrl")
		plan := &Plan{Rules: []Rule{{Style: casing.StyleSnake}}}

		applied, err := plan.Apply(g, []string{"left_arm_ctrl"})
		require.NoError(t, err)
		assert.Equal(t, applied[0].From, applied[0].To)
		assert.True(t, g.Exists("left_arm_ctrl"))
	})
}
