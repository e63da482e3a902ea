package echo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/echo"
)

func TestGroupBinding(t *testing.T) {
	target := map[string]any{}
	props, err := echo.NewProps(target, map[string]int{
		"score":  0,
		"health": 100,
		"ammo":   12,
	})
	assert.NoError(t, err)
	assert.Len(t, props, 3)

	names := make([]string, 0, len(props))
	for _, p := range props {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"ammo", "health", "score"}, names)

	assert.Equal(t, 12, target["ammo"])
	assert.Equal(t, 100, target["health"])
	assert.Equal(t, 0, target["score"])
	assert.Contains(t, target, "score$")
}

func TestGroupIndependence(t *testing.T) {
	target := map[string]any{}
	props, err := echo.NewProps(target, map[string]int{
		"health": 100,
		"score":  0,
	})
	assert.NoError(t, err)
	health, score := props[0], props[1]

	var healthSeen, scoreSeen []int
	health.Subscribe(func(v int) { healthSeen = append(healthSeen, v) })
	score.Subscribe(func(v int) { scoreSeen = append(scoreSeen, v) })

	score.Set(10)
	assert.Equal(t, []int{100}, healthSeen)
	assert.Equal(t, []int{0, 10}, scoreSeen)

	health.Complete()
	score.Set(20)
	assert.True(t, health.Completed())
	assert.False(t, score.Completed())
	assert.Equal(t, []int{0, 10, 20}, scoreSeen)
}

func TestGroupSharedConfig(t *testing.T) {
	target := map[string]any{}
	props, err := echo.NewProps(target, map[string]int{
		"health": 100,
		"score":  0,
	}, echo.Config[int]{
		Validate: echo.Rule[int]("gte=0"),
	})
	assert.NoError(t, err)

	for _, p := range props {
		p.Set(-1)
	}
	assert.Equal(t, 100, props[0].Get())
	assert.Equal(t, 0, props[1].Get())
}

func TestGroupError(t *testing.T) {
	target := &struct {
		Apple  int
		Cherry int
	}{}
	props, err := echo.NewProps(target, map[string]int{
		"Apple":  1,
		"Banana": 2,
		"Cherry": 3,
	})
	assert.Nil(t, props)
	assert.ErrorIs(t, err, echo.ErrNoSuchField)
	assert.Contains(t, err.Error(), `prop "Banana"`)

	// Properties bound before the failure stay installed
	assert.Equal(t, 1, target.Apple)
	assert.Zero(t, target.Cherry)
}

func TestMakePropsAlias(t *testing.T) {
	target := map[string]any{}
	props, err := echo.MakeProps(target, map[string]string{
		"mode": "idle",
	})
	assert.NoError(t, err)
	assert.Len(t, props, 1)
	assert.Equal(t, "idle", target["mode"])
}
