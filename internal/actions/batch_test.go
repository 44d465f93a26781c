package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSteps(t *testing.T) {
	steps, err := ParseSteps([]byte(`
- click: { x: 10, y: 20 }
- type: { text: "hello" }
- keypress: { keys: [cmd, s] }
- drag: { path: [[1, 1], [5, 5]] }
- get_environment:
`))
	require.NoError(t, err)
	require.Len(t, steps, 5)
	assert.Equal(t, 10, steps[0]["click"]["x"])
	assert.Equal(t, "hello", steps[1]["type"]["text"])
	assert.Nil(t, steps[4]["get_environment"])

	_, err = ParseSteps(nil)
	assert.Error(t, err)
	_, err = ParseSteps([]byte("[]"))
	assert.Error(t, err)
	_, err = ParseSteps([]byte("not: [a list"))
	assert.Error(t, err)
}

func TestRunBatch(t *testing.T) {
	f := newFixture(t, 1366, 768)
	steps, err := ParseSteps([]byte(`
- move: { x: 5, y: 5 }
- keypress: { combo: "cmd+a" }
- drag: { path: "1,1 2,2" }
`))
	require.NoError(t, err)

	batch := RunBatch(context.Background(), f.computer, steps, true)
	assert.True(t, batch.OK)
	assert.Equal(t, 3, batch.Steps)
	assert.Equal(t, 3, batch.Completed)
	assert.Equal(t, []int{1, 2, 3}, []int{batch.Results[0].Step, batch.Results[1].Step, batch.Results[2].Step})
	assert.Equal(t, []string{"move 5,5", "chord [command a]", "move 1,1", "down left", "move 2,2", "up left"}, f.fakes.Input.Events)
}

func TestRunBatch_StopOnError(t *testing.T) {
	steps := []Step{
		{"move": Params{"x": 1, "y": 1}},
		{"click": Params{"x": -1, "y": 1}},
		{"move": Params{"x": 2, "y": 2}},
	}

	t.Run("stop", func(t *testing.T) {
		f := newFixture(t, 1366, 768)
		batch := RunBatch(context.Background(), f.computer, steps, true)
		assert.False(t, batch.OK)
		assert.Equal(t, 1, batch.Completed)
		assert.Len(t, batch.Results, 2)
		assert.Contains(t, batch.Error, "step 2")
		assert.Equal(t, []string{"move 1,1"}, f.fakes.Input.Events)
	})

	t.Run("continue", func(t *testing.T) {
		f := newFixture(t, 1366, 768)
		batch := RunBatch(context.Background(), f.computer, steps, false)
		assert.False(t, batch.OK)
		assert.Equal(t, 2, batch.Completed)
		assert.Len(t, batch.Results, 3)
		assert.Equal(t, []string{"move 1,1", "move 2,2"}, f.fakes.Input.Events)
	})
}

func TestRunBatch_MalformedStep(t *testing.T) {
	f := newFixture(t, 1366, 768)
	steps := []Step{{"move": Params{"x": 1, "y": 1}, "click": Params{"x": 1, "y": 1}}}

	batch := RunBatch(context.Background(), f.computer, steps, true)
	assert.False(t, batch.OK)
	assert.Contains(t, batch.Error, "exactly one action")
	assert.Empty(t, f.fakes.Input.Events)
}
