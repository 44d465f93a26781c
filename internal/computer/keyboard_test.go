package computer

import (
	"context"
	"testing"

	"github.com/mj1618/macos-computer/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKey(t *testing.T) {
	tests := map[string]string{
		"cmd":      "command",
		"CMD":      "command",
		"alt":      "option",
		"return":   "enter",
		"esc":      "escape",
		" Shift ":  "shift",
		"A":        "a",
		"f5":       "f5",
		"PageDown": "pagedown",
	}
	for in, want := range tests {
		assert.Equal(t, want, MapKey(in), "MapKey(%q)", in)
	}
}

func TestKeypress(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{"empty is a no-op", nil, nil},
		{"single key taps", []string{"A"}, []string{"tap a"}},
		{"alias single", []string{"Return"}, []string{"tap enter"}},
		{"chord", []string{"cmd", "c"}, []string{"chord [command c]"}},
		{"three key chord", []string{"ctrl", "alt", "Delete"}, []string{"chord [ctrl option delete]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 1366, 768)
			require.NoError(t, h.computer.Keypress(context.Background(), tt.keys))
			assert.Equal(t, tt.want, h.input.Events)
		})
	}
}

func TestKeypress_RejectsBlankKey(t *testing.T) {
	h := newHarness(t, 1366, 768)

	err := h.computer.Keypress(context.Background(), []string{"cmd", " "})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.True(t, IsValidation(err))
	assert.Empty(t, h.input.Events)
}

func TestKeypress_ChordFailure(t *testing.T) {
	h := newHarness(t, 1366, 768)
	h.input.FailChord = true

	err := h.computer.Keypress(context.Background(), []string{"cmd", "v"})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeActionFailed, apperr.CodeOf(err))
}

func TestKey_TapsEachKeyUnmapped(t *testing.T) {
	h := newHarness(t, 1366, 768)

	require.NoError(t, h.computer.Key(context.Background(), "a", "enter", "tab"))
	assert.Equal(t, []string{"tap a", "tap enter", "tap tab"}, h.input.Events)
}

func TestType(t *testing.T) {
	h := newHarness(t, 1366, 768)

	require.NoError(t, h.computer.Type(context.Background(), ""))
	assert.Empty(t, h.input.Events)

	require.NoError(t, h.computer.Type(context.Background(), "hello, world"))
	assert.Equal(t, []string{"type hello, world"}, h.input.Events)
}

func TestParseCombo(t *testing.T) {
	assert.Equal(t, []string{"cmd", "shift", "t"}, ParseCombo("cmd+shift+t"))
	assert.Equal(t, []string{"a"}, ParseCombo(" a "))
	assert.Nil(t, ParseCombo("+"))
}
