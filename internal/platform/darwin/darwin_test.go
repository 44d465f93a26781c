package darwin

import (
	"testing"
)

func TestQuoteAppleScript(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Safari", `"Safari"`},
		{`Say "hi"`, `"Say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{`"; do shell script "rm -rf ~`, `"\"; do shell script \"rm -rf ~"`},
	}
	for _, tt := range tests {
		if got := quoteAppleScript(tt.in); got != tt.want {
			t.Errorf("quoteAppleScript(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestActivateAppScript(t *testing.T) {
	want := `tell application "Visual Studio Code" to activate`
	if got := activateAppScript("Visual Studio Code"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestRobotgoKey(t *testing.T) {
	tests := map[string]string{
		"command": "cmd",
		"option":  "alt",
		"escape":  "esc",
		"ctrl":    "ctrl",
		"A":       "a",
		"f12":     "f12",
	}
	for in, want := range tests {
		if got := robotgoKey(in); got != want {
			t.Errorf("robotgoKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitChord(t *testing.T) {
	tests := []struct {
		name      string
		keys      []string
		wantKey   string
		wantMods  []string
		wantSplit bool
	}{
		{"modifier and key", []string{"command", "c"}, "c", []string{"cmd"}, true},
		{"two modifiers", []string{"command", "shift", "t"}, "t", []string{"cmd", "shift"}, true},
		{"single key", []string{"a"}, "", nil, false},
		{"non-modifier lead", []string{"a", "b"}, "", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, mods, ok := splitChord(tt.keys)
			if ok != tt.wantSplit {
				t.Fatalf("ok = %v, want %v", ok, tt.wantSplit)
			}
			if !ok {
				return
			}
			if key != tt.wantKey {
				t.Errorf("key = %q, want %q", key, tt.wantKey)
			}
			if len(mods) != len(tt.wantMods) {
				t.Fatalf("modifiers = %v, want %v", mods, tt.wantMods)
			}
			for i := range mods {
				if mods[i] != tt.wantMods[i] {
					t.Errorf("modifiers = %v, want %v", mods, tt.wantMods)
				}
			}
		})
	}
}
