package darwin

import "strings"

// robotgoKeys maps canonical key names onto the names robotgo understands.
// Anything else is passed through unchanged.
var robotgoKeys = map[string]string{
	"command": "cmd",
	"option":  "alt",
	"control": "ctrl",
	"escape":  "esc",
	"return":  "enter",
}

func robotgoKey(key string) string {
	k := strings.ToLower(key)
	if mapped, ok := robotgoKeys[k]; ok {
		return mapped
	}
	return k
}

var modifierKeys = map[string]bool{
	"cmd":   true,
	"alt":   true,
	"ctrl":  true,
	"shift": true,
}

// splitChord separates leading modifiers from the final key so the chord can
// be sent as a single KeyTap. ok is false when the chord is not of that shape.
func splitChord(keys []string) (key string, modifiers []string, ok bool) {
	if len(keys) < 2 {
		return "", nil, false
	}
	for _, m := range keys[:len(keys)-1] {
		if !modifierKeys[robotgoKey(m)] {
			return "", nil, false
		}
		modifiers = append(modifiers, robotgoKey(m))
	}
	return robotgoKey(keys[len(keys)-1]), modifiers, true
}
