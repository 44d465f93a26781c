package computer

import (
	"context"
	"fmt"
	"strings"

	"github.com/mj1618/macos-computer/pkg/apperr"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// keyAliases maps caller key names onto the canonical names understood by
// the input backend.
var keyAliases = map[string]string{
	"cmd":       "command",
	"ctrl":      "ctrl",
	"alt":       "option",
	"shift":     "shift",
	"enter":     "enter",
	"return":    "enter",
	"tab":       "tab",
	"space":     "space",
	"backspace": "backspace",
	"delete":    "delete",
	"esc":       "escape",
	"escape":    "escape",
	"up":        "up",
	"down":      "down",
	"left":      "left",
	"right":     "right",
	"home":      "home",
	"end":       "end",
	"pageup":    "pageup",
	"pagedown":  "pagedown",
}

// MapKey lower-cases key and resolves it through the alias table. Unknown
// names pass through lower-cased.
func MapKey(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	if mapped, ok := keyAliases[k]; ok {
		return mapped
	}
	return k
}

// MapKeys applies MapKey to every entry.
func MapKeys(keys []string) []string {
	mapped := make([]string, len(keys))
	for i, k := range keys {
		mapped[i] = MapKey(k)
	}
	return mapped
}

// Type types text literally, one keystroke per character.
func (c *Computer) Type(ctx context.Context, text string) (err error) {
	const op = "Type"
	_, logger, step := c.begin(ctx, op, attribute.Int("length", len(text)))
	defer func() {
		step.End(err)
	}()

	if text == "" {
		return nil
	}
	logger.Debug("Typing text", zap.Int("length", len(text)))
	return c.native(op, "type", func() error {
		return c.inputter.TypeText(text)
	})
}

// Key taps each key independently, in order.
func (c *Computer) Key(ctx context.Context, keys ...string) (err error) {
	const op = "Key"
	_, logger, step := c.begin(ctx, op, attribute.StringSlice("keys", keys))
	defer func() {
		step.End(err)
	}()

	if err := validateKeys(op, keys); err != nil {
		return err
	}
	for _, key := range keys {
		logger.Debug("Pressing key", zap.String("key", key))
		if err := c.native(op, "key", func() error {
			return c.inputter.KeyTap(key)
		}); err != nil {
			return err
		}
	}
	return nil
}

// Keypress maps keys through the alias table and issues a single tap for one
// key or a chord for several. An empty list does nothing.
func (c *Computer) Keypress(ctx context.Context, keys []string) (err error) {
	const op = "Keypress"
	_, logger, step := c.begin(ctx, op, attribute.StringSlice("keys", keys))
	defer func() {
		step.End(err)
	}()

	if len(keys) == 0 {
		return nil
	}
	if err := validateKeys(op, keys); err != nil {
		return err
	}

	mapped := MapKeys(keys)
	logger.Debug("Pressing keys", zap.Strings("mapped", mapped))
	if len(mapped) == 1 {
		return c.native(op, "key", func() error {
			return c.inputter.KeyTap(mapped[0])
		})
	}
	return c.native(op, "chord", func() error {
		return c.inputter.KeyChord(mapped)
	})
}

func validateKeys(op string, keys []string) error {
	for i, k := range keys {
		if strings.TrimSpace(k) == "" {
			return apperr.InvalidReqError(op, "keys", fmt.Errorf("%w at position %d", ErrInvalidKey, i))
		}
	}
	return nil
}

// ParseCombo splits a "cmd+shift+t" style combination.
func ParseCombo(combo string) []string {
	var keys []string
	for _, k := range strings.Split(combo, "+") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
