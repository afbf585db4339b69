// Package shortcut registers OS-wide keyboard shortcuts.
//
// Accelerators are written as modifiers and a key joined by '+' ("ctrl+n",
// "shift+alt+f5"). Parsing is case-insensitive and tolerant of spaces around
// '+'. Combined aliases such as "CmdOrCtrl" are not accepted.
package shortcut

import (
	"fmt"
	"sort"
	"strings"

	"golang.design/x/hotkey"
)

// Accelerator is a parsed shortcut.
type Accelerator struct {
	Mods []hotkey.Modifier
	Key  hotkey.Key

	// Canonical is the normalized spelling: modifiers sorted, lower case.
	Canonical string
}

// String returns the canonical spelling.
func (a Accelerator) String() string {
	return a.Canonical
}

// Parse turns an accelerator string into hotkey modifiers and a key.
func Parse(accel string) (Accelerator, error) {
	if strings.TrimSpace(accel) == "" {
		return Accelerator{}, ErrEmptyAccelerator
	}

	parts := strings.Split(strings.ToLower(accel), "+")
	var (
		mods     []hotkey.Modifier
		modNames []string
		keyName  string
		key      hotkey.Key
		haveKey  bool
	)
	seen := make(map[string]bool)

	for i, raw := range parts {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			return Accelerator{}, fmt.Errorf("%w: %q", ErrMissingKey, accel)
		}
		last := i == len(parts)-1

		if name, ok := modifierAliases[tok]; ok {
			if last {
				return Accelerator{}, fmt.Errorf("%w: %q ends with modifier %q", ErrMissingKey, accel, tok)
			}
			mod, supported := platformModifiers[name]
			if !supported {
				return Accelerator{}, fmt.Errorf("%w: %q", ErrUnknownModifier, tok)
			}
			if !seen[name] {
				seen[name] = true
				mods = append(mods, mod)
				modNames = append(modNames, name)
			}
			continue
		}

		if !last {
			// A non-modifier before the end is either a second key or a typo.
			if _, isKey := keyTable[tok]; isKey {
				return Accelerator{}, fmt.Errorf("%w: %q", ErrMissingKey, accel)
			}
			return Accelerator{}, fmt.Errorf("%w: %q", ErrUnknownModifier, tok)
		}

		k, ok := keyTable[tok]
		if !ok {
			return Accelerator{}, fmt.Errorf("%w: %q", ErrUnknownKey, tok)
		}
		key, keyName, haveKey = k, canonicalKeyName(tok), true
	}

	if !haveKey {
		return Accelerator{}, fmt.Errorf("%w: %q", ErrMissingKey, accel)
	}

	sort.Strings(modNames)
	canonical := strings.Join(append(modNames, keyName), "+")
	return Accelerator{Mods: mods, Key: key, Canonical: canonical}, nil
}

// modifierAliases maps accepted spellings to a canonical modifier name.
var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"shift":   "shift",
	"alt":     "alt",
	"option":  "alt",
	"cmd":     "super",
	"command": "super",
	"super":   "super",
	"meta":    "super",
}

// keyAliases folds alternate key spellings into one canonical name.
var keyAliases = map[string]string{
	"return": "enter",
	"escape": "esc",
}

func canonicalKeyName(tok string) string {
	if c, ok := keyAliases[tok]; ok {
		return c
	}
	return tok
}

var keyTable = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,

	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,

	"f1": hotkey.KeyF1, "f2": hotkey.KeyF2, "f3": hotkey.KeyF3, "f4": hotkey.KeyF4,
	"f5": hotkey.KeyF5, "f6": hotkey.KeyF6, "f7": hotkey.KeyF7, "f8": hotkey.KeyF8,
	"f9": hotkey.KeyF9, "f10": hotkey.KeyF10, "f11": hotkey.KeyF11, "f12": hotkey.KeyF12,

	"space":  hotkey.KeySpace,
	"enter":  hotkey.KeyReturn,
	"return": hotkey.KeyReturn,
	"esc":    hotkey.KeyEscape,
	"escape": hotkey.KeyEscape,
	"delete": hotkey.KeyDelete,
	"tab":    hotkey.KeyTab,
	"up":     hotkey.KeyUp,
	"down":   hotkey.KeyDown,
	"left":   hotkey.KeyLeft,
	"right":  hotkey.KeyRight,
}
