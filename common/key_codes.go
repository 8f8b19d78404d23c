package common

import (
	"strconv"
	"strings"
)

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyA = 65 // A key (ASCII)
	KeyB = 66 // B key (ASCII)
	KeyC = 67 // C key (ASCII)
	KeyD = 68 // D key (ASCII)
	KeyE = 69 // E key (ASCII)
	KeyF = 70 // F key (ASCII)
	KeyG = 71 // G key (ASCII)
	KeyH = 72 // H key (ASCII)
	KeyI = 73 // I key (ASCII)
	KeyJ = 74 // J key (ASCII)
	KeyK = 75 // K key (ASCII)
	KeyL = 76 // L key (ASCII)
	KeyM = 77 // M key (ASCII)
	KeyN = 78 // N key (ASCII)
	KeyO = 79 // O key (ASCII)
	KeyP = 80 // P key (ASCII)
	KeyQ = 81 // Q key (ASCII)
	KeyR = 82 // R key (ASCII)
	KeyS = 83 // S key (ASCII)
	KeyT = 84 // T key (ASCII)
	KeyU = 85 // U key (ASCII)
	KeyV = 86 // V key (ASCII)
	KeyW = 87 // W key (ASCII)
	KeyX = 88 // X key (ASCII)
	KeyY = 89 // Y key (ASCII)
	KeyZ = 90 // Z key (ASCII)

	KeySpace     = 32  // Spacebar (ASCII)
	KeyEsc       = 256 // Escape key (GLFW)
	KeyEnter     = 257 // Enter key (GLFW)
	KeyTab       = 258 // Tab key (GLFW)
	KeyBackspace = 259 // Backspace key (GLFW)

	Key0 = 48 // 0 key (ASCII)
	Key1 = 49 // 1 key (ASCII)
	Key2 = 50 // 2 key (ASCII)
	Key3 = 51 // 3 key (ASCII)
	Key4 = 52 // 4 key (ASCII)
	Key5 = 53 // 5 key (ASCII)
	Key6 = 54 // 6 key (ASCII)
	Key7 = 55 // 7 key (ASCII)
	Key8 = 56 // 8 key (ASCII)
	Key9 = 57 // 9 key (ASCII)
)

// Arrow keys (GLFW)
const (
	KeyRight = 262
	KeyLeft  = 263
	KeyDown  = 264
	KeyUp    = 265
)

// Additional non-printable keys
const (
	KeyLeftShift    = 340 // Left Shift (GLFW)
	KeyLeftControl  = 341 // Left Control (GLFW)
	KeyLeftAlt      = 342 // Left Alt (GLFW)
	KeyRightShift   = 344 // Right Shift (GLFW)
	KeyRightControl = 345 // Right Control (GLFW)
	KeyRightAlt     = 346 // Right Alt (GLFW)
)

// keyNames maps lower-case key names to their codes. Letters and digits are resolved
// arithmetically in KeyCodeFromName and are not listed here.
var keyNames = map[string]uint32{
	"space":        KeySpace,
	"esc":          KeyEsc,
	"escape":       KeyEsc,
	"enter":        KeyEnter,
	"tab":          KeyTab,
	"backspace":    KeyBackspace,
	"right":        KeyRight,
	"left":         KeyLeft,
	"down":         KeyDown,
	"up":           KeyUp,
	"shift":        KeyLeftShift,
	"leftshift":    KeyLeftShift,
	"rightshift":   KeyRightShift,
	"ctrl":         KeyLeftControl,
	"control":      KeyLeftControl,
	"leftcontrol":  KeyLeftControl,
	"rightcontrol": KeyRightControl,
	"alt":          KeyLeftAlt,
	"leftalt":      KeyLeftAlt,
	"rightalt":     KeyRightAlt,
}

// KeyCodeFromName resolves a human-readable key name to its virtual key code.
// Single letters and digits map to their ASCII codes, named keys ("Space", "LeftShift", "Up", ...)
// are matched case-insensitively, and a decimal string is accepted as a raw code.
//
// Parameters:
//   - name: the key name or decimal code
//
// Returns:
//   - uint32: the resolved key code
//   - bool: false if the name is not recognized
func KeyCodeFromName(name string) (uint32, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return 0, false
	}
	if len(n) == 1 {
		switch c := n[0]; {
		case c >= 'a' && c <= 'z':
			return uint32(c-'a') + KeyA, true
		case c >= '0' && c <= '9':
			return uint32(c-'0') + Key0, true
		}
	}
	if code, ok := keyNames[strings.NewReplacer("_", "", "-", "", " ", "").Replace(n)]; ok {
		return code, true
	}
	if code, err := strconv.ParseUint(n, 10, 32); err == nil {
		return uint32(code), true
	}
	return 0, false
}
