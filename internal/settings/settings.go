// Package settings persists the small player-settings record through a
// two-tier store: the shared registry as a fast in-memory cache, and a
// durable string key-value store underneath. Every field always resolves
// to a value; absent tiers fall back to built-in defaults.
package settings

import "errors"

// Color is the player's dot color.
type Color string

const (
	ColorBlue Color = "blue"
	ColorRed  Color = "red"
)

// ParseColor maps a string to a Color, reporting whether it named a valid
// one.
func ParseColor(s string) (Color, bool) {
	switch Color(s) {
	case ColorBlue, ColorRed:
		return Color(s), true
	default:
		return "", false
	}
}

// Settings is the player-settings record. It is a plain value; use
// Manager to read and persist it.
type Settings struct {
	SoundEffects bool
	PlayerColor  Color
	LevelSetID   string
}

// Field keys accepted by Setting and UpdateSetting. The schema is fixed;
// any other key is a programming error.
const (
	KeySoundEffects = "soundEffects"
	KeyPlayerColor  = "playerColor"
	KeyLevelSetID   = "levelSetId"
)

// Keys lists the settings schema in a stable order.
func Keys() []string {
	return []string{KeySoundEffects, KeyPlayerColor, KeyLevelSetID}
}

// StoragePrefix namespaces every settings key in the durable store so the
// database file can be shared with unrelated data.
const StoragePrefix = "dotsGame_"

// ErrUnknownKey is returned for keys outside the settings schema.
var ErrUnknownKey = errors.New("settings: unknown settings key")

// DefaultSettings returns the built-in defaults used when neither the
// registry nor the durable store holds a value.
func DefaultSettings() Settings {
	return Settings{
		SoundEffects: true,
		PlayerColor:  ColorBlue,
		LevelSetID:   "default",
	}
}

// formatBool serializes a boolean for the durable store.
func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// parseBool deserializes a stored boolean. Anything but the literal
// "true", including corrupted data, reads as false.
func parseBool(s string) bool {
	return s == "true"
}
