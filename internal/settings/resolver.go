package settings

import (
	"github.com/charmbracelet/log"

	"github.com/vkulagin/dots-tui/internal/registry"
)

// Store is the durable tier of the settings fallback chain: a flat string
// key-value store such as the SQLite-backed one in internal/storage.
type Store interface {
	// GetItem retrieves the string stored under key, reporting presence.
	GetItem(key string) (string, bool, error)
	// SetItem stores a string under key.
	SetItem(key, value string) error
}

// backend is one tier of the settings fallback chain.
type backend interface {
	// lookup returns the value this tier holds for a settings field key,
	// reporting whether the tier defines one.
	lookup(key string) (any, bool)
}

// resolver walks an ordered list of backends; the first tier with a
// defined value wins. The precedence is explicit here rather than inlined
// at every read site so it stays independently testable.
type resolver struct {
	backends []backend
}

func (r resolver) resolve(key string) (any, bool) {
	for _, b := range r.backends {
		if v, ok := b.lookup(key); ok {
			return v, true
		}
	}
	return nil, false
}

// registryBackend reads the in-memory cache tier. Settings field keys map
// to their registry counterparts.
type registryBackend struct {
	reg *registry.Registry
}

func (b registryBackend) lookup(key string) (any, bool) {
	regKey, ok := registryKeyFor(key)
	if !ok {
		return nil, false
	}
	return b.reg.Get(regKey)
}

func registryKeyFor(key string) (string, bool) {
	switch key {
	case KeySoundEffects:
		return registry.KeySoundEffects, true
	case KeyPlayerColor:
		return registry.KeyPlayerColor, true
	case KeyLevelSetID:
		return registry.KeyLevelSetID, true
	default:
		return "", false
	}
}

// storeBackend reads the durable tier. Read failures are soft: logged and
// treated as absent so resolution falls through to the defaults.
type storeBackend struct {
	store  Store
	logger *log.Logger
}

func (b storeBackend) lookup(key string) (any, bool) {
	if b.store == nil {
		return nil, false
	}
	value, ok, err := b.store.GetItem(StoragePrefix + key)
	if err != nil {
		b.logger.Warn("cannot read setting from store", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return value, true
}

// defaultsBackend is the terminal tier; it defines every schema key.
type defaultsBackend struct{}

func (defaultsBackend) lookup(key string) (any, bool) {
	d := DefaultSettings()
	switch key {
	case KeySoundEffects:
		return d.SoundEffects, true
	case KeyPlayerColor:
		return string(d.PlayerColor), true
	case KeyLevelSetID:
		return d.LevelSetID, true
	default:
		return nil, false
	}
}

// asBool coerces a resolved value to a boolean: native bools pass
// through, stored strings deserialize with parseBool.
func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return parseBool(t)
	default:
		return false
	}
}

// asString coerces a resolved value to a string; non-strings read as "".
func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
