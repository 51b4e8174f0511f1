package settings

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vkulagin/dots-tui/internal/registry"
	"github.com/vkulagin/dots-tui/internal/signal"
)

// Manager resolves and persists player settings. Construction resolves
// every field once through the fallback chain and primes the registry
// cache, so subsequent reads hit the in-memory tier.
type Manager struct {
	reg      *registry.Registry
	store    Store
	resolver resolver
	hub      *signal.Hub
	logger   *log.Logger
}

// NewManager creates a settings manager over the given registry cache and
// durable store, resolving all fields and priming the cache.
func NewManager(reg *registry.Registry, store Store, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Manager{
		reg:   reg,
		store: store,
		resolver: resolver{backends: []backend{
			registryBackend{reg: reg},
			storeBackend{store: store, logger: logger},
			defaultsBackend{},
		}},
		hub:    signal.NewHub(),
		logger: logger,
	}

	m.cache(m.CurrentSettings())
	return m
}

// CurrentSettings resolves every field through the fallback chain:
// registry cache, then durable store, then built-in default.
func (m *Manager) CurrentSettings() Settings {
	sound, _ := m.resolver.resolve(KeySoundEffects)
	color, _ := m.resolver.resolve(KeyPlayerColor)
	setID, _ := m.resolver.resolve(KeyLevelSetID)

	return Settings{
		SoundEffects: asBool(sound),
		PlayerColor:  Color(asString(color)),
		LevelSetID:   asString(setID),
	}
}

// SaveSettings writes every field to the durable store, refreshes the
// registry cache, and raises the change signals: the level-set dirty flag
// only when the cached active set's id differs from the incoming one, the
// generic settings dirty flag always. Empty fields are filled from the
// defaults first so no partial record is ever persisted.
func (m *Manager) SaveSettings(s Settings) error {
	defaults := DefaultSettings()
	if s.PlayerColor == "" {
		s.PlayerColor = defaults.PlayerColor
	}
	if s.LevelSetID == "" {
		s.LevelSetID = defaults.LevelSetID
	}

	durable := map[string]string{
		KeySoundEffects: formatBool(s.SoundEffects),
		KeyPlayerColor:  string(s.PlayerColor),
		KeyLevelSetID:   s.LevelSetID,
	}
	for _, key := range Keys() {
		if err := m.store.SetItem(StoragePrefix+key, durable[key]); err != nil {
			return fmt.Errorf("settings: cannot persist %s: %w", key, err)
		}
	}

	m.cache(s)

	if v, ok := m.reg.Get(registry.KeyCurrentLevelSet); ok {
		if active, ok := v.(interface{ ID() string }); ok && active.ID() != s.LevelSetID {
			m.reg.Set(registry.KeyLevelSetDirty, true)
		}
	}
	m.reg.Set(registry.KeySettingsDirty, true)

	m.hub.Publish(s)
	return nil
}

// cache writes every field into the registry tier.
func (m *Manager) cache(s Settings) {
	m.reg.Set(registry.KeySoundEffects, s.SoundEffects)
	m.reg.Set(registry.KeyPlayerColor, string(s.PlayerColor))
	m.reg.Set(registry.KeyLevelSetID, s.LevelSetID)
}

// UpdateSetting overwrites a single field of the current record and saves
// the result. The key must belong to the settings schema and the value
// must match the field's type.
func (m *Manager) UpdateSetting(key string, value any) error {
	s := m.CurrentSettings()

	switch key {
	case KeySoundEffects:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("settings: %s wants a bool, got %T", key, value)
		}
		s.SoundEffects = b
	case KeyPlayerColor:
		color, err := coerceColor(value)
		if err != nil {
			return err
		}
		s.PlayerColor = color
	case KeyLevelSetID:
		id, ok := value.(string)
		if !ok {
			return fmt.Errorf("settings: %s wants a string, got %T", key, value)
		}
		s.LevelSetID = id
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	return m.SaveSettings(s)
}

func coerceColor(value any) (Color, error) {
	switch t := value.(type) {
	case Color:
		return t, nil
	case string:
		color, ok := ParseColor(t)
		if !ok {
			return "", fmt.Errorf("settings: invalid player color %q", t)
		}
		return color, nil
	default:
		return "", fmt.Errorf("settings: playerColor wants a color, got %T", value)
	}
}

// Setting returns a single field of the current record. Keys outside the
// schema fail with ErrUnknownKey; that is a bug in the caller, not a
// recoverable condition.
func (m *Manager) Setting(key string) (any, error) {
	s := m.CurrentSettings()

	switch key {
	case KeySoundEffects:
		return s.SoundEffects, nil
	case KeyPlayerColor:
		return s.PlayerColor, nil
	case KeyLevelSetID:
		return s.LevelSetID, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

// Subscribe registers a change consumer. Every SaveSettings publishes the
// saved record to every subscriber's slot, so independent consumers never
// starve each other the way a shared consume-once registry flag would.
func (m *Manager) Subscribe() *signal.Slot {
	return m.hub.Subscribe()
}
