package level

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vkulagin/dots-tui/internal/registry"
)

// DefaultSetID is the id of the level set used when no explicit choice is
// cached. If the catalog carries no set with this id, the first set in
// catalog order takes its place.
const DefaultSetID = "default"

// Manager owns every constructed level set and resolves which one is
// active. The active set is cached in the shared registry so that the
// choice survives across the components consulting it; resolution falls
// back from the cached handle, to the cached id, to the default set.
type Manager struct {
	setDefs []SetDefinition
	catalog DefinitionCatalog
	reg     *registry.Registry
	logger  *log.Logger

	sets  map[string]*Set
	order []string
}

// NewManager builds a set per catalog entry, in catalog order. Duplicate
// set ids are logged and skipped.
func NewManager(setDefs []SetDefinition, catalog DefinitionCatalog, reg *registry.Registry, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Manager{
		setDefs: setDefs,
		catalog: catalog,
		reg:     reg,
		logger:  logger,
	}
	m.build()
	return m
}

func (m *Manager) build() {
	m.sets = make(map[string]*Set, len(m.setDefs))
	m.order = m.order[:0]

	for _, def := range m.setDefs {
		if _, dup := m.sets[def.ID]; dup {
			m.logger.Warn("skipping duplicate level set id", "set", def.ID)
			continue
		}
		m.sets[def.ID] = NewSet(def, m.catalog, m.logger)
		m.order = append(m.order, def.ID)
	}
}

// ReloadLevelSets discards every set and rebuilds the whole mapping from
// the catalog. All previously returned Set and Level references become
// stale. The cached set handle is dropped from the registry so the next
// resolution re-binds to a fresh set (via the cached id, or the default).
func (m *Manager) ReloadLevelSets() {
	m.build()
	m.reg.Remove(registry.KeyCurrentLevelSet)
}

// CurrentLevelSet resolves the active set through the fallback chain:
// cached handle, then cached id, then the default set. Each step caches
// its result into the registry for the next call. Nil only when the
// catalog holds no sets at all.
func (m *Manager) CurrentLevelSet() *Set {
	if v, ok := m.reg.Get(registry.KeyCurrentLevelSet); ok {
		if s, ok := v.(*Set); ok {
			return s
		}
	}

	if id, ok := m.reg.String(registry.KeyLevelSetID); ok {
		if s, ok := m.sets[id]; ok {
			m.reg.Set(registry.KeyCurrentLevelSet, s)
			return s
		}
	}

	s := m.defaultSet()
	if s != nil {
		m.reg.Set(registry.KeyCurrentLevelSet, s)
	}
	return s
}

func (m *Manager) defaultSet() *Set {
	if s, ok := m.sets[DefaultSetID]; ok {
		return s
	}
	if len(m.order) > 0 {
		return m.sets[m.order[0]]
	}
	return nil
}

// LevelSet returns the set with the given id.
func (m *Manager) LevelSet(id string) (*Set, bool) {
	s, ok := m.sets[id]
	return s, ok
}

// AllLevelSets returns every set in catalog order.
func (m *Manager) AllLevelSets() []*Set {
	out := make([]*Set, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.sets[id])
	}
	return out
}

// LevelSetIDs returns every set id in catalog order.
func (m *Manager) LevelSetIDs() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// HasLevelSet reports whether a set with the given id exists.
func (m *Manager) HasLevelSet(id string) bool {
	_, ok := m.sets[id]
	return ok
}

// SetCurrentLevelSet stores the given set as the active one. Nil or empty
// sets are rejected.
func (m *Manager) SetCurrentLevelSet(s *Set) bool {
	if s == nil || s.IsEmpty() {
		return false
	}
	m.reg.Set(registry.KeyCurrentLevelSet, s)
	return true
}

// SetCurrentLevelSetByID resolves the id and stores the resulting set as
// active. Unknown ids fall back to the default set.
func (m *Manager) SetCurrentLevelSetByID(id string) bool {
	s, ok := m.sets[id]
	if !ok {
		m.logger.Warn("unknown level set id, falling back to default", "set", id)
		s = m.defaultSet()
	}
	return m.SetCurrentLevelSet(s)
}

// CurrentLevel returns the active set's current level.
func (m *Manager) CurrentLevel() *Level {
	s := m.CurrentLevelSet()
	if s == nil {
		return nil
	}
	return s.CurrentLevel()
}

// SetCurrentLevel moves the active set's current position to the given
// level. Levels whose id is not present in the active set are rejected.
func (m *Manager) SetCurrentLevel(l *Level) bool {
	s := m.CurrentLevelSet()
	if s == nil || l == nil {
		return false
	}
	if !s.HasLevel(l.ID()) {
		return false
	}
	return s.SetCurrentLevel(l)
}

// LevelToLoad decides which level the game loop should load next. It
// consumes the one-shot advance flag from the registry: if the flag was
// raised, the active set advances and the new current level is returned,
// wrapping back to the first level (with a warning) when the set was
// already at its end. Without the flag, the current position resets to the
// first level, which is returned. Nil for an empty catalog or empty set.
func (m *Manager) LevelToLoad() *Level {
	s := m.CurrentLevelSet()
	if s == nil || s.IsEmpty() {
		return nil
	}

	if m.reg.TakeBool(registry.KeyLoadNextLevel) {
		if next := s.NextLevel(); next != nil {
			return next
		}
		m.logger.Warn("no next level in set, restarting from first", "set", s.ID())
	}

	first := s.First()
	s.SetCurrentLevelStrict(first)
	return first
}

// HasLevelSetChanged consumes the level-set dirty flag from the registry.
// A raised flag is observed by exactly one caller; non-bool values read
// as false.
func (m *Manager) HasLevelSetChanged() bool {
	return m.reg.TakeBool(registry.KeyLevelSetDirty)
}

// SetStats aggregates the composition of one level set.
type SetStats struct {
	Total        int
	ByDifficulty map[Difficulty]int
}

// LevelSetStats returns the level count and difficulty histogram for the
// set with the given id, with ok reporting whether the id is known.
func (m *Manager) LevelSetStats(id string) (SetStats, bool) {
	s, ok := m.sets[id]
	if !ok {
		return SetStats{}, false
	}

	stats := SetStats{
		Total:        s.Len(),
		ByDifficulty: make(map[Difficulty]int),
	}
	for _, lv := range s.AllLevels() {
		stats.ByDifficulty[lv.AIDifficulty()]++
	}
	return stats, true
}
