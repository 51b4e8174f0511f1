package level

import (
	"io"

	"github.com/charmbracelet/log"
)

// SetEntry references a level definition by id and assigns the AI
// difficulty for that position in the set.
type SetEntry struct {
	LevelID    string
	Difficulty Difficulty
}

// SetDefinition is an immutable, ordered description of a level set as
// supplied by the catalog.
type SetDefinition struct {
	ID          string
	Name        string
	Description string
	Entries     []SetEntry
}

// DefinitionCatalog resolves level ids to definitions during set
// construction.
type DefinitionCatalog interface {
	// Definition returns the level definition for id, reporting whether
	// the id is known.
	Definition(id string) (Definition, bool)
}

// Set is an ordered, doubly-linked sequence of levels built from a
// SetDefinition. It owns the "current position" state consumed by the
// game loop.
type Set struct {
	def     SetDefinition
	levels  []*Level
	first   *Level
	last    *Level
	current *Level
}

// NewSet constructs a set from its definition, resolving each entry
// against the catalog. Entries referencing unknown level ids are logged
// and skipped; indices of the remaining levels stay contiguous. An empty
// or fully-unresolved entry list yields an empty set.
func NewSet(def SetDefinition, catalog DefinitionCatalog, logger *log.Logger) *Set {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Set{def: def}

	index := 0
	for _, entry := range def.Entries {
		d, ok := catalog.Definition(entry.LevelID)
		if !ok {
			logger.Warn("skipping unresolved level reference",
				"set", def.ID, "levelId", entry.LevelID)
			continue
		}
		s.levels = append(s.levels, &Level{
			def:        d,
			difficulty: entry.Difficulty,
			index:      index,
		})
		index++
	}

	for i, lv := range s.levels {
		if i > 0 {
			lv.setPrevious(s.levels[i-1])
		}
		if i < len(s.levels)-1 {
			lv.setNext(s.levels[i+1])
		}
	}

	if len(s.levels) > 0 {
		s.first = s.levels[0]
		s.last = s.levels[len(s.levels)-1]
		s.current = s.first
	}

	return s
}

// ID returns the set definition's unique id.
func (s *Set) ID() string { return s.def.ID }

// Name returns the set's display name.
func (s *Set) Name() string { return s.def.Name }

// Description returns the set's description text.
func (s *Set) Description() string { return s.def.Description }

// CurrentLevel returns the set's current level. If current is unexpectedly
// unset it falls back to the first level; nil only for an empty set.
func (s *Set) CurrentLevel() *Level {
	if s.current != nil {
		return s.current
	}
	return s.first
}

// SetCurrentLevel moves the current position to the set's own level whose
// id matches the given level's id. Matching is by id, not by reference: a
// stale level from a previous reload, or a level from another set, is
// accepted as long as a level with that id exists here. Current is always
// re-pointed at this set's own element, never at the argument.
// Returns false (current unchanged) when no level with that id exists.
func (s *Set) SetCurrentLevel(l *Level) bool {
	if l == nil {
		return false
	}
	found := s.LevelByID(l.ID())
	if found == nil {
		return false
	}
	s.current = found
	return true
}

// SetCurrentLevelStrict is the reference-identity variant of
// SetCurrentLevel: it accepts only a level that is an element of this set,
// rejecting same-id levels from other sets or from before a reload.
func (s *Set) SetCurrentLevelStrict(l *Level) bool {
	if l == nil {
		return false
	}
	for _, lv := range s.levels {
		if lv == l {
			s.current = lv
			return true
		}
	}
	return false
}

// NextLevel advances the current position by one and returns the new
// current level. At the last level it returns nil and leaves the current
// position unchanged.
func (s *Set) NextLevel() *Level {
	cur := s.CurrentLevel()
	if cur == nil || cur.Next() == nil {
		return nil
	}
	s.current = cur.Next()
	return s.current
}

// First returns the first level of the set, or nil for an empty set.
func (s *Set) First() *Level { return s.first }

// Last returns the last level of the set, or nil for an empty set.
func (s *Set) Last() *Level { return s.last }

// Level returns the level at the given index, or nil when the index is
// out of range.
func (s *Set) Level(index int) *Level {
	if index < 0 || index >= len(s.levels) {
		return nil
	}
	return s.levels[index]
}

// LevelByID returns the level with the given id, or nil if absent.
func (s *Set) LevelByID(id string) *Level {
	for _, lv := range s.levels {
		if lv.ID() == id {
			return lv
		}
	}
	return nil
}

// LevelIndex returns the index of the set's level matching the given
// level's id, or -1 if absent.
func (s *Set) LevelIndex(l *Level) int {
	if l == nil {
		return -1
	}
	for i, lv := range s.levels {
		if lv.ID() == l.ID() {
			return i
		}
	}
	return -1
}

// AllLevels returns a snapshot copy of the set's levels in order.
// Mutating the returned slice does not affect the set.
func (s *Set) AllLevels() []*Level {
	out := make([]*Level, len(s.levels))
	copy(out, s.levels)
	return out
}

// IsEmpty reports whether the set has no levels.
func (s *Set) IsEmpty() bool { return len(s.levels) == 0 }

// Len returns the number of levels in the set.
func (s *Set) Len() int { return len(s.levels) }

// HasLevel reports whether a level with the given id exists in the set.
func (s *Set) HasLevel(id string) bool { return s.LevelByID(id) != nil }
