// Package level implements the level progression core for the dots game:
// immutable level definitions, ordered level sets with a movable "current"
// position, and the manager that resolves which set is active.
package level

// Cell is a zero-indexed (row, col) coordinate on the game grid.
type Cell struct {
	Row int
	Col int
}

// Definition is an immutable level description supplied by the catalog.
// Blocked cells are validated at authoring time (in bounds, no duplicates,
// grid stays connected); this core trusts them as given.
type Definition struct {
	ID           string
	Name         string
	Description  string
	GridSize     int
	BlockedCells []Cell
}

// Level is a playable position within a Set: a definition paired with the
// AI difficulty for this playthrough and links to its neighbors. Levels are
// created and linked exclusively by their owning Set; after construction
// only the set's "current" bookkeeping changes.
type Level struct {
	def        Definition
	difficulty Difficulty
	index      int
	next       *Level
	prev       *Level
}

// ID returns the level definition's unique id.
func (l *Level) ID() string { return l.def.ID }

// Name returns the level's display name.
func (l *Level) Name() string { return l.def.Name }

// Description returns the level's description text.
func (l *Level) Description() string { return l.def.Description }

// GridSize returns the side length of the level's grid.
func (l *Level) GridSize() int { return l.def.GridSize }

// BlockedCells returns the level's blocked cell coordinates.
func (l *Level) BlockedCells() []Cell { return l.def.BlockedCells }

// AIDifficulty returns the difficulty assigned at set construction.
func (l *Level) AIDifficulty() Difficulty { return l.difficulty }

// Index returns the level's zero-based position within its owning set.
func (l *Level) Index() int { return l.index }

// Next returns the following level in the set, or nil for the last level.
func (l *Level) Next() *Level { return l.next }

// Previous returns the preceding level in the set, or nil for the first level.
func (l *Level) Previous() *Level { return l.prev }

// IsFirst reports whether this is the first level of its set.
func (l *Level) IsFirst() bool { return l.prev == nil }

// IsLast reports whether this is the last level of its set.
func (l *Level) IsLast() bool { return l.next == nil }

func (l *Level) setNext(n *Level)     { l.next = n }
func (l *Level) setPrevious(p *Level) { l.prev = p }
