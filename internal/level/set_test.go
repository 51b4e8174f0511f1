package level

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// testCatalog resolves level ids from a plain map.
type testCatalog map[string]Definition

func (c testCatalog) Definition(id string) (Definition, bool) {
	d, ok := c[id]
	return d, ok
}

func catalogWith(ids ...string) testCatalog {
	c := make(testCatalog, len(ids))
	for i, id := range ids {
		c[id] = Definition{
			ID:       id,
			Name:     "Level " + id,
			GridSize: 6 + i,
		}
	}
	return c
}

func discard() *log.Logger {
	return log.New(io.Discard)
}

func buildSet(t *testing.T, ids ...string) *Set {
	t.Helper()

	entries := make([]SetEntry, len(ids))
	for i, id := range ids {
		entries[i] = SetEntry{LevelID: id, Difficulty: DifficultyEasy}
	}
	return NewSet(SetDefinition{ID: "test", Name: "Test", Entries: entries},
		catalogWith(ids...), discard())
}

func TestSetConstructionLinks(t *testing.T) {
	s := buildSet(t, "L1", "L2", "L3", "L4")

	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}

	for i := 0; i < s.Len(); i++ {
		if got := s.Level(i).Index(); got != i {
			t.Errorf("Level(%d).Index() = %d, want %d", i, got, i)
		}
	}

	if s.Level(0) != s.First() {
		t.Error("Level(0) should be First()")
	}
	if s.Level(s.Len()-1) != s.Last() {
		t.Error("Level(len-1) should be Last()")
	}
	if s.First().Previous() != nil {
		t.Error("First().Previous() should be nil")
	}
	if s.Last().Next() != nil {
		t.Error("Last().Next() should be nil")
	}

	for i := 0; i < s.Len()-1; i++ {
		if s.Level(i).Next() != s.Level(i+1) {
			t.Errorf("Level(%d).Next() should be Level(%d)", i, i+1)
		}
		if s.Level(i+1).Previous() != s.Level(i) {
			t.Errorf("Level(%d).Previous() should be Level(%d)", i+1, i)
		}
	}
}

func TestSingleLevelSet(t *testing.T) {
	s := buildSet(t, "only")

	if s.First() != s.Last() {
		t.Error("single-level set should have First() == Last()")
	}
	lv := s.First()
	if !lv.IsFirst() || !lv.IsLast() {
		t.Error("the only level should be both first and last")
	}
	if lv.Next() != nil || lv.Previous() != nil {
		t.Error("the only level should have no links")
	}
}

func TestEmptySet(t *testing.T) {
	s := NewSet(SetDefinition{ID: "empty"}, testCatalog{}, discard())

	if !s.IsEmpty() {
		t.Error("IsEmpty() should be true")
	}
	if s.First() != nil || s.Last() != nil || s.CurrentLevel() != nil {
		t.Error("empty set should have no first/last/current")
	}
	if s.NextLevel() != nil {
		t.Error("NextLevel() on empty set should be nil")
	}
}

func TestUnresolvedEntrySkipped(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	def := SetDefinition{
		ID: "mixed",
		Entries: []SetEntry{
			{LevelID: "L1", Difficulty: DifficultyEasy},
			{LevelID: "L2", Difficulty: DifficultyMedium},
			{LevelID: "nope", Difficulty: DifficultyHard},
			{LevelID: "L3", Difficulty: DifficultyHard},
		},
	}
	s := NewSet(def, catalogWith("L1", "L2", "L3"), logger)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	// Indices stay contiguous despite the skip
	wantIDs := []string{"L1", "L2", "L3"}
	for i, id := range wantIDs {
		lv := s.Level(i)
		if lv.ID() != id {
			t.Errorf("Level(%d).ID() = %q, want %q", i, lv.ID(), id)
		}
		if lv.Index() != i {
			t.Errorf("Level(%d).Index() = %d, want %d", i, lv.Index(), i)
		}
	}

	if got := strings.Count(buf.String(), "nope"); got != 1 {
		t.Errorf("expected exactly one warning for the unresolved id, got %d", got)
	}
}

func TestNextLevelWalk(t *testing.T) {
	s := buildSet(t, "L1", "L2", "L3")

	// Starts at first
	if s.CurrentLevel() != s.First() {
		t.Fatal("current should start at first")
	}

	visited := []*Level{s.CurrentLevel()}
	for {
		next := s.NextLevel()
		if next == nil {
			break
		}
		visited = append(visited, next)
	}

	if len(visited) != s.Len() {
		t.Fatalf("walk visited %d levels, want %d", len(visited), s.Len())
	}
	for i, lv := range visited {
		if lv != s.Level(i) {
			t.Errorf("walk position %d visited %q, want %q", i, lv.ID(), s.Level(i).ID())
		}
	}

	// At the end: nil forever, current stays at last
	for i := 0; i < 3; i++ {
		if s.NextLevel() != nil {
			t.Error("NextLevel() past the end should stay nil")
		}
	}
	if s.CurrentLevel() != s.Last() {
		t.Error("current should remain at last after exhausting the set")
	}
}

func TestSetCurrentLevelByID(t *testing.T) {
	s := buildSet(t, "L1", "L2", "L3")

	if !s.SetCurrentLevel(s.Level(2)) {
		t.Fatal("SetCurrentLevel() with an own level should succeed")
	}
	if s.CurrentLevel() != s.Level(2) {
		t.Error("current should move to the requested level")
	}

	// A foreign level with a matching id is accepted, but current points
	// at this set's own element.
	other := buildSet(t, "L1", "L2", "L3")
	if !s.SetCurrentLevel(other.Level(0)) {
		t.Fatal("SetCurrentLevel() with a matching-id foreign level should succeed")
	}
	if s.CurrentLevel() != s.Level(0) {
		t.Error("current should point at this set's own element, not the argument")
	}

	// Absent id: rejected, current unchanged
	stranger := buildSet(t, "elsewhere")
	if s.SetCurrentLevel(stranger.First()) {
		t.Error("SetCurrentLevel() with an absent id should fail")
	}
	if s.CurrentLevel() != s.Level(0) {
		t.Error("current should be unchanged after a rejected SetCurrentLevel()")
	}

	if s.SetCurrentLevel(nil) {
		t.Error("SetCurrentLevel(nil) should fail")
	}
}

func TestSetCurrentLevelStrict(t *testing.T) {
	s := buildSet(t, "L1", "L2")
	other := buildSet(t, "L1", "L2")

	if s.SetCurrentLevelStrict(other.Level(1)) {
		t.Error("strict variant should reject a matching-id foreign level")
	}
	if !s.SetCurrentLevelStrict(s.Level(1)) {
		t.Error("strict variant should accept the set's own element")
	}
	if s.CurrentLevel() != s.Level(1) {
		t.Error("current should move to the accepted element")
	}
}

func TestLevelLookups(t *testing.T) {
	s := buildSet(t, "L1", "L2", "L3")

	if s.Level(-1) != nil || s.Level(3) != nil {
		t.Error("out-of-range Level() should be nil")
	}

	if lv := s.LevelByID("L2"); lv == nil || lv.ID() != "L2" {
		t.Error("LevelByID() should find a present id")
	}
	if s.LevelByID("nope") != nil {
		t.Error("LevelByID() should be nil for an absent id")
	}

	if got := s.LevelIndex(s.Level(2)); got != 2 {
		t.Errorf("LevelIndex() = %d, want 2", got)
	}
	foreign := buildSet(t, "elsewhere")
	if got := s.LevelIndex(foreign.First()); got != -1 {
		t.Errorf("LevelIndex() for an absent level = %d, want -1", got)
	}
	if got := s.LevelIndex(nil); got != -1 {
		t.Errorf("LevelIndex(nil) = %d, want -1", got)
	}

	if !s.HasLevel("L1") || s.HasLevel("nope") {
		t.Error("HasLevel() should reflect membership")
	}
}

func TestAllLevelsSnapshot(t *testing.T) {
	s := buildSet(t, "L1", "L2")

	a := s.AllLevels()
	b := s.AllLevels()

	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("snapshots have %d and %d levels, want 2", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Error("snapshots should have equal contents")
		}
	}

	// Mutating a snapshot must not affect the set
	a[0] = nil
	if s.Level(0) == nil || s.Level(0).ID() != "L1" {
		t.Error("mutating the snapshot changed the set")
	}
}

func TestLevelAccessors(t *testing.T) {
	catalog := testCatalog{
		"maze": {
			ID:           "maze",
			Name:         "The Maze",
			Description:  "Walls everywhere",
			GridSize:     8,
			BlockedCells: []Cell{{Row: 2, Col: 3}, {Row: 5, Col: 5}},
		},
	}
	def := SetDefinition{
		ID:      "solo",
		Entries: []SetEntry{{LevelID: "maze", Difficulty: DifficultyExpert}},
	}
	lv := NewSet(def, catalog, discard()).First()

	if lv.ID() != "maze" || lv.Name() != "The Maze" || lv.Description() != "Walls everywhere" {
		t.Error("definition accessors should pass through")
	}
	if lv.GridSize() != 8 {
		t.Errorf("GridSize() = %d, want 8", lv.GridSize())
	}
	if len(lv.BlockedCells()) != 2 || lv.BlockedCells()[0] != (Cell{Row: 2, Col: 3}) {
		t.Errorf("BlockedCells() = %v", lv.BlockedCells())
	}
	if lv.AIDifficulty() != DifficultyExpert {
		t.Errorf("AIDifficulty() = %q, want expert", lv.AIDifficulty())
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		in    string
		want  Difficulty
		valid bool
	}{
		{"easy", DifficultyEasy, true},
		{"medium", DifficultyMedium, true},
		{"hard", DifficultyHard, true},
		{"expert", DifficultyExpert, true},
		{"nightmare", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		got, ok := ParseDifficulty(c.in)
		if ok != c.valid || got != c.want {
			t.Errorf("ParseDifficulty(%q) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.valid)
		}
	}

	if !DifficultyHard.Valid() || Difficulty("nope").Valid() {
		t.Error("Valid() should reflect the defined set")
	}
}
