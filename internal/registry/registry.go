// Package registry provides a shared key-value blackboard for the game
// platform. Components publish small pieces of state (the active level set,
// cached settings, one-shot flags) that other components pick up between
// frames, without hardcoded dependencies between them.
package registry

import (
	"sort"
	"sync"
)

// Keys used by the progression and settings core. Collaborators outside this
// module may store additional keys; these are the ones the core owns.
const (
	KeyCurrentLevelSet = "currentLevelSet"     // *level.Set handle
	KeyLevelSetID      = "levelSetId"          // string
	KeyLoadNextLevel   = "loadNextLevel"       // bool, consume-once
	KeyLevelSetDirty   = "levelSetDirty"       // bool, consume-once
	KeySettingsDirty   = "settingsDirty"       // bool, consume-once
	KeySoundEffects    = "soundEffectsEnabled" // bool
	KeyPlayerColor     = "playerColor"         // string
)

// Registry is an in-memory blackboard. It is constructed explicitly by the
// composition root and passed by reference to anything needing it; there is
// no package-level instance.
type Registry struct {
	mu     sync.RWMutex
	values map[string]any
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		values: make(map[string]any),
	}
}

// Get returns the value stored under key and whether it was present.
func (r *Registry) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	return v, ok
}

// Set stores a value under key, replacing any previous value.
func (r *Registry) Set(key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
}

// Remove deletes the value stored under key, if any.
func (r *Registry) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
}

// Has reports whether a value is stored under key.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.values[key]
	return ok
}

// Bool returns the value under key if it is a bool. Absent or non-bool
// values read as false.
func (r *Registry) Bool(key string) bool {
	v, ok := r.Get(key)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// String returns the value under key if it is a string, with ok reporting
// whether a string was present.
func (r *Registry) String(key string) (string, bool) {
	v, ok := r.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// TakeBool reads and clears a consume-once flag. The key is removed whether
// or not it held a bool; a non-bool value reads as false. At most one caller
// observes a given raise.
func (r *Registry) TakeBool(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.values[key]
	if !ok {
		return false
	}
	delete(r.values, key)

	b, ok := v.(bool)
	return ok && b
}

// Keys returns all stored keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
