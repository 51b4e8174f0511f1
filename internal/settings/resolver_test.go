package settings

import "testing"

type mapBackend map[string]any

func (b mapBackend) lookup(key string) (any, bool) {
	v, ok := b[key]
	return v, ok
}

func TestResolverFirstDefinedWins(t *testing.T) {
	r := resolver{backends: []backend{
		mapBackend{"a": 1},
		mapBackend{"a": 2, "b": 2},
		mapBackend{"a": 3, "b": 3, "c": 3},
	}}

	cases := map[string]int{"a": 1, "b": 2, "c": 3}
	for key, want := range cases {
		v, ok := r.resolve(key)
		if !ok || v != want {
			t.Errorf("resolve(%q) = %v, %v; want %d", key, v, ok, want)
		}
	}

	if _, ok := r.resolve("d"); ok {
		t.Error("a key defined by no tier should resolve as absent")
	}
}

func TestDefaultsBackendCoversSchema(t *testing.T) {
	var d defaultsBackend
	for _, key := range Keys() {
		if _, ok := d.lookup(key); !ok {
			t.Errorf("defaults tier should define %q", key)
		}
	}
	if _, ok := d.lookup("volume"); ok {
		t.Error("defaults tier should not define keys outside the schema")
	}
}

func TestCoercions(t *testing.T) {
	if !asBool(true) || asBool(false) {
		t.Error("native bools should pass through")
	}
	if !asBool("true") {
		t.Error(`"true" should read as true`)
	}
	if asBool("garbage") || asBool("TRUE") || asBool(nil) {
		t.Error("anything but the literal true should read as false")
	}

	if asString("blue") != "blue" || asString(42) != "" {
		t.Error("asString should pass strings through and reject the rest")
	}
}
