package registry

import (
	"reflect"
	"testing"
)

func TestRegistry(t *testing.T) {
	r := New[int]()
	r.Register("stone", 1)
	r.Register("platform", 2)

	if got := r.Names(); !reflect.DeepEqual(got, []string{"platform", "stone"}) {
		t.Errorf("Names() = %v", got)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", r.Len())
	}

	v, err := r.Get("stone")
	if err != nil || v != 1 {
		t.Errorf("Get(stone) = %d, %v", v, err)
	}
	if _, err := r.Get("cliff"); err == nil {
		t.Error("Get of an unknown name should fail")
	}
	if !r.Exists("platform") || r.Exists("cliff") {
		t.Error("Exists() mismatch")
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := New[string]()
	r.Register("a", "first")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	r.Register("a", "second")
}
