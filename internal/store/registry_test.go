package store

import (
	"testing"

	"tasktidy/internal/model"
)

func TestRegistry_NameOf(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	tests := map[string]string{
		"1":  "All Tasks",
		"2":  "Work",
		"3":  "Personal",
		"4":  "Other",
		"":   "Unknown",
		"42": "Unknown",
	}
	for id, want := range tests {
		if got := r.NameOf(id); got != want {
			t.Fatalf("NameOf(%q): want %q, got %q", id, want, got)
		}
	}
}

func TestRegistry_AssignableExcludesAggregate(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	for _, c := range r.Assignable() {
		if IsAggregate(c.ID) {
			t.Fatalf("aggregate category offered as assignable: %#v", c)
		}
	}
	if got := len(r.Assignable()); got != len(r.All())-1 {
		t.Fatalf("expected %d assignable categories, got %d", len(r.All())-1, got)
	}
}

func TestRegistry_IsImmutable(t *testing.T) {
	t.Parallel()

	src := []model.Category{{ID: "1", Name: "All Tasks"}, {ID: "9", Name: "Errands"}}
	r := NewRegistry(src)
	src[1].Name = "changed"
	all := r.All()
	all[0].Name = "changed too"

	if got := r.NameOf("9"); got != "Errands" {
		t.Fatalf("registry changed through source slice: %q", got)
	}
	if got := r.NameOf("1"); got != "All Tasks" {
		t.Fatalf("registry changed through All() result: %q", got)
	}
	if !r.Has("9") || r.Has("2") {
		t.Fatalf("Has returned unexpected results")
	}
}
