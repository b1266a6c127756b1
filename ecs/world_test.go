package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/animateguy/ecs/component"
)

type testPos struct{ X, Y float64 }

type testName string

type testTag struct{}

var (
	posKind  = component.NewComponentKind[testPos]()
	nameKind = component.NewComponentKind[testName]()
	tagKind  = component.NewComponentKind[testTag]()
)

func mustAdd[T any](t *testing.T, w *World, e Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := Add(w, e, kind, v); err != nil {
		t.Fatalf("Add to %s: %v", e, err)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	dead := w.CreateEntity()
	w.DestroyEntity(dead)

	tests := []struct {
		name string
		add  func() error
		want error
	}{
		{"nil_value", func() error { return Add[testPos](w, e, posKind, nil) }, component.ErrNilComponent},
		{"zero_kind", func() error {
			var zero component.ComponentKind[testPos]
			return Add(w, e, zero, &testPos{})
		}, component.ErrInvalidComponentKind},
		{"dead_entity", func() error { return Add(w, dead, posKind, &testPos{}) }, component.ErrEntityNotAlive},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.add(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if Has(w, e, posKind) {
		t.Fatalf("rejected adds must not store anything")
	}
}

func TestGetReturnsStoredPointer(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	pos := &testPos{X: 1}
	mustAdd(t, w, e, posKind, pos)

	got, ok := Get(w, e, posKind)
	if !ok || got != pos {
		t.Fatalf("expected the stored pointer back, got %v ok=%v", got, ok)
	}
	got.X = 7
	if again, _ := Get(w, e, posKind); again.X != 7 {
		t.Fatalf("mutation through Get was lost")
	}
	if _, ok := Get(w, e, nameKind); ok {
		t.Fatalf("entity has no name component")
	}

	replacement := &testPos{Y: 3}
	mustAdd(t, w, e, posKind, replacement)
	if got, _ := Get(w, e, posKind); got != replacement {
		t.Fatalf("second Add should replace the component")
	}
}

func TestEntityRecycling(t *testing.T) {
	w := NewWorld()
	old := w.CreateEntity()
	mustAdd(t, w, old, posKind, &testPos{})

	if !w.DestroyEntity(old) {
		t.Fatalf("destroying a live entity should succeed")
	}
	if w.DestroyEntity(old) {
		t.Fatalf("destroying twice should report false")
	}

	reused := w.CreateEntity()
	if reused.id() != old.id() || reused.generation() != old.generation()+1 {
		t.Fatalf("expected slot %s to come back one generation later, got %s", old, reused)
	}
	if w.IsAlive(old) || !w.IsAlive(reused) {
		t.Fatalf("only the new handle may be alive")
	}
	if Has(w, reused, posKind) {
		t.Fatalf("recycled slot must start without components")
	}
	if _, ok := Get(w, old, posKind); ok {
		t.Fatalf("stale handle must not resolve")
	}
}

func TestQueryAndFirst(t *testing.T) {
	w := NewWorld()
	named := w.CreateEntity()
	both := w.CreateEntity()
	mustAdd(t, w, named, nameKind, ptr(testName("bg")))
	mustAdd(t, w, both, nameKind, ptr(testName("guy")))
	mustAdd(t, w, both, posKind, &testPos{})

	if got := w.Query(nameKind); len(got) != 2 {
		t.Fatalf("expected two named entities, got %v", got)
	}
	if got := w.Query(posKind, nameKind); len(got) != 1 || got[0] != both {
		t.Fatalf("expected only %s, got %v", both, got)
	}
	if e, ok := w.First(posKind); !ok || e != both {
		t.Fatalf("First(pos) = %s ok=%v", e, ok)
	}
	if _, ok := w.First(tagKind); ok {
		t.Fatalf("no entity carries the tag")
	}
	if w.Query() != nil {
		t.Fatalf("an empty query matches nothing")
	}

	w.DestroyEntity(both)
	if _, ok := w.First(posKind); ok {
		t.Fatalf("destroyed entity still matched")
	}
}

func TestForEachVisitsMatches(t *testing.T) {
	w := NewWorld()
	full := w.CreateEntity()
	partial := w.CreateEntity()
	mustAdd(t, w, full, posKind, &testPos{X: 2})
	mustAdd(t, w, full, nameKind, ptr(testName("guy")))
	mustAdd(t, w, full, tagKind, &testTag{})
	mustAdd(t, w, partial, posKind, &testPos{X: 5})
	mustAdd(t, w, partial, nameKind, ptr(testName("bg")))

	var xs float64
	ForEach(w, posKind, func(_ Entity, p *testPos) { xs += p.X })
	if xs != 7 {
		t.Fatalf("ForEach summed %v, want 7", xs)
	}

	var pairs int
	ForEach2(w, posKind, nameKind, func(_ Entity, p *testPos, _ *testName) {
		p.Y++
		pairs++
	})
	if pairs != 2 {
		t.Fatalf("ForEach2 visited %d, want 2", pairs)
	}
	if p, _ := Get(w, partial, posKind); p.Y != 1 {
		t.Fatalf("ForEach2 writes should land in the store, got %+v", p)
	}

	var seen []Entity
	ForEach3(w, posKind, nameKind, tagKind, func(e Entity, _ *testPos, n *testName, _ *testTag) {
		if *n != "guy" {
			t.Fatalf("unexpected name %q", *n)
		}
		seen = append(seen, e)
	})
	if len(seen) != 1 || seen[0] != full {
		t.Fatalf("ForEach3 visited %v, want [%s]", seen, full)
	}
}

func TestWorldRunsSystemsInOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	w.AddSystem(systemFunc(func(*World) { order = append(order, "clock") }))
	w.AddSystem(nil)
	w.AddSystem(systemFunc(func(*World) { order = append(order, "character") }))
	w.AddSystem(systemFunc(func(*World) { order = append(order, "physics") }))

	w.Update()
	w.Update()

	want := []string{"clock", "character", "physics", "clock", "character", "physics"}
	if len(order) != len(want) {
		t.Fatalf("unexpected order %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("step %d ran %q, want %q", i, order[i], want[i])
		}
	}
}

type systemFunc func(*World)

func (f systemFunc) Update(w *World) { f(w) }

func ptr[T any](v T) *T { return &v }
