package catalog

import (
	"context"
	"reflect"
	"testing"
)

func TestMemoryStoreEventSetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := sampleEventSet()
	if err := store.SaveEventSet(ctx, input); err != nil {
		t.Fatalf("save event set: %v", err)
	}

	output, ok, err := store.GetEventSet(ctx, input.ID)
	if err != nil {
		t.Fatalf("get event set: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted event set")
	}
	if !reflect.DeepEqual(input, output) {
		t.Fatalf("unexpected event set: %+v", output)
	}

	if _, ok, _ := store.GetEventSet(ctx, "missing"); ok {
		t.Fatal("missing id reported as present")
	}
}

func TestMemoryStoreFieldSetsByEventSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	a := sampleFieldSet()
	b := sampleFieldSet()
	b.ID = "fs-2"
	b.IMT = "SA(0.2)"
	other := sampleFieldSet()
	other.ID = "fs-3"
	other.EventSetID = "es-2"
	for _, fields := range []FieldSet{a, b, other} {
		if err := store.SaveFieldSet(ctx, fields); err != nil {
			t.Fatalf("save field set %s: %v", fields.ID, err)
		}
	}

	ids, err := store.ListFieldSets(ctx, "es-1")
	if err != nil {
		t.Fatalf("list field sets: %v", err)
	}
	if want := []string{"fs-1", "fs-2"}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("ListFieldSets = %v, want %v", ids, want)
	}

	output, ok, err := store.GetFieldSet(ctx, "fs-2")
	if err != nil || !ok {
		t.Fatalf("get field set: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(b, output) {
		t.Fatalf("unexpected field set: %+v", output)
	}
}

func TestMemoryStoreReset(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := store.SaveEventSet(ctx, sampleEventSet()); err != nil {
		t.Fatalf("save event set: %v", err)
	}
	if err := store.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	ids, err := store.ListEventSets(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("event sets survived reset: %v", ids)
	}
}

func TestMemoryStoreIsolatesStoredSlices(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := sampleEventSet()
	if err := store.SaveEventSet(ctx, input); err != nil {
		t.Fatalf("save event set: %v", err)
	}
	input.Events[0].Mag = 99

	output, _, err := store.GetEventSet(ctx, input.ID)
	if err != nil {
		t.Fatalf("get event set: %v", err)
	}
	if output.Events[0].Mag == 99 {
		t.Fatal("stored event set aliases caller slice")
	}
}
