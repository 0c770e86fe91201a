package component

import (
	"context"
	"errors"
	"testing"
)

// fakeComponent records lifecycle calls for registry tests.
type fakeComponent struct {
	name     string
	startErr error
	stopErr  error
	events   *[]string
}

func (f *fakeComponent) Name() string { return f.name }

func (f *fakeComponent) Start(_ context.Context) error {
	*f.events = append(*f.events, "start:"+f.name)
	return f.startErr
}

func (f *fakeComponent) Stop(_ context.Context) error {
	*f.events = append(*f.events, "stop:"+f.name)
	return f.stopErr
}

func (f *fakeComponent) Health(_ context.Context) Health {
	return Health{Name: f.name, Status: StatusHealthy}
}

func TestRegistryStartStopOrder(t *testing.T) {
	var events []string
	r := NewRegistry(nil)
	if err := r.Register(&fakeComponent{name: "a", events: &events}); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(&fakeComponent{name: "b", events: &events}); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if err := r.StartAll(ctx); err != nil {
		t.Fatalf("StartAll: %v", err)
	}
	if err := r.StopAll(ctx); err != nil {
		t.Fatalf("StopAll: %v", err)
	}

	want := []string{"start:a", "start:b", "stop:b", "stop:a"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %s, want %s", i, events[i], want[i])
		}
	}
}

func TestRegistryDuplicateName(t *testing.T) {
	var events []string
	r := NewRegistry(nil)
	_ = r.Register(&fakeComponent{name: "dup", events: &events})
	if err := r.Register(&fakeComponent{name: "dup", events: &events}); err == nil {
		t.Error("expected duplicate registration error")
	}
}

func TestRegistryStartFailureRollsBack(t *testing.T) {
	var events []string
	r := NewRegistry(nil)
	_ = r.Register(&fakeComponent{name: "ok", events: &events})
	_ = r.Register(&fakeComponent{name: "bad", startErr: errors.New("boom"), events: &events})

	if err := r.StartAll(context.Background()); err == nil {
		t.Fatal("expected StartAll failure")
	}

	// The successfully started component must have been stopped.
	found := false
	for _, e := range events {
		if e == "stop:ok" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected rollback stop of started component, events: %v", events)
	}
}

func TestRegistryHealthAll(t *testing.T) {
	var events []string
	r := NewRegistry(nil)
	_ = r.Register(&fakeComponent{name: "a", events: &events})
	_ = r.Register(&fakeComponent{name: "b", events: &events})

	healths := r.HealthAll(context.Background())
	if len(healths) != 2 {
		t.Fatalf("expected 2 health entries, got %d", len(healths))
	}
	for _, h := range healths {
		if h.Status != StatusHealthy {
			t.Errorf("%s: unexpected status %s", h.Name, h.Status)
		}
	}
}
