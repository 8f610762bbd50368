package resource

import (
	"testing"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnResourceEvent(e Event) {
	o.events = append(o.events, e)
}

func TestTable_Basic(t *testing.T) {
	table := NewTable()

	h, err := table.Insert("UTF-8", "value")
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := table.Get(h)
	if !ok {
		t.Fatal("Get failed")
	}
	if val != "value" {
		t.Fatalf("Expected 'value', got %v", val)
	}

	name, ok := table.Name(h)
	if !ok || name != "UTF-8" {
		t.Fatalf("Name: got %q, %v", name, ok)
	}

	val, ok = table.Remove(h)
	if !ok {
		t.Fatal("Remove failed")
	}
	if val != "value" {
		t.Fatalf("Expected 'value', got %v", val)
	}

	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Remove")
	}
}

func TestTable_ZeroHandleInvalid(t *testing.T) {
	table := NewTable()
	if _, ok := table.Get(0); ok {
		t.Fatal("Get(0) should fail")
	}
	if _, ok := table.Remove(0); ok {
		t.Fatal("Remove(0) should fail")
	}
}

func TestTable_DoubleRemove(t *testing.T) {
	table := NewTable()
	h, _ := table.Insert("UTF-8", 1)

	if _, ok := table.Remove(h); !ok {
		t.Fatal("first Remove failed")
	}
	if _, ok := table.Remove(h); ok {
		t.Fatal("second Remove should fail")
	}
}

func TestTable_HandleReuse(t *testing.T) {
	table := NewTable()
	h1, _ := table.Insert("A", 1)
	table.Remove(h1)
	h2, _ := table.Insert("B", 2)

	if h2 != h1 {
		t.Fatalf("freed slot not reused: got %d, want %d", h2, h1)
	}
	if v, _ := table.Get(h2); v != 2 {
		t.Fatalf("reused slot holds %v", v)
	}
}

func TestTable_Observer(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	table.Subscribe(obs)

	h, _ := table.Insert("UTF-8", "x")
	if len(obs.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventOpened {
		t.Fatal("Expected EventOpened")
	}
	if obs.events[0].Handle != h || obs.events[0].Name != "UTF-8" {
		t.Fatal("Wrong handle or name in event")
	}

	table.Remove(h)
	if len(obs.events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(obs.events))
	}
	if obs.events[1].Type != EventClosed {
		t.Fatal("Expected EventClosed")
	}

	table.Unsubscribe(obs)
	table.Insert("UTF-8", "y")
	if len(obs.events) != 2 {
		t.Fatal("Should not receive events after Unsubscribe")
	}
}

func TestTable_Close(t *testing.T) {
	table := NewTable()
	table.Insert("A", 1)
	table.Insert("B", 2)

	var released []any
	if err := table.Close(func(v any) { released = append(released, v) }); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if len(released) != 2 {
		t.Fatalf("Expected 2 released values, got %d", len(released))
	}
	if table.Len() != 0 {
		t.Fatal("Expected empty table after Close")
	}

	if _, err := table.Insert("C", 3); err != ErrClosed {
		t.Fatalf("Insert after Close: got %v, want ErrClosed", err)
	}
}

func TestTable_Each(t *testing.T) {
	table := NewTable()
	table.Insert("A", 1)
	h, _ := table.Insert("B", 2)
	table.Insert("C", 3)
	table.Remove(h)

	seen := map[string]bool{}
	table.Each(func(_ Handle, name string, _ any) bool {
		seen[name] = true
		return true
	})
	if len(seen) != 2 || !seen["A"] || !seen["C"] {
		t.Fatalf("Each visited %v", seen)
	}

	count := 0
	table.Each(func(Handle, string, any) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("Each did not stop early: %d visits", count)
	}
}
