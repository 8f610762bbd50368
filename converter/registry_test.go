package converter

import (
	"testing"

	"github.com/wippyai/charset-runtime/resource"
)

type recordingObserver struct {
	events []resource.Event
}

func (r *recordingObserver) OnResourceEvent(ev resource.Event) {
	r.events = append(r.events, ev)
}

func TestRegistry_OpenGetClose(t *testing.T) {
	reg := NewRegistry()

	h, err := reg.Open("utf8")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if h == 0 {
		t.Fatal("handle 0 returned for a successful open")
	}
	if reg.Len() != 1 {
		t.Fatalf("len = %d, want 1", reg.Len())
	}

	conv, err := reg.Get(h)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if conv.Name() != "UTF-8" {
		t.Fatalf("name = %q", conv.Name())
	}

	if err := reg.Close(h); err != nil {
		t.Fatalf("close: %v", err)
	}
	if reg.Len() != 0 {
		t.Fatalf("len after close = %d", reg.Len())
	}
}

func TestRegistry_InvalidHandles(t *testing.T) {
	reg := NewRegistry()

	if _, err := reg.Get(0); err == nil {
		t.Error("get(0) should fail")
	}
	if _, err := reg.Get(42); err == nil {
		t.Error("get of never-issued handle should fail")
	}

	h, err := reg.Open("UTF-8")
	if err != nil {
		t.Fatal(err)
	}
	if err := reg.Close(h); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := reg.Close(h); err == nil {
		t.Error("second close should fail")
	}
	if _, err := reg.Get(h); err == nil {
		t.Error("get after close should fail")
	}
}

func TestRegistry_OpenUnknownEncoding(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Open("X-NO-SUCH-CHARSET"); err == nil {
		t.Fatal("expected error")
	}
	if reg.Len() != 0 {
		t.Fatalf("failed open leaked an entry: len = %d", reg.Len())
	}
}

func TestRegistry_Observer(t *testing.T) {
	reg := NewRegistry()
	obs := &recordingObserver{}
	reg.Subscribe(obs)

	h, err := reg.Open("Shift_JIS")
	if err != nil {
		t.Fatal(err)
	}
	if err := reg.Close(h); err != nil {
		t.Fatal(err)
	}

	if len(obs.events) != 2 {
		t.Fatalf("got %d events, want 2", len(obs.events))
	}
	if obs.events[0].Type != resource.EventOpened || obs.events[0].Handle != h {
		t.Fatalf("first event: %+v", obs.events[0])
	}
	if obs.events[1].Type != resource.EventClosed || obs.events[1].Name != "Shift_JIS" {
		t.Fatalf("second event: %+v", obs.events[1])
	}

	reg.Unsubscribe(obs)
	if _, err := reg.Open("UTF-8"); err != nil {
		t.Fatal(err)
	}
	if len(obs.events) != 2 {
		t.Fatalf("unsubscribed observer still notified: %d events", len(obs.events))
	}
}

func TestRegistry_CloseAll(t *testing.T) {
	reg := NewRegistry()
	h1, _ := reg.Open("UTF-8")
	h2, _ := reg.Open("EUC-KR")

	if err := reg.CloseAll(); err != nil {
		t.Fatalf("close all: %v", err)
	}
	if reg.Len() != 0 {
		t.Fatalf("len = %d after CloseAll", reg.Len())
	}
	if _, err := reg.Get(h1); err == nil {
		t.Error("handle survived CloseAll")
	}
	if _, err := reg.Get(h2); err == nil {
		t.Error("handle survived CloseAll")
	}
	if _, err := reg.Open("UTF-8"); err == nil {
		t.Error("open after CloseAll should fail")
	}
}
