package vtmachine_test

import (
	"reflect"
	"testing"

	"github.com/apparentlymart/vtmachine-go"
	"github.com/apparentlymart/vtmachine-go/internal/vtfixtures"
)

func collectAll(m *vtmachine.Machine, s string) []vtmachine.Event {
	var got []vtmachine.Event
	for _, r := range s {
		buf := m.Write(r)
		got = append(got, buf.Events()...)
	}
	buf := m.WriteEnd()
	got = append(got, buf.Events()...)
	return got
}

func TestScenarios(t *testing.T) {
	for _, sc := range vtfixtures.Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			m := vtmachine.New()
			got := collectAll(m, sc.Input)
			if !reflect.DeepEqual(got, sc.Expected) {
				t.Errorf("events mismatch\n got:  %v\n want: %v", got, sc.Expected)
			}
		})
	}
}

func TestThroughHandler(t *testing.T) {
	m := vtmachine.New()
	var got []vtmachine.Event
	h := vtmachine.HandlerFunc(func(e vtmachine.Event) {
		got = append(got, e)
	})
	for _, r := range "a\x1b[1mb" {
		m.WriteHandler(r, h)
	}
	m.WriteEndHandler(h)

	want := []vtmachine.Event{
		{Kind: vtmachine.EventPrint, Rune: 'a'},
		{Kind: vtmachine.EventPrintEnd},
		{Kind: vtmachine.EventDispatchCsi, Cmd: 'm', Params: mustParams(t, 1)},
		{Kind: vtmachine.EventPrint, Rune: 'b'},
		{Kind: vtmachine.EventPrintEnd},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events mismatch\n got:  %v\n want: %v", got, want)
	}
}

func TestWriteEndFromLiteralIsIdempotent(t *testing.T) {
	m := vtmachine.New()
	buf := m.WriteEnd()
	if buf.Len() != 0 {
		t.Fatalf("WriteEnd from a fresh Machine produced %d events, want 0", buf.Len())
	}
	if m.State() != vtmachine.StateLiteral {
		t.Fatalf("state = %s, want Literal", m.State())
	}
}

func TestErrorSelfRepairs(t *testing.T) {
	m := vtmachine.New()
	// ESC followed by a non-ASCII scalar is invalid in state Escape.
	m.Write(0x1b)
	buf := m.Write('é') // 'é', outside the valid Escape continuation set
	events := buf.Events()
	if len(events) != 1 || events[0].Kind != vtmachine.EventError {
		t.Fatalf("events = %v, want a single Error event", events)
	}
	if m.State() != vtmachine.StateLiteral {
		t.Fatalf("state after Error = %s, want Literal", m.State())
	}
	// The machine must be immediately usable again.
	buf2 := m.Write('x')
	if got := buf2.Events(); len(got) != 1 || got[0].Kind != vtmachine.EventPrint {
		t.Fatalf("events after recovery = %v, want a single Print", got)
	}
}

func TestParamsTruncateAt16(t *testing.T) {
	m := vtmachine.New()
	var last vtmachine.Event
	for _, r := range "\x1b[1;2;3;4;5;6;7;8;9;10;11;12;13;14;15;16;17;18m" {
		buf := m.Write(r)
		for _, e := range buf.Events() {
			if e.Kind == vtmachine.EventDispatchCsi {
				last = e
			}
		}
	}
	if n := last.Params.Len(); n != 16 {
		t.Fatalf("params len = %d, want 16", n)
	}
}

func TestIntermediateOverrunFlag(t *testing.T) {
	m := vtmachine.New()
	var last vtmachine.Event
	// Three intermediates (each 0x20) before the final byte: the third
	// push overruns the 2-slot buffer.
	for _, r := range "\x1b   m" { // ESC, space, space, space, 'm'
		buf := m.Write(r)
		for _, e := range buf.Events() {
			if e.Kind == vtmachine.EventDispatchEsc {
				last = e
			}
		}
	}
	if !last.Intermediates.HasOverrun() {
		t.Fatalf("intermediates = %v, want HasOverrun true", last.Intermediates)
	}
	if n := last.Intermediates.Len(); n != 2 {
		t.Fatalf("intermediates len = %d, want 2 (capped)", n)
	}
}

func TestDcsLifecycle(t *testing.T) {
	m := vtmachine.New()
	var got []vtmachine.Event
	h := vtmachine.HandlerFunc(func(e vtmachine.Event) { got = append(got, e) })
	for _, r := range "\x1bPq1;2hi\u009c" {
		m.WriteHandler(r, h)
	}

	if got[0].Kind != vtmachine.EventDcsStart || got[0].Cmd != 'q' {
		t.Fatalf("first event = %v, want DcsStart{cmd:'q'}", got[0])
	}
	for _, e := range got[1 : len(got)-1] {
		if e.Kind != vtmachine.EventDcsChar {
			t.Fatalf("middle event = %v, want DcsChar", e)
		}
	}
	last := got[len(got)-1]
	if last.Kind != vtmachine.EventDcsEnd {
		t.Fatalf("last event = %v, want DcsEnd", last)
	}
}

func mustParams(t *testing.T, vs ...uint16) vtmachine.VtParams {
	t.Helper()
	p, err := vtmachine.VtParamsFromSlice(vs)
	if err != nil {
		t.Fatal(err)
	}
	return p
}
