package vtmachine_test

import (
	"reflect"
	"testing"

	"github.com/apparentlymart/vtmachine-go"
)

func TestVtParamsFromSliceRejectsOversized(t *testing.T) {
	from := make([]uint16, 17)
	if _, err := vtmachine.VtParamsFromSlice(from); err == nil {
		t.Fatal("expected an error for 17 params, got nil")
	}
}

func TestVtParamsPushDigitDefaultsToZero(t *testing.T) {
	// The parser sees no digits before ';'.
	m := vtmachine.New()
	var got []uint16
	for _, r := range "\x1b[;m" {
		buf := m.Write(r)
		for _, e := range buf.Events() {
			if e.Kind == vtmachine.EventDispatchCsi {
				got = e.Params.Values()
			}
		}
	}
	if !reflect.DeepEqual(got, []uint16{0}) {
		t.Fatalf("Values() = %v, want [0]", got)
	}
}

func TestVtParamsClear(t *testing.T) {
	var p vtmachine.VtParams
	p.Push(42)
	p.Push(7)
	p.Clear()
	if n := p.Len(); n != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", n)
	}
}
