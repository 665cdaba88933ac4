package vtmachine_test

import (
	"testing"

	"github.com/apparentlymart/vtmachine-go"
)

func TestVtIntermediatesFromSliceRejectsOversized(t *testing.T) {
	if _, err := vtmachine.VtIntermediatesFromSlice([]byte{'a', 'b', 'c'}); err == nil {
		t.Fatal("expected an error for 3 intermediates, got nil")
	}
}

func TestVtIntermediatesOverrunFreezesContents(t *testing.T) {
	var v vtmachine.VtIntermediates
	v.Push('a')
	v.Push('b')
	v.Push('c') // overruns
	v.Push('d') // still overrun; still discarded

	if !v.HasOverrun() {
		t.Fatal("HasOverrun() = false, want true")
	}
	if got, want := string(v.Bytes()), "ab"; got != want {
		t.Fatalf("Bytes() = %q, want %q", got, want)
	}
}

func TestVtIntermediatesClearResetsOverrun(t *testing.T) {
	var v vtmachine.VtIntermediates
	v.Push('a')
	v.Push('b')
	v.Push('c')
	v.Clear()
	if v.HasOverrun() {
		t.Fatal("HasOverrun() = true after Clear, want false")
	}
	if n := v.Len(); n != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", n)
	}
}
