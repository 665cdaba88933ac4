package vtmachine_test

import (
	"os/exec"
	"testing"

	"github.com/creack/pty"

	"github.com/apparentlymart/vtmachine-go"
	"github.com/apparentlymart/vtmachine-go/internal/scalarstream"
)

// TestPtyProducesClassifiedEvents spawns a real shell under a pty and
// checks that its output, piped through scalarstream and a Machine,
// yields at least one Print event. It is a smoke test for the pipeline
// end to end, not a table of exact expected events: a shell's exact
// byte-for-byte output is not something this package controls.
func TestPtyProducesClassifiedEvents(t *testing.T) {
	cmd := exec.Command("/bin/sh", "-c", "printf 'hi\\n'")
	ptmx, err := pty.Start(cmd)
	if err != nil {
		t.Skipf("could not start a pty in this environment: %s", err)
	}
	defer ptmx.Close()

	m := vtmachine.New()
	var dec scalarstream.Decoder
	sawPrint := false

	h := vtmachine.HandlerFunc(func(e vtmachine.Event) {
		if e.Kind == vtmachine.EventPrint {
			sawPrint = true
		}
	})

	buf := make([]byte, 256)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			dec.Decode(buf[:n], func(r rune) {
				m.WriteHandler(r, h)
			})
		}
		if err != nil {
			break
		}
	}
	dec.Close(func(r rune) { m.WriteHandler(r, h) })
	m.WriteEndHandler(h)

	_ = cmd.Wait()

	if !sawPrint {
		t.Fatal("expected at least one Print event from the child's output")
	}
}
