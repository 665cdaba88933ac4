// Command vtreport reads a control stream and prints the classified
// events it produces, one per line. By default it decodes stdin as
// UTF-8; -spawn instead runs a command under a pty and reports the
// events its output stream generates. It is the Go rewrite of a similar
// report tool from the Rust crate this machine is ported from, extended
// with raw-terminal and pty-spawn modes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/apparentlymart/vtmachine-go"
	"github.com/apparentlymart/vtmachine-go/internal/scalarstream"
)

func main() {
	rawFlag := flag.Bool("raw", false, "put stdin in raw mode before reading (only with the default stdin source)")
	spawnFlag := flag.String("spawn", "", "run this command under a pty and report the events its output produces")
	debugFlag := flag.Bool("debug", false, "trace every state transition to stdout, alongside the events")
	flag.Parse()

	logger := vtmachine.NewLogger(*debugFlag)

	var err error
	if *spawnFlag != "" {
		err = runSpawn(*spawnFlag, flag.Args(), logger)
	} else {
		err = runStdin(*rawFlag, logger)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vtreport: %s\n", err)
		os.Exit(1)
	}
}

func runStdin(raw bool, logger *vtmachine.Logger) error {
	fd := int(os.Stdin.Fd())
	if raw {
		if !term.IsTerminal(fd) {
			return fmt.Errorf("-raw requires stdin to be a terminal")
		}
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("putting stdin in raw mode: %w", err)
		}
		defer term.Restore(fd, oldState)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			term.Restore(fd, oldState)
			os.Exit(130)
		}()
	}

	return report(os.Stdin, vtmachine.NewWithLogger(logger))
}

func runSpawn(name string, args []string, logger *vtmachine.Logger) error {
	cmd := exec.Command(name, args...)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("spawning %s under a pty: %w", name, err)
	}
	defer ptmx.Close()

	if term.IsTerminal(int(os.Stdin.Fd())) {
		if oldState, err := term.MakeRaw(int(os.Stdin.Fd())); err == nil {
			defer term.Restore(int(os.Stdin.Fd()), oldState)
		}
		if err := pty.InheritSize(os.Stdin, ptmx); err != nil {
			logger.Warn("inheriting terminal size: %s", err)
		}
	}

	return report(ptmx, vtmachine.NewWithLogger(logger))
}

// report feeds r's bytes through a UTF-8 decoder and then the machine,
// printing one line per event until r is exhausted.
func report(r io.Reader, m *vtmachine.Machine) error {
	var dec scalarstream.Decoder
	buf := make([]byte, 4096)

	h := vtmachine.HandlerFunc(func(e vtmachine.Event) {
		fmt.Println(e.String())
	})

	for {
		n, err := r.Read(buf)
		if n > 0 {
			dec.Decode(buf[:n], func(scalar rune) {
				m.WriteHandler(scalar, h)
			})
		}
		if err == io.EOF {
			dec.Close(func(scalar rune) {
				m.WriteHandler(scalar, h)
			})
			m.WriteEndHandler(h)
			return nil
		}
		if err != nil {
			return err
		}
	}
}
