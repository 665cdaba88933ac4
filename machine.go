// Package vtmachine implements a Unicode-native terminal control-stream
// parser: a 14-state automaton, adapted from Paul Flo Williams's parser
// for DEC ANSI-compatible video terminals and extended to accept C1
// controls (0x80-0x9F) directly as entry points, that classifies a
// stream of Unicode scalar values into printable characters, control
// codes, control sequences, escape sequences, device control strings,
// operating-system commands, and errors.
//
// The machine itself maintains no screen buffer, cursor, colour state,
// or tab stops, and does not decode bytes into scalars — callers feed it
// scalars already produced by a UTF-8 decoder (internal/scalarstream, or
// any equivalent that replaces invalid sequences with U+FFFD).
package vtmachine

// Machine is a single instance of the control-stream state machine. It
// is not safe for concurrent use; each Machine is strictly synchronous
// and single-threaded, and shares no state with any other instance.
//
// The zero value is ready to use and is equivalent to the result of New.
type Machine struct {
	state          State
	params         VtParams
	intermediates  VtIntermediates
	inLiteralChunk bool
	logger         *Logger
}

// New constructs a Machine in state Literal with empty buffers.
func New() *Machine {
	return &Machine{state: StateLiteral}
}

// NewWithLogger is like New but traces every transition to l. Pass a
// Logger constructed with NewLogger(false) (or simply use New) to avoid
// any tracing overhead.
func NewWithLogger(l *Logger) *Machine {
	m := New()
	m.logger = l
	return m
}

// State returns the machine's current state. Exposed for diagnostics and
// tests; no caller needs it to drive the machine correctly.
func (m *Machine) State() State {
	return m.state
}

// Write consumes exactly one Unicode scalar value and returns the events
// it produced, in order. The returned EventBuf is a fixed-capacity value
// (see EventBuf); no heap allocation occurs.
func (m *Machine) Write(r rune) EventBuf {
	var buf EventBuf
	m.dispatch(&buf, r)
	return buf
}

// WriteHandler is like Write but delivers each event to h via callback
// instead of returning them. It is a thin adapter over Write: the fixed
// array is still the machine's only internal representation.
func (m *Machine) WriteHandler(r rune, h Handler) {
	buf := m.Write(r)
	dispatchTo(&buf, h)
}

// WriteString consumes each Unicode scalar value of s in order,
// delivering every event to h. It is logically equivalent to calling
// WriteHandler once per rune of s.
func (m *Machine) WriteString(s string, h Handler) {
	for _, r := range s {
		m.WriteHandler(r, h)
	}
}

// WriteEnd signals end-of-stream: if a Print run was in progress it
// emits a final PrintEnd, then resets the machine to state Literal with
// empty buffers. It is safe to keep using the Machine afterward; the
// next Write begins a fresh stream.
func (m *Machine) WriteEnd() EventBuf {
	var buf EventBuf
	if m.inLiteralChunk {
		m.inLiteralChunk = false
		buf.push(Event{Kind: EventPrintEnd})
	}
	m.state = StateLiteral
	m.intermediates.Clear()
	m.params.Clear()
	return buf
}

// WriteEndHandler is WriteEnd delivered via callback.
func (m *Machine) WriteEndHandler(h Handler) {
	buf := m.WriteEnd()
	dispatchTo(&buf, h)
}

func (m *Machine) dispatch(buf *EventBuf, r rune) {
	if next, act, ok := universalTransition(r); ok {
		if m.logger != nil {
			m.logger.Trace(m.state, r, act, next)
		}
		m.changeState(buf, next, act, r)
		return
	}

	next, act, changes, isErr := stateTransition(m.state, r)
	if isErr {
		if m.logger != nil {
			m.logger.Error("rejected %U in state %s", r, m.state)
		}
		m.reportError(buf, r)
		return
	}

	if m.logger != nil {
		shown := next
		if !changes {
			shown = m.state
		}
		m.logger.Trace(m.state, r, act, shown)
	}

	if changes {
		m.changeState(buf, next, act, r)
	} else {
		m.runAction(buf, act, r)
	}
}

// changeState runs the exit action of the current state, switches state,
// runs the transition's main action, and then the entry action of the
// new state — in that order.
func (m *Machine) changeState(buf *EventBuf, next State, act action, r rune) {
	m.runExitAction(buf, m.state, r)
	m.state = next
	m.runAction(buf, act, r)
	m.runEntryAction(buf, next, r)
}

func (m *Machine) runExitAction(buf *EventBuf, s State, r rune) {
	switch s {
	case StateOsCmd:
		m.runAction(buf, actOscEnd, r)
	case StateDevCtrlPassthru:
		m.runAction(buf, actUnhook, r)
	}
}

func (m *Machine) runEntryAction(buf *EventBuf, s State, r rune) {
	switch s {
	case StateEscape, StateCtrlStart, StateDevCtrlStart:
		m.runAction(buf, actClear, r)
	case StateOsCmd:
		m.runAction(buf, actOscStart, r)
	case StateDevCtrlPassthru:
		m.runAction(buf, actHook, r)
	}
}

// runAction executes a single action: it updates the print-run flag
// (flushing a pending PrintEnd for any non-Print action, even one that
// itself produces no event), then performs the action's effect.
func (m *Machine) runAction(buf *EventBuf, act action, r rune) {
	if act == actPrint {
		m.inLiteralChunk = true
	} else if m.inLiteralChunk {
		m.inLiteralChunk = false
		buf.push(Event{Kind: EventPrintEnd})
	}

	switch act {
	case actPrint:
		buf.push(Event{Kind: EventPrint, Rune: r})
	case actExecute:
		buf.push(Event{Kind: EventExecuteCtrl, Byte: firstByte(r)})
	case actHook:
		buf.push(Event{Kind: EventDcsStart, Cmd: firstByte(r), Params: m.params, Intermediates: m.intermediates})
	case actPut:
		buf.push(Event{Kind: EventDcsChar, Rune: r})
	case actOscStart:
		buf.push(Event{Kind: EventOscStart, Byte: firstByte(r)})
	case actOscPut:
		buf.push(Event{Kind: EventOscChar, Rune: r})
	case actOscEnd:
		buf.push(Event{Kind: EventOscEnd, Byte: firstByte(r)})
	case actUnhook:
		buf.push(Event{Kind: EventDcsEnd, Byte: firstByte(r)})
	case actCsiDispatch:
		buf.push(Event{Kind: EventDispatchCsi, Cmd: firstByte(r), Params: m.params, Intermediates: m.intermediates})
	case actEscDispatch:
		buf.push(Event{Kind: EventDispatchEsc, Cmd: firstByte(r), Intermediates: m.intermediates})
	case actCollect:
		m.intermediates.Push(firstByte(r))
		if m.intermediates.HasOverrun() && m.logger != nil {
			m.logger.Warn("intermediate buffer overrun at %U", r)
		}
	case actParam:
		m.params.pushDigit(r)
	case actClear:
		m.intermediates.Clear()
		m.params.Clear()
	case actNone:
		// Nothing; the flush check above is the only effect.
	}
}

// reportError emits an Error event for a scalar rejected by the current
// state, then forces a reset back to Literal with both buffers cleared,
// exactly as a named transition to Literal with main action None would.
func (m *Machine) reportError(buf *EventBuf, r rune) {
	if m.inLiteralChunk {
		m.inLiteralChunk = false
		buf.push(Event{Kind: EventPrintEnd})
	}
	buf.push(Event{Kind: EventError, Rune: r})
	m.changeState(buf, StateLiteral, actNone, r)
	m.intermediates.Clear()
	m.params.Clear()
}

// firstByte returns the low 8 bits of r. The transition table applies it
// to scalars in 0x00-0xFF (C0, C1, or ASCII). The one exception is an
// OSC or DCS ended by a rejected scalar: reportError's exit action passes
// that scalar, which may be non-ASCII, and OscEnd/DcsEnd then carry its
// low 8 bits.
func firstByte(r rune) byte {
	return byte(r)
}
