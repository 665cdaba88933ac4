package vtmachine

import "fmt"

// EventKind identifies which of the closed set of events an Event
// carries.
type EventKind uint8

const (
	// EventPrint is a printable character at the cursor.
	EventPrint EventKind = iota
	// EventPrintEnd marks the end of a contiguous Print run; exactly one
	// follows each maximal run, including a trailing run at end-of-stream.
	EventPrintEnd
	// EventExecuteCtrl is a single C0 or C1 control character to execute.
	EventExecuteCtrl
	// EventDispatchCsi is a CSI sequence terminated by Cmd.
	EventDispatchCsi
	// EventDispatchEsc is a non-CSI escape sequence terminated by Cmd.
	EventDispatchEsc
	// EventDcsStart begins a device control string.
	EventDcsStart
	// EventDcsChar is a payload scalar within a DCS.
	EventDcsChar
	// EventDcsEnd closes a DCS opened by EventDcsStart.
	EventDcsEnd
	// EventOscStart begins an operating system command.
	EventOscStart
	// EventOscChar is a payload scalar within an OSC.
	EventOscChar
	// EventOscEnd closes an OSC opened by EventOscStart.
	EventOscEnd
	// EventError reports a scalar that was not valid in the current state.
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventPrint:
		return "Print"
	case EventPrintEnd:
		return "PrintEnd"
	case EventExecuteCtrl:
		return "ExecuteCtrl"
	case EventDispatchCsi:
		return "DispatchCsi"
	case EventDispatchEsc:
		return "DispatchEsc"
	case EventDcsStart:
		return "DcsStart"
	case EventDcsChar:
		return "DcsChar"
	case EventDcsEnd:
		return "DcsEnd"
	case EventOscStart:
		return "OscStart"
	case EventOscChar:
		return "OscChar"
	case EventOscEnd:
		return "OscEnd"
	case EventError:
		return "Error"
	default:
		return "EventKind(?)"
	}
}

// Event is one classified unit of output from a Machine. Only the fields
// relevant to Kind are meaningful; Params and Intermediates are plain
// value types (fixed-size arrays under the hood), so copying an Event
// never touches the heap and never aliases the Machine's own buffers.
type Event struct {
	Kind          EventKind
	Rune          rune            // Print, DcsChar, OscChar, Error
	Byte          byte            // ExecuteCtrl, DcsEnd, OscStart, OscEnd
	Cmd           byte            // DispatchCsi, DispatchEsc, DcsStart final byte
	Params        VtParams        // DispatchCsi, DcsStart
	Intermediates VtIntermediates // DispatchCsi, DispatchEsc, DcsStart
}

func (e Event) String() string {
	switch e.Kind {
	case EventPrint, EventDcsChar, EventOscChar, EventError:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Rune)
	case EventPrintEnd:
		return "PrintEnd"
	case EventExecuteCtrl, EventDcsEnd, EventOscStart, EventOscEnd:
		return fmt.Sprintf("%s(0x%02x)", e.Kind, e.Byte)
	case EventDispatchCsi, EventDcsStart:
		return fmt.Sprintf("%s{cmd:%q, params:%s, intermediates:%s}", e.Kind, rune(e.Cmd), e.Params, e.Intermediates)
	case EventDispatchEsc:
		return fmt.Sprintf("%s{cmd:%q, intermediates:%s}", e.Kind, rune(e.Cmd), e.Intermediates)
	default:
		return e.Kind.String()
	}
}

// eventCapacity is the exact upper bound on events a single scalar can
// produce: exit event + entry-action cleanup + main-action cleanup +
// main event + entry event. No scalar dispatch ever produces more.
const eventCapacity = 5

// EventBuf is the fixed-capacity, allocation-free output of a single
// Machine.Write or Machine.WriteEnd call.
type EventBuf struct {
	events [eventCapacity]Event
	n      int
}

// Events returns the events produced, in order.
func (b *EventBuf) Events() []Event {
	return b.events[:b.n]
}

// Len returns how many events were produced.
func (b *EventBuf) Len() int {
	return b.n
}

func (b *EventBuf) push(e Event) {
	// Capacity is provably sufficient (see eventCapacity); a b.n beyond
	// it would mean the transition table itself has a bug.
	if b.n >= len(b.events) {
		return
	}
	b.events[b.n] = e
	b.n++
}

// Handler receives classified events one at a time, in the order the
// Machine produces them. All methods are required; use NopHandler as an
// embeddable base when only a few events matter.
type Handler interface {
	Print(r rune)
	PrintEnd()
	ExecuteCtrl(b byte)
	DispatchCsi(cmd byte, params VtParams, intermediates VtIntermediates)
	DispatchEsc(cmd byte, intermediates VtIntermediates)
	DcsStart(cmd byte, params VtParams, intermediates VtIntermediates)
	DcsChar(r rune)
	DcsEnd(b byte)
	OscStart(b byte)
	OscChar(r rune)
	OscEnd(b byte)
	Error(r rune)
}

// NopHandler implements Handler with no-op methods. Embed it to satisfy
// the interface while overriding only the events a particular handler
// cares about.
type NopHandler struct{}

func (NopHandler) Print(rune)                                  {}
func (NopHandler) PrintEnd()                                   {}
func (NopHandler) ExecuteCtrl(byte)                            {}
func (NopHandler) DispatchCsi(byte, VtParams, VtIntermediates) {}
func (NopHandler) DispatchEsc(byte, VtIntermediates)           {}
func (NopHandler) DcsStart(byte, VtParams, VtIntermediates)    {}
func (NopHandler) DcsChar(rune)                                {}
func (NopHandler) DcsEnd(byte)                                 {}
func (NopHandler) OscStart(byte)                               {}
func (NopHandler) OscChar(rune)                                {}
func (NopHandler) OscEnd(byte)                                 {}
func (NopHandler) Error(rune)                                  {}

// dispatchTo delivers every event in b to h, in order.
func dispatchTo(b *EventBuf, h Handler) {
	for _, e := range b.events[:b.n] {
		switch e.Kind {
		case EventPrint:
			h.Print(e.Rune)
		case EventPrintEnd:
			h.PrintEnd()
		case EventExecuteCtrl:
			h.ExecuteCtrl(e.Byte)
		case EventDispatchCsi:
			h.DispatchCsi(e.Cmd, e.Params, e.Intermediates)
		case EventDispatchEsc:
			h.DispatchEsc(e.Cmd, e.Intermediates)
		case EventDcsStart:
			h.DcsStart(e.Cmd, e.Params, e.Intermediates)
		case EventDcsChar:
			h.DcsChar(e.Rune)
		case EventDcsEnd:
			h.DcsEnd(e.Byte)
		case EventOscStart:
			h.OscStart(e.Byte)
		case EventOscChar:
			h.OscChar(e.Rune)
		case EventOscEnd:
			h.OscEnd(e.Byte)
		case EventError:
			h.Error(e.Rune)
		}
	}
}

// HandlerFunc adapts a single function into a Handler by wrapping each
// event as a Event value, mirroring vt_handler_fn in the original Rust
// crate this machine is ported from.
type HandlerFunc func(Event)

func (f HandlerFunc) Print(r rune)        { f(Event{Kind: EventPrint, Rune: r}) }
func (f HandlerFunc) PrintEnd()           { f(Event{Kind: EventPrintEnd}) }
func (f HandlerFunc) ExecuteCtrl(b byte)  { f(Event{Kind: EventExecuteCtrl, Byte: b}) }
func (f HandlerFunc) DispatchCsi(cmd byte, params VtParams, intermediates VtIntermediates) {
	f(Event{Kind: EventDispatchCsi, Cmd: cmd, Params: params, Intermediates: intermediates})
}
func (f HandlerFunc) DispatchEsc(cmd byte, intermediates VtIntermediates) {
	f(Event{Kind: EventDispatchEsc, Cmd: cmd, Intermediates: intermediates})
}
func (f HandlerFunc) DcsStart(cmd byte, params VtParams, intermediates VtIntermediates) {
	f(Event{Kind: EventDcsStart, Cmd: cmd, Params: params, Intermediates: intermediates})
}
func (f HandlerFunc) DcsChar(r rune)    { f(Event{Kind: EventDcsChar, Rune: r}) }
func (f HandlerFunc) DcsEnd(b byte)     { f(Event{Kind: EventDcsEnd, Byte: b}) }
func (f HandlerFunc) OscStart(b byte)   { f(Event{Kind: EventOscStart, Byte: b}) }
func (f HandlerFunc) OscChar(r rune)    { f(Event{Kind: EventOscChar, Rune: r}) }
func (f HandlerFunc) OscEnd(b byte)     { f(Event{Kind: EventOscEnd, Byte: b}) }
func (f HandlerFunc) Error(r rune)      { f(Event{Kind: EventError, Rune: r}) }
