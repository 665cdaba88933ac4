package vtmachine

// State is one of the 14 states of the control-stream parser's automaton.
//
// The zero value is Literal, the machine's initial and only "no pending
// sequence" state.
type State uint8

const (
	// StateLiteral is the ground state: plain characters are printed,
	// C0 controls are executed, and the various introducer bytes start
	// a new sequence.
	StateLiteral State = iota
	// StateEscape follows a lone ESC (0x1B), awaiting an intermediate or
	// final byte.
	StateEscape
	// StateEscapeIntermediate has collected one or more ESC intermediates
	// (0x20-0x2F) and awaits the final byte.
	StateEscapeIntermediate
	// StateCtrlStart follows a CSI introducer (ESC [ or 0x9B).
	StateCtrlStart
	// StateCtrlParam is accumulating CSI parameters.
	StateCtrlParam
	// StateCtrlIntermediate has collected one or more CSI intermediates.
	StateCtrlIntermediate
	// StateCtrlMalformed discards the remainder of a CSI sequence that
	// contained a byte out of the expected parameter/intermediate order.
	StateCtrlMalformed
	// StateDevCtrlStart follows a DCS introducer (ESC P or 0x90).
	StateDevCtrlStart
	// StateDevCtrlParam is accumulating DCS parameters.
	StateDevCtrlParam
	// StateDevCtrlIntermediate has collected one or more DCS intermediates.
	StateDevCtrlIntermediate
	// StateDevCtrlPassthru has dispatched DcsStart and is relaying payload
	// bytes via DcsChar until the string terminator.
	StateDevCtrlPassthru
	// StateDevCtrlMalformed discards the remainder of a malformed DCS.
	StateDevCtrlMalformed
	// StateOsCmd follows an OSC introducer (ESC ] or 0x9D) and relays
	// payload characters via OscChar until the terminator.
	StateOsCmd
	// StateIgnoreUntilSt discards everything up to the next string
	// terminator; entered for APC/PM/SOS introducers, which this machine
	// does not interpret.
	StateIgnoreUntilSt
)

func (s State) String() string {
	switch s {
	case StateLiteral:
		return "Literal"
	case StateEscape:
		return "Escape"
	case StateEscapeIntermediate:
		return "EscapeIntermediate"
	case StateCtrlStart:
		return "CtrlStart"
	case StateCtrlParam:
		return "CtrlParam"
	case StateCtrlIntermediate:
		return "CtrlIntermediate"
	case StateCtrlMalformed:
		return "CtrlMalformed"
	case StateDevCtrlStart:
		return "DevCtrlStart"
	case StateDevCtrlParam:
		return "DevCtrlParam"
	case StateDevCtrlIntermediate:
		return "DevCtrlIntermediate"
	case StateDevCtrlPassthru:
		return "DevCtrlPassthru"
	case StateDevCtrlMalformed:
		return "DevCtrlMalformed"
	case StateOsCmd:
		return "OsCmd"
	case StateIgnoreUntilSt:
		return "IgnoreUntilSt"
	default:
		return "State(?)"
	}
}

func isC0(r rune) bool {
	return (r >= 0x00 && r <= 0x17) || r == 0x19 || (r >= 0x1c && r <= 0x1f)
}

// universalTransition implements spec Phase 1: the transitions that apply
// regardless of the machine's current state. Every match here corresponds
// to a named-target transition (never "stay"), so the caller always runs
// it through changeState.
func universalTransition(r rune) (next State, act action, matched bool) {
	switch {
	case r == 0x18 || r == 0x1a:
		return StateLiteral, actExecute, true
	case r >= 0x80 && r <= 0x8f:
		return StateLiteral, actExecute, true
	case r >= 0x91 && r <= 0x97:
		return StateLiteral, actExecute, true
	case r == 0x99 || r == 0x9a:
		return StateLiteral, actExecute, true
	case r == 0x9c: // ST
		return StateLiteral, actNone, true
	case r == 0x1b: // ESC
		return StateEscape, actNone, true
	case r == 0x98 || r == 0x9e || r == 0x9f:
		return StateIgnoreUntilSt, actNone, true
	case r == 0x90: // DCS
		return StateDevCtrlStart, actNone, true
	case r == 0x9d: // OSC
		return StateOsCmd, actNone, true
	case r == 0x9b: // CSI
		return StateCtrlStart, actNone, true
	}
	return 0, actNone, false
}

// stateTransition implements spec Phase 2: per-state classification, once
// the universal rules have been ruled out. changes reports whether the
// transition names a target state distinct from the current one (and so
// must run through changeState's exit/entry ordering); when changes is
// false, next is meaningless and only act should run, in place, via
// runAction. isErr reports an "otherwise" catch-all: the caller should
// call reportError instead of consulting next/act/changes.
func stateTransition(s State, r rune) (next State, act action, changes bool, isErr bool) {
	switch s {
	case StateLiteral:
		if isC0(r) {
			return 0, actExecute, false, false
		}
		return 0, actPrint, false, false

	case StateEscape:
		switch {
		case isC0(r):
			return 0, actExecute, false, false
		case r == 0x7f:
			return 0, actNone, false, false
		case r >= 0x20 && r <= 0x2f:
			return StateEscapeIntermediate, actCollect, true, false
		case (r >= 0x30 && r <= 0x4f) || (r >= 0x51 && r <= 0x57) ||
			r == 0x59 || r == 0x5a || r == 0x5c || (r >= 0x60 && r <= 0x7e):
			return StateLiteral, actEscDispatch, true, false
		case r == 0x5b:
			return StateCtrlStart, actNone, true, false
		case r == 0x5d:
			return StateOsCmd, actNone, true, false
		case r == 0x50:
			return StateDevCtrlStart, actNone, true, false
		case r == 0x58 || r == 0x5e || r == 0x5f:
			return StateIgnoreUntilSt, actNone, true, false
		default:
			return 0, 0, false, true
		}

	case StateEscapeIntermediate:
		switch {
		case isC0(r):
			return 0, actExecute, false, false
		case r == 0x7f:
			return 0, actNone, false, false
		case r >= 0x20 && r <= 0x2f:
			return 0, actCollect, false, false
		case r >= 0x30 && r <= 0x7e:
			return StateLiteral, actEscDispatch, true, false
		default:
			return 0, 0, false, true
		}

	case StateCtrlStart:
		switch {
		case isC0(r):
			return 0, actExecute, false, false
		case r == 0x7f:
			return 0, actNone, false, false
		case r >= 0x20 && r <= 0x2f:
			return StateCtrlIntermediate, actCollect, true, false
		case r == 0x3a:
			return StateCtrlMalformed, actNone, true, false
		case (r >= 0x30 && r <= 0x39) || r == 0x3b:
			return StateCtrlParam, actParam, true, false
		case r >= 0x3c && r <= 0x3f:
			return StateCtrlParam, actCollect, true, false
		case r >= 0x40 && r <= 0x7e:
			return StateLiteral, actCsiDispatch, true, false
		default:
			return 0, 0, false, true
		}

	case StateCtrlParam:
		switch {
		case isC0(r):
			return 0, actExecute, false, false
		case (r >= 0x30 && r <= 0x39) || r == 0x3b:
			return 0, actParam, false, false
		case r == 0x7f:
			return 0, actNone, false, false
		case r == 0x3a || (r >= 0x3c && r <= 0x3f):
			return StateCtrlMalformed, actNone, true, false
		case r >= 0x20 && r <= 0x2f:
			return StateCtrlIntermediate, actCollect, true, false
		case r >= 0x40 && r <= 0x7e:
			return StateLiteral, actCsiDispatch, true, false
		default:
			return 0, 0, false, true
		}

	case StateCtrlIntermediate:
		switch {
		case isC0(r):
			return 0, actExecute, false, false
		case r >= 0x20 && r <= 0x2f:
			return 0, actCollect, false, false
		case r == 0x7f:
			return 0, actNone, false, false
		case r == 0x3a || (r >= 0x3c && r <= 0x3f):
			return StateCtrlMalformed, actNone, true, false
		case r >= 0x40 && r <= 0x7e:
			return StateLiteral, actCsiDispatch, true, false
		default:
			return 0, 0, false, true
		}

	case StateCtrlMalformed:
		switch {
		case isC0(r):
			return 0, actExecute, false, false
		case (r >= 0x20 && r <= 0x3f) || r == 0x7f:
			return 0, actNone, false, false
		case r >= 0x40 && r <= 0x7e:
			return StateLiteral, actNone, true, false
		default:
			return 0, 0, false, true
		}

	case StateDevCtrlStart:
		switch {
		case isC0(r) || r == 0x7f:
			return 0, actNone, false, false
		case r == 0x3a:
			return StateDevCtrlMalformed, actNone, true, false
		case r >= 0x20 && r <= 0x2f:
			return StateDevCtrlIntermediate, actCollect, true, false
		case (r >= 0x30 && r <= 0x39) || r == 0x3b:
			return StateDevCtrlParam, actParam, true, false
		case r >= 0x3c && r <= 0x3f:
			return StateDevCtrlParam, actCollect, true, false
		case r >= 0x40 && r <= 0x7e:
			return StateDevCtrlPassthru, actNone, true, false
		default:
			return 0, 0, false, true
		}

	case StateDevCtrlParam:
		switch {
		case isC0(r) || r == 0x7f:
			return 0, actNone, false, false
		case (r >= 0x30 && r <= 0x39) || r == 0x3b:
			return 0, actParam, false, false
		case r == 0x3a || (r >= 0x3c && r <= 0x3f):
			return StateDevCtrlMalformed, actNone, true, false
		case r >= 0x20 && r <= 0x2f:
			return StateDevCtrlIntermediate, actCollect, true, false
		case r >= 0x40 && r <= 0x7e:
			return StateDevCtrlPassthru, actNone, true, false
		default:
			return 0, 0, false, true
		}

	case StateDevCtrlIntermediate:
		switch {
		case isC0(r) || r == 0x7f:
			return 0, actNone, false, false
		case r >= 0x20 && r <= 0x2f:
			return 0, actCollect, false, false
		case r >= 0x30 && r <= 0x3f:
			return StateDevCtrlMalformed, actNone, true, false
		case r >= 0x40 && r <= 0x7e:
			return StateDevCtrlPassthru, actNone, true, false
		default:
			return 0, 0, false, true
		}

	case StateDevCtrlPassthru:
		switch {
		case isC0(r) || (r >= 0x20 && r <= 0x7e):
			return 0, actPut, false, false
		case r == 0x7f:
			return 0, actNone, false, false
		default:
			return 0, 0, false, true
		}

	case StateDevCtrlMalformed:
		switch {
		case isC0(r) || (r >= 0x20 && r <= 0x7f):
			return 0, actNone, false, false
		default:
			return 0, 0, false, true
		}

	case StateOsCmd:
		switch {
		case isC0(r):
			return 0, actNone, false, false
		case r >= 0x20 && r <= 0x7f:
			return 0, actOscPut, false, false
		default:
			return 0, 0, false, true
		}

	case StateIgnoreUntilSt:
		switch {
		case isC0(r) || (r >= 0x20 && r <= 0x7f):
			return 0, actNone, false, false
		default:
			return 0, 0, false, true
		}
	}

	// Unreachable: State is a closed set and every member is handled above.
	return 0, 0, false, true
}
