// Package vtfixtures holds a set of end-to-end control-stream scenarios,
// expressed once as {input, expected events} pairs and exercised by
// vtmachine's own tests.
package vtfixtures

import "github.com/apparentlymart/vtmachine-go"

// Scenario is one named input string and the event sequence a fresh
// Machine must produce for it (ending with an explicit WriteEnd).
type Scenario struct {
	Name     string
	Input    string
	Expected []vtmachine.Event
}

func mustParams(vs ...uint16) vtmachine.VtParams {
	p, err := vtmachine.VtParamsFromSlice(vs)
	if err != nil {
		panic(err)
	}
	return p
}

var noIntermediates = vtmachine.VtIntermediates{}

func printEv(r rune) vtmachine.Event {
	return vtmachine.Event{Kind: vtmachine.EventPrint, Rune: r}
}

func execEv(b byte) vtmachine.Event {
	return vtmachine.Event{Kind: vtmachine.EventExecuteCtrl, Byte: b}
}

var printEndEv = vtmachine.Event{Kind: vtmachine.EventPrintEnd}

func csiEv(cmd byte, params vtmachine.VtParams, im vtmachine.VtIntermediates) vtmachine.Event {
	return vtmachine.Event{Kind: vtmachine.EventDispatchCsi, Cmd: cmd, Params: params, Intermediates: im}
}

// Scenarios is the full set of end-to-end examples.
var Scenarios = []Scenario{
	{
		Name:  "literal-with-crlf",
		Input: "hello world\r\nboop",
		Expected: []vtmachine.Event{
			printEv('h'), printEv('e'), printEv('l'), printEv('l'), printEv('o'),
			printEv(' '), printEv('w'), printEv('o'), printEv('r'), printEv('l'), printEv('d'),
			printEndEv,
			execEv('\r'), execEv('\n'),
			printEv('b'), printEv('o'), printEv('o'), printEv('p'),
			printEndEv,
		},
	},
	{
		Name:  "csi-formatting",
		Input: "plain\x1b[1mbold\x1b[2;3pmore",
		Expected: []vtmachine.Event{
			printEv('p'), printEv('l'), printEv('a'), printEv('i'), printEv('n'),
			printEndEv,
			csiEv('m', mustParams(1), noIntermediates),
			printEv('b'), printEv('o'), printEv('l'), printEv('d'),
			printEndEv,
			csiEv('p', mustParams(2, 3), noIntermediates),
			printEv('m'), printEv('o'), printEv('r'), printEv('e'),
			printEndEv,
		},
	},
	{
		Name:  "clear-and-cursor-home",
		Input: "\x1b[2J\x1b[1;1HHello!\r\n",
		Expected: []vtmachine.Event{
			csiEv('J', mustParams(2), noIntermediates),
			csiEv('H', mustParams(1, 1), noIntermediates),
			printEv('H'), printEv('e'), printEv('l'), printEv('l'), printEv('o'), printEv('!'),
			printEndEv,
			execEv('\r'), execEv('\n'),
		},
	},
	{
		Name:  "osc-with-c1-introducer-and-terminator",
		Input: "\u009dfoo\u009c",
		Expected: []vtmachine.Event{
			{Kind: vtmachine.EventOscStart, Byte: 0x9d},
			{Kind: vtmachine.EventOscChar, Rune: 'f'},
			{Kind: vtmachine.EventOscChar, Rune: 'o'},
			{Kind: vtmachine.EventOscChar, Rune: 'o'},
			{Kind: vtmachine.EventOscEnd, Byte: 0x9c},
		},
	},
	{
		Name:  "csi-excess-separators-truncate-params",
		Input: "\x1b[;;;;;;;;;;;;;;;;;;;;1m",
		Expected: []vtmachine.Event{
			csiEv('m', mustParams(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1), noIntermediates),
		},
	},
	{
		// A CAN abort mid-DCS: the exit action for DevCtrlPassthru (Unhook,
		// emitting DcsEnd) must fire before the universal transition's own
		// Execute action, even though both are triggered by the same 0x18.
		Name:  "dcs-aborted-by-can",
		Input: "\x1bPq...\x18",
		Expected: []vtmachine.Event{
			{Kind: vtmachine.EventDcsStart, Cmd: 'q', Params: vtmachine.VtParams{}, Intermediates: noIntermediates},
			{Kind: vtmachine.EventDcsChar, Rune: '.'},
			{Kind: vtmachine.EventDcsChar, Rune: '.'},
			{Kind: vtmachine.EventDcsChar, Rune: '.'},
			{Kind: vtmachine.EventDcsEnd, Byte: 0x18},
			execEv(0x18),
		},
	},
}
