package vtmachine

// action is the machine's internal notion of what to do for a given
// transition's main step. Error is deliberately not a member: a rejected
// scalar is handled by reportError, never by running an action through
// the normal dispatch path.
type action uint8

const (
	actNone action = iota
	actPrint
	actExecute
	actCollect
	actParam
	actClear
	actHook
	actPut
	actOscStart
	actOscPut
	actOscEnd
	actUnhook
	actCsiDispatch
	actEscDispatch
)

func (a action) String() string {
	switch a {
	case actNone:
		return "None"
	case actPrint:
		return "Print"
	case actExecute:
		return "Execute"
	case actCollect:
		return "Collect"
	case actParam:
		return "Param"
	case actClear:
		return "Clear"
	case actHook:
		return "Hook"
	case actPut:
		return "Put"
	case actOscStart:
		return "OscStart"
	case actOscPut:
		return "OscPut"
	case actOscEnd:
		return "OscEnd"
	case actUnhook:
		return "Unhook"
	case actCsiDispatch:
		return "CsiDispatch"
	case actEscDispatch:
		return "EscDispatch"
	default:
		return "Action(?)"
	}
}
