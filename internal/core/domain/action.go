package domain

// Action selects a protocol instruction. The numeric value is the opcode byte
// the on-chain program dispatches on; it is part of the wire contract.
type Action byte

const (
	ActionCreateOffer    Action = 0
	ActionJoinOffer      Action = 1
	ActionFund           Action = 2
	ActionConfirm        Action = 3
	ActionArbiterConfirm Action = 4
	ActionArbiterCancel  Action = 5
	ActionClose          Action = 6
	// Opcode 7 is a gap in the program's discriminant space, reserved
	// upstream. The client never emits it.
	ActionMutualCancel Action = 8
)

// Opcode returns the leading byte of the instruction payload.
func (a Action) Opcode() byte {
	return byte(a)
}

func (a Action) String() string {
	switch a {
	case ActionCreateOffer:
		return "CreateOffer"
	case ActionJoinOffer:
		return "JoinOffer"
	case ActionFund:
		return "Fund"
	case ActionConfirm:
		return "Confirm"
	case ActionArbiterConfirm:
		return "ArbiterConfirm"
	case ActionArbiterCancel:
		return "ArbiterCancel"
	case ActionClose:
		return "Close"
	case ActionMutualCancel:
		return "MutualCancel"
	default:
		return "Unknown"
	}
}
