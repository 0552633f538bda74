package term

import "invaders/game"

// Action represents a terminal input action.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionStop
	ActionFire
	ActionQuit
)

const (
	esc = 0x1b

	// maxPending bounds an unfinished escape sequence carried between reads
	maxPending = 32
)

// inputParser converts raw session bytes into actions. Escape sequences
// split across reads are held until the rest arrives.
type inputParser struct {
	pending []byte
}

// parse handles arrow keys (CSI and SS3 forms, with or without modifier
// parameters), A/D/S movement, space and W fire, Q and Ctrl-C.
// Unrecognised escape sequences are dropped whole.
func (p *inputParser) parse(data []byte) []Action {
	if len(p.pending) > 0 {
		data = append(p.pending, data...)
		p.pending = nil
	}

	var actions []Action
	for i := 0; i < len(data); {
		if data[i] != esc {
			if action := keyAction(data[i]); action != ActionNone {
				actions = append(actions, action)
			}
			i++
			continue
		}

		n, action, complete := parseEscape(data[i:])
		if !complete {
			if len(data)-i <= maxPending {
				p.pending = append([]byte(nil), data[i:]...)
			}
			break
		}
		if action != ActionNone {
			actions = append(actions, action)
		}
		i += n
	}
	return actions
}

// parseEscape decodes the escape sequence at the start of data and returns
// the number of bytes it spans. complete is false when more bytes are needed.
func parseEscape(data []byte) (n int, action Action, complete bool) {
	if len(data) < 2 {
		return 0, ActionNone, false
	}

	switch data[1] {
	case '[':
		// CSI: parameter and intermediate bytes, then one final byte
		for j := 2; j < len(data); j++ {
			switch b := data[j]; {
			case b >= 0x20 && b <= 0x3f:
			case b >= 0x40 && b <= 0x7e:
				return j + 1, arrowAction(b), true
			default:
				return j, ActionNone, true
			}
		}
		return 0, ActionNone, false
	case 'O':
		// SS3: application cursor keys
		if len(data) < 3 {
			return 0, ActionNone, false
		}
		return 3, arrowAction(data[2]), true
	case esc:
		return 1, ActionNone, true
	default:
		return 2, ActionNone, true
	}
}

func arrowAction(final byte) Action {
	switch final {
	case 'A':
		return ActionFire
	case 'B':
		return ActionStop
	case 'C':
		return ActionRight
	case 'D':
		return ActionLeft
	}
	return ActionNone
}

func keyAction(b byte) Action {
	switch b {
	case 'a', 'A':
		return ActionLeft
	case 'd', 'D':
		return ActionRight
	case 's', 'S':
		return ActionStop
	case ' ', 'w', 'W':
		return ActionFire
	case 'q', 'Q', 3: // 3 is Ctrl-C
		return ActionQuit
	}
	return ActionNone
}

// apply writes a movement or fire action into the latch. Terminals report
// key presses only, so movement is a level that holds until the next
// direction or stop key. Returns false for ActionQuit.
func apply(latch *game.InputLatch, action Action) bool {
	switch action {
	case ActionLeft:
		latch.SetMove(-1)
	case ActionRight:
		latch.SetMove(1)
	case ActionStop:
		latch.SetMove(0)
	case ActionFire:
		latch.Fire()
	case ActionQuit:
		return false
	}
	return true
}
