package spectator

// inputAccumulator turns raw key and pointer events into the live action mask and a one-tick
// look delta. It holds no lock of its own; the controller serializes access.
type inputAccumulator struct {
	keyMapping KeyMapping

	// held records, per held key, the action it was pressed under.
	held map[uint32]Action

	// press is the union of held actions.
	press Action

	// lookX and lookY hold the latest pointer delta since the last consume.
	lookX float32
	lookY float32
}

func newInputAccumulator(keyMapping KeyMapping) *inputAccumulator {
	return &inputAccumulator{
		keyMapping: keyMapping,
		held:       make(map[uint32]Action),
	}
}

// recordKey marks code as held or released. Unmapped codes are ignored on press, and a
// release only affects keys whose press was recorded. Repeated presses of a held key keep
// the action it was first pressed under.
func (ia *inputAccumulator) recordKey(code uint32, pressed bool) {
	if pressed {
		if _, held := ia.held[code]; held {
			return
		}
		action, ok := ia.keyMapping[code]
		if !ok {
			return
		}
		ia.held[code] = action
	} else {
		if _, ok := ia.held[code]; !ok {
			return
		}
		delete(ia.held, code)
	}

	ia.press = 0
	for _, action := range ia.held {
		ia.press |= action
	}
}

// recordPointerMotion overwrites the look delta; events are not summed within a tick.
func (ia *inputAccumulator) recordPointerMotion(dx, dy float32) {
	ia.lookX, ia.lookY = dx, dy
}

// remapKey replaces the mapping for code. The zero Action removes it.
// Held keys keep the action they were pressed under until they are released.
func (ia *inputAccumulator) remapKey(code uint32, action Action) {
	if action == 0 {
		delete(ia.keyMapping, code)
		return
	}
	ia.keyMapping[code] = action
}

// consumeLook returns the pending look delta and zeroes it.
func (ia *inputAccumulator) consumeLook() (dx, dy float32) {
	dx, dy = ia.lookX, ia.lookY
	ia.lookX, ia.lookY = 0, 0
	return dx, dy
}

func (ia *inputAccumulator) reset() {
	clear(ia.held)
	ia.press = 0
	ia.lookX, ia.lookY = 0, 0
}
