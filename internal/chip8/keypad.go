package chip8

// HostKey identifies a physical host key the keypad cares about: the 16
// CHIP-8 hex keys, plus the four reserved keys used to tune rate/ipf at
// runtime. Keys outside this set are simply never reported by an
// EventSource and are ignored.
type HostKey int

const (
	KeyUnknown HostKey = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyTuneRateUp
	KeyTuneRateDown
	KeyTuneIPFUp
	KeyTuneIPFDown
)

// EventKind distinguishes the three kinds of host input edges the keypad
// reacts to.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventQuit
)

// Event is a single host input edge: a key going down, a key going up, or
// a quit signal (window close, Ctrl-C, etc.)
type Event struct {
	Kind EventKind
	Key  HostKey
}

// EventSource drains pending host input. It is the only interface the
// keypad needs from a windowing backend, which keeps the CPU/keypad
// trivially testable with a headless stand-in.
type EventSource interface {
	Drain() []Event
}

// Keypad tracks the 16 CHIP-8 key states as a bitmask, translating raw
// host events from an EventSource using its own hex keymap.
type Keypad struct {
	pressed uint16
	source  EventSource
}

// NewKeypad wires a keypad to its host event source.
func NewKeypad(source EventSource) *Keypad {
	return &Keypad{source: source}
}

// IsPressed reports whether CHIP-8 key k (0..16) is currently held.
func (k *Keypad) IsPressed(key byte) bool {
	return k.pressed&(1<<uint(key)) != 0
}

func (k *Keypad) setPressed(key byte, down bool) {
	if down {
		k.pressed |= 1 << uint(key)
	} else {
		k.pressed &^= 1 << uint(key)
	}
}

// Poll drains pending host input, updating the pressed mask and — via the
// four reserved tuning keys — the live quirk profile's rate/ipf knobs
// (both bounded to at least 1). It returns false on a quit signal.
func (k *Keypad) Poll(profile *Profile) (keepRunning bool) {
	for _, ev := range k.source.Drain() {
		switch ev.Kind {
		case EventQuit:
			return false
		case EventKeyDown:
			k.applyTuning(ev.Key, profile)
			if code, ok := chip8Code(ev.Key); ok {
				k.setPressed(code, true)
			}
		case EventKeyUp:
			if code, ok := chip8Code(ev.Key); ok {
				k.setPressed(code, false)
			}
		}
	}
	return true
}

// BlockRead implements the Fx0A semantics: it returns a key code only on
// release, never on press. Key-down events still update the pressed mask
// (and tuning knobs) but never resolve the read. ok is false when no
// release was observed this call — the caller (the CPU) is expected to
// re-issue the same instruction next cycle. keepRunning is false only on
// a quit signal, which ends the wait immediately.
func (k *Keypad) BlockRead(profile *Profile) (key byte, ok bool, keepRunning bool) {
	keepRunning = true
	for _, ev := range k.source.Drain() {
		switch ev.Kind {
		case EventQuit:
			return 0, false, false
		case EventKeyDown:
			k.applyTuning(ev.Key, profile)
			if code, ok2 := chip8Code(ev.Key); ok2 {
				k.setPressed(code, true)
			}
		case EventKeyUp:
			if code, ok2 := chip8Code(ev.Key); ok2 {
				k.setPressed(code, false)
				return code, true, true
			}
		}
	}
	return 0, false, true
}

func (k *Keypad) applyTuning(key HostKey, profile *Profile) {
	switch key {
	case KeyTuneRateUp:
		profile.Rate++
	case KeyTuneRateDown:
		if profile.Rate > 1 {
			profile.Rate--
		}
	case KeyTuneIPFUp:
		profile.IPF++
	case KeyTuneIPFDown:
		if profile.IPF > 1 {
			profile.IPF--
		}
	}
}

func chip8Code(key HostKey) (byte, bool) {
	switch key {
	case Key0:
		return 0x0, true
	case Key1:
		return 0x1, true
	case Key2:
		return 0x2, true
	case Key3:
		return 0x3, true
	case Key4:
		return 0x4, true
	case Key5:
		return 0x5, true
	case Key6:
		return 0x6, true
	case Key7:
		return 0x7, true
	case Key8:
		return 0x8, true
	case Key9:
		return 0x9, true
	case KeyA:
		return 0xA, true
	case KeyB:
		return 0xB, true
	case KeyC:
		return 0xC, true
	case KeyD:
		return 0xD, true
	case KeyE:
		return 0xE, true
	case KeyF:
		return 0xF, true
	default:
		return 0, false
	}
}
