package chip8

import "testing"

func TestLogicQuirkClearsVF(t *testing.T) {
	c := newTestCPU()
	loadOpcodes(c, 0x8011) // OR V0, V1
	c.v[0], c.v[1], c.v[0xF] = 0x0F, 0xF0, 0xAA
	c.Profile.Logic = true

	c.Step()
	if c.v[0] != 0xFF {
		t.Fatalf("V0 = %#x, want 0xFF", c.v[0])
	}
	if c.v[0xF] != 0 {
		t.Fatalf("VF = %#x, want 0 when logic quirk is set", c.v[0xF])
	}
}

func TestLogicQuirkOffLeavesVF(t *testing.T) {
	c := newTestCPU()
	loadOpcodes(c, 0x8011) // OR V0, V1
	c.v[0], c.v[1], c.v[0xF] = 0x0F, 0xF0, 0xAA
	c.Profile.Logic = false

	c.Step()
	if c.v[0xF] != 0xAA {
		t.Fatalf("VF = %#x, want untouched 0xAA when logic quirk is off", c.v[0xF])
	}
}

func TestSHLQuirk(t *testing.T) {
	c := newTestCPU()
	loadOpcodes(c, 0x812E) // SHL V1 {, V2}
	c.v[1], c.v[2] = 0x00, 0xC1 // msb set
	c.Profile.Shift = false

	c.Step()
	if c.v[1] != 0x82 || c.v[0xF] != 1 {
		t.Fatalf("shift=false: V1=%#x VF=%d, want V1=0x82 VF=1", c.v[1], c.v[0xF])
	}
}

func TestBnnnJumpQuirk(t *testing.T) {
	c := newTestCPU()
	loadOpcodes(c, 0xB300)
	c.v[0] = 0x10
	c.v[3] = 0x20
	c.Profile.Jump = false

	c.Step()
	if c.pc != 0x310 {
		t.Fatalf("jump=false: pc=%#x, want 0x310 (nnn + V0)", c.pc)
	}

	c = newTestCPU()
	loadOpcodes(c, 0xB300)
	c.v[0] = 0x10
	c.v[3] = 0x20
	c.Profile.Jump = true

	c.Step()
	if c.pc != 0x320 {
		t.Fatalf("jump=true: pc=%#x, want 0x320 (nnn + Vx)", c.pc)
	}
}

func TestSkipOpcodes(t *testing.T) {
	c := newTestCPU()
	loadOpcodes(c, 0x3005) // SE V0, 0x05 -- should skip
	c.v[0] = 0x05
	c.Step()
	if c.pc != programStart+4 {
		t.Fatalf("SE matched: pc=%#x, want %#x", c.pc, programStart+4)
	}
}

func TestSKPAndSKNP(t *testing.T) {
	src := &fakeEventSource{}
	kp := NewKeypad(src)
	c := New(kp)
	loadOpcodes(c, 0xE09E, 0x0000, 0xE0A1) // SKP skips the 0x0000 padding onto SKNP
	c.v[0] = 0x3

	src.push(Event{Kind: EventKeyDown, Key: Key3})
	kp.Poll(c.Profile)

	c.Step() // SKP V0: key 3 is pressed, should skip
	if c.pc != programStart+4 {
		t.Fatalf("SKP with key pressed: pc=%#x, want %#x", c.pc, programStart+4)
	}

	c.Step() // SKNP V0: key 3 is pressed, should NOT skip
	if c.pc != programStart+6 {
		t.Fatalf("SKNP with key pressed: pc=%#x, want %#x", c.pc, programStart+6)
	}
}

func TestFx29FontAddress(t *testing.T) {
	c := newTestCPU()
	loadOpcodes(c, 0xF029)
	c.v[0] = 0xC

	c.Step()
	if c.i != uint16(bytesPerGlyph)*0xC {
		t.Fatalf("I = %#x, want %#x", c.i, uint16(bytesPerGlyph)*0xC)
	}
	if c.ram[c.i] != 0xF0 {
		t.Fatalf("font glyph C first byte = %#x, want 0xF0", c.ram[c.i])
	}
}

func TestDrawRAMFaultOnOutOfRangeSpriteRead(t *testing.T) {
	c := newTestCPU()
	loadOpcodes(c, 0xD01F) // 15-row sprite
	c.i = uint16(ramSize - 1)

	_, err := c.Step()
	fault, ok := err.(*Fault)
	if !ok || fault.Kind != FaultRAMOutOfRange {
		t.Fatalf("expected a RAM fault, got %v", err)
	}
}
