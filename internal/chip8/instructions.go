package chip8

// execute dispatches one decoded instruction. VF-writing opcodes compute
// their primary result first and write VF last, so that when x == 0xF the
// flag value wins — this ordering is relied on by several test ROMs.
func (c *CPU) execute(opcode uint16, d decoded) (StepResult, error) {
	switch d.a {
	case 0x0:
		switch opcode {
		case 0x00E0: // CLS
			c.Framebuffer.Clear()
		case 0x00EE: // RET
			if c.sp == 0 {
				return StepResult{}, &Fault{Kind: FaultStackUnderflow, Detail: "RET with empty stack"}
			}
			c.sp--
			c.pc = c.stack[c.sp]
		default:
			// 0nnn and any other 0-prefixed opcode: no-op (see Open Questions).
		}
	case 0x1: // JP nnn
		c.pc = d.nnn
	case 0x2: // CALL nnn
		if c.sp >= stackSize {
			return StepResult{}, &Fault{Kind: FaultStackOverflow, Detail: "CALL with full stack"}
		}
		c.stack[c.sp] = c.pc
		c.sp++
		c.pc = d.nnn
	case 0x3: // SE Vx, kk
		if c.v[d.x] == d.kk {
			c.pc += 2
		}
	case 0x4: // SNE Vx, kk
		if c.v[d.x] != d.kk {
			c.pc += 2
		}
	case 0x5: // SE Vx, Vy
		if c.v[d.x] == c.v[d.y] {
			c.pc += 2
		}
	case 0x6: // LD Vx, kk
		c.v[d.x] = d.kk
	case 0x7: // ADD Vx, kk
		c.v[d.x] += d.kk
	case 0x8:
		return c.execute8xy(d)
	case 0x9: // SNE Vx, Vy
		if c.v[d.x] != c.v[d.y] {
			c.pc += 2
		}
	case 0xA: // LD I, nnn
		c.i = d.nnn
	case 0xB: // JP V0/Vx, nnn
		if c.Profile.Jump {
			c.pc = d.nnn + uint16(c.v[d.x])
		} else {
			c.pc = d.nnn + uint16(c.v[0])
		}
	case 0xC: // RND Vx, kk
		c.v[d.x] = c.rng() & d.kk
	case 0xD: // DRW Vx, Vy, n
		return c.execDraw(d)
	case 0xE:
		return c.executeExxx(opcode, d)
	case 0xF:
		return c.executeFxxx(opcode, d)
	}
	return StepResult{}, nil
}

func (c *CPU) execute8xy(d decoded) (StepResult, error) {
	switch d.n {
	case 0x0: // LD Vx, Vy
		c.v[d.x] = c.v[d.y]
	case 0x1: // OR Vx, Vy
		c.v[d.x] |= c.v[d.y]
		if c.Profile.Logic {
			c.v[0xF] = 0
		}
	case 0x2: // AND Vx, Vy
		c.v[d.x] &= c.v[d.y]
		if c.Profile.Logic {
			c.v[0xF] = 0
		}
	case 0x3: // XOR Vx, Vy
		c.v[d.x] ^= c.v[d.y]
		if c.Profile.Logic {
			c.v[0xF] = 0
		}
	case 0x4: // ADD Vx, Vy
		sum := uint16(c.v[d.x]) + uint16(c.v[d.y])
		c.v[d.x] = byte(sum)
		c.v[0xF] = boolByte(sum > 0xFF)
	case 0x5: // SUB Vx, Vy
		vx, vy := c.v[d.x], c.v[d.y]
		c.v[d.x] = vx - vy
		c.v[0xF] = boolByte(vx >= vy)
	case 0x6: // SHR Vx {, Vy}
		src := d.y
		if c.Profile.Shift {
			src = d.x
		}
		source := c.v[src]
		lsb := source & 0x1
		c.v[d.x] = source >> 1
		c.v[0xF] = lsb
	case 0x7: // SUBN Vx, Vy
		vx, vy := c.v[d.x], c.v[d.y]
		c.v[d.x] = vy - vx
		c.v[0xF] = boolByte(vy >= vx)
	case 0xE: // SHL Vx {, Vy}
		src := d.y
		if c.Profile.Shift {
			src = d.x
		}
		source := c.v[src]
		msb := (source >> 7) & 0x1
		c.v[d.x] = source << 1
		c.v[0xF] = msb
	}
	return StepResult{}, nil
}

func (c *CPU) execDraw(d decoded) (StepResult, error) {
	bx := int(c.v[d.x]) % FramebufferWidth
	by := int(c.v[d.y]) % FramebufferHeight

	collision := false
	for row := uint16(0); row < d.n; row++ {
		addr := int(c.i) + int(row)
		if addr < 0 || addr >= ramSize {
			return StepResult{}, c.ramFault(addr, "Dxyn sprite read")
		}
		if c.Framebuffer.Draw(bx, by+int(row), c.ram[addr], c.Profile.Wrap) {
			collision = true
		}
	}
	c.v[0xF] = boolByte(collision)

	return StepResult{Drew: true}, nil
}

func (c *CPU) executeExxx(opcode uint16, d decoded) (StepResult, error) {
	switch opcode & 0x00FF {
	case 0x9E: // SKP Vx
		if c.Keypad != nil && c.Keypad.IsPressed(c.v[d.x]) {
			c.pc += 2
		}
	case 0xA1: // SKNP Vx
		if c.Keypad == nil || !c.Keypad.IsPressed(c.v[d.x]) {
			c.pc += 2
		}
	}
	return StepResult{}, nil
}

func (c *CPU) executeFxxx(opcode uint16, d decoded) (StepResult, error) {
	switch opcode & 0x00FF {
	case 0x07: // LD Vx, DT
		c.v[d.x] = c.Timers.Delay
	case 0x0A: // LD Vx, K — blocking read, implemented as a PC rewind.
		return c.waitKey(d.x)
	case 0x15: // LD DT, Vx
		c.Timers.Delay = c.v[d.x]
	case 0x18: // LD ST, Vx
		c.Timers.Sound = c.v[d.x]
	case 0x1E: // ADD I, Vx
		c.i += uint16(c.v[d.x])
	case 0x29: // LD F, Vx
		c.i = uint16(bytesPerGlyph) * uint16(c.v[d.x]&0x0F)
	case 0x33: // LD B, Vx
		if err := c.storeBCD(d.x); err != nil {
			return StepResult{}, err
		}
	case 0x55: // LD [I], Vx
		if err := c.storeRegisters(d.x); err != nil {
			return StepResult{}, err
		}
	case 0x65: // LD Vx, [I]
		if err := c.loadRegisters(d.x); err != nil {
			return StepResult{}, err
		}
	}
	return StepResult{}, nil
}

func (c *CPU) waitKey(x uint16) (StepResult, error) {
	if c.Keypad == nil {
		c.pc -= 2 // no key source: re-issue this instruction next cycle
		return StepResult{Blocked: true}, nil
	}
	key, ok, keepRunning := c.Keypad.BlockRead(c.Profile)
	if !keepRunning {
		c.pc -= 2
		return StepResult{Blocked: true, Quit: true}, nil
	}
	if !ok {
		c.pc -= 2 // re-issue this instruction next cycle
		return StepResult{Blocked: true}, nil
	}
	c.v[x] = key
	return StepResult{}, nil
}

func (c *CPU) storeBCD(x uint16) error {
	if int(c.i)+2 >= ramSize {
		return c.ramFault(int(c.i), "Fx33 BCD write")
	}
	value := c.v[x]
	c.ram[c.i] = value / 100
	c.ram[c.i+1] = (value / 10) % 10
	c.ram[c.i+2] = value % 10
	return nil
}

func (c *CPU) storeRegisters(x uint16) error {
	if int(c.i)+int(x) >= ramSize {
		return c.ramFault(int(c.i)+int(x), "Fx55 register store")
	}
	for reg := uint16(0); reg <= x; reg++ {
		c.ram[c.i+reg] = c.v[reg]
	}
	c.advanceIAfterBlockOp(x)
	return nil
}

func (c *CPU) loadRegisters(x uint16) error {
	if int(c.i)+int(x) >= ramSize {
		return c.ramFault(int(c.i)+int(x), "Fx65 register load")
	}
	for reg := uint16(0); reg <= x; reg++ {
		c.v[reg] = c.ram[c.i+reg]
	}
	c.advanceIAfterBlockOp(x)
	return nil
}

func (c *CPU) advanceIAfterBlockOp(x uint16) {
	if c.Profile.MemoryLeaveIUnchanged {
		return
	}
	c.i += x
	if !c.Profile.MemoryIncrementByX {
		c.i++
	}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
