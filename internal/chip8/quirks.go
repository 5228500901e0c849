package chip8

// Profile holds the seven quirk flags that select between mutually
// incompatible historical CHIP-8 opcode behaviors, plus the two runtime
// tuning knobs (rate, ipf) the keypad can adjust live. It is immutable for
// the duration of a ROM except for those two knobs.
type Profile struct {
	Rate uint // frames per second
	IPF  uint // instructions executed per frame

	// Shift: false = 8xy6/8xyE shift Vy into Vx. true = shift Vx in place, Vy ignored.
	Shift bool
	// MemoryIncrementByX: false = Fx55/Fx65 leave I += x+1. true = I += x.
	MemoryIncrementByX bool
	// MemoryLeaveIUnchanged: true = Fx55/Fx65 never touch I.
	MemoryLeaveIUnchanged bool
	// Wrap: true = sprites wrap at the screen edges instead of clipping.
	Wrap bool
	// Jump: false = Bnnn jumps to nnn+V0. true = Bnnn jumps to xnn+Vx.
	Jump bool
	// Vblank: true = at most one draw per frame; a draw ends the frame's instruction budget early.
	Vblank bool
	// Logic: true = 8xy1/8xy2/8xy3 clear VF to 0.
	Logic bool
}

// DefaultProfile returns the baseline quirk profile used before any
// ROM-specific platform has been resolved.
func DefaultProfile() *Profile {
	return &Profile{
		Rate:   60,
		IPF:    12,
		Vblank: true,
		Logic:  true,
	}
}

// Platform names a historical CHIP-8 implementation as reported by the
// quirk database (see internal/quirkdb).
type Platform string

const (
	PlatformOriginalChip8 Platform = "originalChip8"
	PlatformHybridVIP     Platform = "hybridVIP"
	PlatformChip8X        Platform = "chip8x"
	PlatformModernChip8   Platform = "modernChip8"
	PlatformChip48        Platform = "chip48"
	PlatformSuperchip1    Platform = "superchip1"
	PlatformSuperchip     Platform = "superchip"
)

// ApplyPlatform sets the seven quirk flags (never Rate/IPF) to match the
// named historical platform. An unrecognized platform leaves the profile
// untouched.
func (p *Profile) ApplyPlatform(platform string) {
	switch Platform(platform) {
	case PlatformOriginalChip8, PlatformHybridVIP, PlatformChip8X:
		p.set(false, false, false, false, false, true, true)
	case PlatformModernChip8:
		p.set(false, false, false, false, false, false, false)
	case PlatformChip48, PlatformSuperchip1:
		p.set(true, true, false, false, true, false, false)
	case PlatformSuperchip:
		p.set(true, false, true, false, true, false, false)
	}
}

func (p *Profile) set(shift, memIncByX, memLeaveI, wrap, jump, vblank, logic bool) {
	p.Shift = shift
	p.MemoryIncrementByX = memIncByX
	p.MemoryLeaveIUnchanged = memLeaveI
	p.Wrap = wrap
	p.Jump = jump
	p.Vblank = vblank
	p.Logic = logic
}
