package cpu

import "fmt"

// trace formats the debug string left in c.Trace after each Step when
// c.Debug is set: the disassembly at pc0, followed by PC, SP, the five
// flags, the seven registers, and the word currently at (SP). RST opcodes
// are abbreviated to just "RST", since their operand (the vector number)
// is already implied by the opcode byte and not worth restating here.
func (c *CPU) trace(pc0 uint16, op byte) string {
	mnemonic := Disassemble(c.Bus, pc0)
	if op&0xC7 == 0xC7 {
		mnemonic = "RST"
	}

	return fmt.Sprintf(
		"%-16s PC=%04X SP=%04X S=%d Z=%d A=%d P=%d C=%d B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X A=%02X (SP)=%04X",
		mnemonic,
		c.PC, c.SP,
		boolBit(c.Flags.S), boolBit(c.Flags.Z), boolBit(c.Flags.A), boolBit(c.Flags.P), boolBit(c.Flags.C),
		c.Reg.B, c.Reg.C, c.Reg.D, c.Reg.E, c.Reg.H, c.Reg.L, c.Reg.A,
		c.Bus.ReadWord(c.SP),
	)
}
