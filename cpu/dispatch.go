package cpu

// instrFunc is the shape of every opcode handler: given the CPU and the
// address the opcode byte was fetched from (pc0) plus the opcode itself,
// it mutates CPU/Bus state and, for control-transfer opcodes, sets PC
// explicitly via jumpTo. Everything else is left to the PC-length table
// in Step.
type instrFunc func(c *CPU, pc0 uint16, op byte)

// dispatch is the dense 256-entry opcode table described in the design
// notes: a plain array indexed by opcode byte, populated once at package
// init from generic row/col handlers (MOV, ALU) plus one explicit entry per
// remaining documented opcode. Anything left at its zero value falls back
// to nopInstr, matching the "unknown opcodes execute as NOP" contract.
var dispatch [256]instrFunc

func init() {
	for i := range dispatch {
		dispatch[i] = nopInstr
	}

	// MOV r,r' / MOV r,M / MOV M,r / HLT
	for row := byte(0); row < 8; row++ {
		for col := byte(0); col < 8; col++ {
			op := 0x40 + row*8 + col
			if row == 6 && col == 6 {
				dispatch[op] = hltInstr
			} else {
				dispatch[op] = movInstr
			}
		}
	}

	// ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP
	for row := byte(0); row < 8; row++ {
		for col := byte(0); col < 8; col++ {
			op := 0x80 + row*8 + col
			dispatch[op] = aluInstr
		}
	}

	d := func(op byte, f instrFunc) { dispatch[op] = f }

	d(0x00, nopInstr)
	d(0x01, lxiInstr)
	d(0x02, func(c *CPU, pc0 uint16, op byte) { c.Bus.WriteByte(c.Reg.BC(), c.Reg.A) })  // STAX B
	d(0x03, inxInstr)
	d(0x04, inrInstr)
	d(0x05, dcrInstr)
	d(0x06, mviInstr)
	d(0x07, rlcInstr)
	d(0x09, dadInstr)
	d(0x0A, func(c *CPU, pc0 uint16, op byte) { c.Reg.A = c.Bus.ReadByte(c.Reg.BC()) }) // LDAX B
	d(0x0B, dcxInstr)
	d(0x0C, inrInstr)
	d(0x0D, dcrInstr)
	d(0x0E, mviInstr)
	d(0x0F, rrcInstr)

	d(0x11, lxiInstr)
	d(0x12, func(c *CPU, pc0 uint16, op byte) { c.Bus.WriteByte(c.Reg.DE(), c.Reg.A) }) // STAX D
	d(0x13, inxInstr)
	d(0x14, inrInstr)
	d(0x15, dcrInstr)
	d(0x16, mviInstr)
	d(0x17, ralInstr)
	d(0x19, dadInstr)
	d(0x1A, func(c *CPU, pc0 uint16, op byte) { c.Reg.A = c.Bus.ReadByte(c.Reg.DE()) }) // LDAX D
	d(0x1B, dcxInstr)
	d(0x1C, inrInstr)
	d(0x1D, dcrInstr)
	d(0x1E, mviInstr)
	d(0x1F, rarInstr)

	d(0x21, lxiInstr)
	d(0x22, shldInstr)
	d(0x23, inxInstr)
	d(0x24, inrInstr)
	d(0x25, dcrInstr)
	d(0x26, mviInstr)
	d(0x27, daaInstr)
	d(0x29, dadInstr)
	d(0x2A, lhldInstr)
	d(0x2B, dcxInstr)
	d(0x2C, inrInstr)
	d(0x2D, dcrInstr)
	d(0x2E, mviInstr)
	d(0x2F, cmaInstr)

	d(0x31, lxiInstr)
	d(0x32, staInstr)
	d(0x33, inxInstr)
	d(0x34, inrInstr)
	d(0x35, dcrInstr)
	d(0x36, mviInstr)
	d(0x37, stcInstr)
	d(0x39, dadInstr)
	d(0x3A, ldaInstr)
	d(0x3B, dcxInstr)
	d(0x3C, inrInstr)
	d(0x3D, dcrInstr)
	d(0x3E, mviInstr)
	d(0x3F, cmcInstr)

	d(0xC0, retInstr)
	d(0xC1, popInstr)
	d(0xC2, jmpInstr)
	d(0xC3, jmpInstr)
	d(0xC4, callInstr)
	d(0xC5, pushInstr)
	d(0xC6, aluImmInstr)
	d(0xC7, rstInstr)
	d(0xC8, retInstr)
	d(0xC9, retInstr)
	d(0xCA, jmpInstr)
	d(0xCC, callInstr)
	d(0xCD, callInstr)
	d(0xCE, aluImmInstr)
	d(0xCF, rstInstr)

	d(0xD0, retInstr)
	d(0xD1, popInstr)
	d(0xD2, jmpInstr)
	d(0xD3, outInstr)
	d(0xD4, callInstr)
	d(0xD5, pushInstr)
	d(0xD6, aluImmInstr)
	d(0xD7, rstInstr)
	d(0xD8, retInstr)
	d(0xDA, jmpInstr)
	d(0xDB, inInstr)
	d(0xDC, callInstr)
	d(0xDE, aluImmInstr)
	d(0xDF, rstInstr)

	d(0xE0, retInstr)
	d(0xE1, popInstr)
	d(0xE2, jmpInstr)
	d(0xE3, xthlInstr)
	d(0xE4, callInstr)
	d(0xE5, pushInstr)
	d(0xE6, aluImmInstr)
	d(0xE7, rstInstr)
	d(0xE8, retInstr)
	d(0xE9, pchlInstr)
	d(0xEA, jmpInstr)
	d(0xEB, xchgInstr)
	d(0xEC, callInstr)
	d(0xEE, aluImmInstr)
	d(0xEF, rstInstr)

	d(0xF0, retInstr)
	d(0xF1, popInstr)
	d(0xF2, jmpInstr)
	d(0xF3, diInstr)
	d(0xF4, callInstr)
	d(0xF5, pushInstr)
	d(0xF6, aluImmInstr)
	d(0xF7, rstInstr)
	d(0xF8, retInstr)
	d(0xF9, sphlInstr)
	d(0xFA, jmpInstr)
	d(0xFB, eiInstr)
	d(0xFC, callInstr)
	d(0xFE, aluImmInstr)
	d(0xFF, rstInstr)
}

func nopInstr(c *CPU, pc0 uint16, op byte) {}
