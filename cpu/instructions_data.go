package cpu

// movInstr covers the whole MOV r,r' / MOV r,M / MOV M,r block. The
// destination and source register fields sit at bits 5-3 and 2-0 of op
// respectively; getReg/setReg fold the (HL) memory operand into the same
// 3-bit space as the seven registers, so one handler serves all 49
// combinations. No flags are touched.
func movInstr(c *CPU, pc0 uint16, op byte) {
	dst := (op >> 3) & 7
	src := op & 7
	c.setReg(dst, c.getReg(src))
}

// mviInstr loads an immediate byte into a register or (HL).
func mviInstr(c *CPU, pc0 uint16, op byte) {
	dst := (op >> 3) & 7
	c.setReg(dst, c.imm8(pc0))
}

// lxiInstr loads an immediate word into one of the four register pairs,
// SP included.
func lxiInstr(c *CPU, pc0 uint16, op byte) {
	rp := (op >> 4) & 3
	c.setRegPair(rp, c.imm16(pc0))
}

// staInstr/ldaInstr move A to and from a direct 16-bit address.
func staInstr(c *CPU, pc0 uint16, op byte) {
	c.Bus.WriteByte(c.imm16(pc0), c.Reg.A)
}

func ldaInstr(c *CPU, pc0 uint16, op byte) {
	c.Reg.A = c.Bus.ReadByte(c.imm16(pc0))
}

// shldInstr/lhldInstr move HL to and from a direct 16-bit address, low
// byte first.
func shldInstr(c *CPU, pc0 uint16, op byte) {
	c.Bus.WriteWord(c.imm16(pc0), c.Reg.HL())
}

func lhldInstr(c *CPU, pc0 uint16, op byte) {
	c.Reg.SetHL(c.Bus.ReadWord(c.imm16(pc0)))
}

// xchgInstr swaps DE and HL.
func xchgInstr(c *CPU, pc0 uint16, op byte) {
	de, hl := c.Reg.DE(), c.Reg.HL()
	c.Reg.SetDE(hl)
	c.Reg.SetHL(de)
}

// xthlInstr swaps HL with the word on top of the stack.
func xthlInstr(c *CPU, pc0 uint16, op byte) {
	top := c.Bus.ReadWord(c.SP)
	hl := c.Reg.HL()
	c.Bus.WriteWord(c.SP, hl)
	c.Reg.SetHL(top)
}

// sphlInstr loads SP from HL.
func sphlInstr(c *CPU, pc0 uint16, op byte) {
	c.SP = c.Reg.HL()
}

// pchlInstr jumps to the address in HL.
func pchlInstr(c *CPU, pc0 uint16, op byte) {
	c.jumpTo(c.Reg.HL())
}

// hltInstr sets the halt latch; Step's fetch path clears it again on
// interrupt acknowledgement, and otherwise only the host clears Halted.
func hltInstr(c *CPU, pc0 uint16, op byte) {
	c.Halted = true
}
