package cpu

// inrInstr/dcrInstr increment or decrement a register or (HL) by one,
// updating S, Z, P and the auxiliary carry. Carry itself is left alone,
// which is the one thing that distinguishes these from ADD/SUB by 1.
func inrInstr(c *CPU, pc0 uint16, op byte) {
	idx := (op >> 3) & 7
	v := c.getReg(idx)
	res := v + 1
	c.Flags.A = v&0x0F+1 > 0x0F
	c.setReg(idx, res)
	c.Flags.setSZP(res)
}

func dcrInstr(c *CPU, pc0 uint16, op byte) {
	idx := (op >> 3) & 7
	v := c.getReg(idx)
	res := v - 1
	c.Flags.A = res&0x0F != 0x0F
	c.setReg(idx, res)
	c.Flags.setSZP(res)
}

// inxInstr/dcxInstr increment or decrement a register pair by one. No
// flags are affected, not even on overflow from 0xFFFF to 0x0000.
func inxInstr(c *CPU, pc0 uint16, op byte) {
	rp := (op >> 4) & 3
	c.setRegPair(rp, c.regPair(rp)+1)
}

func dcxInstr(c *CPU, pc0 uint16, op byte) {
	rp := (op >> 4) & 3
	c.setRegPair(rp, c.regPair(rp)-1)
}
