package cpu

// rlcInstr rotates A left, bit 7 wrapping into both bit 0 and Carry.
func rlcInstr(c *CPU, pc0 uint16, op byte) {
	bit7 := c.Reg.A >> 7
	c.Reg.A = c.Reg.A<<1 | bit7
	c.Flags.C = bit7 != 0
}

// rrcInstr rotates A right, bit 0 wrapping into both bit 7 and Carry.
func rrcInstr(c *CPU, pc0 uint16, op byte) {
	bit0 := c.Reg.A & 1
	c.Reg.A = c.Reg.A>>1 | bit0<<7
	c.Flags.C = bit0 != 0
}

// ralInstr rotates A left through Carry: the old Carry becomes bit 0, and
// bit 7 becomes the new Carry.
func ralInstr(c *CPU, pc0 uint16, op byte) {
	bit7 := c.Reg.A >> 7
	c.Reg.A = c.Reg.A<<1 | boolBit(c.Flags.C)
	c.Flags.C = bit7 != 0
}

// rarInstr rotates A right through Carry: the old Carry becomes bit 7,
// and bit 0 becomes the new Carry.
func rarInstr(c *CPU, pc0 uint16, op byte) {
	bit0 := c.Reg.A & 1
	c.Reg.A = c.Reg.A>>1 | boolBit(c.Flags.C)<<7
	c.Flags.C = bit0 != 0
}
