package cpu

import "i8080/mask"

// pushInstr covers PUSH B/D/H/PSW. PUSH PSW packs A and the condition
// flags into a word with A in the high byte, so it lands at SP+1 and the
// flag byte at SP, matching POP PSW's inverse below.
func pushInstr(c *CPU, pc0 uint16, op byte) {
	switch (op >> 4) & 3 {
	case 0:
		c.push16(c.Reg.BC())
	case 1:
		c.push16(c.Reg.DE())
	case 2:
		c.push16(c.Reg.HL())
	case 3:
		c.push16(mask.Word(c.Reg.A, c.Flags.Pack()))
	}
}

// popInstr covers POP B/D/H/PSW.
func popInstr(c *CPU, pc0 uint16, op byte) {
	v := c.pop16()
	switch (op >> 4) & 3 {
	case 0:
		c.Reg.SetBC(v)
	case 1:
		c.Reg.SetDE(v)
	case 2:
		c.Reg.SetHL(v)
	case 3:
		c.Reg.A = mask.Hi(v)
		c.Flags.Unpack(mask.Lo(v))
	}
}
