package cpu

// cmaInstr complements A. No flags are touched.
func cmaInstr(c *CPU, pc0 uint16, op byte) {
	c.Reg.A = ^c.Reg.A
}

// stcInstr/cmcInstr set or complement Carry. Nothing else moves.
func stcInstr(c *CPU, pc0 uint16, op byte) {
	c.Flags.C = true
}

func cmcInstr(c *CPU, pc0 uint16, op byte) {
	c.Flags.C = !c.Flags.C
}

// diInstr/eiInstr drop or raise the interrupt-enable latch.
func diInstr(c *CPU, pc0 uint16, op byte) {
	c.INTE = false
}

func eiInstr(c *CPU, pc0 uint16, op byte) {
	c.INTE = true
}

// inInstr reads a port into A. A declining callback (ok == false) leaves
// A untouched, matching the bus's "no device answered" contract.
func inInstr(c *CPU, pc0 uint16, op byte) {
	device := c.imm8(pc0)
	if v, ok := c.Bus.In(device); ok {
		c.Reg.A = v
	}
}

// outInstr writes A to a port.
func outInstr(c *CPU, pc0 uint16, op byte) {
	c.Bus.Out(c.imm8(pc0), c.Reg.A)
}
