package cpu

// SetPendingInterrupt arms a pending interrupt with the given opcode,
// conventionally one of the eight RST variants (0xC7, 0xCF, 0xD7, 0xDF,
// 0xE7, 0xEF, 0xF7, 0xFF), though any opcode is accepted. It has no effect
// on the current Step if one is already in progress; it is sampled only at
// the next fetch, and only if INTE is true at that point. Safe to call from
// a goroutine other than the one driving Step.
func (c *CPU) SetPendingInterrupt(opcode byte) {
	c.interrupt.mu.Lock()
	defer c.interrupt.mu.Unlock()
	c.interrupt.armed = true
	c.interrupt.opcode = opcode
}

// ClearPendingInterrupt disarms a previously set interrupt without it ever
// being acknowledged.
func (c *CPU) ClearPendingInterrupt() {
	c.interrupt.mu.Lock()
	defer c.interrupt.mu.Unlock()
	c.interrupt.armed = false
}
