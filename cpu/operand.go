package cpu

// The 8080 encodes a register operand in a 3-bit field: 0=B 1=C 2=D 3=E 4=H
// 5=L 6=M(memory at HL) 7=A. getReg/setReg centralise that mapping so MOV,
// MVI, INR/DCR and every ALU instruction can share one dispatch path
// regardless of whether the operand is a register or (HL).
func (c *CPU) getReg(idx byte) byte {
	switch idx {
	case 0:
		return c.Reg.B
	case 1:
		return c.Reg.C
	case 2:
		return c.Reg.D
	case 3:
		return c.Reg.E
	case 4:
		return c.Reg.H
	case 5:
		return c.Reg.L
	case 6:
		return c.Bus.ReadByte(c.Reg.HL())
	default:
		return c.Reg.A
	}
}

func (c *CPU) setReg(idx byte, v byte) {
	switch idx {
	case 0:
		c.Reg.B = v
	case 1:
		c.Reg.C = v
	case 2:
		c.Reg.D = v
	case 3:
		c.Reg.E = v
	case 4:
		c.Reg.H = v
	case 5:
		c.Reg.L = v
	case 6:
		c.Bus.WriteByte(c.Reg.HL(), v)
	default:
		c.Reg.A = v
	}
}

// regPair reads one of the four register-pair operands (rp field, 2 bits):
// 0=BC 1=DE 2=HL 3=SP.
func (c *CPU) regPair(rp byte) uint16 {
	switch rp {
	case 0:
		return c.Reg.BC()
	case 1:
		return c.Reg.DE()
	case 2:
		return c.Reg.HL()
	default:
		return c.SP
	}
}

func (c *CPU) setRegPair(rp byte, v uint16) {
	switch rp {
	case 0:
		c.Reg.SetBC(v)
	case 1:
		c.Reg.SetDE(v)
	case 2:
		c.Reg.SetHL(v)
	default:
		c.SP = v
	}
}
