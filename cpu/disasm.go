package cpu

import (
	"fmt"

	"i8080/mem"
)

var disasmRegNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
var disasmAluNames = [8]string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}

// Disassemble returns the mnemonic for the instruction at addr, reading
// any immediate operand bytes it needs directly from bus. It never
// advances any state; it is purely a formatter over memory, used by both
// the debug trace and the interactive monitor.
func Disassemble(bus *mem.Bus, addr uint16) string {
	op := bus.ReadByte(addr)

	if op >= 0x40 && op <= 0x7F {
		if op == 0x76 {
			return "HLT"
		}
		dst := (op >> 3) & 7
		src := op & 7
		return fmt.Sprintf("MOV %s,%s", disasmRegNames[dst], disasmRegNames[src])
	}

	if op >= 0x80 && op <= 0xBF {
		row := (op >> 3) & 7
		col := op & 7
		return fmt.Sprintf("%s %s", disasmAluNames[row], disasmRegNames[col])
	}

	d8 := func() byte { return bus.ReadByte(addr + 1) }
	d16 := func() uint16 { return bus.ReadWord(addr + 1) }

	switch op {
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD:
		return "NOP"

	case 0x01:
		return fmt.Sprintf("LXI B,$%04X", d16())
	case 0x02:
		return "STAX B"
	case 0x03:
		return "INX B"
	case 0x04:
		return "INR B"
	case 0x05:
		return "DCR B"
	case 0x06:
		return fmt.Sprintf("MVI B,$%02X", d8())
	case 0x07:
		return "RLC"
	case 0x09:
		return "DAD B"
	case 0x0A:
		return "LDAX B"
	case 0x0B:
		return "DCX B"
	case 0x0C:
		return "INR C"
	case 0x0D:
		return "DCR C"
	case 0x0E:
		return fmt.Sprintf("MVI C,$%02X", d8())
	case 0x0F:
		return "RRC"

	case 0x11:
		return fmt.Sprintf("LXI D,$%04X", d16())
	case 0x12:
		return "STAX D"
	case 0x13:
		return "INX D"
	case 0x14:
		return "INR D"
	case 0x15:
		return "DCR D"
	case 0x16:
		return fmt.Sprintf("MVI D,$%02X", d8())
	case 0x17:
		return "RAL"
	case 0x19:
		return "DAD D"
	case 0x1A:
		return "LDAX D"
	case 0x1B:
		return "DCX D"
	case 0x1C:
		return "INR E"
	case 0x1D:
		return "DCR E"
	case 0x1E:
		return fmt.Sprintf("MVI E,$%02X", d8())
	case 0x1F:
		return "RAR"

	case 0x21:
		return fmt.Sprintf("LXI H,$%04X", d16())
	case 0x22:
		return fmt.Sprintf("SHLD $%04X", d16())
	case 0x23:
		return "INX H"
	case 0x24:
		return "INR H"
	case 0x25:
		return "DCR H"
	case 0x26:
		return fmt.Sprintf("MVI H,$%02X", d8())
	case 0x27:
		return "DAA"
	case 0x29:
		return "DAD H"
	case 0x2A:
		return fmt.Sprintf("LHLD $%04X", d16())
	case 0x2B:
		return "DCX H"
	case 0x2C:
		return "INR L"
	case 0x2D:
		return "DCR L"
	case 0x2E:
		return fmt.Sprintf("MVI L,$%02X", d8())
	case 0x2F:
		return "CMA"

	case 0x31:
		return fmt.Sprintf("LXI SP,$%04X", d16())
	case 0x32:
		return fmt.Sprintf("STA $%04X", d16())
	case 0x33:
		return "INX SP"
	case 0x34:
		return "INR (HL)"
	case 0x35:
		return "DCR (HL)"
	case 0x36:
		return fmt.Sprintf("MVI (HL),$%02X", d8())
	case 0x37:
		return "STC"
	case 0x39:
		return "DAD SP"
	case 0x3A:
		return fmt.Sprintf("LDA $%04X", d16())
	case 0x3B:
		return "DCX SP"
	case 0x3C:
		return "INR A"
	case 0x3D:
		return "DCR A"
	case 0x3E:
		return fmt.Sprintf("MVI A,$%02X", d8())
	case 0x3F:
		return "CMC"

	case 0xC0:
		return "RNZ"
	case 0xC1:
		return "POP B"
	case 0xC2:
		return fmt.Sprintf("JNZ $%04X", d16())
	case 0xC3:
		return fmt.Sprintf("JMP $%04X", d16())
	case 0xC4:
		return fmt.Sprintf("CNZ $%04X", d16())
	case 0xC5:
		return "PUSH B"
	case 0xC6:
		return fmt.Sprintf("ADI $%02X", d8())
	case 0xC7:
		return "RST 0"
	case 0xC8:
		return "RZ"
	case 0xC9:
		return "RET"
	case 0xCA:
		return fmt.Sprintf("JZ $%04X", d16())
	case 0xCC:
		return fmt.Sprintf("CZ $%04X", d16())
	case 0xCD:
		return fmt.Sprintf("CALL $%04X", d16())
	case 0xCE:
		return fmt.Sprintf("ACI $%02X", d8())
	case 0xCF:
		return "RST 1"

	case 0xD0:
		return "RNC"
	case 0xD1:
		return "POP D"
	case 0xD2:
		return fmt.Sprintf("JNC $%04X", d16())
	case 0xD3:
		return fmt.Sprintf("OUT $%02X", d8())
	case 0xD4:
		return fmt.Sprintf("CNC $%04X", d16())
	case 0xD5:
		return "PUSH D"
	case 0xD6:
		return fmt.Sprintf("SUI $%02X", d8())
	case 0xD7:
		return "RST 2"
	case 0xD8:
		return "RC"
	case 0xDA:
		return fmt.Sprintf("JC $%04X", d16())
	case 0xDB:
		return fmt.Sprintf("IN $%02X", d8())
	case 0xDC:
		return fmt.Sprintf("CC $%04X", d16())
	case 0xDE:
		return fmt.Sprintf("SBI $%02X", d8())
	case 0xDF:
		return "RST 3"

	case 0xE0:
		return "RPO"
	case 0xE1:
		return "POP H"
	case 0xE2:
		return fmt.Sprintf("JPO $%04X", d16())
	case 0xE3:
		return "XTHL"
	case 0xE4:
		return fmt.Sprintf("CPO $%04X", d16())
	case 0xE5:
		return "PUSH H"
	case 0xE6:
		return fmt.Sprintf("ANI $%02X", d8())
	case 0xE7:
		return "RST 4"
	case 0xE8:
		return "RPE"
	case 0xE9:
		return "PCHL"
	case 0xEA:
		return fmt.Sprintf("JPE $%04X", d16())
	case 0xEB:
		return "XCHG"
	case 0xEC:
		return fmt.Sprintf("CPE $%04X", d16())
	case 0xEE:
		return fmt.Sprintf("XRI $%02X", d8())
	case 0xEF:
		return "RST 5"

	case 0xF0:
		return "RP"
	case 0xF1:
		return "POP PSW"
	case 0xF2:
		return fmt.Sprintf("JP $%04X", d16())
	case 0xF3:
		return "DI"
	case 0xF4:
		return fmt.Sprintf("CP $%04X", d16())
	case 0xF5:
		return "PUSH PSW"
	case 0xF6:
		return fmt.Sprintf("ORI $%02X", d8())
	case 0xF7:
		return "RST 6"
	case 0xF8:
		return "RM"
	case 0xF9:
		return "SPHL"
	case 0xFA:
		return fmt.Sprintf("JM $%04X", d16())
	case 0xFB:
		return "EI"
	case 0xFC:
		return fmt.Sprintf("CM $%04X", d16())
	case 0xFE:
		return fmt.Sprintf("CPI $%02X", d8())
	case 0xFF:
		return "RST 7"
	}

	return "NOP"
}
