package cpu

// cycleTable and lengthTable are the canonical per-opcode base cycle count
// and instruction length (in bytes) straight from the 8080 datasheet.
// Entries never explicitly set below default to the NOP-equivalent (4
// cycles, 1 byte): this covers both genuinely reserved opcodes and the
// handful of documented duplicate-opcode aliases (0x08, 0x10, 0x18, 0x20,
// 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD), matching the "unknown
// opcodes execute as NOP" failure semantics.
var (
	cycleTable  [256]byte
	lengthTable [256]byte
)

func init() {
	for i := range cycleTable {
		cycleTable[i] = 4
		lengthTable[i] = 1
	}

	// MOV r,r' / MOV r,M / MOV M,r / HLT occupy the whole 0x40-0x7F block.
	for row := byte(0); row < 8; row++ {
		for col := byte(0); col < 8; col++ {
			op := 0x40 + row*8 + col
			switch {
			case row == 6 && col == 6: // HLT
				cycleTable[op] = 7
			case row == 6 || col == 6: // MOV M,r or MOV r,M
				cycleTable[op] = 7
			default:
				cycleTable[op] = 5
			}
		}
	}

	// ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP occupy the whole 0x80-0xBF block.
	for row := byte(0); row < 8; row++ {
		for col := byte(0); col < 8; col++ {
			op := 0x80 + row*8 + col
			if col == 6 {
				cycleTable[op] = 7
			} else {
				cycleTable[op] = 4
			}
		}
	}

	set := func(op byte, cycles byte, length byte) {
		cycleTable[op] = cycles
		lengthTable[op] = length
	}

	// 0x00-0x3F
	set(0x00, 4, 1)   // NOP
	set(0x01, 10, 3)  // LXI B,d16
	set(0x02, 7, 1)   // STAX B
	set(0x03, 5, 1)   // INX B
	set(0x04, 5, 1)   // INR B
	set(0x05, 5, 1)   // DCR B
	set(0x06, 7, 2)   // MVI B,d8
	set(0x07, 4, 1)   // RLC
	set(0x09, 10, 1)  // DAD B
	set(0x0A, 7, 1)   // LDAX B
	set(0x0B, 5, 1)   // DCX B
	set(0x0C, 5, 1)   // INR C
	set(0x0D, 5, 1)   // DCR C
	set(0x0E, 7, 2)   // MVI C,d8
	set(0x0F, 4, 1)   // RRC
	set(0x11, 10, 3)  // LXI D,d16
	set(0x12, 7, 1)   // STAX D
	set(0x13, 5, 1)   // INX D
	set(0x14, 5, 1)   // INR D
	set(0x15, 5, 1)   // DCR D
	set(0x16, 7, 2)   // MVI D,d8
	set(0x17, 4, 1)   // RAL
	set(0x19, 10, 1)  // DAD D
	set(0x1A, 7, 1)   // LDAX D
	set(0x1B, 5, 1)   // DCX D
	set(0x1C, 5, 1)   // INR E
	set(0x1D, 5, 1)   // DCR E
	set(0x1E, 7, 2)   // MVI E,d8
	set(0x1F, 4, 1)   // RAR
	set(0x21, 10, 3)  // LXI H,d16
	set(0x22, 16, 3)  // SHLD addr
	set(0x23, 5, 1)   // INX H
	set(0x24, 5, 1)   // INR H
	set(0x25, 5, 1)   // DCR H
	set(0x26, 7, 2)   // MVI H,d8
	set(0x27, 4, 1)   // DAA
	set(0x29, 10, 1)  // DAD H
	set(0x2A, 16, 3)  // LHLD addr
	set(0x2B, 5, 1)   // DCX H
	set(0x2C, 5, 1)   // INR L
	set(0x2D, 5, 1)   // DCR L
	set(0x2E, 7, 2)   // MVI L,d8
	set(0x2F, 4, 1)   // CMA
	set(0x31, 10, 3)  // LXI SP,d16
	set(0x32, 13, 3)  // STA addr
	set(0x33, 5, 1)   // INX SP
	set(0x34, 10, 1)  // INR M
	set(0x35, 10, 1)  // DCR M
	set(0x36, 10, 2)  // MVI M,d8
	set(0x37, 4, 1)   // STC
	set(0x39, 10, 1)  // DAD SP
	set(0x3A, 13, 3)  // LDA addr
	set(0x3B, 5, 1)   // DCX SP
	set(0x3C, 5, 1)   // INR A
	set(0x3D, 5, 1)   // DCR A
	set(0x3E, 7, 2)   // MVI A,d8
	set(0x3F, 4, 1)   // CMC

	// 0xC0-0xFF
	set(0xC0, 5, 1)  // RNZ
	set(0xC1, 10, 1) // POP B
	set(0xC2, 10, 3) // JNZ addr
	set(0xC3, 10, 3) // JMP addr
	set(0xC4, 11, 3) // CNZ addr
	set(0xC5, 11, 1) // PUSH B
	set(0xC6, 7, 2)  // ADI d8
	set(0xC7, 11, 1) // RST 0
	set(0xC8, 5, 1)  // RZ
	set(0xC9, 10, 1) // RET
	set(0xCA, 10, 3) // JZ addr
	set(0xCC, 11, 3) // CZ addr
	set(0xCD, 17, 3) // CALL addr
	set(0xCE, 7, 2)  // ACI d8
	set(0xCF, 11, 1) // RST 1
	set(0xD0, 5, 1)  // RNC
	set(0xD1, 10, 1) // POP D
	set(0xD2, 10, 3) // JNC addr
	set(0xD3, 10, 2) // OUT d8
	set(0xD4, 11, 3) // CNC addr
	set(0xD5, 11, 1) // PUSH D
	set(0xD6, 7, 2)  // SUI d8
	set(0xD7, 11, 1) // RST 2
	set(0xD8, 5, 1)  // RC
	set(0xDA, 10, 3) // JC addr
	set(0xDB, 10, 2) // IN d8
	set(0xDC, 11, 3) // CC addr
	set(0xDE, 7, 2)  // SBI d8
	set(0xDF, 11, 1) // RST 3
	set(0xE0, 5, 1)  // RPO
	set(0xE1, 10, 1) // POP H
	set(0xE2, 10, 3) // JPO addr
	set(0xE3, 18, 1) // XTHL
	set(0xE4, 11, 3) // CPO addr
	set(0xE5, 11, 1) // PUSH H
	set(0xE6, 7, 2)  // ANI d8
	set(0xE7, 11, 1) // RST 4
	set(0xE8, 5, 1)  // RPE
	set(0xE9, 5, 1)  // PCHL
	set(0xEA, 10, 3) // JPE addr
	set(0xEB, 4, 1)  // XCHG
	set(0xEC, 11, 3) // CPE addr
	set(0xEE, 7, 2)  // XRI d8
	set(0xEF, 11, 1) // RST 5
	set(0xF0, 5, 1)  // RP
	set(0xF1, 10, 1) // POP PSW
	set(0xF2, 10, 3) // JP addr
	set(0xF3, 4, 1)  // DI
	set(0xF4, 11, 3) // CP addr
	set(0xF5, 11, 1) // PUSH PSW
	set(0xF6, 7, 2)  // ORI d8
	set(0xF7, 11, 1) // RST 6
	set(0xF8, 5, 1)  // RM
	set(0xF9, 5, 1)  // SPHL
	set(0xFA, 10, 3) // JM addr
	set(0xFB, 4, 1)  // EI
	set(0xFC, 11, 3) // CM addr
	set(0xFE, 7, 2)  // CPI d8
	set(0xFF, 11, 1) // RST 7
}
