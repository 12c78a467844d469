package cpu

import "i8080/mask"

// Flags holds the five 8080 condition bits. The remaining three PSW bits
// (always-1 bit 1, always-0 bits 3 and 5) are not stored; Pack supplies
// them and Unpack discards whatever the host wrote there.
type Flags struct {
	S bool // sign: bit 7 of the most recent result
	Z bool // zero: result == 0
	A bool // auxiliary carry: carry/borrow at the nibble boundary
	P bool // parity: result has an even number of set bits
	C bool // carry: instruction-specific
}

// PSW bit layout: S Z 0 A 0 P 1 C
const (
	pswBitS = mask.I1
	pswBitZ = mask.I2
	pswBitA = mask.I4
	pswBitP = mask.I6
	pswBitC = mask.I8
)

// Pack emits the PSW byte: S Z 0 A 0 P 1 C, with bit 1 forced to 1 and bits
// 3, 5 forced to 0.
func (f Flags) Pack() byte {
	var b byte
	b = mask.Set(b, pswBitC, boolBit(f.C))
	b = mask.Set(b, mask.I7, 1) // bit 1 is always read back as 1
	b = mask.Set(b, pswBitP, boolBit(f.P))
	b = mask.Set(b, pswBitA, boolBit(f.A))
	b = mask.Set(b, pswBitZ, boolBit(f.Z))
	b = mask.Set(b, pswBitS, boolBit(f.S))
	return b
}

// Unpack restores S, Z, A, P, C from the corresponding PSW bits; bits 1, 3,
// and 5 are ignored.
func (f *Flags) Unpack(b byte) {
	f.S = mask.IsSet(b, pswBitS)
	f.Z = mask.IsSet(b, pswBitZ)
	f.A = mask.IsSet(b, pswBitA)
	f.P = mask.IsSet(b, pswBitP)
	f.C = mask.IsSet(b, pswBitC)
}

func boolBit(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// setSZP recomputes S, Z, P from an 8-bit result, as every arithmetic and
// logical instruction does. C and A are left untouched; callers set those
// per instruction-specific rules.
func (f *Flags) setSZP(result byte) {
	f.S = result&0x80 != 0
	f.Z = result == 0
	f.P = mask.EvenParity(result)
}
