package cpu

import "i8080/mask"

// Registers is the 8080 register file: seven byte registers, with BC/DE/HL
// accessible either as byte pairs or as packed 16-bit views. A paired write
// stores the high byte into the first-named register (B, D, or H).
type Registers struct {
	A, B, C, D, E, H, L byte
}

// BC returns the 16-bit view of B (high) and C (low).
func (r *Registers) BC() uint16 { return mask.Word(r.B, r.C) }

// SetBC stores a 16-bit value across B (high) and C (low).
func (r *Registers) SetBC(v uint16) { r.B, r.C = mask.Hi(v), mask.Lo(v) }

// DE returns the 16-bit view of D (high) and E (low).
func (r *Registers) DE() uint16 { return mask.Word(r.D, r.E) }

// SetDE stores a 16-bit value across D (high) and E (low).
func (r *Registers) SetDE(v uint16) { r.D, r.E = mask.Hi(v), mask.Lo(v) }

// HL returns the 16-bit view of H (high) and L (low).
func (r *Registers) HL() uint16 { return mask.Word(r.H, r.L) }

// SetHL stores a 16-bit value across H (high) and L (low).
func (r *Registers) SetHL(v uint16) { r.H, r.L = mask.Hi(v), mask.Lo(v) }
