// This file is part of mos6510.
//
// mos6510 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6510 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6510.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// Operator is the operation performed by an instruction. Many opcodes share
// the same operator, differing only in addressing mode.
type Operator int

// List of operators. The documented operators come first, in alphabetical
// order.
const (
	ADC Operator = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA

	// undocumented operators

	SLO // ASL then ORA
	RLA // ROL then AND
	SRE // LSR then EOR
	RRA // ROR then ADC
	SAX // store A AND X
	LAX // LDA and LDX
	DCP // DEC then CMP
	ISC // INC then SBC
	ANC // AND with carry set from bit 7
	ALR // AND then LSR
	ARR // AND then ROR, with unusual flags
	XAA // unstable transfer of X AND immediate to A
	AXS // X = (A AND X) - immediate
	AHX // store A AND X AND (high byte + 1)
	SHY // store Y AND (high byte + 1)
	SHX // store X AND (high byte + 1)
	TAS // SP = A AND X, then store as AHX
	LAS // A, X and SP = memory AND SP
	KIL // jams the CPU

	numOperators
)

var mnemonics = [numOperators]string{
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI",
	"BNE", "BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI",
	"CLV", "CMP", "CPX", "CPY", "DEC", "DEX", "DEY", "EOR",
	"INC", "INX", "INY", "JMP", "JSR", "LDA", "LDX", "LDY",
	"LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA",
	"STX", "STY", "TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
	"SLO", "RLA", "SRE", "RRA", "SAX", "LAX", "DCP", "ISC",
	"ANC", "ALR", "ARR", "XAA", "AXS", "AHX", "SHY", "SHX",
	"TAS", "LAS", "KIL",
}

// String returns the three letter mnemonic of the operator.
func (o Operator) String() string {
	if o < 0 || o >= numOperators {
		return "???"
	}
	return mnemonics[o]
}

// IsUndocumented returns true if the operator is only reachable through
// undocumented opcodes.
func (o Operator) IsUndocumented() bool {
	return o >= SLO && o < numOperators
}
