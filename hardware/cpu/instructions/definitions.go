// This file is part of Gopher65.
//
// Gopher65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// nmos is the instruction set of the NMOS 6502. Only the documented
// instructions and the undocumented instructions that behave as NOP (and the
// SBC duplicate at 0xeb) are present. Any other opcode has no definition.
var nmos = []Definition{
	{0x00, Brk, 1, 7, Implied, false, Interrupt, false},
	{0x01, Ora, 2, 6, IndexedIndirect, false, Read, false},
	{0x04, Nop, 2, 3, ZeroPage, false, Read, true},
	{0x05, Ora, 2, 3, ZeroPage, false, Read, false},
	{0x06, Asl, 2, 5, ZeroPage, false, RMW, false},
	{0x08, Php, 1, 3, Implied, false, Write, false},
	{0x09, Ora, 2, 2, Immediate, false, Read, false},
	{0x0a, Asl, 1, 2, Accumulator, false, RMW, false},
	{0x0c, Nop, 3, 4, Absolute, false, Read, true},
	{0x0d, Ora, 3, 4, Absolute, false, Read, false},
	{0x0e, Asl, 3, 6, Absolute, false, RMW, false},
	{0x10, Bpl, 2, 2, Relative, false, Flow, false},
	{0x11, Ora, 2, 5, IndirectIndexed, true, Read, false},
	{0x14, Nop, 2, 4, ZeroPageIndexedX, false, Read, true},
	{0x15, Ora, 2, 4, ZeroPageIndexedX, false, Read, false},
	{0x16, Asl, 2, 6, ZeroPageIndexedX, false, RMW, false},
	{0x18, Clc, 1, 2, Implied, false, Read, false},
	{0x19, Ora, 3, 4, AbsoluteIndexedY, true, Read, false},
	{0x1a, Nop, 1, 2, Implied, false, Read, true},
	{0x1c, Nop, 3, 4, AbsoluteIndexedX, true, Read, true},
	{0x1d, Ora, 3, 4, AbsoluteIndexedX, true, Read, false},
	{0x1e, Asl, 3, 7, AbsoluteIndexedX, false, RMW, false},
	{0x20, Jsr, 3, 6, Absolute, false, Subroutine, false},
	{0x21, And, 2, 6, IndexedIndirect, false, Read, false},
	{0x24, Bit, 2, 3, ZeroPage, false, Read, false},
	{0x25, And, 2, 3, ZeroPage, false, Read, false},
	{0x26, Rol, 2, 5, ZeroPage, false, RMW, false},
	{0x28, Plp, 1, 4, Implied, false, Read, false},
	{0x29, And, 2, 2, Immediate, false, Read, false},
	{0x2a, Rol, 1, 2, Accumulator, false, RMW, false},
	{0x2c, Bit, 3, 4, Absolute, false, Read, false},
	{0x2d, And, 3, 4, Absolute, false, Read, false},
	{0x2e, Rol, 3, 6, Absolute, false, RMW, false},
	{0x30, Bmi, 2, 2, Relative, false, Flow, false},
	{0x31, And, 2, 5, IndirectIndexed, true, Read, false},
	{0x34, Nop, 2, 4, ZeroPageIndexedX, false, Read, true},
	{0x35, And, 2, 4, ZeroPageIndexedX, false, Read, false},
	{0x36, Rol, 2, 6, ZeroPageIndexedX, false, RMW, false},
	{0x38, Sec, 1, 2, Implied, false, Read, false},
	{0x39, And, 3, 4, AbsoluteIndexedY, true, Read, false},
	{0x3a, Nop, 1, 2, Implied, false, Read, true},
	{0x3c, Nop, 3, 4, AbsoluteIndexedX, true, Read, true},
	{0x3d, And, 3, 4, AbsoluteIndexedX, true, Read, false},
	{0x3e, Rol, 3, 7, AbsoluteIndexedX, false, RMW, false},
	{0x40, Rti, 1, 6, Implied, false, Interrupt, false},
	{0x41, Eor, 2, 6, IndexedIndirect, false, Read, false},
	{0x44, Nop, 2, 3, ZeroPage, false, Read, true},
	{0x45, Eor, 2, 3, ZeroPage, false, Read, false},
	{0x46, Lsr, 2, 5, ZeroPage, false, RMW, false},
	{0x48, Pha, 1, 3, Implied, false, Write, false},
	{0x49, Eor, 2, 2, Immediate, false, Read, false},
	{0x4a, Lsr, 1, 2, Accumulator, false, RMW, false},
	{0x4c, Jmp, 3, 3, Absolute, false, Flow, false},
	{0x4d, Eor, 3, 4, Absolute, false, Read, false},
	{0x4e, Lsr, 3, 6, Absolute, false, RMW, false},
	{0x50, Bvc, 2, 2, Relative, false, Flow, false},
	{0x51, Eor, 2, 5, IndirectIndexed, true, Read, false},
	{0x54, Nop, 2, 4, ZeroPageIndexedX, false, Read, true},
	{0x55, Eor, 2, 4, ZeroPageIndexedX, false, Read, false},
	{0x56, Lsr, 2, 6, ZeroPageIndexedX, false, RMW, false},
	{0x58, Cli, 1, 2, Implied, false, Read, false},
	{0x59, Eor, 3, 4, AbsoluteIndexedY, true, Read, false},
	{0x5a, Nop, 1, 2, Implied, false, Read, true},
	{0x5c, Nop, 3, 4, AbsoluteIndexedX, true, Read, true},
	{0x5d, Eor, 3, 4, AbsoluteIndexedX, true, Read, false},
	{0x5e, Lsr, 3, 7, AbsoluteIndexedX, false, RMW, false},
	{0x60, Rts, 1, 6, Implied, false, Subroutine, false},
	{0x61, Adc, 2, 6, IndexedIndirect, false, Read, false},
	{0x64, Nop, 2, 3, ZeroPage, false, Read, true},
	{0x65, Adc, 2, 3, ZeroPage, false, Read, false},
	{0x66, Ror, 2, 5, ZeroPage, false, RMW, false},
	{0x68, Pla, 1, 4, Implied, false, Read, false},
	{0x69, Adc, 2, 2, Immediate, false, Read, false},
	{0x6a, Ror, 1, 2, Accumulator, false, RMW, false},
	{0x6c, Jmp, 3, 5, Indirect, false, Flow, false},
	{0x6d, Adc, 3, 4, Absolute, false, Read, false},
	{0x6e, Ror, 3, 6, Absolute, false, RMW, false},
	{0x70, Bvs, 2, 2, Relative, false, Flow, false},
	{0x71, Adc, 2, 5, IndirectIndexed, true, Read, false},
	{0x74, Nop, 2, 4, ZeroPageIndexedX, false, Read, true},
	{0x75, Adc, 2, 4, ZeroPageIndexedX, false, Read, false},
	{0x76, Ror, 2, 6, ZeroPageIndexedX, false, RMW, false},
	{0x78, Sei, 1, 2, Implied, false, Read, false},
	{0x79, Adc, 3, 4, AbsoluteIndexedY, true, Read, false},
	{0x7a, Nop, 1, 2, Implied, false, Read, true},
	{0x7c, Nop, 3, 4, AbsoluteIndexedX, true, Read, true},
	{0x7d, Adc, 3, 4, AbsoluteIndexedX, true, Read, false},
	{0x7e, Ror, 3, 7, AbsoluteIndexedX, false, RMW, false},
	{0x80, Nop, 2, 2, Immediate, false, Read, true},
	{0x81, Sta, 2, 6, IndexedIndirect, false, Write, false},
	{0x82, Nop, 2, 2, Immediate, false, Read, true},
	{0x84, Sty, 2, 3, ZeroPage, false, Write, false},
	{0x85, Sta, 2, 3, ZeroPage, false, Write, false},
	{0x86, Stx, 2, 3, ZeroPage, false, Write, false},
	{0x88, Dey, 1, 2, Implied, false, Read, false},
	{0x89, Nop, 2, 2, Immediate, false, Read, true},
	{0x8a, Txa, 1, 2, Implied, false, Read, false},
	{0x8c, Sty, 3, 4, Absolute, false, Write, false},
	{0x8d, Sta, 3, 4, Absolute, false, Write, false},
	{0x8e, Stx, 3, 4, Absolute, false, Write, false},
	{0x90, Bcc, 2, 2, Relative, false, Flow, false},
	{0x91, Sta, 2, 6, IndirectIndexed, false, Write, false},
	{0x94, Sty, 2, 4, ZeroPageIndexedX, false, Write, false},
	{0x95, Sta, 2, 4, ZeroPageIndexedX, false, Write, false},
	{0x96, Stx, 2, 4, ZeroPageIndexedY, false, Write, false},
	{0x98, Tya, 1, 2, Implied, false, Read, false},
	{0x99, Sta, 3, 5, AbsoluteIndexedY, false, Write, false},
	{0x9a, Txs, 1, 2, Implied, false, Read, false},
	{0x9d, Sta, 3, 5, AbsoluteIndexedX, false, Write, false},
	{0xa0, Ldy, 2, 2, Immediate, false, Read, false},
	{0xa1, Lda, 2, 6, IndexedIndirect, false, Read, false},
	{0xa2, Ldx, 2, 2, Immediate, false, Read, false},
	{0xa4, Ldy, 2, 3, ZeroPage, false, Read, false},
	{0xa5, Lda, 2, 3, ZeroPage, false, Read, false},
	{0xa6, Ldx, 2, 3, ZeroPage, false, Read, false},
	{0xa8, Tay, 1, 2, Implied, false, Read, false},
	{0xa9, Lda, 2, 2, Immediate, false, Read, false},
	{0xaa, Tax, 1, 2, Implied, false, Read, false},
	{0xac, Ldy, 3, 4, Absolute, false, Read, false},
	{0xad, Lda, 3, 4, Absolute, false, Read, false},
	{0xae, Ldx, 3, 4, Absolute, false, Read, false},
	{0xb0, Bcs, 2, 2, Relative, false, Flow, false},
	{0xb1, Lda, 2, 5, IndirectIndexed, true, Read, false},
	{0xb4, Ldy, 2, 4, ZeroPageIndexedX, false, Read, false},
	{0xb5, Lda, 2, 4, ZeroPageIndexedX, false, Read, false},
	{0xb6, Ldx, 2, 4, ZeroPageIndexedY, false, Read, false},
	{0xb8, Clv, 1, 2, Implied, false, Read, false},
	{0xb9, Lda, 3, 4, AbsoluteIndexedY, true, Read, false},
	{0xba, Tsx, 1, 2, Implied, false, Read, false},
	{0xbc, Ldy, 3, 4, AbsoluteIndexedX, true, Read, false},
	{0xbd, Lda, 3, 4, AbsoluteIndexedX, true, Read, false},
	{0xbe, Ldx, 3, 4, AbsoluteIndexedY, true, Read, false},
	{0xc0, Cpy, 2, 2, Immediate, false, Read, false},
	{0xc1, Cmp, 2, 6, IndexedIndirect, false, Read, false},
	{0xc2, Nop, 2, 2, Immediate, false, Read, true},
	{0xc4, Cpy, 2, 3, ZeroPage, false, Read, false},
	{0xc5, Cmp, 2, 3, ZeroPage, false, Read, false},
	{0xc6, Dec, 2, 5, ZeroPage, false, RMW, false},
	{0xc8, Iny, 1, 2, Implied, false, Read, false},
	{0xc9, Cmp, 2, 2, Immediate, false, Read, false},
	{0xca, Dex, 1, 2, Implied, false, Read, false},
	{0xcc, Cpy, 3, 4, Absolute, false, Read, false},
	{0xcd, Cmp, 3, 4, Absolute, false, Read, false},
	{0xce, Dec, 3, 6, Absolute, false, RMW, false},
	{0xd0, Bne, 2, 2, Relative, false, Flow, false},
	{0xd1, Cmp, 2, 5, IndirectIndexed, true, Read, false},
	{0xd4, Nop, 2, 4, ZeroPageIndexedX, false, Read, true},
	{0xd5, Cmp, 2, 4, ZeroPageIndexedX, false, Read, false},
	{0xd6, Dec, 2, 6, ZeroPageIndexedX, false, RMW, false},
	{0xd8, Cld, 1, 2, Implied, false, Read, false},
	{0xd9, Cmp, 3, 4, AbsoluteIndexedY, true, Read, false},
	{0xda, Nop, 1, 2, Implied, false, Read, true},
	{0xdc, Nop, 3, 4, AbsoluteIndexedX, true, Read, true},
	{0xdd, Cmp, 3, 4, AbsoluteIndexedX, true, Read, false},
	{0xde, Dec, 3, 7, AbsoluteIndexedX, false, RMW, false},
	{0xe0, Cpx, 2, 2, Immediate, false, Read, false},
	{0xe1, Sbc, 2, 6, IndexedIndirect, false, Read, false},
	{0xe2, Nop, 2, 2, Immediate, false, Read, true},
	{0xe4, Cpx, 2, 3, ZeroPage, false, Read, false},
	{0xe5, Sbc, 2, 3, ZeroPage, false, Read, false},
	{0xe6, Inc, 2, 5, ZeroPage, false, RMW, false},
	{0xe8, Inx, 1, 2, Implied, false, Read, false},
	{0xe9, Sbc, 2, 2, Immediate, false, Read, false},
	{0xea, Nop, 1, 2, Implied, false, Read, false},
	{0xeb, Sbc, 2, 2, Immediate, false, Read, true},
	{0xec, Cpx, 3, 4, Absolute, false, Read, false},
	{0xed, Sbc, 3, 4, Absolute, false, Read, false},
	{0xee, Inc, 3, 6, Absolute, false, RMW, false},
	{0xf0, Beq, 2, 2, Relative, false, Flow, false},
	{0xf1, Sbc, 2, 5, IndirectIndexed, true, Read, false},
	{0xf4, Nop, 2, 4, ZeroPageIndexedX, false, Read, true},
	{0xf5, Sbc, 2, 4, ZeroPageIndexedX, false, Read, false},
	{0xf6, Inc, 2, 6, ZeroPageIndexedX, false, RMW, false},
	{0xf8, Sed, 1, 2, Implied, false, Read, false},
	{0xf9, Sbc, 3, 4, AbsoluteIndexedY, true, Read, false},
	{0xfa, Nop, 1, 2, Implied, false, Read, true},
	{0xfc, Nop, 3, 4, AbsoluteIndexedX, true, Read, true},
	{0xfd, Sbc, 3, 4, AbsoluteIndexedX, true, Read, false},
	{0xfe, Inc, 3, 7, AbsoluteIndexedX, false, RMW, false},
}

// cmos lists the instructions that are either new or different on the 65C02.
// All other opcodes are the same as the NMOS 6502. Every opcode is defined on
// the 65C02, those that are otherwise unused act as NOP instructions of
// various lengths.
var cmos = []Definition{
	{0x02, Nop, 2, 2, Immediate, false, Read, true},
	{0x03, Nop, 1, 1, Implied, false, Read, true},
	{0x04, Tsb, 2, 5, ZeroPage, false, RMW, false},
	{0x07, Rmb, 2, 5, ZeroPage, false, RMW, false},
	{0x0b, Nop, 1, 1, Implied, false, Read, true},
	{0x0c, Tsb, 3, 6, Absolute, false, RMW, false},
	{0x0f, Bbr, 3, 5, ZeroPageRelative, false, Flow, false},
	{0x12, Ora, 2, 5, ZeroPageIndirect, false, Read, false},
	{0x13, Nop, 1, 1, Implied, false, Read, true},
	{0x14, Trb, 2, 5, ZeroPage, false, RMW, false},
	{0x17, Rmb, 2, 5, ZeroPage, false, RMW, false},
	{0x1a, Inc, 1, 2, Accumulator, false, RMW, false},
	{0x1b, Nop, 1, 1, Implied, false, Read, true},
	{0x1c, Trb, 3, 6, Absolute, false, RMW, false},
	{0x1e, Asl, 3, 6, AbsoluteIndexedX, true, RMW, false},
	{0x1f, Bbr, 3, 5, ZeroPageRelative, false, Flow, false},
	{0x22, Nop, 2, 2, Immediate, false, Read, true},
	{0x23, Nop, 1, 1, Implied, false, Read, true},
	{0x27, Rmb, 2, 5, ZeroPage, false, RMW, false},
	{0x2b, Nop, 1, 1, Implied, false, Read, true},
	{0x2f, Bbr, 3, 5, ZeroPageRelative, false, Flow, false},
	{0x32, And, 2, 5, ZeroPageIndirect, false, Read, false},
	{0x33, Nop, 1, 1, Implied, false, Read, true},
	{0x34, Bit, 2, 4, ZeroPageIndexedX, false, Read, false},
	{0x37, Rmb, 2, 5, ZeroPage, false, RMW, false},
	{0x3a, Dec, 1, 2, Accumulator, false, RMW, false},
	{0x3b, Nop, 1, 1, Implied, false, Read, true},
	{0x3c, Bit, 3, 4, AbsoluteIndexedX, true, Read, false},
	{0x3e, Rol, 3, 6, AbsoluteIndexedX, true, RMW, false},
	{0x3f, Bbr, 3, 5, ZeroPageRelative, false, Flow, false},
	{0x42, Nop, 2, 2, Immediate, false, Read, true},
	{0x43, Nop, 1, 1, Implied, false, Read, true},
	{0x47, Rmb, 2, 5, ZeroPage, false, RMW, false},
	{0x4b, Nop, 1, 1, Implied, false, Read, true},
	{0x4f, Bbr, 3, 5, ZeroPageRelative, false, Flow, false},
	{0x52, Eor, 2, 5, ZeroPageIndirect, false, Read, false},
	{0x53, Nop, 1, 1, Implied, false, Read, true},
	{0x57, Rmb, 2, 5, ZeroPage, false, RMW, false},
	{0x5a, Phy, 1, 3, Implied, false, Write, false},
	{0x5b, Nop, 1, 1, Implied, false, Read, true},
	{0x5c, Nop, 3, 8, Absolute, false, Read, true},
	{0x5e, Lsr, 3, 6, AbsoluteIndexedX, true, RMW, false},
	{0x5f, Bbr, 3, 5, ZeroPageRelative, false, Flow, false},
	{0x62, Nop, 2, 2, Immediate, false, Read, true},
	{0x63, Nop, 1, 1, Implied, false, Read, true},
	{0x64, Stz, 2, 3, ZeroPage, false, Write, false},
	{0x67, Rmb, 2, 5, ZeroPage, false, RMW, false},
	{0x6b, Nop, 1, 1, Implied, false, Read, true},
	{0x6c, Jmp, 3, 6, Indirect, false, Flow, false},
	{0x6f, Bbr, 3, 5, ZeroPageRelative, false, Flow, false},
	{0x72, Adc, 2, 5, ZeroPageIndirect, false, Read, false},
	{0x73, Nop, 1, 1, Implied, false, Read, true},
	{0x74, Stz, 2, 4, ZeroPageIndexedX, false, Write, false},
	{0x77, Rmb, 2, 5, ZeroPage, false, RMW, false},
	{0x7a, Ply, 1, 4, Implied, false, Read, false},
	{0x7b, Nop, 1, 1, Implied, false, Read, true},
	{0x7c, Jmp, 3, 6, AbsoluteIndexedIndirect, false, Flow, false},
	{0x7e, Ror, 3, 6, AbsoluteIndexedX, true, RMW, false},
	{0x7f, Bbr, 3, 5, ZeroPageRelative, false, Flow, false},
	{0x80, Bra, 2, 2, Relative, false, Flow, false},
	{0x83, Nop, 1, 1, Implied, false, Read, true},
	{0x87, Smb, 2, 5, ZeroPage, false, RMW, false},
	{0x89, Bit, 2, 2, Immediate, false, Read, false},
	{0x8b, Nop, 1, 1, Implied, false, Read, true},
	{0x8f, Bbs, 3, 5, ZeroPageRelative, false, Flow, false},
	{0x92, Sta, 2, 5, ZeroPageIndirect, false, Write, false},
	{0x93, Nop, 1, 1, Implied, false, Read, true},
	{0x97, Smb, 2, 5, ZeroPage, false, RMW, false},
	{0x9b, Nop, 1, 1, Implied, false, Read, true},
	{0x9c, Stz, 3, 4, Absolute, false, Write, false},
	{0x9e, Stz, 3, 5, AbsoluteIndexedX, false, Write, false},
	{0x9f, Bbs, 3, 5, ZeroPageRelative, false, Flow, false},
	{0xa3, Nop, 1, 1, Implied, false, Read, true},
	{0xa7, Smb, 2, 5, ZeroPage, false, RMW, false},
	{0xab, Nop, 1, 1, Implied, false, Read, true},
	{0xaf, Bbs, 3, 5, ZeroPageRelative, false, Flow, false},
	{0xb2, Lda, 2, 5, ZeroPageIndirect, false, Read, false},
	{0xb3, Nop, 1, 1, Implied, false, Read, true},
	{0xb7, Smb, 2, 5, ZeroPage, false, RMW, false},
	{0xbb, Nop, 1, 1, Implied, false, Read, true},
	{0xbf, Bbs, 3, 5, ZeroPageRelative, false, Flow, false},
	{0xc3, Nop, 1, 1, Implied, false, Read, true},
	{0xc7, Smb, 2, 5, ZeroPage, false, RMW, false},
	{0xcb, Nop, 1, 1, Implied, false, Read, true},
	{0xcf, Bbs, 3, 5, ZeroPageRelative, false, Flow, false},
	{0xd2, Cmp, 2, 5, ZeroPageIndirect, false, Read, false},
	{0xd3, Nop, 1, 1, Implied, false, Read, true},
	{0xd7, Smb, 2, 5, ZeroPage, false, RMW, false},
	{0xda, Phx, 1, 3, Implied, false, Write, false},
	{0xdb, Nop, 1, 1, Implied, false, Read, true},
	{0xdc, Nop, 3, 4, Absolute, false, Read, true},
	{0xdf, Bbs, 3, 5, ZeroPageRelative, false, Flow, false},
	{0xe3, Nop, 1, 1, Implied, false, Read, true},
	{0xe7, Smb, 2, 5, ZeroPage, false, RMW, false},
	{0xeb, Nop, 1, 1, Implied, false, Read, true},
	{0xef, Bbs, 3, 5, ZeroPageRelative, false, Flow, false},
	{0xf2, Sbc, 2, 5, ZeroPageIndirect, false, Read, false},
	{0xf3, Nop, 1, 1, Implied, false, Read, true},
	{0xf7, Smb, 2, 5, ZeroPage, false, RMW, false},
	{0xfa, Plx, 1, 4, Implied, false, Read, false},
	{0xfb, Nop, 1, 1, Implied, false, Read, true},
	{0xfc, Nop, 3, 4, Absolute, false, Read, true},
	{0xff, Bbs, 3, 5, ZeroPageRelative, false, Flow, false},
}

// GetDefinitions returns the opcode table for the variant. Entries are nil
// for opcodes that have no definition.
func GetDefinitions(variant Variant) [256]*Definition {
	var defs [256]*Definition

	for i := range nmos {
		defs[nmos[i].OpCode] = &nmos[i]
	}

	if variant == CMOS {
		for i := range cmos {
			defs[cmos[i].OpCode] = &cmos[i]
		}
	}

	return defs
}
