// Package asm implements the assembler for the BE system.
//
// A source file starts with the address-width mode, followed by blocks:
//
//	12
//	0 { LDI 2; STA 0x100; OUT; HLT }   # comment to end of line
//
// Each statement in a block is either an opcode with an operand, a bare
// opcode, or a raw data byte, and fills exactly one instruction slot.
//
// Statements are separated by ';'. Text between the last ';' and the closing
// '}' is read as the final statement, so '0 { LDI 2; HLT }' is a two line block.
package asm
