// Package cpu implements the accumulator machine of the BE system.
//
// The machine has an instruction pointer, an 8-bit accumulator and a flat,
// byte-addressed memory image of 2^mode bytes, where the address-width mode is
// one of 4, 12 or 20 bits. Every instruction is a 4-bit opcode nibble followed
// by an operand as wide as the mode, packed into 1, 2 or 3 bytes.
//
// The instruction codec in this package is shared by the assembler, which
// encodes source lines, and by the CPU, which decodes them during fetch.
package cpu
