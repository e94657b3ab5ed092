// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"log"
)

// Output receives the accumulator value of each OUT instruction.
type Output interface {
	Emit(value uint8) error
}

// Cpu is the simulation context for the accumulator machine.
type Cpu struct {
	Verbose bool // Set to enable per-instruction trace logging.

	Mode   Mode   // Address-width mode.
	Memory []byte // Memory image, 2^Mode bytes.
	Output Output // Sink for OUT, may be nil.

	Ip     uint32 // Current instruction pointer.
	A      uint8  // Accumulator.
	Halted bool   // Set once HLT executes.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with a zeroed memory image sized for the mode.
func NewCpu(mode Mode) (cpu *Cpu) {
	cpu = &Cpu{
		Mode:   mode,
		Memory: make([]byte, mode.MemorySize()),
	}

	return
}

// Reset the CPU registers.
// Memory is left as is; the accumulator starts at zero.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Ip = 0
	cpu.A = 0
	cpu.Halted = false
	cpu.Ticks = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %05X\n", "ip", cpu.Ip)
	text += fmt.Sprintf("% 5s: %02X (%d)\n", "a", cpu.A, cpu.A)
	halted := "false"
	if cpu.Halted {
		halted = "true"
	}
	text += fmt.Sprintf("% 5s: %v\n", "halt", halted)
	text += fmt.Sprintf("% 5s: %d\n", "ticks", cpu.Ticks)
	return
}

// address maps an address onto the memory image.
// Addresses past the end of memory wrap around.
func (cpu *Cpu) address(addr uint32) int {
	return int(addr % uint32(len(cpu.Memory)))
}

// FetchCode decodes the instruction at the instruction pointer.
// A slot that runs off the end of memory wraps to the start.
func (cpu *Cpu) FetchCode() (ins Instruction) {
	var slot [4]byte

	width := cpu.Mode.Width()
	for n := 0; n < width; n++ {
		slot[n] = cpu.Memory[cpu.address(cpu.Ip+uint32(n))]
	}

	return cpu.Mode.Decode(slot[:width])
}

// Tick executes a single fetch-decode-execute cycle.
// done is set once the CPU has halted.
func (cpu *Cpu) Tick() (done bool, err error) {
	if cpu.Halted {
		done = true
		return
	}

	ip := cpu.Ip
	ins := cpu.FetchCode()

	if cpu.Verbose {
		log.Printf("%05x: %v", ip, ins)
	}

	cpu.Ip = uint32(cpu.address(cpu.Ip + uint32(cpu.Mode.Width())))

	err = cpu.Execute(ins)
	cpu.Ticks++

	done = cpu.Halted
	return
}

// Execute applies the effect of a single decoded instruction.
// The instruction pointer must already be advanced past it.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	switch ins.Opcode {
	case OP_LDA:
		cpu.A = cpu.Memory[cpu.address(ins.Operand)]
	case OP_ADD:
		cpu.A += cpu.Memory[cpu.address(ins.Operand)]
	case OP_SUB:
		cpu.A -= cpu.Memory[cpu.address(ins.Operand)]
	case OP_STA:
		cpu.Memory[cpu.address(ins.Operand)] = cpu.A
	case OP_LDI:
		cpu.A = uint8(ins.Operand) & cpu.Mode.DataMask()
	case OP_JMP:
		cpu.Ip = uint32(cpu.address(ins.Operand))
	case OP_OUT:
		if cpu.Output != nil {
			err = cpu.Output.Emit(cpu.A)
		}
	case OP_HLT:
		cpu.Halted = true
		if cpu.Verbose {
			log.Printf("cpu: halt, a = %d", cpu.A)
		}
	default:
		// NOP, and every undefined nibble.
	}

	return
}
