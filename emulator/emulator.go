// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/be/container"
	"github.com/ezrec/be/cpu"
	"github.com/ezrec/be/io"
)

// Emulator state. CPU + loaded image + console.
type Emulator struct {
	Verbose  bool             // If set, enables verbose logging.
	Trace    bool             // If set, logs every executed instruction.
	*cpu.Cpu                  // Reference to the CPU simulation.
	Image    *container.Image // Reference to the loaded container image.

	Console io.Console // Console output of the OUT instruction.

	MaxSteps int // If non-zero, the maximum number of instructions to execute.
}

// NewEmulator creates a new emulator running the image.
// The CPU executes directly in the image memory.
func NewEmulator(img *container.Image) (emu *Emulator) {
	emu = &Emulator{
		Cpu: &cpu.Cpu{
			Mode:   img.Mode,
			Memory: img.Memory,
		},
		Image: img,
	}

	emu.Cpu.Output = &emu.Console

	return
}

// Reset the emulator state.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Trace
	emu.Cpu.Reset()

	emu.Console.Count = 0

	if emu.Verbose {
		log.Print(f("using address size: %d", emu.Cpu.Mode))
	}
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Trace

	ip := emu.Cpu.Ip
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Err: err}
		}
	}()

	if emu.MaxSteps > 0 && !emu.Cpu.Halted && emu.Cpu.Ticks >= emu.MaxSteps {
		err = ErrStepLimit
		return
	}

	done, err = emu.Cpu.Tick()
	if done && emu.Verbose {
		log.Print(f("halted after %d ticks, a = %d", emu.Cpu.Ticks, emu.Cpu.A))
	}

	return
}

// Run executes until the CPU halts, or an error occurs.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
