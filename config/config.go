// Package config loads the emulator configuration.
//
// A configuration file is a Starlark program. After it runs, these
// globals are read, and any other global is ignored:
//
//	dump = "dump.bin"  # memory dump path, "" to disable
//	max_steps = 0      # instruction limit, 0 for unlimited
//	verbose = False    # verbose logging
//	trace = False      # per-instruction trace
//
// The constants MODE_4, MODE_12 and MODE_20 are predeclared, along with
// memory_size(mode), which returns the memory size of a mode in bytes.
package config

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/be/cpu"
)

const (
	DEFAULT_DUMP = "dump.bin" // Default memory dump path.
)

// Config is the emulator configuration.
type Config struct {
	Dump     string // Memory dump path. Empty disables the dump.
	MaxSteps int    // Instruction limit. Zero is unlimited.
	Verbose  bool   // Verbose logging.
	Trace    bool   // Per-instruction trace logging.
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Dump: DEFAULT_DUMP,
	}
}

// Load reads and evaluates a configuration file.
func Load(path string) (cfg Config, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		err = errors.WithMessage(err, f("read configuration"))
		cfg = Default()
		return
	}

	return Parse(path, src)
}

func memorySize(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var width int
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &width)
	if err != nil {
		return
	}

	mode, err := cpu.ParseMode(uint32(width))
	if err != nil {
		return
	}

	value = starlark.MakeInt(mode.MemorySize())
	return
}

// Parse evaluates configuration source. Unset globals keep their defaults.
func Parse(name string, src []byte) (cfg Config, err error) {
	cfg = Default()

	thread := starlark.Thread{
		Name: "config",
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", name, msg)
		},
	}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"MODE_4":      starlark.MakeInt(int(cpu.MODE_4)),
		"MODE_12":     starlark.MakeInt(int(cpu.MODE_12)),
		"MODE_20":     starlark.MakeInt(int(cpu.MODE_20)),
		"memory_size": starlark.NewBuiltin("memory_size", memorySize),
	}

	globals, err := starlark.ExecFileOptions(&opts, &thread, name, src, pred)
	if err != nil {
		err = &ErrEval{Name: name, Err: err}
		return
	}

	if value, ok := globals["dump"]; ok {
		str, ok := starlark.AsString(value)
		if !ok {
			err = ErrGlobal("dump")
			return
		}
		cfg.Dump = str
	}

	if value, ok := globals["max_steps"]; ok {
		var steps int
		steps, err = starlark.AsInt32(value)
		if err != nil || steps < 0 {
			err = ErrGlobal("max_steps")
			return
		}
		cfg.MaxSteps = steps
	}

	for key, ptr := range map[string]*bool{"verbose": &cfg.Verbose, "trace": &cfg.Trace} {
		value, ok := globals[key]
		if !ok {
			continue
		}
		flag, ok := value.(starlark.Bool)
		if !ok {
			err = ErrGlobal(key)
			return
		}
		*ptr = bool(flag)
	}

	return
}
