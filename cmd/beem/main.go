// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ezrec/be/config"
	"github.com/ezrec/be/container"
	"github.com/ezrec/be/emulator"
	"github.com/ezrec/be/translate"
)

var f = translate.From

var (
	configPath string
	dump       string
	maxSteps   int
	verbose    bool
	trace      bool
)

var rootCmd = &cobra.Command{
	Use:   "beem input-file",
	Short: "Emulator for the BE instruction set",
	Long: `Beem loads a BE container into memory and runs it from address 0.

Before execution starts the whole memory image is written to the dump
file. Each OUT instruction prints the accumulator in decimal on standard
output. Execution ends at HLT, or runs forever if the program never
halts, unless a step limit is configured.

A configuration file is a Starlark program that may set the globals
dump, max_steps, verbose and trace. Command line flags take precedence.
`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		return emulate(cfg, args[0])
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "Starlark configuration file")
	flags.StringVarP(&dump, "dump", "d", config.DEFAULT_DUMP, "Memory dump file, empty to disable")
	flags.IntVarP(&maxSteps, "max-steps", "n", 0, "Maximum instructions to execute, 0 for no limit")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	flags.BoolVarP(&trace, "trace", "t", false, "Trace each executed instruction")
}

// loadConfig merges the configuration file with the command line flags.
func loadConfig(cmd *cobra.Command) (cfg config.Config, err error) {
	cfg = config.Default()
	if len(configPath) != 0 {
		cfg, err = config.Load(configPath)
		if err != nil {
			err = errors.WithMessage(err, configPath)
			return
		}
	}

	flags := cmd.Flags()
	if flags.Changed("dump") {
		cfg.Dump = dump
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = maxSteps
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("trace") {
		cfg.Trace = trace
	}

	return
}

func load(path string) (img *container.Image, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	img, err = container.Load(bufio.NewReader(inf))
	if err != nil {
		err = errors.WithMessage(err, path)
	}

	return
}

func writeDump(path string, img *container.Image) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = img.Dump(ouf)
	cerr := ouf.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		err = errors.WithMessage(err, path)
	}

	return
}

func emulate(cfg config.Config, path string) (err error) {
	img, err := load(path)
	if err != nil {
		return
	}

	if cfg.Verbose {
		log.Print(img.String())
	}

	if len(cfg.Dump) != 0 {
		err = writeDump(cfg.Dump, img)
		if err != nil {
			return
		}
	}

	emu := emulator.NewEmulator(img)
	emu.Verbose = cfg.Verbose
	emu.Trace = cfg.Trace
	emu.MaxSteps = cfg.MaxSteps
	emu.Console.Output = os.Stdout

	if cfg.Verbose {
		log.Print(f("starting emulation"))
	}

	emu.Reset()
	err = emu.Run()
	if err != nil {
		return
	}

	if cfg.Verbose {
		log.Print(f("done"))
	}

	return
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatalf("%v: %v", rootCmd.Name(), err)
	}
}
