// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ezrec/be/asm"
	"github.com/ezrec/be/translate"
)

var f = translate.From

var (
	verbose bool
	list    bool
)

var rootCmd = &cobra.Command{
	Use:   "beasm input-file output-file",
	Short: "Assembler for the BE instruction set",
	Long: `Beasm translates a BE assembly source file into a BE container.

The source starts with the address width (4, 12 or 20), followed by
blocks of the form 'ADDRESS { LINE; LINE; ... }'. Each block is written
to the container as soon as it is assembled, so a failed run may leave
an incomplete output file behind.
`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return assemble(args[0], args[1])
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	rootCmd.Flags().BoolVarP(&list, "list", "l", false, "Print a listing of each block")
}

func assemble(input string, output string) (err error) {
	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	ouf, err := os.Create(output)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	wr := bufio.NewWriter(ouf)
	defer func() {
		ferr := wr.Flush()
		if err == nil {
			err = ferr
		}
		if err != nil {
			log.Print(f("%v: output is incomplete", output))
		}
	}()

	assembler := &asm.Assembler{Verbose: verbose}
	if list {
		assembler.Listing = os.Stdout
	}

	err = assembler.Assemble(bufio.NewReader(inf), wr)
	if err != nil {
		err = errors.WithMessage(err, input)
	}

	return
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatalf("%v: %v", rootCmd.Name(), err)
	}
}
