// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/intcode/debugger"
	"github.com/ezrec/intcode/emulator"
)

var errNoTerminal = errors.New("debug needs an interactive terminal")

var debugCmd = &cobra.Command{
	Use:   "debug [flags] program.txt",
	Short: "Step through an intcode program interactively.",
	Long: `Step through an intcode program in the terminal. Keys: s or space
to step, r to run to the end, l to reload the program, q to quit.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := debugProgram(args[0], GetFlag(cmd, "watch"), GetFlag(cmd, "strict"),
			GetFlag(cmd, "verbose"), GetStringArray(cmd, "define"))
		if err != nil {
			log.Error(err)
			os.Exit(4)
		}
	},
}

func debugProgram(path string, watch bool, strict bool, verbose bool, defines []string) (err error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		err = errNoTerminal
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	err = defineCommands(emu, defines)
	if err != nil {
		return
	}

	d := debugger.New(emu, path)
	d.Strict = strict

	return d.Run(watch)
}

func init() {
	debugCmd.Flags().BoolP("watch", "w", false, "reload the program when the file changes")
	debugCmd.Flags().Bool("strict", false, "reject programs without a reachable halt (99)")
	debugCmd.Flags().StringArray("define", nil, "define OPCODE=NAME:EXPR over operands a and b (repeatable)")
	rootCmd.AddCommand(debugCmd)
}
