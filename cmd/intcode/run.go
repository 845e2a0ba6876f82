// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/dump"
	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/program"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program.txt",
	Short: "Run an intcode program to completion.",
	Long: `Run an intcode program to completion and print the value at a
memory position. Optionally dump memory before every step.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := runOptions{
			Path:     args[0],
			Position: GetInt(cmd, "position"),
			Strict:   GetFlag(cmd, "strict"),
			Verbose:  GetFlag(cmd, "verbose"),
			Sets:     GetStringArray(cmd, "set"),
			Defines:  GetStringArray(cmd, "define"),
		}
		if GetFlag(cmd, "memory") {
			opts.Dump = GetString(cmd, "dump")
		}

		err := runProgram(cmd.OutOrStdout(), opts)
		if err != nil {
			log.Error(err)
			os.Exit(4)
		}
	},
}

// runOptions collects the run command flags.
type runOptions struct {
	Path     string
	Position int
	Strict   bool
	Verbose  bool
	Dump     string // Dump file; empty disables the dump.
	Sets     []string
	Defines  []string
}

func runProgram(out io.Writer, opts runOptions) (err error) {
	values, err := program.Load(opts.Path)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = opts.Verbose
	if len(opts.Dump) != 0 {
		emu.Recorder = &dump.Recorder{}
	}

	err = defineCommands(emu, opts.Defines)
	if err != nil {
		return
	}

	err = emu.Load(values, opts.Strict)
	if err != nil {
		return
	}

	for _, set := range opts.Sets {
		var assign Assignment
		assign, err = parseAssignment(set)
		if err != nil {
			err = fmt.Errorf("--set %q: %w", set, err)
			return
		}
		err = emu.SetValue(assign.Position, assign.Value)
		if err != nil {
			err = fmt.Errorf("--set %q: %w", set, err)
			return
		}
	}

	err = emu.Run()

	// The dump is still useful when the run fails.
	if emu.Recorder != nil {
		derr := emu.Recorder.Save(opts.Dump)
		if derr == nil {
			log.Infof("dumped %d snapshots to %v", emu.Recorder.Len(), opts.Dump)
		}
		err = errors.Join(err, derr)
	}
	if err != nil {
		return
	}

	if opts.Position < 0 || opts.Position >= emu.Len() {
		err = intcode.ErrInvalidPosition(opts.Position)
		return
	}

	fmt.Fprintf(out, "Result: %d\n", emu.GetValue(opts.Position))
	return
}

func init() {
	runCmd.Flags().IntP("position", "p", 0, "memory position to print when complete")
	runCmd.Flags().BoolP("memory", "m", false, "save memory before every step")
	runCmd.Flags().String("dump", dump.DEFAULT_PATH, "file for --memory snapshots")
	runCmd.Flags().Bool("strict", false, "reject programs without a reachable halt (99)")
	runCmd.Flags().StringArray("set", nil, "write POSITION=VALUE before running (repeatable)")
	runCmd.Flags().StringArray("define", nil, "define OPCODE=NAME:EXPR over operands a and b (repeatable)")
	rootCmd.AddCommand(runCmd)
}
