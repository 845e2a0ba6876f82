package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/script"
)

var errAssignSyntax = errors.New("assignment must be POSITION=VALUE")

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return r
}

// GetInt gets an expected int, or panic if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return r
}

// GetStringArray gets an expected string array, or panic if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return r
}

// Assignment is a memory write requested on the command line.
type Assignment struct {
	Position int
	Value    uint32
}

// parseAssignment parses POSITION=VALUE.
func parseAssignment(text string) (assign Assignment, err error) {
	pos, value, ok := strings.Cut(text, "=")
	if !ok {
		err = errAssignSyntax
		return
	}

	assign.Position, err = strconv.Atoi(strings.TrimSpace(pos))
	if err != nil {
		err = errors.Join(errAssignSyntax, err)
		return
	}

	v64, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil {
		err = errors.Join(errAssignSyntax, err)
		return
	}
	assign.Value = uint32(v64)

	return
}

// defineCommands registers every --define on the emulator's computer.
func defineCommands(emu *emulator.Emulator, defines []string) (err error) {
	for _, define := range defines {
		var cmd *script.Command
		cmd, err = script.ParseDefine(define)
		if err != nil {
			err = fmt.Errorf("--define %q: %w", define, err)
			return
		}
		log.Debugf("define opcode %d %v = %v", cmd.Opcode(), cmd.Name(), cmd.Expr())
		emu.AddCommand(intcode.Binary{BinaryCommand: cmd})
	}

	return
}
