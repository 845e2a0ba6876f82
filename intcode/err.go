// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"errors"
	"strconv"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Program loading errors, only reported by SetProgramStrict.
	ErrNoEndCommand          = errors.New(f("no end command (99) found in program"))
	ErrUnreachableEndCommand = errors.New(f("end command (99) found in unreachable position"))
)

// ErrInvalidPosition is a write outside of the current memory.
//
// Numbers in error text are rendered with strconv, without locale digit
// grouping.
type ErrInvalidPosition int

func (err ErrInvalidPosition) Error() string {
	return f("position %v is invalid", strconv.Itoa(int(err)))
}

// ErrApply is a command invoked while the computer is halted.
type ErrApply string

func (err ErrApply) Error() string {
	return f("error applying command %v", string(err))
}

// ErrUnknownOpcode is an opcode with no registered command.
type ErrUnknownOpcode uint32

func (err ErrUnknownOpcode) Error() string {
	return f("unknown opcode %v", strconv.FormatUint(uint64(err), 10))
}

// ErrStep locates a failed step.
type ErrStep struct {
	Pointer int
	Opcode  uint32
	Err     error
}

func (err *ErrStep) Error() string {
	return f("step at %v (opcode %v): %v", strconv.Itoa(err.Pointer), strconv.FormatUint(uint64(err.Opcode), 10), err.Err)
}

func (err *ErrStep) Unwrap() error {
	return err.Err
}
