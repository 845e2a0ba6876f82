// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"fmt"
	"iter"
	"slices"

	log "github.com/sirupsen/logrus"
)

// INSTRUCTION_WIDTH is the stride between instructions: opcode plus three
// addresses. It is not derived from the opcode.
const INSTRUCTION_WIDTH = 4

// Computer is the simulation context: memory, program counter and the
// command registry.
type Computer struct {
	Verbose bool // Set to enable verbose logging.

	memory   []uint32  // Program text and data.
	pointer  int       // Next instruction, valid only when running.
	running  bool      // False once halted.
	registry *Registry // Opcode handlers owned by this computer.
}

var _ View = (*Computer)(nil)

// NewComputer creates a halted computer holding a lone halt instruction,
// with the built-in commands registered.
func NewComputer() (cpu *Computer) {
	cpu = &Computer{
		memory:   []uint32{OPCODE_HALT},
		registry: NewRegistry(Builtins()...),
	}

	return
}

// String returns the computer state as a one line summary.
func (cpu *Computer) String() string {
	if cpu.running {
		return fmt.Sprintf("running at %d (opcode %d)", cpu.pointer, cpu.memory[cpu.pointer])
	}

	return fmt.Sprintf("complete, position 0 = %d", cpu.memory[0])
}

// IsComplete is true once the computer has halted.
func (cpu *Computer) IsComplete() bool {
	return !cpu.running
}

// IsRunning is true while further steps may execute instructions.
func (cpu *Computer) IsRunning() bool {
	return cpu.running
}

// Len returns the size of memory.
func (cpu *Computer) Len() int {
	return len(cpu.memory)
}

// GetValue returns the memory cell at position.
//
// The read is not bounds checked: decoding trusts program supplied
// addresses, and an invalid one panics.
func (cpu *Computer) GetValue(position int) uint32 {
	return cpu.memory[position]
}

// GetPointer returns the program counter. ok is false once halted.
func (cpu *Computer) GetPointer() (pointer int, ok bool) {
	if !cpu.running {
		return
	}

	return cpu.pointer, true
}

// SetProgram replaces memory with a copy of program and restarts at 0.
func (cpu *Computer) SetProgram(program []uint32) {
	cpu.memory = slices.Clone(program)
	cpu.pointer = 0
	cpu.running = true

	if cpu.Verbose {
		log.Printf("intcode: load %d cells", len(cpu.memory))
	}
}

// SetProgramStrict is SetProgram, but rejects programs whose halt opcode
// can never be reached by the fixed instruction stride.
func (cpu *Computer) SetProgramStrict(program []uint32) (err error) {
	err = ValidateProgram(program)
	if err != nil {
		return
	}

	cpu.SetProgram(program)
	return
}

// ValidateProgram checks that OPCODE_HALT appears on an instruction boundary.
func ValidateProgram(program []uint32) (err error) {
	for ptr := 0; ptr < len(program); ptr += INSTRUCTION_WIDTH {
		if program[ptr] == OPCODE_HALT {
			return
		}
	}

	if slices.Contains(program, OPCODE_HALT) {
		err = ErrUnreachableEndCommand
	} else {
		err = ErrNoEndCommand
	}

	return
}

// SetValue writes value at position.
func (cpu *Computer) SetValue(position int, value uint32) (err error) {
	if position < 0 || position >= len(cpu.memory) {
		err = ErrInvalidPosition(position)
		return
	}

	cpu.memory[position] = value
	return
}

// AddCommand registers cmd, replacing the command for the same opcode.
// It takes effect on the next step, even in the middle of a run.
func (cpu *Computer) AddCommand(cmd Command) {
	if cpu.Verbose {
		log.Printf("intcode: opcode %d is %v", cmd.Opcode(), cmd.Name())
	}

	cpu.registry.Add(cmd)
}

// Commands returns the registry of this computer.
func (cpu *Computer) Commands() *Registry {
	return cpu.registry
}

// CloneMemory returns an independent snapshot of memory.
func (cpu *Computer) CloneMemory() []uint32 {
	return slices.Clone(cpu.memory)
}

// Step executes a single instruction.
//
// The halt opcode following the executed instruction is detected in the same
// call, which then returns STATUS_COMPLETE. Stepping a halted computer is a
// no-op. Errors are not recovered: the pointer stays on the failing
// instruction.
//
// All writes of an instruction are checked before any is applied. The halt
// peek reads memory after the writes, so a program running off the end of
// memory panics with the writes already in place.
func (cpu *Computer) Step() (status Status, err error) {
	if !cpu.running {
		status = STATUS_COMPLETE
		return
	}

	ptr := cpu.pointer
	opcode := cpu.memory[ptr]

	if opcode == OPCODE_HALT {
		cpu.running = false
		status = STATUS_COMPLETE
		return
	}

	defer func() {
		if err != nil {
			err = &ErrStep{Pointer: ptr, Opcode: opcode, Err: err}
		}
	}()

	cmd, ok := cpu.registry.Get(opcode)
	if !ok {
		err = ErrUnknownOpcode(opcode)
		return
	}

	changes, err := cmd.Apply(cpu)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%04d: %v %v", ptr, cmd.Name(), changes)
	}

	// Validate the whole batch so a bad write leaves memory untouched.
	for _, change := range changes {
		if change.Position < 0 || change.Position >= len(cpu.memory) {
			err = ErrInvalidPosition(change.Position)
			return
		}
	}

	for _, change := range changes {
		err = cpu.SetValue(change.Position, change.Value)
		if err != nil {
			return
		}
	}

	next := ptr + INSTRUCTION_WIDTH
	if cpu.memory[next] == OPCODE_HALT {
		cpu.running = false
		status = STATUS_COMPLETE
		return
	}

	cpu.pointer = next
	status = STATUS_RUNNING
	return
}

// Steps returns an iterator that steps the computer once per iteration.
//
// It yields the new pointer after every step that leaves the computer
// running, and ends when it halts. A failed step is yielded once with its
// error, ending the sequence. Breaking out early leaves the computer
// ready for further steps.
func (cpu *Computer) Steps() iter.Seq2[int, error] {
	return func(yield func(pointer int, err error) bool) {
		for {
			status, err := cpu.Step()
			if err != nil {
				yield(cpu.pointer, err)
				return
			}
			if status == STATUS_COMPLETE {
				return
			}
			if !yield(cpu.pointer, nil) {
				return
			}
		}
	}
}

// RunToEnd steps until the computer halts or a step fails.
func (cpu *Computer) RunToEnd() (err error) {
	for _, err = range cpu.Steps() {
		if err != nil {
			return
		}
	}

	return
}
