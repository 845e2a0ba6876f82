// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"fmt"
)

// Change is a pending memory write.
type Change struct {
	Position int    // Target address.
	Value    uint32 // Value to store.
}

func (ch Change) String() string {
	return fmt.Sprintf("[%d]=%d", ch.Position, ch.Value)
}

// View is the read-only side of a Computer, as seen by a Command.
type View interface {
	// GetValue returns the memory cell at position.
	GetValue(position int) uint32
	// GetPointer returns the program counter, or ok == false when halted.
	GetPointer() (pointer int, ok bool)
}

// Command handles one opcode.
//
// Apply must not modify the computer; it returns the writes implied by the
// instruction at the current pointer. Every command is assumed to occupy
// exactly INSTRUCTION_WIDTH cells, as the Computer advances by that stride
// regardless of opcode.
type Command interface {
	// Opcode returns the opcode this command is registered under.
	Opcode() uint32
	// Name returns a human readable name, used in errors and logs.
	Name() string
	// Apply computes the changes for the instruction at the pointer.
	Apply(view View) (changes []Change, err error)
}

// BinaryCommand is the common form of a two operand instruction.
type BinaryCommand interface {
	Opcode() uint32
	Name() string
	// Combine computes the result from the two dereferenced operands.
	Combine(a, b uint32) (result uint32, err error)
}

// Binary adapts a BinaryCommand to a Command.
//
// The three cells following the opcode hold addresses: first operand,
// second operand, destination.
type Binary struct {
	BinaryCommand
}

var _ Command = Binary{}

// Apply reads both operands by indirection, combines them, and returns a
// single change to the destination address.
func (bc Binary) Apply(view View) (changes []Change, err error) {
	ptr, ok := view.GetPointer()
	if !ok {
		err = ErrApply(bc.Name())
		return
	}

	a_pos := int(view.GetValue(ptr + 1))
	b_pos := int(view.GetValue(ptr + 2))
	dst := int(view.GetValue(ptr + 3))

	result, err := bc.Combine(view.GetValue(a_pos), view.GetValue(b_pos))
	if err != nil {
		return
	}

	changes = []Change{{Position: dst, Value: result}}
	return
}
