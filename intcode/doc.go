// Package intcode implements a small extensible virtual machine, the Computer.
//
// A program is a flat sequence of unsigned 32-bit integers that is both the
// instruction stream and the data store. Every instruction occupies
// INSTRUCTION_WIDTH cells: an opcode followed by three addresses. The
// Computer resolves each opcode in its own Registry of Commands, lets the
// Command compute a list of pending Changes from a read-only View, and only
// then applies those Changes to memory.
//
// The halt opcode (OPCODE_HALT) is handled by the Computer itself and is
// detected one instruction early: the Step that lands on it already reports
// STATUS_COMPLETE.
package intcode
