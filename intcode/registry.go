// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"iter"
	"maps"
	"slices"
)

// Registry maps opcodes to commands.
type Registry struct {
	commands map[uint32]Command
}

// NewRegistry creates a registry holding cmds, later entries replacing
// earlier ones with the same opcode.
func NewRegistry(cmds ...Command) (reg *Registry) {
	reg = &Registry{
		commands: make(map[uint32]Command, len(cmds)),
	}

	for _, cmd := range cmds {
		reg.Add(cmd)
	}

	return
}

// Add registers cmd under its opcode, replacing any previous command.
// The command must fit the fixed INSTRUCTION_WIDTH layout.
func (reg *Registry) Add(cmd Command) {
	reg.commands[cmd.Opcode()] = cmd
}

// Get returns the command for opcode.
func (reg *Registry) Get(opcode uint32) (cmd Command, ok bool) {
	cmd, ok = reg.commands[opcode]
	return
}

// Remove drops the command for opcode, if any.
func (reg *Registry) Remove(opcode uint32) {
	delete(reg.commands, opcode)
}

// Len is the number of registered opcodes.
func (reg *Registry) Len() int {
	return len(reg.commands)
}

// Opcodes returns the registered opcodes in ascending order.
func (reg *Registry) Opcodes() iter.Seq[uint32] {
	return slices.Values(slices.Sorted(maps.Keys(reg.commands)))
}

// All returns the registered commands in ascending opcode order.
func (reg *Registry) All() iter.Seq2[uint32, Command] {
	return func(yield func(opcode uint32, cmd Command) bool) {
		for opcode := range reg.Opcodes() {
			if !yield(opcode, reg.commands[opcode]) {
				return
			}
		}
	}
}
