package intcode

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// reference evaluates an add/multiply program directly on memory.
func reference(memory []uint32) []uint32 {
	memory = slices.Clone(memory)
	for ptr := 0; memory[ptr] != OPCODE_HALT; ptr += INSTRUCTION_WIDTH {
		a := memory[memory[ptr+1]]
		b := memory[memory[ptr+2]]
		dst := memory[ptr+3]
		switch memory[ptr] {
		case OPCODE_ADD:
			memory[dst] = a + b
		case OPCODE_MULTIPLY:
			memory[dst] = a * b
		}
	}
	return memory
}

// randomProgram builds count instructions followed by a halt and a data
// area. Destinations stay in the data area so the code is never rewritten.
func randomProgram(rands *rand.Rand, count int, data int) (program []uint32) {
	code := count*INSTRUCTION_WIDTH + 1
	size := code + data

	for range count {
		opcode := OPCODE_ADD
		if rands.Intn(2) == 1 {
			opcode = OPCODE_MULTIPLY
		}
		program = append(program,
			opcode,
			uint32(rands.Intn(size)),
			uint32(rands.Intn(size)),
			uint32(code+rands.Intn(data)),
		)
	}
	program = append(program, OPCODE_HALT)
	for range data {
		program = append(program, rands.Uint32())
	}

	return
}

func FuzzComputer(f *testing.F) {
	for seed := range 8 {
		f.Add(int64(seed), uint8(seed*3), uint8(seed+1))
	}

	f.Fuzz(func(t *testing.T, seed int64, count uint8, data uint8) {
		assert := assert.New(t)

		rands := rand.New(rand.NewSource(seed))
		program := randomProgram(rands, int(count%32), int(data%16)+1)

		cpu := NewComputer()
		assert.NoError(cpu.SetProgramStrict(program))
		assert.NoError(cpu.RunToEnd())
		assert.True(cpu.IsComplete())
		assert.Equal(reference(program), cpu.CloneMemory())
	})
}

func TestComputer_Reference(t *testing.T) {
	assert := assert.New(t)

	rands := rand.New(rand.NewSource(2019))
	for n := range 64 {
		program := randomProgram(rands, n%12, 1+n%7)

		cpu := NewComputer()
		cpu.SetProgram(program)

		steps := 0
		for _, err := range cpu.Steps() {
			assert.NoError(err)
			steps++
		}
		assert.Equal(max(n%12-1, 0), steps, n)
		assert.Equal(reference(program), cpu.CloneMemory(), n)
	}
}
