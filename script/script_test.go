package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/intcode/intcode"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	cmd, err := New(3, "sub", "a - b")
	assert.NoError(err)
	assert.Equal(uint32(3), cmd.Opcode())
	assert.Equal("sub", cmd.Name())
	assert.Equal("a - b", cmd.Expr())

	_, err = New(4, "bad", "a +")
	assert.ErrorIs(err, ErrScriptSyntax)

	_, err = New(intcode.OPCODE_HALT, "halt", "0")
	assert.ErrorIs(err, ErrReservedHalt)
}

func TestCommand_Combine(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		expr   string
		a, b   uint32
		result uint32
	}){
		{"a - b", 10, 3, 7},
		{"a - b", 3, 10, 0xfffffff9},
		{"a // b", 42, 6, 7},
		{"a % b", 43, 6, 1},
		{"max(a, b)", 4, 9, 9},
		{"a * b", 0x10000, 0x10000, 0},
		{"a ^ b", 0xff, 0x0f, 0xf0},
		{"a if a > b else b", 12, 5, 12},
		{"len([x for x in range(a)])", 5, 0, 5},
	}

	for _, entry := range table {
		cmd, err := New(5, "op", entry.expr)
		assert.NoError(err, entry.expr)

		result, err := cmd.Combine(entry.a, entry.b)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.result, result, entry.expr)
	}
}

func TestCommand_Combine_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		expr string
		a, b uint32
		err  error
		text string
	}){
		{"div", "a // b", 1, 0, ErrScriptRuntime, "division by zero"},
		{"undefined", "c + a", 1, 2, ErrScriptRuntime, "undefined: c"},
		{"steps", "len([x for x in range(a)])", 2000000000, 0, ErrScriptRuntime, "too many steps"},
		{"str", "'x'", 1, 2, ErrScriptResult(`"x"`), "x"},
	}

	for _, entry := range table {
		cmd, err := New(5, entry.name, entry.expr)
		assert.NoError(err, entry.name)

		_, err = cmd.Combine(entry.a, entry.b)
		if assert.ErrorIs(err, entry.err, entry.name) {
			assert.Contains(err.Error(), entry.text, entry.name)
		}
	}
}

func TestParseDefine(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		define string
		opcode uint32
		name   string
		expr   string
		err    error
	}){
		{"3=sub:a-b", 3, "sub", "a-b", nil},
		{" 7 = min : min(a, b) ", 7, "min", "min(a, b)", nil},
		{"3", 0, "", "", ErrDefineSyntax},
		{"3=sub", 0, "", "", ErrDefineSyntax},
		{"3=:a-b", 0, "", "", ErrDefineSyntax},
		{"x=sub:a-b", 0, "", "", ErrDefineSyntax},
		{"99=halt:0", 0, "", "", ErrReservedHalt},
	}

	for _, entry := range table {
		cmd, err := ParseDefine(entry.define)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.define)
			continue
		}
		assert.NoError(err, entry.define)
		assert.Equal(entry.opcode, cmd.Opcode(), entry.define)
		assert.Equal(entry.name, cmd.Name(), entry.define)
		assert.Equal(entry.expr, cmd.Expr(), entry.define)
	}
}

func TestCommand_Computer(t *testing.T) {
	require := require.New(t)

	cmd, err := ParseDefine("3=sub:a-b")
	require.NoError(err)

	cpu := intcode.NewComputer()
	cpu.AddCommand(intcode.Binary{BinaryCommand: cmd})
	cpu.SetProgram([]uint32{
		3, 9, 10, 11,
		1, 11, 11, 0,
		99, 10, 3, 0,
	})

	require.NoError(cpu.RunToEnd())
	require.Equal(uint32(7), cpu.GetValue(11))
	require.Equal(uint32(14), cpu.GetValue(0))
}
