// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script provides binary commands defined at runtime by a Starlark
// expression over the two operands a and b.
package script

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

// MAX_STEPS bounds the work of a single evaluation.
const MAX_STEPS = 100_000

var (
	ErrDefineSyntax  = errors.New(f("define must be OPCODE=NAME:EXPR"))
	ErrReservedHalt  = errors.New(f("opcode 99 is reserved for halt"))
	ErrScriptSyntax  = errors.New(f("expression syntax"))
	ErrScriptRuntime = errors.New(f("expression failed"))
)

// ErrScriptResult is an expression that did not produce an integer.
type ErrScriptResult string

func (err ErrScriptResult) Error() string {
	return f("expression result %v is not an int", string(err))
}

var modulus = new(big.Int).Lsh(big.NewInt(1), 32)

// Command is an intcode.BinaryCommand evaluating a Starlark expression.
type Command struct {
	opcode uint32
	name   string
	expr   string
	prog   string
}

var _ intcode.BinaryCommand = (*Command)(nil)

// New compiles expr into a command for opcode.
func New(opcode uint32, name string, expr string) (cmd *Command, err error) {
	if opcode == intcode.OPCODE_HALT {
		err = ErrReservedHalt
		return
	}

	prog := "rc=" + expr + "\n"
	opts := syntax.FileOptions{}
	_, err = opts.Parse(name, prog, 0)
	if err != nil {
		err = errors.Join(ErrScriptSyntax, err)
		return
	}

	cmd = &Command{
		opcode: opcode,
		name:   name,
		expr:   expr,
		prog:   prog,
	}

	return
}

// ParseDefine parses a command line definition, OPCODE=NAME:EXPR.
func ParseDefine(define string) (cmd *Command, err error) {
	code, rest, ok := strings.Cut(define, "=")
	if !ok {
		err = ErrDefineSyntax
		return
	}
	name, expr, ok := strings.Cut(rest, ":")
	name = strings.TrimSpace(name)
	expr = strings.TrimSpace(expr)
	if !ok || len(name) == 0 || len(expr) == 0 {
		err = ErrDefineSyntax
		return
	}

	opcode, err := strconv.ParseUint(strings.TrimSpace(code), 10, 32)
	if err != nil {
		err = errors.Join(ErrDefineSyntax, err)
		return
	}

	return New(uint32(opcode), name, expr)
}

func (cmd *Command) Opcode() uint32 { return cmd.opcode }

func (cmd *Command) Name() string { return cmd.name }

// Expr returns the source expression.
func (cmd *Command) Expr() string { return cmd.expr }

// Combine evaluates the expression. The integer result is reduced modulo
// 2^32, so it wraps like the built-in arithmetic.
func (cmd *Command) Combine(a, b uint32) (result uint32, err error) {
	thread := &starlark.Thread{Name: cmd.name}
	thread.SetMaxExecutionSteps(MAX_STEPS)

	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"a": starlark.MakeUint64(uint64(a)),
		"b": starlark.MakeUint64(uint64(b)),
	}

	dict, err := starlark.ExecFileOptions(&opts, thread, cmd.name, cmd.prog, pred)
	if err != nil {
		err = errors.Join(ErrScriptRuntime, err)
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrScriptResult("None")
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrScriptResult(st_rc.String())
		return
	}

	value := new(big.Int).Mod(st_int.BigInt(), modulus)
	result = uint32(value.Uint64())
	return
}
