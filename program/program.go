// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package program reads and writes the textual program format: unsigned
// 32-bit decimal values separated by commas.
package program

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrEmptyProgram = errors.New(f("program is empty"))
)

// ErrParseNumber is a token that is not an unsigned 32-bit number.
type ErrParseNumber struct {
	Index int    // Token index, from 0.
	Token string // Offending text.
}

func (err ErrParseNumber) Error() string {
	return f("value %v '%v' is not a number", strconv.Itoa(err.Index), err.Token)
}

// ErrLoad locates a failed program file.
type ErrLoad struct {
	Path string
	Err  error
}

func (err *ErrLoad) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}

// ParseString parses comma separated values. Any bad value fails the whole
// program.
func ParseString(text string) (values []uint32, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		err = ErrEmptyProgram
		return
	}

	tokens := strings.Split(text, ",")
	values = make([]uint32, 0, len(tokens))
	for n, token := range tokens {
		token = strings.TrimSpace(token)
		var v64 uint64
		v64, err = strconv.ParseUint(token, 10, 32)
		if err != nil {
			values = nil
			err = ErrParseNumber{Index: n, Token: token}
			return
		}
		values = append(values, uint32(v64))
	}

	return
}

// Parse reads a whole program from r.
func Parse(r io.Reader) (values []uint32, err error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return
	}

	return ParseString(string(text))
}

// Load reads a program file.
func Load(path string) (values []uint32, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	values, err = Parse(inf)
	if err != nil {
		err = &ErrLoad{Path: path, Err: err}
	}

	return
}

// Format renders values in the program format, without a trailing newline.
func Format(values []uint32) string {
	var text strings.Builder
	for n, value := range values {
		if n > 0 {
			text.WriteByte(',')
		}
		text.WriteString(strconv.FormatUint(uint64(value), 10))
	}
	return text.String()
}
