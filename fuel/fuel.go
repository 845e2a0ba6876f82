// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package fuel computes the fuel required to launch modules of given mass.
package fuel

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrEmptyInput = errors.New(f("no masses in input"))
)

// ErrParseMass is a line that is not an unsigned mass.
type ErrParseMass struct {
	LineNo int
	Line   string
}

func (err ErrParseMass) Error() string {
	return f("line %v '%v' is not a mass", strconv.Itoa(err.LineNo), err.Line)
}

// Fuel is floor(mass / 3) - 2, and never negative.
func Fuel(mass uint64) uint64 {
	third := mass / 3
	if third <= 2 {
		return 0
	}
	return third - 2
}

// TotalFuel includes the fuel needed to carry the fuel itself.
func TotalFuel(mass uint64) (total uint64) {
	for fuel := Fuel(mass); fuel > 0; fuel = Fuel(fuel) {
		total += fuel
	}
	return
}

// Sum adds the fuel of every mass, using TotalFuel if total is set.
func Sum(masses []uint64, total bool) (sum uint64) {
	calc := Fuel
	if total {
		calc = TotalFuel
	}

	for _, mass := range masses {
		sum += calc(mass)
	}
	return
}

// Parse reads one mass per line. Blank lines are skipped.
func Parse(r io.Reader) (masses []uint64, err error) {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		var mass uint64
		mass, err = strconv.ParseUint(line, 10, 64)
		if err != nil {
			masses = nil
			err = ErrParseMass{LineNo: lineno, Line: line}
			return
		}
		masses = append(masses, mass)
	}

	err = scanner.Err()
	if err != nil {
		masses = nil
		return
	}

	if len(masses) == 0 {
		err = ErrEmptyInput
	}

	return
}
