package emulator

import (
	"errors"
	"strconv"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrMemoryFault = errors.New(f("memory fault"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pointer int
	Tick    int
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("tick %v pointer %v: %v", strconv.Itoa(err.Tick), strconv.Itoa(err.Pointer), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
