// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/intcode/dump"
	"github.com/ezrec/intcode/intcode"
)

// Emulator state. Computer + optional memory dump.
type Emulator struct {
	Verbose           bool           // If set, enables verbose logging.
	*intcode.Computer                // Reference to the computer simulation.
	Recorder          *dump.Recorder // If set, records memory before every tick.

	ticks int
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Computer: intcode.NewComputer(),
	}

	return
}

// Load a program, optionally rejecting one without a reachable halt.
func (emu *Emulator) Load(program []uint32, strict bool) (err error) {
	emu.Computer.Verbose = emu.Verbose

	if strict {
		err = emu.Computer.SetProgramStrict(program)
		if err != nil {
			return
		}
	} else {
		emu.Computer.SetProgram(program)
	}

	emu.ticks = 0
	if emu.Recorder != nil {
		emu.Recorder.Reset()
	}

	return
}

// Ticks returns the total ticks since the last load.
func (emu *Emulator) Ticks() int {
	return emu.ticks
}

// Pointer returns the current program counter, or -1 once halted.
func (emu *Emulator) Pointer() int {
	ptr, ok := emu.Computer.GetPointer()
	if !ok {
		return -1
	}
	return ptr
}

// Tick performs a single step of the computer.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Computer.Verbose = emu.Verbose

	if emu.Computer.IsComplete() {
		done = true
		return
	}

	ptr := emu.Pointer()
	tick := emu.ticks
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pointer: ptr, Tick: tick, Err: err}
		}
	}()

	// Unguarded memory reads fault with an index panic.
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			err = errors.Join(ErrMemoryFault, rerr)
		}
	}()

	if emu.Recorder != nil {
		emu.Recorder.Record(emu.Computer.CloneMemory())
	}

	status, err := emu.Computer.Step()
	if err != nil {
		return
	}

	emu.ticks++
	done = status == intcode.STATUS_COMPLETE

	if done && emu.Verbose {
		log.Printf("emulator: complete after %d ticks", emu.ticks)
	}

	return
}

// Run ticks until the computer halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
