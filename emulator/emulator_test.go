package emulator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/dump"
	"github.com/ezrec/intcode/intcode"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Computer)
	assert.Nil(emu.Recorder)
	assert.Equal(-1, emu.Pointer())
}

func doRun(emu *Emulator, program []uint32, t *testing.T) (ticks int) {
	assert := assert.New(t)

	err := emu.Load(program, false)
	assert.NoError(err)

	for {
		ptr := emu.Pointer()
		assert.Equal(ticks*intcode.INSTRUCTION_WIDTH, ptr)
		done, err := emu.Tick()
		if err != nil {
			t.Log(emu.Computer.String())
			t.Fatalf("%v", err)
		}
		ticks++
		if done {
			break
		}
	}

	assert.Equal(ticks, emu.Ticks())
	return
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []uint32
		ticks   int
		result  uint32
	}){
		{"add", []uint32{1, 0, 0, 0, 99}, 1, 2},
		{"multiply", []uint32{2, 3, 0, 3, 99}, 1, 2},
		{"two", []uint32{1, 1, 1, 4, 99, 5, 6, 0, 99}, 2, 30},
		{"chain", []uint32{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, 2, 3500},
		{"halt", []uint32{99, 7}, 1, 99},
	}

	for _, entry := range table {
		emu := NewEmulator()
		ticks := doRun(emu, entry.program, t)
		assert.Equal(entry.ticks, ticks, entry.name)
		assert.Equal(entry.result, emu.GetValue(0), entry.name)

		// Ticking a halted emulator does nothing.
		done, err := emu.Tick()
		assert.NoError(err)
		assert.True(done)
		assert.Equal(entry.ticks, emu.Ticks(), entry.name)
	}
}

func TestEmulatorRecorder(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Recorder = &dump.Recorder{}

	assert.NoError(emu.Load([]uint32{1, 1, 1, 4, 99, 5, 6, 0, 99}, false))
	assert.NoError(emu.Run())

	assert.Equal([][]uint32{
		{1, 1, 1, 4, 99, 5, 6, 0, 99},
		{1, 1, 1, 4, 2, 5, 6, 0, 99},
	}, emu.Recorder.Snapshots)

	// Loading again starts a fresh dump.
	assert.NoError(emu.Load([]uint32{99}, false))
	assert.NoError(emu.Run())
	assert.Equal([][]uint32{{99}}, emu.Recorder.Snapshots)
}

func TestEmulatorStrict(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	err := emu.Load([]uint32{1, 0, 0, 0, 0, 99}, true)
	assert.ErrorIs(err, intcode.ErrUnreachableEndCommand)

	err = emu.Load([]uint32{1, 0, 0, 0}, true)
	assert.ErrorIs(err, intcode.ErrNoEndCommand)

	// Without strict loading the same program runs off the end.
	err = emu.Load([]uint32{1, 0, 0, 0}, false)
	assert.NoError(err)
	err = emu.Run()
	assert.ErrorIs(err, ErrMemoryFault)
}

func TestEmulatorErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []uint32
		pointer int
		tick    int
		memory  []uint32
		err     error
	}){
		{"opcode", []uint32{1, 0, 0, 0, 42, 0, 0, 0, 99}, 4, 1, []uint32{2, 0, 0, 0, 42, 0, 0, 0, 99}, intcode.ErrUnknownOpcode(42)},
		{"position", []uint32{1, 0, 0, 40, 99}, 0, 0, []uint32{1, 0, 0, 40, 99}, intcode.ErrInvalidPosition(40)},
		{"read", []uint32{1, 0, 50, 0, 99}, 0, 0, []uint32{1, 0, 50, 0, 99}, ErrMemoryFault},
		// The halt peek faults after the writes land; the pointer stays put.
		{"peek", []uint32{1, 0, 0, 0}, 0, 0, []uint32{2, 0, 0, 0}, ErrMemoryFault},
	}

	for _, entry := range table {
		emu := NewEmulator()
		assert.NoError(emu.Load(entry.program, false), entry.name)

		err := emu.Run()
		assert.ErrorIs(err, entry.err, entry.name)

		var rerr *ErrRuntime
		if assert.True(errors.As(err, &rerr), entry.name) {
			assert.Equal(entry.pointer, rerr.Pointer, entry.name)
			assert.Equal(entry.tick, rerr.Tick, entry.name)
		}

		assert.Equal(entry.memory, emu.CloneMemory(), entry.name)
		assert.Equal(entry.pointer, emu.Pointer(), entry.name)
		assert.False(emu.IsComplete(), entry.name)
	}
}
