// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package debugger is an interactive terminal stepper for the emulator.
package debugger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/howeyc/fsnotify"
	"github.com/rivo/tview"
	log "github.com/sirupsen/logrus"

	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/program"
)

// COLUMNS is the number of memory cells shown per row, two instructions.
const COLUMNS = 2 * intcode.INSTRUCTION_WIDTH

// RELOAD_DELAY debounces bursts of file change events.
const RELOAD_DELAY = 100 * time.Millisecond

// Debugger drives an emulator from the keyboard.
type Debugger struct {
	Emulator *emulator.Emulator
	Path     string // Program file, reloaded on 'l' and when watched.
	Strict   bool   // Reject programs without a reachable halt.

	previous []uint32 // Memory before the last tick, to show changes.

	app    *tview.Application
	memory *tview.Table
	state  *tview.TextView
	log    *tview.TextView
	rows   *tview.Flex
}

// New builds the debugger views for emu.
func New(emu *emulator.Emulator, path string) (d *Debugger) {
	d = &Debugger{
		Emulator: emu,
		Path:     path,
		app:      tview.NewApplication(),
		memory: tview.NewTable().
			SetFixed(1, 1),
		state: tview.NewTextView().
			SetWrap(false),
		log: tview.NewTextView().
			SetMaxLines(1000),
		rows: tview.NewFlex().
			SetDirection(tview.FlexRow),
	}

	d.memory.SetBorder(true).SetTitle(" memory ")
	d.log.SetBorder(true).SetTitle(" log ")
	d.state.SetBackgroundColor(tcell.ColorDarkGrey)
	d.rows.
		AddItem(d.memory, 0, 3, true).
		AddItem(d.state, 1, 0, false).
		AddItem(d.log, 0, 1, false)
	d.app.SetRoot(d.rows, true)
	d.app.SetInputCapture(d.key)

	d.render()
	return
}

func (d *Debugger) key(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() != tcell.KeyRune {
		return ev
	}

	switch ev.Rune() {
	case 's', ' ':
		d.Step()
	case 'r':
		d.RunToEnd()
	case 'l':
		d.Reload()
	case 'q':
		d.app.Stop()
	default:
		return ev
	}

	return nil
}

// Reload reads the program file and restarts the emulator.
func (d *Debugger) Reload() (err error) {
	defer d.render()

	values, err := program.Load(d.Path)
	if err != nil {
		log.Errorf("debug: %v", err)
		return
	}

	err = d.Emulator.Load(values, d.Strict)
	if err != nil {
		log.Errorf("debug: %v", err)
		return
	}

	d.previous = nil
	log.Infof("debug: loaded %v (%d cells)", filepath.Base(d.Path), len(values))
	return
}

// Step executes one instruction.
func (d *Debugger) Step() (done bool, err error) {
	defer d.render()

	d.previous = d.Emulator.CloneMemory()
	done, err = d.Emulator.Tick()
	if err != nil {
		log.Errorf("debug: %v", err)
	}

	return
}

// RunToEnd ticks until the program halts or fails.
func (d *Debugger) RunToEnd() (err error) {
	defer d.render()

	d.previous = d.Emulator.CloneMemory()
	err = d.Emulator.Run()
	if err != nil {
		log.Errorf("debug: %v", err)
		return
	}

	log.Infof("debug: complete after %d ticks", d.Emulator.Ticks())
	return
}

// cellColors picks the colors for the cell at position.
func cellColors(position int, pointer int, changed bool) (fg tcell.Color, bg tcell.Color) {
	fg = tcell.ColorWhite
	bg = tcell.ColorDefault

	if pointer >= 0 && position >= pointer && position < pointer+intcode.INSTRUCTION_WIDTH {
		bg = tcell.ColorDarkBlue
		if position == pointer {
			fg = tcell.ColorYellow
		}
	}

	if changed {
		fg = tcell.ColorRed
	}

	return
}

// render redraws every view from the emulator state.
func (d *Debugger) render() {
	emu := d.Emulator
	memory := emu.CloneMemory()
	pointer := emu.Pointer()

	d.memory.Clear()
	for col := range COLUMNS {
		d.memory.SetCell(0, col+1, tview.NewTableCell(fmt.Sprintf("+%d", col)).
			SetTextColor(tcell.ColorGray).
			SetSelectable(false))
	}

	for position, value := range memory {
		row := position/COLUMNS + 1
		col := position%COLUMNS + 1
		if col == 1 {
			d.memory.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("%04d", position)).
				SetTextColor(tcell.ColorGray).
				SetSelectable(false))
		}

		changed := position < len(d.previous) && d.previous[position] != value
		fg, bg := cellColors(position, pointer, changed)
		d.memory.SetCell(row, col, tview.NewTableCell(fmt.Sprintf("%d", value)).
			SetAlign(tview.AlignRight).
			SetTextColor(fg).
			SetBackgroundColor(bg))
	}

	d.state.SetText(fmt.Sprintf(" %v | ticks %d | s:step r:run l:reload q:quit", emu.Computer, emu.Ticks()))
}

// watch reloads the program whenever its file changes, until done closes.
func (d *Debugger) watch(done chan struct{}) (err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return
	}

	path := filepath.Clean(d.Path)
	err = watcher.Watch(filepath.Dir(path))
	if err != nil {
		watcher.Close()
		return
	}

	go func() {
		defer watcher.Close()
		var reload <-chan time.Time
		for {
			select {
			case <-done:
				return
			case ev := <-watcher.Event:
				if filepath.Clean(ev.Name) == path && !ev.IsAttrib() {
					reload = time.After(RELOAD_DELAY)
				}
			case <-reload:
				reload = nil
				d.app.QueueUpdateDraw(func() { d.Reload() })
			case err := <-watcher.Error:
				log.Warnf("debug: watcher: %v", err)
			}
		}
	}()

	return
}

// Run the debugger until the user quits.
func (d *Debugger) Run(watch bool) (err error) {
	log.SetOutput(d.log)
	defer log.SetOutput(os.Stderr)

	d.Reload()

	if watch {
		done := make(chan struct{})
		defer close(done)
		err = d.watch(done)
		if err != nil {
			return
		}
		log.Infof("debug: watching %v", d.Path)
	}

	return d.app.Run()
}
