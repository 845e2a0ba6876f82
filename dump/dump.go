// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package dump records memory snapshots during a run and writes them as one
// comma separated line per snapshot.
package dump

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"slices"
	"strconv"
)

// DEFAULT_PATH is where a dump is saved unless told otherwise.
const DEFAULT_PATH = "dump.csv"

// Recorder collects memory snapshots.
type Recorder struct {
	Snapshots [][]uint32
}

// Record stores a copy of memory.
func (rec *Recorder) Record(memory []uint32) {
	rec.Snapshots = append(rec.Snapshots, slices.Clone(memory))
}

// Len is the number of recorded snapshots.
func (rec *Recorder) Len() int {
	return len(rec.Snapshots)
}

// Reset drops all snapshots.
func (rec *Recorder) Reset() {
	rec.Snapshots = rec.Snapshots[:0]
}

// counter tracks bytes written through it.
type counter struct {
	w io.Writer
	n int64
}

func (c *counter) Write(p []byte) (n int, err error) {
	n, err = c.w.Write(p)
	c.n += int64(n)
	return
}

// WriteTo writes every snapshot, one line each.
func (rec *Recorder) WriteTo(w io.Writer) (n int64, err error) {
	out := &counter{w: w}
	cw := csv.NewWriter(out)

	for _, snapshot := range rec.Snapshots {
		record := make([]string, len(snapshot))
		for n, value := range snapshot {
			record[n] = strconv.FormatUint(uint64(value), 10)
		}
		err = cw.Write(record)
		if err != nil {
			n = out.n
			return
		}
	}

	cw.Flush()
	err = cw.Error()
	n = out.n
	return
}

// Save writes the dump to path, replacing any existing file.
func (rec *Recorder) Save(path string) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(ouf)
	_, err = rec.WriteTo(bw)
	if err != nil {
		return
	}

	err = bw.Flush()
	return
}
