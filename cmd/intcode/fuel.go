// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/fuel"
)

var fuelCmd = &cobra.Command{
	Use:   "fuel [flags] masses.txt",
	Short: "Compute the fuel needed for a list of module masses.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := fuelProgram(cmd.OutOrStdout(), args[0], GetFlag(cmd, "total"))
		if err != nil {
			log.Error(err)
			os.Exit(4)
		}
	},
}

// fuelProgram prints the fuel sum for the masses in path, one per line.
func fuelProgram(out io.Writer, path string, total bool) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	masses, err := fuel.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	_, err = fmt.Fprintf(out, "Result: %d\n", fuel.Sum(masses, total))
	return
}

func init() {
	fuelCmd.Flags().BoolP("total", "t", false, "include the fuel needed for the fuel")
	rootCmd.AddCommand(fuelCmd)
}
