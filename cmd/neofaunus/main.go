/*
 * main.go, part of neofaunus.
 *
 * Copyright 2018 The neofaunus developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Command neofaunus runs Metropolis Monte Carlo simulations of
//molecular systems defined by a JSON system file and an ini run
//control file.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	controlFile  string
	printExample bool
	verbose      bool

	rootCmd = &cobra.Command{
		Use:   "neofaunus",
		Short: "Monte Carlo simulation of molecular systems",
		Long: `neofaunus samples molecular systems with Metropolis Monte Carlo.
The system (geometry, atom and molecule types, initial insertion) is
defined in a JSON file; loop lengths and output files in an ini run
control file.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: level})))
		},
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run a simulation from a run control file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if printExample {
				fmt.Print(ExampleRunControl)
				return nil
			}
			rc, err := ReadRunControl(controlFile)
			if err != nil {
				return err
			}
			return runSimulation(rc)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
	runCmd.Flags().StringVarP(&controlFile, "control", "c", "run.ini",
		"run control file")
	runCmd.Flags().BoolVar(&printExample, "example", false,
		"print an example run control file and exit")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}
