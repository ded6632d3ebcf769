// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/dirichlet/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var (
	verbose bool   // show messages
	alias   string // word appended to simulation key
)

var rootCmd = &cobra.Command{
	Use:   "dirichlet file.sim",
	Short: "Solve A・x = b with Dirichlet boundary conditions",
	Long: `Assembles the linear system of a Lagrange finite element problem defined in a
simulation (.sim) file, enforces the Dirichlet boundary conditions and solves it.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", true, "show messages")
	rootCmd.Flags().StringVarP(&alias, "alias", "a", "", "word appended to the simulation key")
}

func run(cmd *cobra.Command, args []string) error {
	fnamepath := args[0]
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".sim"
	}
	if verbose {
		io.PfWhite("\nDirichlet -- Boundary conditions for finite element systems\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n\n")
	}
	analysis, err := fem.NewMain(fnamepath, alias, verbose)
	if err != nil {
		return err
	}
	return analysis.Run()
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		io.PfRed("\nERROR: %v\n", err)
		os.Exit(1)
	}
}
