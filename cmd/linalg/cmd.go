// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/linalg/base/errors"
	"cogentcore.org/linalg/base/logx"
	"cogentcore.org/linalg/demo"
	"cogentcore.org/linalg/problem"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// Config holds the global command line options.
type Config struct {
	// VeryVerbose prints debug messages.
	VeryVerbose bool

	// Verbose prints info messages.
	Verbose bool

	// Quiet only prints errors.
	Quiet bool
}

func newRootCmd() *cobra.Command {
	cfg := &Config{}
	root := &cobra.Command{
		Use:           "linalg",
		Short:         "Dense linear algebra toolkit",
		Long:          "Linalg demonstrates and solves dense linear algebra problems: Gram-Schmidt, QR, SVD, least squares, norms, rank, and condition numbers.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
			logx.SetDefaultLogger()
			slog.Debug("starting", "command", cmd.Name(), "level", logx.UserLevel)
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&cfg.VeryVerbose, "vv", false, "print debug messages")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "print info messages")
	pf.BoolVarP(&cfg.Quiet, "quiet", "q", false, "only print errors")

	root.AddCommand(newDemoCmd(), newRunCmd(), newSamplesCmd(), newVersionCmd())
	return root
}

func newDemoCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "demo [name...]",
		Short: "Run demonstrations on example data",
		Long:  "Demo runs the named demonstrations, or all of them if no names are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if list {
				for _, d := range demo.All {
					errors.Log1(fmt.Fprintf(w, "%-14s %s\n", d.Name, d.Doc))
				}
				return nil
			}
			if len(args) == 0 {
				return demo.RunAll(w)
			}
			for _, name := range args {
				d, ok := demo.Lookup(name)
				if !ok {
					return fmt.Errorf("unknown demo %q (see demo --list)", name)
				}
				logx.PrintlnDebug("running demo", d.Name)
				if err := d.Run(w); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list the available demos")
	return cmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE...",
		Short: "Solve problem files",
		Long:  "Run solves the given TOML, YAML, or JSON problem files concurrently and prints the solutions in order.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sols, err := problem.SolveFiles(cmd.Context(), args...)
			if err != nil {
				return err
			}
			return writeSolutions(cmd.OutOrStdout(), args, sols)
		},
	}
}

func newSamplesCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "samples [name...]",
		Short: "Solve the built in sample problems",
		Long:  "Samples solves the named built in sample problem files, or all of them if no names are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if list {
				for _, name := range problem.SampleNames() {
					errors.Log1(fmt.Fprintln(w, name))
				}
				return nil
			}
			if len(args) == 0 {
				args = problem.SampleNames()
			}
			sols, err := problem.SolveFS(cmd.Context(), problem.Samples, args...)
			if err != nil {
				return err
			}
			return writeSolutions(w, args, sols)
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list the sample problem files")
	return cmd
}

// writeSolutions writes the solutions of the given files to w,
// reporting progress and ignored inputs through [logx].
func writeSolutions(w io.Writer, files []string, sols []*problem.Solution) error {
	for i, s := range sols {
		logx.PrintfInfo("solved %s (%s)\n", files[i], s.Op)
		for _, warn := range s.Warnings {
			logx.PrintlnWarn(files[i]+":", warn)
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		if _, err := s.WriteTo(w); err != nil {
			return err
		}
	}
	logx.PrintlnInfo("solved", len(sols), "problems")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			errors.Log1(fmt.Fprintln(cmd.OutOrStdout(), "linalg", version))
		},
	}
}
