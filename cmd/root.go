// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the porflow command line interface
package cmd

import (
	"bytes"
	"context"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/porflow/fem"
	"github.com/cpmech/porflow/inp"
)

// NewRootCmd returns the root command with all subcommands
func NewRootCmd() *cobra.Command {
	var cfgFile string
	var stopper interface{ Stop() }
	v := viper.New()

	root := &cobra.Command{
		Use:   "porflow",
		Short: "Lumped accumulation terms of porous flow problems",
		Long: `porflow assembles the lumped time-derivative (accumulation) terms of
thermo-hydro-mechanical porous flow problems and checks their Jacobians.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if err = initConfig(v, cfgFile); err != nil {
				return
			}
			chk.Verbose = v.GetBool("verbose")
			io.Verbose = chk.Verbose
			switch v.GetString("profile") {
			case "":
			case "cpu":
				stopper = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
			case "mem":
				stopper = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
			default:
				return chk.Err("profile must be \"cpu\" or \"mem\". %q is invalid\n", v.GetString("profile"))
			}
			return
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if stopper != nil {
				stopper.Stop()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.porflow.yaml)")
	flags.BoolP("verbose", "v", false, "show messages")
	flags.IntP("threads", "n", 0, "number of concurrent element evaluations; 0 means value in simulation file")
	flags.String("profile", "", "profiling: \"cpu\" or \"mem\"")
	for _, name := range []string{"verbose", "threads", "profile"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			chk.Panic("cannot bind flag %q:\n%v", name, err)
		}
	}

	root.AddCommand(newResidualCmd(v), newCheckCmd(v), newInfoCmd(v))
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// initConfig reads in config file and ENV variables if set
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		v.AddConfigPath(home)
		v.SetConfigName(".porflow")
	}
	v.SetEnvPrefix("porflow")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return chk.Err("cannot read config file:\n%v", err)
		}
	} else if v.GetBool("verbose") {
		io.Pf("> using config file %s\n", v.ConfigFileUsed())
	}
	return nil
}

// loadDomain reads simulation file and allocates domain
func loadDomain(v *viper.Viper, simfn string) (dom *fem.Domain, err error) {
	sim, err := inp.ReadSim(simfn)
	if err != nil {
		return
	}
	dom, err = fem.NewDomain(sim, v.GetBool("verbose"))
	if err != nil {
		return
	}
	if n := v.GetInt("threads"); n > 0 {
		dom.Nthreads = n
	}
	return
}

// newResidualCmd returns the residual command
func newResidualCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "residual <sim.yaml>",
		Short: "Assemble and print the residual of each equation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			dom, err := loadDomain(v, args[0])
			if err != nil {
				return
			}
			fb, _, err := dom.Assemble(context.Background(), false)
			if err != nil {
				return
			}
			var b bytes.Buffer
			io.Ff(&b, "%6s %8s %23s\n", "vertex", "variable", "residual")
			for _, vert := range dom.Msh.Verts {
				for k := 0; k < dom.Nvar; k++ {
					io.Ff(&b, "%6d %8s %23.15e\n", vert.Id, dom.Dict.Name(k), fb[dom.Eq(vert.Id, k)])
				}
			}
			_, err = cmd.OutOrStdout().Write(b.Bytes())
			return
		},
	}
}

// newCheckCmd returns the check command
func newCheckCmd(v *viper.Viper) *cobra.Command {
	var step, tol float64
	cmd := &cobra.Command{
		Use:   "check <sim.yaml>",
		Short: "Compare the assembled Jacobian with finite differences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			dom, err := loadDomain(v, args[0])
			if err != nil {
				return
			}
			maxErr, err := fem.CheckJacobian(dom, step, tol, v.GetBool("verbose"))
			var b bytes.Buffer
			io.Ff(&b, "equations = %d\nmax error = %g\ntolerance = %g\n", dom.Ny, maxErr, tol)
			if err == nil {
				io.Ff(&b, "OK\n")
			}
			if _, e := cmd.OutOrStdout().Write(b.Bytes()); e != nil && err == nil {
				err = e
			}
			return
		},
	}
	cmd.Flags().Float64Var(&step, "step", 1e-6, "finite differences step")
	cmd.Flags().Float64Var(&tol, "tol", 1e-6, "tolerance")
	return cmd
}

// newInfoCmd returns the info command
func newInfoCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "info <sim.yaml>",
		Short: "Print simulation data and the variable registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			dom, err := loadDomain(v, args[0])
			if err != nil {
				return
			}
			out := cmd.OutOrStdout()
			if err = dom.Sim.GetInfo(out); err != nil {
				return
			}
			var b bytes.Buffer
			io.Ff(&b, "nphases     = %d\n", dom.Dict.NumPhases())
			for k := 0; k < dom.Nvar; k++ {
				if idx, ok := dom.Dict.Lookup(k); ok {
					io.Ff(&b, "%-11s = variable %d → porous flow index %d\n", dom.Dict.Name(k), k, idx)
				} else {
					io.Ff(&b, "%-11s = variable %d → not coupled\n", dom.Dict.Name(k), k)
				}
			}
			io.Ff(&b, "equations   = %d\n", dom.Ny)
			io.Ff(&b, "threads     = %d\n", dom.Nthreads)
			_, err = out.Write(b.Bytes())
			return
		},
	}
}
