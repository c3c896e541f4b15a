/*
This file is part of vlasiator.

Copyright 2010, 2011, 2012 Finnish Meteorological Institute

vlasiator is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License version 3
as published by the Free Software Foundation.

vlasiator is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"fmt"
	"os"

	"github.com/Talgat-qypshaq/vlasiator"
	"github.com/Talgat-qypshaq/vlasiator/internal/demogrid"
	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/floats"
)

// cfg wraps a viper instance plus the root/sub commands, the same shape as
// the teacher's inmaputil.Cfg struct embedding *viper.Viper alongside
// named *cobra.Command fields.
type cfg struct {
	*viper.Viper

	configFile string

	root       *cobra.Command
	runCmd     *cobra.Command
	versionCmd *cobra.Command
}

var version = "dev"

func newCfg() *cfg {
	c := &cfg{Viper: viper.New()}

	c.root = &cobra.Command{
		Use:   "vlasiator",
		Short: "Constrained-transport MHD field solver demo driver",
	}
	pf := c.root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "path to a TOML configuration file")

	c.runCmd = &cobra.Command{
		Use:   "run",
		Short: "Initialize a demo grid and advance it for a number of steps",
		RunE:  c.runRunCmd,
	}
	rf := c.runCmd.Flags()
	rf.Int("nx", 8, "grid cells in x")
	rf.Int("ny", 8, "grid cells in y")
	rf.Int("nz", 8, "grid cells in z")
	rf.Int("steps", 10, "number of time steps")
	rf.Float64("dt", 0.1, "time-step size")
	rf.String("field", "BxVol", "name of a cell parameter to summarize after the run")
	bindPflags(c.Viper, rf)

	c.versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version and exit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	c.root.AddCommand(c.runCmd, c.versionCmd)
	return c
}

func bindPflags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		v.BindPFlag(f.Name, f)
	})
}

func (c *cfg) loadConfig() vlasiator.Config {
	if c.configFile == "" {
		return vlasiator.DefaultConfig()
	}
	solverCfg, err := vlasiator.LoadConfig(c.configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return solverCfg
}

func (c *cfg) runRunCmd(cmd *cobra.Command, args []string) error {
	solverCfg := c.loadConfig()

	nx := c.Viper.GetInt("nx")
	ny := c.Viper.GetInt("ny")
	nz := c.Viper.GetInt("nz")
	steps := c.Viper.GetInt("steps")
	dt := c.Viper.GetFloat64("dt")
	field := c.Viper.GetString("field")

	g := demogrid.New(nx, ny, nz, 1, 1, 1)
	for _, id := range g.AllCells() {
		g.Params(id)[vlasiator.BX] = 1
	}

	solver := vlasiator.NewContext(g, demogrid.NoopExchange{}, solverCfg, vlasiator.BoundaryFuncs{})
	if err := solver.Initialize(true); err != nil {
		return err
	}
	for s := 0; s < steps; s++ {
		if err := solver.PropagateFields(dt); err != nil {
			return err
		}
	}
	solver.Finalize()
	fmt.Printf("completed %d steps on a %dx%dx%d grid\n", steps, nx, ny, nz)

	if values, ok := g.Field(field); ok {
		fmt.Printf("%s: min=%g max=%g\n", field, floats.Min(values), floats.Max(values))
	} else {
		fmt.Fprintf(os.Stderr, "unknown field %q\n", field)
	}
	return nil
}

func execute() {
	c := newCfg()
	if err := c.root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
