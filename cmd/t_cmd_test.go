// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns the output
func run(args ...string) (string, error) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func Test_cmd01(t *testing.T) {
	out, err := run("residual", "../examples/thm1d.yaml", "--config", "../examples/porflow.yaml")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+4*4) // header + nverts × nvar
	require.Contains(t, lines[0], "residual")
	require.Contains(t, out, "temp")
	require.Contains(t, out, "aux")
}

func Test_cmd02(t *testing.T) {
	out, err := run("check", "../examples/thm2d.yaml", "--threads", "2", "--config", "../examples/porflow.yaml")
	require.NoError(t, err)
	require.Contains(t, out, "OK")
	require.Contains(t, out, "equations = 45")

	// an impossible tolerance must fail
	_, err = run("check", "../examples/thm2d.yaml", "--tol", "-1", "--config", "../examples/porflow.yaml")
	require.Error(t, err)
}

func Test_cmd03(t *testing.T) {
	out, err := run("info", "../examples/thm2d.yaml", "--config", "../examples/porflow.yaml")
	require.NoError(t, err)
	require.Contains(t, out, "nphases     = 2")
	require.Contains(t, out, "temp        = variable 2 → porous flow index 0")
	require.Contains(t, out, "kernel      = mass-time-derivative @ pl")

	// options from the config file and flags
	require.Contains(t, out, "threads     = 2")
	out, err = run("info", "../examples/thm2d.yaml", "--threads", "5", "--config", "../examples/porflow.yaml")
	require.NoError(t, err)
	require.Contains(t, out, "threads     = 5")
}

func Test_cmd04(t *testing.T) {
	_, err := run("residual")
	require.Error(t, err)

	_, err = run("residual", "../examples/nonexistent.yaml", "--config", "../examples/porflow.yaml")
	require.Error(t, err)

	_, err = run("info", "../examples/thm1d.yaml", "--profile", "gpu", "--config", "../examples/porflow.yaml")
	require.Error(t, err)

	_, err = run("info", "../examples/thm1d.yaml", "--config", "../examples/nonexistent.yaml")
	require.Error(t, err)
}
