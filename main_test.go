package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udawtr/mwrt-go/absmodel"
)

func Test_run(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tb.csv")
	err := run("rose19", 90, []float64{22.235}, nil, false, 10, "", "", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "tropical,rose19,90,22.235,"))
	assert.True(t, strings.HasSuffix(lines[1], ",11,false"))
}

func Test_run_Errors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "tb.csv")

	err := run("rose99", 90, nil, nil, false, 0, "", "", out)
	assert.ErrorIs(t, err, absmodel.ErrUnknownModel)

	err = run("rose19", 90, nil, []string{filepath.Join(dir, "missing.yaml")}, false, 0, "", "", out)
	assert.Error(t, err)

	err = run("rose19", 90, nil, nil, false, 0, filepath.Join(dir, "missing.yaml"), "", out)
	assert.Error(t, err)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func Test_run_Ice(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "arctic.csv")
	require.NoError(t, os.WriteFile(profile, []byte("z,p,t,rh\n0,1000,258,90\n1,880,252,90\n3,680,240,90\n"), 0o644))

	tb := func(ice bool, name string) string {
		out := filepath.Join(dir, name)
		require.NoError(t, run("rose19", 90, []float64{22.235}, []string{profile}, ice, 0, "", "", out))
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[1], "arctic,rose19,90,22.235,"))
		return lines[1]
	}
	assert.NotEqual(t, tb(false, "water.csv"), tb(true, "ice.csv"))
}
