package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../../script/testdata/ethanol.yaml"

func TestRun_SummaryAndMetrics(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-metrics", fixture}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	s := out.String()
	assert.Contains(t, s, "LAYER")
	assert.Regexp(t, `ethanol\s+2\s+0\s+2\s+\*`, s)
	assert.Contains(t, s, `molkit_edits_total{kind="add_atom",result="ok"} 3`)
	assert.Contains(t, s, "molkit_undo_depth")
}

func TestRun_WithConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "molkit.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log:\n  level: error\nmetrics:\n  namespace: chem\n"), 0o644))

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-config", cfg, "-metrics", fixture}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "chem_atoms 2")
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: bad\nsteps:\n  - {op: add_atom, element: 6}\n  - {op: expect, want: {atoms: 5}}\n"), 0o644))

	var out, errOut bytes.Buffer
	assert.Equal(t, 1, run(context.Background(), []string{bad}, &out, &errOut))
	assert.Regexp(t, `bad\s+1\s+0\s+1`, out.String(), "rows are printed for the failed run")

	assert.Equal(t, 2, run(context.Background(), nil, &out, &errOut))
	assert.Equal(t, 1, run(context.Background(), []string{filepath.Join(dir, "absent.yaml")}, &out, &errOut))
	assert.Equal(t, 1, run(context.Background(), []string{"-config", filepath.Join(dir, "absent.yaml"), bad}, &out, &errOut))
}

func TestRun_ListOps(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{"-ops"}, &out, &errOut))
	assert.Contains(t, out.String(), "add_bond\n")
}
