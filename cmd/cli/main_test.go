package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/clibind/host"
)

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"stamp", "-h"})

	require.NoError(t, err, "a help request should exit cleanly")
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "--create-new")
}

func TestRun_BindFailure(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, []string{"stamp"})
	require.Error(t, err)

	var exitErr *host.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "insufficient arguments")
}

func TestRun_StampsEveryLine(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inFile := filepath.Join(dir, "in.txt")
	outFile := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(inFile, []byte("one\ntwo\n"), 0600))

	argv := []string{"stamp", inFile, outFile, "--marker=!!", "--create-new"}
	err := run(context.Background(), &bytes.Buffer{}, argv)
	require.NoError(t, err)

	got, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Equal(t, "one!!\ntwo!!\n", string(got))
}

func TestRun_MarkerMayBePositional(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inFile := filepath.Join(dir, "in.txt")
	outFile := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(inFile, []byte("line\n"), 0600))

	argv := []string{"stamp", inFile, outFile, "**", "--create-new"}
	err := run(context.Background(), &bytes.Buffer{}, argv)
	require.NoError(t, err)

	got, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Equal(t, "line**\n", string(got))
}

func TestRun_RefusesMissingDestination(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inFile := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(inFile, []byte("line\n"), 0600))

	argv := []string{"stamp", inFile, filepath.Join(dir, "gone.txt")}
	err := run(context.Background(), &bytes.Buffer{}, argv)
	require.Error(t, err)

	var exitErr *host.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 1, exitErr.Code)
	require.Contains(t, exitErr.Message, "--create-new")
}
