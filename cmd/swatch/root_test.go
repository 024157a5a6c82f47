package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeSwatch(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestRootCommandShowsHelp(t *testing.T) {
	output, err := executeSwatch("--help")
	require.NoError(t, err)
	require.Contains(t, output, "swatch")
	require.Contains(t, output, "Available Commands")
	require.Contains(t, output, "contrast")
	require.Contains(t, output, "palette")
}

func TestRootCommandRejectsUnknownSubcommand(t *testing.T) {
	_, err := executeSwatch("nonsense")
	require.Error(t, err)
}
