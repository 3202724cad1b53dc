package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "vibecheck version 1.0.0\n", out.String())
}

func TestSubcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd().Commands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"migrate", "notify", "serve", "version"}, names)
}

func TestMissingConfigFile(t *testing.T) {
	cmd := rootCmd()
	cmd.SetArgs([]string{"version", "--config", "does-not-exist.yaml"})
	assert.Error(t, cmd.Execute())
}
