package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
	}{
		{includeFlagName, "i"},
		{excludeFlagName, "e"},
		{outputFlagName, "o"},
		{noGitignoreFlagName, "n"},
		{maxSizeFlagName, "m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := RootCmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}

	debug := RootCmd.PersistentFlags().Lookup(debugFlagName)
	require.NotNil(t, debug)
	assert.Equal(t, "d", debug.Shorthand)
}

func TestRootCmd_FlagDefaults(t *testing.T) {
	assert.Equal(t, "[**/*]", RootCmd.Flags().Lookup(includeFlagName).DefValue)
	assert.Equal(t, "[]", RootCmd.Flags().Lookup(excludeFlagName).DefValue)
	assert.Equal(t, "", RootCmd.Flags().Lookup(outputFlagName).DefValue)
	assert.Equal(t, "false", RootCmd.Flags().Lookup(noGitignoreFlagName).DefValue)
	assert.Equal(t, defaultMaxSize, RootCmd.Flags().Lookup(maxSizeFlagName).DefValue)
}

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "include", includeFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "no-gitignore", noGitignoreFlagName)
	assert.Equal(t, "max-size", maxSizeFlagName)
	assert.Equal(t, "1mb", defaultMaxSize)
	assert.Equal(t, "PROMPTPACK", envPrefix)
}
