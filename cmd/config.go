package cmd

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	includeFlagName     = "include"
	excludeFlagName     = "exclude"
	outputFlagName      = "output"
	noGitignoreFlagName = "no-gitignore"
	maxSizeFlagName     = "max-size"
	debugFlagName       = "debug"

	defaultMaxSize = "1mb"

	envPrefix = "PROMPTPACK"
)

// initConfig wires viper's env handling and defaults. Called from newRootCmd
// before flags are defined, since flag defaults are read from viper.
func initConfig() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	viper.SetDefault(includeFlagName, []string{"**/*"})
	viper.SetDefault(excludeFlagName, []string{})
	viper.SetDefault(outputFlagName, "")
	viper.SetDefault(noGitignoreFlagName, false)
	viper.SetDefault(maxSizeFlagName, defaultMaxSize)
	viper.SetDefault(debugFlagName, false)
}
