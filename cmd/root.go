package cmd

import (
	"fmt"
	"os"

	"promptpack/pkg/logging"
	"promptpack/pkg/prompt"
	"promptpack/pkg/version"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// RootCmd is the base command; running it without a subcommand performs the pack.
var RootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	initConfig()

	cmd := &cobra.Command{
		Use:   "promptpack",
		Short: "promptpack bundles a project's text files into a single LLM prompt",
		Long: `promptpack walks the current directory, selects text files per
include/exclude/.gitignore rules, and concatenates their contents into a
single Markdown document bounded by a size budget, ready to paste into an LLM.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := buildLogger()
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve working directory: %w", err)
			}
			return prompt.Execute(prompt.Arguments{
				Root:        cwd,
				Includes:    viper.GetStringSlice(includeFlagName),
				Excludes:    viper.GetStringSlice(excludeFlagName),
				Output:      viper.GetString(outputFlagName),
				NoGitignore: viper.GetBool(noGitignoreFlagName),
				MaxSize:     viper.GetString(maxSizeFlagName),
			}, logger)
		},
	}

	configureRootFlags(cmd)
	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP(includeFlagName, "i", viper.GetStringSlice(includeFlagName), "include glob pattern (can be repeated)")
	cmd.Flags().StringArrayP(excludeFlagName, "e", viper.GetStringSlice(excludeFlagName), "exclude glob pattern (can be repeated)")
	cmd.Flags().StringP(outputFlagName, "o", viper.GetString(outputFlagName), "output file path (default: stdout)")
	cmd.Flags().BoolP(noGitignoreFlagName, "n", viper.GetBool(noGitignoreFlagName), "disable .gitignore processing")
	cmd.Flags().StringP(maxSizeFlagName, "m", viper.GetString(maxSizeFlagName), "maximum output size (e.g. 500kb, 1mb, 2.5gb)")
	cmd.PersistentFlags().BoolP(debugFlagName, "d", viper.GetBool(debugFlagName), "enable debug logging")

	bindFlagToConfig(cmd.Flags().Lookup(includeFlagName), includeFlagName)
	bindFlagToConfig(cmd.Flags().Lookup(excludeFlagName), excludeFlagName)
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputFlagName)
	bindFlagToConfig(cmd.Flags().Lookup(noGitignoreFlagName), noGitignoreFlagName)
	bindFlagToConfig(cmd.Flags().Lookup(maxSizeFlagName), maxSizeFlagName)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(debugFlagName), debugFlagName)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// buildLogger builds the command logger, honoring --debug.
func buildLogger() *zap.Logger {
	debug := viper.GetBool(debugFlagName)
	if err := logging.Setup(debug, "promptpack", version.Get().Version); err != nil {
		// logging.Setup falls back to a usable logger on failure.
		logging.Logger.Warn("Falling back to default logger", zap.Error(err))
	}
	return logging.Logger
}

// Execute runs the root command with the provided logger as the fallback.
func Execute(logger *zap.Logger) error {
	if logging.Logger == nil {
		logging.Logger = logger
	}
	return RootCmd.Execute()
}
