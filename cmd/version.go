package cmd

import (
	"fmt"

	"promptpack/pkg/version"

	"github.com/spf13/cobra"
)

// newVersionCmd builds the version command, which displays the current
// version of the promptpack binary. The --short flag prints only the number.
func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version of promptpack",
		Long:  `Display the current version information of the promptpack CLI tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			short, err := cmd.Flags().GetBool("short")
			if err != nil {
				return fmt.Errorf("error reading flags: %w", err)
			}

			v := version.Get()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), v.Version)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), v.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolP("short", "s", false, "Print the version number only")
	return cmd
}

func init() {
	RootCmd.AddCommand(newVersionCmd())
}
