package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the phonectl command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phonectl",
		Short: "Parse, format, compare and encode AAA-EEE-NNNN phone numbers",
		Long: `phonectl exercises the phone_number column type from the command line.

Every command reads and writes the canonical AAA-EEE-NNNN text form, the same
form the database stores.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newParseCmd(),
		newFormatCmd(),
		newRandomCmd(),
		newCompareCmd(),
		newHashCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
	)
	return rootCmd
}

// Execute runs the root command with version information attached.
func Execute(version, commit string) error {
	rootCmd := NewRootCmd()
	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", version, commit)
	return rootCmd.Execute()
}
