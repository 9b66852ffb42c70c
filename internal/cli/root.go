package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "egrn",
	Short: "Cadastral registry package tooling",
	Long: `egrn sorts registry response packages by cadastral number.

It reads the XML document inside each package, extracts the cadastral
number and lays the package out as identifier-named files:

  <target>/ZIP/<id>.zip   copy of the original archive
  <target>/XML/<id>.xml   the XML document
  <target>/PDF/<id>.pdf   the PDF document, if present

It can also rename single files in place and collect Stage/URL values
from proto_*.xml documents into a CSV.

Configuration is read from egrn.yaml in the working directory (or --config),
then overridden by EGRN_* environment variables (a .env file is honoured),
then by flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  14 - No input files found
  15 - Source or target directory is unusable
  16 - Batch finished but some files failed`,
	SilenceUsage: true,
}

type rootFlagValues struct {
	configPath string
	logFormat  string
}

var rootFlags rootFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for egrn")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "",
		"Path to a config file (default: ./egrn.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logFormat, "log-format", "",
		"Log output format: text|slog\n"+
			"Precedence: --log-format > $EGRN_LOG_FORMAT > egrn.yaml > text")
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", completeLogFormats)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
