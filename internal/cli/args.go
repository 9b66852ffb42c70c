package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireSourceAndTarget validates that exactly <source_dir> and <target_dir> are provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireSourceAndTarget(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf(`missing required argument: <source_dir> <target_dir>

Usage: %s

Example:
  %s ./downloads ./sorted`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts 2 arg(s), received %d", len(args))
	}
	return nil
}

// RequireSourceDir validates that exactly one <source_dir> argument is provided.
func RequireSourceDir(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <source_dir>

Usage: %s

Example:
  %s ./protocols --output urls.csv`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireFiles validates that at least one file argument is provided.
func RequireFiles(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <file>...

Usage: %s

Example:
  %s response.zip extract.xml`, cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}
