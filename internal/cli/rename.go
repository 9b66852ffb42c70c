package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/egrn/internal/rename"
	"github.com/vvka-141/egrn/pkg/egrn"
)

var renameCmd = &cobra.Command{
	Use:   "rename <file>...",
	Short: "Rename XML or ZIP files after their cadastral number",
	Long: `Rename renames each file in place to <id>.xml or <id>.zip, where <id> is
the cadastral number found in the XML document (for a ZIP, its first XML
member). When the name is taken, <id>_1, <id>_2, ... are tried.

Files without a cadastral number, and files that are neither .xml nor .zip,
are left untouched.

Examples:
  egrn rename response.zip
  egrn rename ./incoming/*.xml`,
	Args:              RequireFiles,
	RunE:              runRename,
	ValidArgsFunction: completeRenameFiles,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(settings, verbose)
	if err != nil {
		return err
	}

	ctx, stop := withInterrupt(context.Background(), os.Stderr,
		"Received interrupt signal, stopping...")
	defer stop()

	renamer := rename.NewRenamer(
		rename.WithLogger(logger),
		rename.WithTransfer(newTransfer(settings, logger)),
	)
	results := renamer.RenameAll(ctx, args)
	renderRenameResults(cmd.OutOrStdout(), results)

	failed := 0
	for _, r := range results {
		if r.Status == egrn.RenameFailed {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed: %w", failed, len(results), egrn.ErrPartialBatch)
	}
	return nil
}
