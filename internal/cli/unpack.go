package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/egrn/internal/archive"
	"github.com/vvka-141/egrn/internal/config"
	"github.com/vvka-141/egrn/internal/tui"
	"github.com/vvka-141/egrn/pkg/egrn"
)

var unpackCmd = &cobra.Command{
	Use:   "unpack <source_dir> <target_dir>",
	Short: "Sort registry archives into ZIP/XML/PDF by cadastral number",
	Long: `Unpack processes every .zip file directly inside <source_dir>.

For each archive:
1. The first XML member is read and its cadastral number extracted
   (territory plan extracts first, then common_data/cad_number)
2. All members are extracted into a private scratch directory
3. The archive is copied to <target_dir>/ZIP/<id>.zip and verified by SHA-256
4. The first XML member moves to XML/<id>.xml, the first PDF to PDF/<id>.pdf
5. The scratch directory is removed

Archives without an XML member or without a cadastral number are skipped.
A failing archive is reported and the batch continues.

Collision policies (when outputs for <id> already exist):
  suffix     use <id>_1, <id>_2, ... for the whole triad (default)
  overwrite  replace the existing files
  error      report the archive as failed

Examples:
  # Sort a download folder
  egrn unpack ./downloads ./sorted

  # Replace earlier results and print the report as JSON
  egrn unpack ./downloads ./sorted --collision overwrite --json`,
	Args:              RequireSourceAndTarget,
	RunE:              runUnpack,
	ValidArgsFunction: completeDirectories(2),
}

type unpackFlagValues struct {
	collision  string
	json       bool
	noProgress bool
}

var unpackFlags unpackFlagValues

func init() {
	rootCmd.AddCommand(unpackCmd)

	unpackCmd.Flags().StringVar(&unpackFlags.collision, "collision", "",
		"What to do when outputs for an identifier exist: suffix|overwrite|error\n"+
			"Precedence: --collision > $EGRN_COLLISION > egrn.yaml > suffix")
	unpackCmd.Flags().BoolVar(&unpackFlags.json, "json", false,
		"Print the batch report as JSON on stdout")
	unpackCmd.Flags().BoolVar(&unpackFlags.noProgress, "no-progress", false,
		"Disable the interactive progress bar")
	_ = unpackCmd.RegisterFlagCompletionFunc("collision", completeCollisionPolicies)
}

// resolveCollision applies the --collision flag on top of the settings.
func resolveCollision(cmd *cobra.Command, settings config.Settings) (egrn.CollisionPolicy, error) {
	if cmd.Flags().Changed("collision") {
		return egrn.ParseCollisionPolicy(unpackFlags.collision)
	}
	return settings.Collision, nil
}

func runUnpack(cmd *cobra.Command, args []string) error {
	sourceDir, targetDir := args[0], args[1]
	verbose := getVerboseFlag(cmd)

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	policy, err := resolveCollision(cmd, settings)
	if err != nil {
		return err
	}
	logger, err := newLogger(settings, verbose)
	if err != nil {
		return err
	}
	logger.Verbose("Collision policy: %s", policy)

	ctx, stop := withInterrupt(context.Background(), os.Stderr,
		"Received interrupt signal, stopping after current archive...")
	defer stop()

	opts := []archive.Option{
		archive.WithLogger(logger),
		archive.WithCollisionPolicy(policy),
		archive.WithTransfer(newTransfer(settings, logger)),
	}

	var bar *tui.ProgressBar
	if !unpackFlags.json && !unpackFlags.noProgress && !verbose && tui.IsInteractive() {
		opts = append(opts,
			archive.WithDiscovered(func(archives []string) {
				bar = tui.StartProgress(os.Stderr, "Unpacking "+sourceDir, len(archives), stop)
			}),
			archive.WithProgress(func(p egrn.Progress) {
				bar.Update(p)
			}),
		)
	}

	processor := archive.NewProcessor(opts...)
	report, runErr := processor.ProcessDirectory(ctx, sourceDir, targetDir)

	if bar != nil {
		if err := bar.Finish(); err != nil {
			logger.Verbose("progress display: %v", err)
		}
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	out := cmd.OutOrStdout()
	if unpackFlags.json {
		if err := writeJSON(out, report); err != nil {
			return err
		}
	} else {
		renderBatchReport(out, report)
	}

	if runErr != nil {
		return fmt.Errorf("unpack interrupted: %w", runErr)
	}
	if report.Errored > 0 {
		return fmt.Errorf("%d of %d archive(s) failed: %w", report.Errored, report.Total, egrn.ErrPartialBatch)
	}
	return nil
}
