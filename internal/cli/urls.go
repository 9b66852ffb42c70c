package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/egrn/internal/files/filesystem"
	"github.com/vvka-141/egrn/internal/harvest"
	"github.com/vvka-141/egrn/pkg/egrn"
)

var urlsCmd = &cobra.Command{
	Use:   "urls <source_dir>",
	Short: "Collect Stage/URL values from proto_*.xml files into a CSV",
	Long: `Urls walks <source_dir> recursively for proto_*.xml documents and writes
the URL of every top-level Stage element to a CSV file (UTF-8 with BOM,
one URL per row), in the order the files and stages are found.

URL values are written with surrounding whitespace trimmed; a Stage whose
URL is empty or blank contributes no row.

The file name prefix can be changed with url_file_prefix in egrn.yaml or
$EGRN_URL_PREFIX.

Examples:
  egrn urls ./protocols --output urls.csv`,
	Args:              RequireSourceDir,
	RunE:              runURLs,
	ValidArgsFunction: completeDirectories(1),
}

type urlsFlagValues struct {
	output string
	json   bool
}

var urlsFlags urlsFlagValues

func init() {
	rootCmd.AddCommand(urlsCmd)

	urlsCmd.Flags().StringVarP(&urlsFlags.output, "output", "o", "",
		"CSV file to write (required)")
	urlsCmd.Flags().BoolVar(&urlsFlags.json, "json", false,
		"Print the harvest statistics as JSON on stdout")
	_ = urlsCmd.MarkFlagRequired("output")
	_ = urlsCmd.MarkFlagFilename("output", "csv")
}

func runURLs(cmd *cobra.Command, args []string) error {
	sourceDir := args[0]
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

	harvester := harvest.NewHarvester(filesystem.NewOSFileSystem(), logger).WithPrefix(settings.URLFilePrefix)
	report, err := harvester.HarvestDirectory(ctx, sourceDir)
	if err != nil {
		return err
	}

	if len(report.URLs) == 0 {
		renderHarvestReport(cmd.OutOrStdout(), report, "")
		return fmt.Errorf("no Stage URLs found in %d file(s): %w", report.TotalFiles, egrn.ErrNothingToDo)
	}

	if err := harvest.WriteCSVFile(urlsFlags.output, report.URLs); err != nil {
		return fmt.Errorf("failed to write %s: %w", urlsFlags.output, err)
	}
	logger.Verbose("Wrote %d URL(s) to %s", len(report.URLs), urlsFlags.output)

	if urlsFlags.json {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	renderHarvestReport(cmd.OutOrStdout(), report, urlsFlags.output)
	return nil
}
