package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lanternsec/secsweep/internal/adapters"
	"github.com/lanternsec/secsweep/internal/logging"
	reportpkg "github.com/lanternsec/secsweep/internal/report"
	"github.com/lanternsec/secsweep/internal/stats"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Short:   "Aggregate scan results into an HTML or Markdown report",
		Example: "secsweep report --results-dir ./scan-results --output-dir ./reports --format html",
		RunE:    runReport,
	}

	cmd.Flags().String("results-dir", "./scan-results", "Directory containing raw tool results")
	cmd.Flags().String("output-dir", "./reports", "Directory for the rendered report")
	cmd.Flags().String("format", "html", "Report format: html or markdown")
	cmd.Flags().Bool("pdf", false, "Also render the HTML report to PDF (requires Chrome)")

	_ = viper.BindPFlag("report.results-dir", cmd.Flags().Lookup("results-dir"))
	_ = viper.BindPFlag("report.output-dir", cmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("report.format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("report.pdf", cmd.Flags().Lookup("pdf"))
	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	log, err := logging.New(viper.GetBool("debug"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	resultsDir := viper.GetString("report.results-dir")
	outputDir := viper.GetString("report.output-dir")
	format := viper.GetString("report.format")

	collector := adapters.NewCollector(log)
	findings, err := collector.Collect(resultsDir)
	if err != nil {
		return fmt.Errorf("collect findings: %w", err)
	}
	log.Infof("collected %d finding(s) from %s", len(findings), resultsDir)

	st := stats.Compute(findings)

	if err := ensureDir(outputDir); err != nil {
		return err
	}
	gen := reportpkg.NewGenerator(log, outputDir)

	var path string
	switch format {
	case "html":
		charts, err := gen.RenderCharts(st)
		if err != nil {
			return fmt.Errorf("render charts: %w", err)
		}
		path, err = gen.HTML(findings, st, charts)
		if err != nil {
			return fmt.Errorf("render html report: %w", err)
		}
	case "markdown":
		path, err = gen.Markdown(findings, st)
		if err != nil {
			return fmt.Errorf("render markdown report: %w", err)
		}
	default:
		return fmt.Errorf("unsupported report format %q (expected html or markdown)", format)
	}
	fmt.Printf("Report written to %s\n", path)

	if viper.GetBool("report.pdf") && format == "html" {
		pdfPath, err := gen.PDF(cmd.Context(), path)
		if err != nil {
			log.Warnw("PDF generation failed", "error", err)
		} else {
			fmt.Printf("PDF written to %s\n", pdfPath)
		}
	}
	return nil
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
