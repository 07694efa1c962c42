package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lanternsec/secsweep/internal/logging"
	"github.com/lanternsec/secsweep/internal/scanners"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scan",
		Short:   "Run a scan category against a target path",
		Example: "secsweep scan --type sast --target ./src --output ./scan-results",
		RunE:    runScan,
	}

	cmd.Flags().String("type", "", "Scan type: sast, dast, sca, iac, container, secret, all")
	cmd.Flags().String("target", ".", "Target path (or URL for dast)")
	cmd.Flags().String("output", "./scan-results", "Directory for raw tool results")
	cmd.Flags().String("config", "", "Optional config file")
	_ = cmd.MarkFlagRequired("type")

	_ = viper.BindPFlag("scan.type", cmd.Flags().Lookup("type"))
	_ = viper.BindPFlag("scan.target", cmd.Flags().Lookup("target"))
	_ = viper.BindPFlag("scan.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("scan.config", cmd.Flags().Lookup("config"))
	return cmd
}

func runScan(cmd *cobra.Command, _ []string) error {
	log, err := logging.New(viper.GetBool("debug"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// The config file is read so SECSWEEP_* env overrides and a future tool
	// config share one mechanism; no scan logic consults it yet.
	if cfg := viper.GetString("scan.config"); cfg != "" {
		viper.SetConfigFile(cfg)
		if err := viper.ReadInConfig(); err != nil {
			log.Warnw("could not read config file", "file", cfg, "error", err)
		} else {
			log.Debugf("loaded config %s", cfg)
		}
	}

	scanType := viper.GetString("scan.type")
	runner := scanners.NewRunner(log,
		viper.GetString("scan.target"),
		viper.GetString("scan.output"),
	)

	if !runner.Run(scanType) {
		return fmt.Errorf("unsupported scan type %q (expected sast, dast, sca, iac, container, secret or all)", scanType)
	}
	return nil
}
