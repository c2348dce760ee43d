package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/extrise/devdust/internal/output"
	"github.com/extrise/devdust/internal/scan"
)

var formatStr string

var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Find projects and report their artifact sizes",
	Long: `Scans directories for development projects and reports how much disk
space their build artifacts hold. Never deletes anything.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		opts, err := buildOptions(cmd, cfg)
		if err != nil {
			return err
		}

		paths, err := resolvePaths(args, cfg)
		if err != nil {
			return err
		}

		scanner := scan.NewScanner(cfg.Table(), opts)
		report, err := runScan(paths, scanner, opts)
		if err != nil {
			return err
		}

		switch formatStr {
		case "pretty":
			output.PrintPretty(os.Stdout, report)
		case "plain":
			output.PrintPlain(os.Stdout, report)
		case "table":
			output.PrintTable(os.Stdout, report)
		case "json":
			if err := output.PrintJSON(os.Stdout, report, opts); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format %q: use pretty, plain, table, or json", formatStr)
		}

		// JSON already carries the warnings.
		if formatStr != "json" {
			printWarnings(report.Warnings)
		}
		return nil
	},
}

func init() {
	registerScanFlags(scanCmd)
	scanCmd.Flags().StringVarP(&formatStr, "format", "f", "pretty", "Output format: pretty, plain, table, json")
}
