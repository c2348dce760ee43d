package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/extrise/devdust/internal/output"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List supported project types",
	Long:  "Lists every known project type with its marker files and the artifact directories devdust may delete, including custom rules from the config file.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		output.PrintTypes(os.Stdout, cfg.Table())
		return nil
	},
}
