package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/extrise/devdust/internal/clean"
	"github.com/extrise/devdust/internal/output"
	"github.com/extrise/devdust/internal/scan"
	"github.com/extrise/devdust/internal/sysinfo"
	"github.com/extrise/devdust/internal/tui"
	"github.com/extrise/devdust/internal/ui"
)

var (
	cleanAll bool
	dryRun   bool
	noInput  bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [paths...]",
	Short: "Find projects and delete their build artifacts",
	Long: `Scans directories for development projects and deletes their
build-artifact directories. Asks per project unless --all is given;
--dry-run reports what would be deleted without touching anything.`,
	Args: cobra.ArbitraryArgs,
	RunE: runClean,
}

func init() {
	registerScanFlags(cleanCmd)
	registerCleanFlags(cleanCmd)
}

// registerCleanFlags attaches the deletion flags. Shared with the root
// command, which aliases clean.
func registerCleanFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&cleanAll, "all", "a", false, "Clean every project without asking")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would be deleted without deleting")
	cmd.Flags().Bool("no-input", false, "Never prompt; implies nothing is cleaned unless --all or --dry-run")
}

func runClean(cmd *cobra.Command, args []string) error {
	noInput, _ = cmd.Flags().GetBool("no-input")

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
	printWarnings(report.Warnings)

	if len(report.Entries) == 0 {
		if !quiet {
			output.PrintPlain(os.Stdout, report)
		}
		return nil
	}

	if noInput && !cleanAll && !dryRun {
		if !quiet {
			output.PrintPlain(os.Stdout, report)
			fmt.Println("\nNothing cleaned; pass --all to delete without prompting")
		}
		return nil
	}

	var freed int64
	var cleaned int
	var errs []clean.PathError

	interactive := !cleanAll && !dryRun
	if interactive && isatty.IsTerminal(os.Stdout.Fd()) {
		freed, cleaned, errs, err = runInteractive(report, opts)
		if err != nil {
			return err
		}
	} else {
		freed, cleaned, errs, err = runUnattended(report, opts, interactive)
		if err != nil {
			return err
		}
	}

	printCleanSummary(paths[0], freed, cleaned, errs)
	return nil
}

// runInteractive drives the bubbletea session and returns its totals.
func runInteractive(report *output.Report, opts *scan.Options) (int64, int, []clean.PathError, error) {
	model := tui.NewModel(report.Entries, opts, dryRun)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return 0, 0, nil, fmt.Errorf("running interactive session: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok {
		return 0, 0, nil, fmt.Errorf("unexpected model type from interactive session")
	}
	if m.Aborted() {
		return 0, 0, nil, nil
	}
	return m.Freed(), m.Cleaned(), m.Errors(), nil
}

// runUnattended is the plain flow: stdin prompts when interactive,
// otherwise every project is cleaned (--all) or measured (--dry-run).
func runUnattended(report *output.Report, opts *scan.Options, prompt bool) (int64, int, []clean.PathError, error) {
	var freed int64
	var cleaned int
	var errs []clean.PathError

	allRemaining := !prompt
	reader := bufio.NewReader(os.Stdin)

	for i := range report.Entries {
		e := &report.Entries[i]

		if !quiet {
			output.PrintEntry(os.Stdout, *e)
		}

		doClean := allRemaining
		if !doClean {
			answer, err := promptClean(reader, e.Project.Name())
			if err != nil {
				return freed, cleaned, errs, err
			}
			switch answer {
			case answerYes:
				doClean = true
			case answerAll:
				doClean = true
				allRemaining = true
			case answerQuit:
				return freed, cleaned, errs, nil
			}
		}
		if !doClean {
			continue
		}

		res := clean.Project(&e.Project, opts, dryRun)
		freed += res.Freed
		errs = append(errs, res.Errors...)
		if len(res.Errors) == 0 || res.Partial() {
			cleaned++
		}

		if !quiet {
			if dryRun {
				fmt.Printf("  would delete %s\n", ui.FormatSize(res.Freed))
			} else {
				fmt.Printf("  cleaned %s\n", ui.FormatSize(res.Freed))
			}
		}
		for _, pe := range res.Errors {
			fmt.Fprintf(os.Stderr, "  failed to clean %s\n", pe.Error())
		}
	}

	return freed, cleaned, errs, nil
}

type answer int

const (
	answerNo answer = iota
	answerYes
	answerAll
	answerQuit
)

// promptClean asks the y/N/a/q question on stdin. Anything
// unrecognized counts as no.
func promptClean(reader *bufio.Reader, name string) (answer, error) {
	fmt.Printf("Clean %s? [y/N/a/q]: ", name)

	line, err := reader.ReadString('\n')
	if err != nil {
		return answerQuit, nil // EOF: stop asking, keep what we have
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return answerYes, nil
	case "a", "all":
		return answerAll, nil
	case "q", "quit":
		return answerQuit, nil
	default:
		return answerNo, nil
	}
}

// printCleanSummary reports totals and the volume's free space.
func printCleanSummary(path string, freed int64, cleaned int, errs []clean.PathError) {
	if quiet {
		return
	}

	if dryRun {
		fmt.Printf("\nDry run: %d projects, %s would be freed\n", cleaned, ui.FormatSize(freed))
	} else {
		fmt.Printf("\n%d projects cleaned, %s freed\n", cleaned, ui.FormatSize(freed))
	}
	if len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "%d directories could not be removed\n", len(errs))
	}

	if space, err := sysinfo.Space(path); err == nil {
		fmt.Printf("Volume %s: %s free of %s\n", space.Path,
			ui.FormatSize(int64(space.Free)), ui.FormatSize(int64(space.Total)))
	}
}
