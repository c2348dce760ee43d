package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/extrise/devdust/internal/config"
	"github.com/extrise/devdust/internal/output"
	"github.com/extrise/devdust/internal/scan"
	"github.com/extrise/devdust/internal/sysinfo"
	"github.com/extrise/devdust/internal/ui"
)

// Flags shared by scan and clean.
var (
	followSymlinks bool
	sameFS         bool
	olderStr       string
	excludeList    []string
	minSizeStr     string
)

// registerScanFlags attaches the traversal flags to a command.
func registerScanFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&followSymlinks, "follow-symlinks", "L", false, "Follow symbolic links while scanning")
	cmd.Flags().BoolVarP(&sameFS, "same-filesystem", "s", false, "Stay on the same filesystem (do not cross mount points)")
	cmd.Flags().StringVarP(&olderStr, "older", "o", "", "Only include projects older than this (e.g. 30d, 2w, 6M)")
	cmd.Flags().StringSliceVar(&excludeList, "exclude", nil, "Directory names to skip while scanning")
	cmd.Flags().StringVar(&minSizeStr, "min-size", "", "Only include projects with at least this much artifact data (e.g. 50MB)")
}

// loadConfig loads --config when given, otherwise the default location
// (tolerating its absence).
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadOrDefault()
}

// buildOptions merges config defaults with command-line flags; flags
// that were set explicitly win.
func buildOptions(cmd *cobra.Command, cfg *config.Config) (*scan.Options, error) {
	opts := &scan.Options{
		FollowSymlinks: cfg.Scan.FollowSymlinks,
		SameFilesystem: cfg.Scan.SameFilesystem,
		Exclude:        cfg.Scan.Exclude,
	}

	if cfg.Scan.Older != "" {
		age, err := ui.ParseAge(cfg.Scan.Older)
		if err != nil {
			return nil, fmt.Errorf("config scan.older: %w", err)
		}
		opts.MinAge = age
	}

	if cmd.Flags().Changed("follow-symlinks") {
		opts.FollowSymlinks = followSymlinks
	}
	if cmd.Flags().Changed("same-filesystem") {
		opts.SameFilesystem = sameFS
	}
	if cmd.Flags().Changed("exclude") {
		opts.Exclude = excludeList
	}
	if olderStr != "" {
		age, err := ui.ParseAge(olderStr)
		if err != nil {
			return nil, fmt.Errorf("--older: %w", err)
		}
		opts.MinAge = age
	}

	return opts, nil
}

// resolvePaths validates the scan roots: positional args first, then
// config defaults, then the current directory.
func resolvePaths(args []string, cfg *config.Config) ([]string, error) {
	paths := args
	if len(paths) == 0 {
		paths = cfg.Scan.Paths
	}
	if len(paths) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		paths = []string{cwd}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("path does not exist: %s", p)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("path is not a directory: %s", p)
		}
	}

	return paths, nil
}

// runScan walks every path and builds the report: projects with
// artifacts, sized, sorted largest first.
func runScan(paths []string, scanner *scan.Scanner, opts *scan.Options) (*output.Report, error) {
	minSize := int64(0)
	if minSizeStr != "" {
		n, err := ui.ParseSize(minSizeStr)
		if err != nil {
			return nil, fmt.Errorf("--min-size: %w", err)
		}
		minSize = n
	}

	report := &output.Report{}

	for _, path := range paths {
		if !quiet {
			if space, err := sysinfo.Space(path); err == nil {
				fmt.Fprintf(os.Stderr, "Scanning %s (%s free of %s)\n", path,
					ui.FormatSize(int64(space.Free)), ui.FormatSize(int64(space.Total)))
			} else {
				fmt.Fprintf(os.Stderr, "Scanning %s\n", path)
			}
		}

		projects, err := scanner.Scan(path)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", path, err)
		}

		for _, p := range projects {
			size := p.ArtifactSize(opts)
			if size == 0 || size < minSize {
				continue
			}

			entry := output.Entry{Project: p, Size: size}
			if modified, err := p.LastModified(opts); err == nil {
				entry.Modified = modified
			}
			report.Add(entry)
		}
	}

	report.Warnings = scanner.Warnings()

	if n := scanner.SkippedMounts(); n > 0 && !quiet {
		fmt.Fprintf(os.Stderr, "Skipped %d mount points\n", n)
	}

	// Largest savings first.
	sort.SliceStable(report.Entries, func(i, j int) bool {
		return report.Entries[i].Size > report.Entries[j].Size
	})

	return report, nil
}

// printWarnings surfaces walk warnings on stderr.
func printWarnings(warnings []string) {
	if quiet {
		return
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
}
