package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/mattgallagher/cwlwhitespace/pkg/checker"
	"github.com/mattgallagher/cwlwhitespace/pkg/config"
	"github.com/mattgallagher/cwlwhitespace/pkg/enum"
)

var (
	fixConfigPath  string
	fixIndent      string
	fixWidth       int
	fixExtensions  []string
	fixDryRun      bool
	fixMaxFileSize int64
)

var fixCmd = &cobra.Command{
	Use:   "fix <target>...",
	Short: "Rewrite files to fix whitespace violations",
	Long: `Rewrite files or directories in place, correcting whitespace violations.
Each violating run is replaced by the expected whitespace; everything
else is left byte-for-byte intact.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().StringVar(&fixConfigPath, "config", "", "Path to config file (default: nearest .cwlwhitespace.yaml)")
	fixCmd.Flags().StringVar(&fixIndent, "indent", "", "Indentation style: tabs or spaces (overrides config)")
	fixCmd.Flags().IntVar(&fixWidth, "width", 4, "Spaces per indentation level (with --indent spaces)")
	fixCmd.Flags().StringSliceVar(&fixExtensions, "ext", []string{".swift"}, "File extensions to fix")
	fixCmd.Flags().BoolVar(&fixDryRun, "dry-run", false, "Report files that would change without writing")
	fixCmd.Flags().Int64Var(&fixMaxFileSize, "max-file-size", 10*1024*1024, "Maximum file size to fix (bytes)")
}

func runFix(cmd *cobra.Command, args []string) error {
	var mu sync.Mutex
	fixed := 0
	total := 0

	for _, target := range args {
		info, err := os.Stat(target)
		if err != nil {
			return fmt.Errorf("target does not exist: %s", target)
		}

		cfg, err := resolveConfig(target, fixConfigPath, fixIndent, fixWidth)
		if err != nil {
			return err
		}

		if !info.IsDir() {
			changed, err := fixFile(target, target, cfg)
			if err != nil {
				return err
			}
			reportFixed(cmd, target, changed)
			total++
			if changed {
				fixed++
			}
			continue
		}

		enumerator := enum.NewFilesystemEnumerator(enum.Config{
			Root:        target,
			Extensions:  fixExtensions,
			MaxFileSize: fixMaxFileSize,
			Exclude:     cfg.Excluded,
		})

		err = enumerator.Enumerate(context.Background(), func(content []byte, path string) error {
			if cfg.Excluded(path) {
				return nil
			}

			full := filepath.Join(target, path)
			changed, err := fixFile(full, path, cfg)
			if err != nil {
				return err
			}

			// Callbacks run from parallel readers; the lock also serializes
			// writes to the command's output stream.
			mu.Lock()
			total++
			if changed {
				fixed++
			}
			reportFixed(cmd, path, changed)
			mu.Unlock()
			return nil
		})
		if err != nil {
			return fmt.Errorf("fixing: %w", err)
		}
	}

	if !quiet {
		if fixDryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "Checked %d files: %d would change\n", total, fixed)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Checked %d files: %d fixed\n", total, fixed)
		}
	}
	return nil
}

// fixFile corrects one file in place. displayPath is what progress
// output shows; path is where the content lives.
func fixFile(path, displayPath string, cfg *config.Config) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", displayPath, err)
	}

	fixed, changed := checker.FixContent(content, cfg.StyleFor(displayPath))
	if !changed || fixDryRun {
		return changed, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", displayPath, err)
	}
	if err := os.WriteFile(path, fixed, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("writing %s: %w", displayPath, err)
	}
	return true, nil
}

func reportFixed(cmd *cobra.Command, path string, changed bool) {
	if !changed || quiet {
		return
	}
	if fixDryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "would fix %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "fixed %s\n", path)
	}
}
