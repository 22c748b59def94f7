package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mattgallagher/cwlwhitespace/pkg/checker"
	"github.com/mattgallagher/cwlwhitespace/pkg/config"
	"github.com/mattgallagher/cwlwhitespace/pkg/enum"
	"github.com/mattgallagher/cwlwhitespace/pkg/store"
	"github.com/mattgallagher/cwlwhitespace/pkg/types"
)

var (
	checkConfigPath    string
	checkIndent        string
	checkWidth         int
	checkExtensions    []string
	checkOutputPath    string
	checkOutputFormat  string
	checkColor         string
	checkGit           bool
	checkMaxFileSize   int64
	checkIncludeHidden bool
	checkIncremental   bool
)

var checkCmd = &cobra.Command{
	Use:   "check <target>...",
	Short: "Check files or directories for whitespace violations",
	Long:  "Check files, directories, or a git HEAD tree for whitespace style violations",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkConfigPath, "config", "", "Path to config file (default: nearest .cwlwhitespace.yaml)")
	checkCmd.Flags().StringVar(&checkIndent, "indent", "", "Indentation style: tabs or spaces (overrides config)")
	checkCmd.Flags().IntVar(&checkWidth, "width", 4, "Spaces per indentation level (with --indent spaces)")
	checkCmd.Flags().StringSliceVar(&checkExtensions, "ext", []string{".swift"}, "File extensions to check")
	checkCmd.Flags().StringVar(&checkOutputPath, "output", "", "Results database path (default: in-memory)")
	checkCmd.Flags().StringVar(&checkOutputFormat, "format", "human", "Output format: human, json, sarif")
	checkCmd.Flags().StringVar(&checkColor, "color", "auto", "Color output: auto, always, never")
	checkCmd.Flags().BoolVar(&checkGit, "git", false, "Check the git HEAD tree instead of the working copy")
	checkCmd.Flags().Int64Var(&checkMaxFileSize, "max-file-size", 10*1024*1024, "Maximum file size to check (bytes)")
	checkCmd.Flags().BoolVar(&checkIncludeHidden, "include-hidden", false, "Include hidden files and directories")
	checkCmd.Flags().BoolVar(&checkIncremental, "incremental", false, "Skip files already recorded in the results database (requires --output)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkIncremental && checkOutputPath == "" {
		return fmt.Errorf("--incremental requires --output")
	}

	s, err := createStore(checkOutputPath)
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}
	defer s.Close()

	ctx := context.Background()
	summary := &checker.Summary{}

	for _, target := range args {
		info, err := os.Stat(target)
		if err != nil {
			return fmt.Errorf("target does not exist: %s", target)
		}

		cfg, err := resolveConfig(target, checkConfigPath, checkIndent, checkWidth)
		if err != nil {
			return err
		}

		// A single file bypasses enumeration.
		if !info.IsDir() {
			if err := checkSingleFile(target, cfg, s, summary); err != nil {
				return err
			}
			continue
		}

		c := checker.New(cfg, s)
		c.Incremental = checkIncremental
		part, err := c.Run(ctx, createEnumerator(target, cfg, checkGit))
		if err != nil {
			return fmt.Errorf("checking: %w", err)
		}
		summary.Files += part.Files
		summary.Flagged += part.Flagged
		summary.Findings += part.Findings
	}

	findings, err := s.GetFindings()
	if err != nil {
		return fmt.Errorf("retrieving findings: %w", err)
	}

	if err := outputResults(cmd, findings); err != nil {
		return err
	}

	if checkOutputFormat == "human" && !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Checked %d files: %d violations in %d files\n",
			summary.Files, summary.Findings, summary.Flagged)
	}

	if summary.Findings > 0 {
		rootCmd.SilenceErrors = true
		return fmt.Errorf("found %d violations", summary.Findings)
	}
	return nil
}

func checkSingleFile(path string, cfg *config.Config, s store.Store, summary *checker.Summary) error {
	if checkIncremental {
		seen, err := s.FileExists(path)
		if err != nil {
			return fmt.Errorf("querying store: %w", err)
		}
		if seen {
			return nil
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	findings := checker.CheckContent(path, content, cfg.StyleFor(path))
	for _, f := range findings {
		if err := s.AddFinding(f); err != nil {
			return fmt.Errorf("storing finding: %w", err)
		}
	}
	if err := s.AddFile(path, len(findings)); err != nil {
		return fmt.Errorf("recording file: %w", err)
	}

	summary.Files++
	if len(findings) > 0 {
		summary.Flagged++
		summary.Findings += len(findings)
	}
	return nil
}

// resolveConfig loads the project configuration, preferring an explicit
// --config path, then the nearest .cwlwhitespace.yaml, then defaults. A
// non-empty --indent flag overrides the configured default style.
func resolveConfig(target, configPath, indent string, width int) (*config.Config, error) {
	var cfg *config.Config
	var err error

	switch {
	case configPath != "":
		cfg, err = config.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
	default:
		dir := target
		if info, statErr := os.Stat(target); statErr == nil && !info.IsDir() {
			dir = filepath.Dir(target)
		}
		found, findErr := config.Find(dir)
		if findErr != nil {
			return nil, findErr
		}
		if found != "" {
			cfg, err = config.LoadFile(found)
			if err != nil {
				return nil, err
			}
		} else {
			cfg = config.Default()
		}
	}

	if indent != "" {
		style, err := types.ParseIndentStyle(indent, width)
		if err != nil {
			return nil, err
		}
		cfg.Style = style
	}
	return cfg, nil
}

func createStore(path string) (store.Store, error) {
	if path == "" {
		return store.NewMemory(), nil
	}
	return store.New(store.Config{Path: path})
}

func createEnumerator(target string, cfg *config.Config, useGit bool) enum.Enumerator {
	enumConfig := enum.Config{
		Root:          target,
		Extensions:    checkExtensions,
		IncludeHidden: checkIncludeHidden,
		MaxFileSize:   checkMaxFileSize,
		Exclude:       cfg.Excluded,
	}

	if useGit {
		return enum.NewGitEnumerator(enumConfig)
	}
	return enum.NewFilesystemEnumerator(enumConfig)
}

func outputResults(cmd *cobra.Command, findings []*types.Finding) error {
	switch checkOutputFormat {
	case "human":
		configureColor(checkColor)
		outputFindingsHuman(cmd.OutOrStdout(), findings)
		return nil
	case "json":
		return outputFindingsJSON(cmd, findings)
	case "sarif":
		return outputFindingsSARIF(cmd, findings)
	default:
		return fmt.Errorf("unknown output format: %s", checkOutputFormat)
	}
}
