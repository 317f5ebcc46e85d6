package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/probsift/probsift/internal/config"
	"github.com/probsift/probsift/internal/filter"
	"github.com/probsift/probsift/internal/output"
	"github.com/probsift/probsift/internal/problem"
)

var (
	filterInclude     []string
	filterExclude     []string
	filterExpr        string
	filterIgnoreCase  bool
	filterMinSeverity string
	filterCount       bool
	filterJSON        bool
	filterWide        bool
	filterConfigPath  string
)

func init() {
	f := rootCmd.Flags()
	f.StringArrayVarP(&filterInclude, "include", "i", nil, "Term that must be present (repeatable)")
	f.StringArrayVarP(&filterExclude, "exclude", "e", nil, "Term that must be absent (repeatable)")
	f.StringVarP(&filterExpr, "filter", "f", "", "Filter expression (e.g. 'deprecated,-API,severity>=warning')")
	f.BoolVar(&filterIgnoreCase, "ignore-case", false, "Case-insensitive matching")
	f.StringVarP(&filterMinSeverity, "min-severity", "s", "", "Lowest severity to keep (hint|info|warning|error)")
	f.BoolVarP(&filterCount, "count", "c", false, "Print only the number of surviving problems")
	f.BoolVarP(&filterJSON, "json", "j", false, "Output in JSON format")
	f.BoolVarP(&filterWide, "wide", "w", false, "Display full resources and messages without truncation")
	f.StringVar(&filterConfigPath, "config", "", "Path to TOML defaults file")
	rootCmd.MarkFlagsMutuallyExclusive("count", "json")
}

func runFilter(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, maxWidth, err := buildFilterConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	problems, err := problem.Load(data)
	if err != nil {
		return err
	}

	list := &output.ProblemList{
		Problems:  filter.Apply(problems, cfg),
		Wide:      filterWide,
		TermWidth: displayWidth(maxWidth),
	}

	format := output.FormatText
	switch {
	case filterJSON:
		format = output.FormatJSON
	case filterCount:
		format = output.FormatCount
	}

	result, err := output.FormatOutput(list, format)
	if err != nil {
		return err
	}
	if result == "" {
		return nil // Empty result is not an error
	}
	fmt.Println(result)

	return nil
}

// buildFilterConfig merges TOML defaults, the -f expression, and the
// repeatable flags into one filter config. Terms accumulate across sources;
// for ignore-case and min-severity the later source wins (file, expression,
// then flags).
func buildFilterConfig() (filter.Config, int, error) {
	path, explicit := config.DefaultPath, false
	if filterConfigPath != "" {
		path, explicit = filterConfigPath, true
	}
	file, err := config.Load(path, explicit)
	if err != nil {
		return filter.Config{}, 0, err
	}

	cfg := filter.Config{
		IncludeTerms: file.Include,
		ExcludeTerms: file.Exclude,
		IgnoreCase:   file.IgnoreCase,
	}

	if filterExpr != "" {
		parsed, err := filter.Parse(filterExpr)
		if err != nil {
			return filter.Config{}, 0, err
		}
		cfg.IncludeTerms = append(cfg.IncludeTerms, parsed.IncludeTerms...)
		cfg.ExcludeTerms = append(cfg.ExcludeTerms, parsed.ExcludeTerms...)
		cfg.MinSeverity = parsed.MinSeverity
	}

	cfg.IncludeTerms = append(cfg.IncludeTerms, filterInclude...)
	cfg.ExcludeTerms = append(cfg.ExcludeTerms, filterExclude...)
	if filterIgnoreCase {
		cfg.IgnoreCase = true
	}

	if filterMinSeverity != "" {
		sev := problem.ParseSeverity(filterMinSeverity)
		if sev == problem.SeverityUnknown {
			return filter.Config{}, 0, fmt.Errorf("unknown severity %q", filterMinSeverity)
		}
		cfg.MinSeverity = sev
	}

	return cfg, file.Table.MaxWidth, nil
}

// displayWidth returns the width used to size the message column: the
// configured max-width when set, else the detected terminal width, else
// zero (no truncation when piping).
func displayWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w
	}
	return 0
}
