package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/commentstyle/commentstyle/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// langPreset is the starter rule generated for a language.
type langPreset struct {
	include []string
	exclude []string
	line    string
	block   string
}

var langPresets = map[string]langPreset{
	"go":     {include: []string{"**/*.go"}, exclude: []string{"vendor/**"}, line: "//", block: "/*"},
	"c":      {include: []string{"**/*.c", "**/*.h"}, line: "//", block: "/*"},
	"rust":   {include: []string{"**/*.rs"}, exclude: []string{"target/**"}, line: "//", block: "/*"},
	"java":   {include: []string{"**/*.java"}, exclude: []string{"build/**"}, line: "//", block: "/*"},
	"js":     {include: []string{"**/*.js", "**/*.ts"}, exclude: []string{"node_modules/**", "dist/**"}, line: "//", block: "/*"},
	"python": {include: []string{"**/*.py"}, exclude: []string{"venv/**", ".venv/**"}, line: "#"},
	"shell":  {include: []string{"**/*.sh"}, line: "#"},
	"yaml":   {include: []string{"**/*.yaml", "**/*.yml"}, line: "#"},
}

func langNames() []string {
	names := make([]string, 0, len(langPresets))
	for name := range langPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newInitCmd() *cobra.Command {
	var (
		langs []string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a " + domain.DefaultConfigFile + " configuration file",
		Long:  "Create a " + domain.DefaultConfigFile + " with one rule per language.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, domain.DefaultConfigFile)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", domain.DefaultConfigFile)
				}
			}

			content, err := generateConfig(langs)
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", domain.DefaultConfigFile)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&langs, "lang", []string{"go"}, "Languages to generate rules for ("+strings.Join(langNames(), ", ")+")")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing "+domain.DefaultConfigFile)

	return cmd
}

func generateConfig(langs []string) ([]byte, error) {
	cfg := make(domain.Config, 0, len(langs))
	for _, lang := range langs {
		preset, ok := langPresets[lang]
		if !ok {
			return nil, fmt.Errorf("unknown language %q (valid: %s)", lang, strings.Join(langNames(), ", "))
		}

		var paths []domain.PathPattern
		for _, p := range preset.include {
			p := p
			paths = append(paths, domain.PathPattern{Include: &p})
		}
		for _, p := range preset.exclude {
			p := p
			paths = append(paths, domain.PathPattern{Exclude: &p})
		}

		markers := &domain.CommentMarkers{Line: &preset.line}
		if preset.block != "" {
			block := preset.block
			markers.Block = &block
		}

		cfg = append(cfg, domain.RuleConfig{Paths: &paths, CommentMarkers: markers})
	}

	var buf bytes.Buffer
	buf.WriteString("# commentstyle configuration\n")
	buf.WriteString("# Run `commentstyle codes` for the codes that can be listed under `allow`.\n\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	return buf.Bytes(), nil
}
