package cli

import (
	"encoding/json"
	"fmt"

	"github.com/commentstyle/commentstyle/internal/adapters/outbound/config"
	"github.com/commentstyle/commentstyle/internal/adapters/outbound/gitinfo"
	"github.com/commentstyle/commentstyle/internal/adapters/outbound/scanner"
	"github.com/commentstyle/commentstyle/internal/adapters/outbound/tui"
	"github.com/commentstyle/commentstyle/internal/application"
	"github.com/commentstyle/commentstyle/internal/domain"
	"github.com/spf13/cobra"
)

// checkFlags are shared by check and lint.
type checkFlags struct {
	verbose    bool
	jsonOutput bool
	summary    bool
	root       string
	jobs       int
	tracked    bool
}

func (f *checkFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print each file as it is checked")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&f.summary, "summary", false, "Print a per-file summary table after the violations")
	cmd.Flags().StringVar(&f.root, "root", ".", "Directory that path patterns are resolved against")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 1, "Number of files to check concurrently")
	cmd.Flags().BoolVar(&f.tracked, "tracked", false, "Only check files tracked by git")
}

func (f *checkFlags) options(cmd *cobra.Command) application.CheckOptions {
	opts := application.CheckOptions{
		Root:    f.root,
		Tracked: f.tracked,
		Jobs:    f.jobs,
	}
	if !f.jsonOutput {
		opts.Reporter = tui.NewTextReporter(cmd.OutOrStdout(), cmd.ErrOrStderr())
		opts.Progress = tui.NewPathLogger(cmd.OutOrStdout(), f.verbose)
	}
	return opts
}

func newCheckService() *application.CheckService {
	return application.NewCheckService(config.New(), scanner.New(), gitinfo.New())
}

func newCheckCmd() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check [config-yaml]",
		Short: "Check files against the rules in a config file",
		Long: "Check every file matched by the rules in config-yaml (default " + domain.DefaultConfigFile + "). " +
			"Only the first issue in each comment block is reported.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := domain.DefaultConfigFile
			if len(args) > 0 {
				configPath = args[0]
			}

			svc := newCheckService()
			opts := flags.options(cmd)
			res, err := svc.CheckConfigFile(cmd.Context(), configPath, opts)
			if err != nil {
				return err
			}
			return renderResult(cmd, &flags, res)
		},
	}

	flags.register(cmd)
	return cmd
}

func newLintCmd() *cobra.Command {
	var (
		flags checkFlags
		line  string
		block string
		allow []string
	)

	cmd := &cobra.Command{
		Use:   "lint <file-or-glob>...",
		Short: "Check files without a config file",
		Long:  "Check the given files (or glob patterns) using the comment markers given as flags, as a single rule.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := domain.SingleRuleConfig(args, domain.CommentSyntax{Line: line, Block: block}, allow)

			svc := newCheckService()
			opts := flags.options(cmd)
			rules, err := svc.ResolveRules(cfg, opts)
			if err != nil {
				return fmt.Errorf("invalid arguments: %w", err)
			}

			res, err := svc.Check(cmd.Context(), rules, opts)
			if err != nil {
				return err
			}
			return renderResult(cmd, &flags, res)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&line, "line", "", "Line comment marker, e.g. // or #")
	cmd.Flags().StringVar(&block, "block", "", "Block comment marker to forbid, e.g. /*")
	cmd.Flags().StringSliceVar(&allow, "allow", nil, "Violation codes to tolerate (repeatable)")
	_ = cmd.MarkFlagRequired("line")

	return cmd
}

func renderResult(cmd *cobra.Command, flags *checkFlags, res *domain.CheckResult) error {
	if flags.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else if flags.summary {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(res))
	}

	if !res.Clean {
		return ErrViolations
	}
	return nil
}
