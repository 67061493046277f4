package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/commentstyle/commentstyle/internal/domain"
	"github.com/commentstyle/commentstyle/internal/domain/style"
	"golang.org/x/sync/errgroup"
)

// CheckService orchestrates the check pipeline:
// load config -> resolve paths -> scan each file -> filter allowed codes -> report.
type CheckService struct {
	loader   domain.ConfigLoader
	resolver domain.PathResolver
	git      domain.GitInfo
}

func NewCheckService(
	loader domain.ConfigLoader,
	resolver domain.PathResolver,
	git domain.GitInfo,
) *CheckService {
	return &CheckService{
		loader:   loader,
		resolver: resolver,
		git:      git,
	}
}

// CheckOptions controls where files are looked up and where results go.
type CheckOptions struct {
	// Root is the directory patterns are resolved against. Defaults to ".".
	Root string
	// Tracked restricts every rule to files tracked by git.
	Tracked bool
	// Jobs is the number of files scanned concurrently. Values below 2 scan
	// sequentially, streaming violations as they are found.
	Jobs int
	// Reporter receives every violation that is not allow-listed. May be nil.
	Reporter domain.Reporter
	// Progress is told about each file before it is scanned. May be nil.
	Progress domain.ProgressLogger
}

func (o CheckOptions) root() string {
	if o.Root == "" {
		return "."
	}
	return o.Root
}

// CheckConfigFile loads the rule set at configPath, resolves it and checks
// every file.
func (s *CheckService) CheckConfigFile(ctx context.Context, configPath string, opts CheckOptions) (*domain.CheckResult, error) {
	cfg, err := s.loader.Load(configPath)
	if err != nil {
		return nil, err
	}

	rules, err := s.ResolveRules(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse '%s': %w", configPath, err)
	}

	return s.Check(ctx, rules, opts)
}

// ResolveRules validates cfg and expands each rule's patterns into files.
// A rule that matches no files is a configuration error.
func (s *CheckService) ResolveRules(cfg domain.Config, opts CheckOptions) ([]domain.Rule, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var tracked map[string]bool
	if opts.Tracked {
		if s.git == nil || !s.git.IsGitRepo(opts.root()) {
			return nil, fmt.Errorf("%s is not inside a git repository", opts.root())
		}
		var err error
		if tracked, err = s.git.TrackedFiles(opts.root()); err != nil {
			return nil, fmt.Errorf("listing tracked files: %w", err)
		}
	}

	rules := make([]domain.Rule, 0, len(cfg))
	for i, rc := range cfg {
		paths, err := s.resolver.Resolve(opts.root(), *rc.Paths)
		if err != nil {
			return nil, fmt.Errorf("`[%d]`: %w", i, err)
		}
		if tracked != nil {
			paths = filterTracked(paths, tracked)
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("`[%d].paths` doesn't match any files", i)
		}

		rules = append(rules, domain.Rule{
			Index:  i,
			Paths:  paths,
			Syntax: rc.Syntax(),
			Allow:  rc.AllowSet(),
		})
	}
	return rules, nil
}

func filterTracked(paths []string, tracked map[string]bool) []string {
	var kept []string
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err == nil && tracked[abs] {
			kept = append(kept, p)
		}
	}
	return kept
}

// Check scans every file of every rule. The result is clean only if no file
// of any rule has a reported violation or a read failure. Allow-listed
// violations are counted but do not make a file dirty.
func (s *CheckService) Check(ctx context.Context, rules []domain.Rule, opts CheckOptions) (*domain.CheckResult, error) {
	type job struct {
		rule domain.Rule
		path string
	}
	var jobs []job
	for _, r := range rules {
		for _, p := range r.Paths {
			jobs = append(jobs, job{r, p})
		}
	}

	results := make([]domain.FileResult, len(jobs))

	if opts.Jobs < 2 {
		for i, j := range jobs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			fr, err := s.checkPath(j.rule, j.path, opts, opts.Reporter)
			if err != nil {
				return nil, err
			}
			results[i] = fr
		}
	} else {
		// Workers scan silently; all output for a file is written under
		// flushMu so the writers are never shared between goroutines.
		scanOpts := opts
		scanOpts.Progress = nil

		var flushMu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Jobs)
		for i, j := range jobs {
			i, j := i, j
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				fr, err := s.checkPath(j.rule, j.path, scanOpts, nil)
				if err != nil {
					return err
				}
				results[i] = fr

				flushMu.Lock()
				defer flushMu.Unlock()
				if opts.Progress != nil {
					opts.Progress.Checking(j.path)
				}
				return flush(opts.Reporter, fr)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	res := &domain.CheckResult{Clean: true, Files: results}
	for _, fr := range results {
		if !fr.Clean() {
			res.Clean = false
		}
	}

	if s.git != nil && s.git.IsGitRepo(opts.root()) {
		if hash, err := s.git.CommitHash(opts.root()); err == nil {
			res.Commit = hash
		}
	}

	return res, nil
}

func flush(rep domain.Reporter, fr domain.FileResult) error {
	if rep == nil {
		return nil
	}
	for _, v := range fr.Violations {
		if err := rep.Report(v); err != nil {
			return err
		}
	}
	if fr.Error != "" {
		return rep.ReportError(fr.Path, errors.New(fr.Error))
	}
	return nil
}

// checkPath scans one file. Read failures are recorded on the result and
// reported, not returned; only reporter failures are returned. When rep is
// non-nil violations are streamed to it as they are found.
func (s *CheckService) checkPath(rule domain.Rule, path string, opts CheckOptions, rep domain.Reporter) (domain.FileResult, error) {
	if opts.Progress != nil {
		opts.Progress.Checking(path)
	}

	f, err := os.Open(path)
	if err != nil {
		fr := domain.FileResult{Path: path, Rule: rule.Index, Error: err.Error()}
		if rep != nil {
			return fr, rep.ReportError(path, err)
		}
		return fr, nil
	}
	defer f.Close()

	return CheckReader(path, f, rule, rep)
}

// CheckReader scans r as the file named path under rule.
func CheckReader(path string, r io.Reader, rule domain.Rule, rep domain.Reporter) (domain.FileResult, error) {
	fr := domain.FileResult{Path: path, Rule: rule.Index}

	var repErr error
	scanErr := style.Scan(path, r, rule.Syntax, func(v domain.Violation) {
		if rule.Allows(v.Code) {
			fr.Suppressed++
			return
		}
		fr.Violations = append(fr.Violations, v)
		if rep != nil && repErr == nil {
			repErr = rep.Report(v)
		}
	})
	if repErr != nil {
		return fr, repErr
	}

	if scanErr != nil {
		fr.Error = scanErr.Error()
		if rep != nil {
			return fr, rep.ReportError(path, scanErr)
		}
	}
	return fr, nil
}

// CheckText scans text held in memory, for callers that have no file.
func CheckText(name, text string, syntax domain.CommentSyntax, allow []string) domain.FileResult {
	rule := domain.Rule{Syntax: syntax, Allow: make(map[domain.Code]bool, len(allow))}
	for _, a := range allow {
		rule.Allow[domain.Code(a)] = true
	}
	fr, _ := CheckReader(name, strings.NewReader(text), rule, nil)
	return fr
}
