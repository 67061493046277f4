package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/commentstyle/commentstyle/internal/domain"
	"github.com/gobwas/glob"
)

var skipDirs = map[string]bool{
	".git": true,
	".hg":  true,
	".svn": true,
}

// GlobResolver implements domain.PathResolver by walking the filesystem and
// matching slash-separated paths relative to the root.
type GlobResolver struct{}

func New() *GlobResolver {
	return &GlobResolver{}
}

// Resolve applies patterns in order: an include adds every matching file, an
// exclude removes matching files added so far. Patterns without wildcards
// name a single file, which may lie outside root. The result is sorted.
func (r *GlobResolver) Resolve(root string, patterns []domain.PathPattern) ([]string, error) {
	var files []string
	listed := false

	selected := make(map[string]bool)
	for i, p := range patterns {
		include := p.Include != nil
		pattern := ""
		if include {
			pattern = *p.Include
		} else if p.Exclude != nil {
			pattern = *p.Exclude
		}

		if isLiteral(pattern) {
			path := pattern
			if !filepath.IsAbs(path) {
				path = filepath.Join(root, path)
			}
			if !include {
				delete(selected, path)
			} else if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				selected[path] = true
			}
			continue
		}

		m, err := compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("paths[%d]: invalid pattern %q: %w", i, pattern, err)
		}

		if !listed {
			if files, err = listFiles(root); err != nil {
				return nil, err
			}
			listed = true
		}

		for _, f := range files {
			if !m.Match(f) {
				continue
			}
			path := filepath.Join(root, filepath.FromSlash(f))
			if include {
				selected[path] = true
			} else {
				delete(selected, path)
			}
		}
	}

	result := make([]string, 0, len(selected))
	for f := range selected {
		result = append(result, f)
	}
	sort.Strings(result)
	return result, nil
}

func isLiteral(pattern string) bool {
	return !strings.ContainsAny(pattern, "*?[{\\")
}

// listFiles returns every regular file under root as a cleaned, slash
// separated path relative to root.
func listFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

// matcher matches a path against any of several compiled globs.
type matcher []glob.Glob

func (m matcher) Match(path string) bool {
	for _, g := range m {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// compile turns a pattern into a matcher. `**/` may also match no directory
// at all, so every such segment yields a variant with it removed.
func compile(pattern string) (matcher, error) {
	pattern = strings.TrimPrefix(filepath.ToSlash(pattern), "./")

	var m matcher
	for _, p := range expandDoubleStar(pattern) {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, err
		}
		m = append(m, g)
	}
	return m, nil
}

func expandDoubleStar(pattern string) []string {
	i := strings.Index(pattern, "**/")
	if i < 0 {
		return []string{pattern}
	}
	head, tail := pattern[:i], pattern[i+len("**/"):]

	var out []string
	for _, t := range expandDoubleStar(tail) {
		out = append(out, head+"**/"+t, head+t)
	}
	return out
}
