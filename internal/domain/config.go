package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultConfigFile is the configuration file name used when none is given.
const DefaultConfigFile = ".comment_style.yaml"

// Config is the declarative form of a rule set, as read from YAML.
// The document root is a list of rules.
type Config []RuleConfig

// RuleConfig is one entry of the rule list. Pointer fields distinguish
// "not specified" from empty values.
type RuleConfig struct {
	Paths          *[]PathPattern  `yaml:"paths"           json:"paths,omitempty"`
	CommentMarkers *CommentMarkers `yaml:"comment_markers" json:"comment_markers,omitempty"`
	Allow          []string        `yaml:"allow,omitempty" json:"allow,omitempty"`
}

// PathPattern holds exactly one of an include or an exclude glob.
type PathPattern struct {
	Include *string `yaml:"include,omitempty" json:"include,omitempty"`
	Exclude *string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
}

// CommentMarkers names the comment prefixes of a language.
type CommentMarkers struct {
	Line  *string `yaml:"line"            json:"line,omitempty"`
	Block *string `yaml:"block,omitempty" json:"block,omitempty"`
}

// Validate checks the config for missing keys and invalid values and returns
// a descriptive error. Path resolution happens separately.
func (c Config) Validate() error {
	if len(c) == 0 {
		return errors.New("is empty")
	}

	for i, rule := range c {
		if rule.Paths == nil {
			return fmt.Errorf("`[%d]` doesn't contain 'paths'", i)
		}
		if rule.CommentMarkers == nil {
			return fmt.Errorf("`[%d]` doesn't contain 'comment_markers'", i)
		}

		for j, p := range *rule.Paths {
			switch {
			case p.Include != nil && p.Exclude != nil:
				return fmt.Errorf("`[%d].paths[%d]` contains both 'include' and 'exclude'", i, j)
			case p.Include == nil && p.Exclude == nil:
				return fmt.Errorf("`[%d].paths[%d]` doesn't contain 'include' or 'exclude'", i, j)
			}
		}

		if rule.CommentMarkers.Line == nil {
			return fmt.Errorf("`[%d]` doesn't contain 'comment_markers.line'", i)
		}
		if *rule.CommentMarkers.Line == "" {
			return fmt.Errorf("`[%d]` has an empty 'comment_markers.line'", i)
		}

		if err := validateAllow(i, rule.Allow); err != nil {
			return err
		}
	}

	return nil
}

func validateAllow(i int, allow []string) error {
	var invalid, hints []string
	for _, name := range allow {
		if IsValidCode(name) {
			continue
		}
		invalid = append(invalid, name)
		if s := SuggestCode(name); s != "" {
			hints = append(hints, fmt.Sprintf("'%s' for '%s'", s, name))
		}
	}
	if len(invalid) == 0 {
		return nil
	}

	msg := fmt.Sprintf("`[%d]` contains invalid error codes: '%s'", i, strings.Join(invalid, "', '"))
	if len(hints) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(hints, ", "))
	}
	return errors.New(msg)
}

// Syntax returns the comment syntax described by the rule's markers.
// It assumes Validate has succeeded.
func (r RuleConfig) Syntax() CommentSyntax {
	s := CommentSyntax{Line: *r.CommentMarkers.Line}
	if r.CommentMarkers.Block != nil {
		s.Block = *r.CommentMarkers.Block
	}
	return s
}

// AllowSet returns the rule's allow-list as a set.
func (r RuleConfig) AllowSet() map[Code]bool {
	set := make(map[Code]bool, len(r.Allow))
	for _, name := range r.Allow {
		set[Code(name)] = true
	}
	return set
}

// SingleRuleConfig expresses a bare invocation (explicit files plus markers)
// as a one-rule config.
func SingleRuleConfig(files []string, syntax CommentSyntax, allow []string) Config {
	paths := make([]PathPattern, 0, len(files))
	for _, f := range files {
		f := f
		paths = append(paths, PathPattern{Include: &f})
	}

	markers := &CommentMarkers{Line: &syntax.Line}
	if syntax.Block != "" {
		block := syntax.Block
		markers.Block = &block
	}

	return Config{{
		Paths:          &paths,
		CommentMarkers: markers,
		Allow:          allow,
	}}
}
