package internal

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/docverse/prlint/internal/doc"
	tt "github.com/docverse/prlint/internal/types"
)

// Engine manages the linting process.
type Engine struct {
	ignoredRules map[string]bool
	ignoredPaths []string
	rules        map[string]LintRule
	cache        *Cache

	watcher    *fsnotify.Watcher
	watchDirs  []string
	isWatching bool
}

// NewEngine creates a new lint engine with the default rule set, applying
// any per-rule severity overrides from the configuration.
func NewEngine(rootDir string, rules map[string]tt.ConfigRule) (*Engine, error) {
	engine := &Engine{
		ignoredRules: make(map[string]bool),
	}
	engine.applyRules(rules)

	return engine, nil
}

// Define the ruleConstructor type
type ruleConstructor func() LintRule

// Define the ruleMap type
type ruleMap map[string]ruleConstructor

// Create a map to hold the mappings of rule names to their constructors
var allRuleConstructors = ruleMap{
	"section-presence":    NewSectionPresenceRule,
	"section-order":       NewSectionOrderRule,
	"section-content":     NewSectionContentRule,
	"bullet-list":         NewBulletListRule,
	"change-keywords":     NewChangeKeywordsRule,
	"purpose-keywords":    NewPurposeKeywordsRule,
	"legal-entities":      NewLegalEntitiesRule,
	"terminology":         NewTerminologyRule,
	"heading-style":       NewHeadingStyleRule,
	"html-comments":       NewHTMLCommentsRule,
	"link-syntax":         NewLinkSyntaxRule,
	"emphasis-balance":    NewEmphasisBalanceRule,
	"blank-lines":         NewBlankLinesRule,
	"line-length":         NewLineLengthRule,
	"encoding":            NewEncodingRule,
	"line-endings":        NewLineEndingsRule,
	"trailing-whitespace": NewTrailingWhitespaceRule,
	"final-newline":       NewFinalNewlineRule,
	"placeholder-text":    NewPlaceholderTextRule,
	"sensitive-info":      NewSensitiveInfoRule,
	"absolute-paths":      NewAbsolutePathsRule,
	"bullet-grammar":      NewBulletGrammarRule,
	"file-size":           NewFileSizeRule,
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) {
	e.rules = make(map[string]LintRule)
	e.registerDefaultRules()

	// Iterate over the rules and apply severity
	for key, rule := range rules {
		r := e.findRule(key)
		if r == nil {
			newRuleCstr := allRuleConstructors[key]
			if newRuleCstr == nil {
				// Unknown rule, continue to the next one
				continue
			}
			newRule := newRuleCstr()
			newRule.SetSeverity(rule.Severity)
			e.rules[key] = newRule
		} else {
			if rule.Severity == tt.SeverityOff {
				e.IgnoreRule(key)
			}
			r.SetSeverity(rule.Severity)
		}
	}
}

func (e *Engine) registerDefaultRules() {
	for key, newRuleCstr := range allRuleConstructors {
		newRule := newRuleCstr()
		if newRule.Severity() != tt.SeverityOff {
			e.rules[key] = newRule
		}
	}
}

func (e *Engine) findRule(name string) LintRule {
	if rule, ok := e.rules[name]; ok {
		return rule
	}
	return nil
}

// DefaultConfigRules returns the default rule set with its default
// severities, in the shape written to a fresh configuration file.
func DefaultConfigRules() map[string]tt.ConfigRule {
	rules := make(map[string]tt.ConfigRule, len(allRuleConstructors))
	for key, newRuleCstr := range allRuleConstructors {
		rules[key] = tt.ConfigRule{Severity: newRuleCstr().Severity()}
	}
	return rules
}

// RuleSeverities returns the effective severity of every registered rule.
func (e *Engine) RuleSeverities() map[string]tt.Severity {
	severities := make(map[string]tt.Severity, len(e.rules))
	for name, rule := range e.rules {
		severities[name] = rule.Severity()
	}
	return severities
}

// IgnoreRule disables a rule for the rest of the run.
func (e *Engine) IgnoreRule(rule string) {
	e.ignoredRules[rule] = true
}

// IgnorePath excludes files under the given path prefix from linting.
func (e *Engine) IgnorePath(path string) {
	e.ignoredPaths = append(e.ignoredPaths, path)
}

// EnableCache turns on the issue cache rooted at cacheDir.
func (e *Engine) EnableCache(cacheDir string) error {
	cache, err := NewCache(cacheDir)
	if err != nil {
		return fmt.Errorf("failed to enable cache: %w", err)
	}
	e.cache = cache
	return nil
}

// Run applies all lint rules to the given file and returns a slice of Issues.
// A missing or unreadable file aborts the run for that file only.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	for _, ignored := range e.ignoredPaths {
		if strings.HasPrefix(filename, ignored) {
			return nil, nil
		}
	}

	if e.cache != nil {
		if issues, ok := e.cache.Get(filename); ok {
			return issues, nil
		}
	}

	document, err := doc.ReadDocument(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading document: %w", err)
	}

	issues := e.runDocument(filename, document)

	if e.cache != nil {
		if err := e.cache.Set(filename, issues); err != nil {
			return issues, fmt.Errorf("failed to update cache: %w", err)
		}
	}

	return issues, nil
}

// RunSource applies all lint rules to in-memory content.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	document := doc.FromBytes("", source)
	return e.runDocument("", document), nil
}

// runDocument evaluates every active rule independently. Rules never
// short-circuit each other; a failure in one must not suppress the others.
func (e *Engine) runDocument(filename string, document *doc.Document) []tt.Issue {
	ignoreMgr := parseIgnoreDirectives(document)

	var wg sync.WaitGroup
	var mu sync.Mutex

	var allIssues []tt.Issue
	for _, rule := range e.rules {
		wg.Add(1)
		go func(r LintRule) {
			defer wg.Done()
			if e.ignoredRules[r.Name()] {
				return
			}
			issues, err := r.Check(filename, document)
			if err != nil {
				return
			}

			kept := ignoreMgr.Filter(issues)

			mu.Lock()
			allIssues = append(allIssues, kept...)
			mu.Unlock()
		}(rule)
	}
	wg.Wait()

	sortIssues(allIssues)
	return allIssues
}

// sortIssues orders issues by position then rule name so repeated runs over
// the same document produce identical output.
func sortIssues(issues []tt.Issue) {
	sort.Slice(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if a.Start.Line != b.Start.Line {
			return a.Start.Line < b.Start.Line
		}
		if a.Start.Column != b.Start.Column {
			return a.Start.Column < b.Start.Column
		}
		if a.Rule != b.Rule {
			return a.Rule < b.Rule
		}
		return a.Message < b.Message
	})
}
